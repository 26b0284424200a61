package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestDegenerateTransformErrorCarriesDeterminant(t *testing.T) {
	base := &DegenerateTransformError{Determinant: 1.5e-8}

	if !strings.Contains(base.Error(), "1.5e-08") {
		t.Errorf("message does not include the determinant: %q", base.Error())
	}

	wrapped := fmt.Errorf("frame failed: %w", base)
	var unwrapped *DegenerateTransformError
	if !errors.As(wrapped, &unwrapped) {
		t.Fatal("wrapped error lost its type")
	}
	if unwrapped.Determinant != base.Determinant {
		t.Errorf("determinant %v, want %v", unwrapped.Determinant, base.Determinant)
	}
}

func TestShaderCompilationErrorMessage(t *testing.T) {
	err := &ShaderCompilationError{ShaderName: "shader.builtin.forward", Detail: "missing normal_matrix"}
	for _, want := range []string{"shader.builtin.forward", "missing normal_matrix"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("message missing %q: %q", want, err.Error())
		}
	}
}

func TestClockMeasuresElapsedTime(t *testing.T) {
	c := NewClock()

	// Non-started clocks do not advance.
	c.Update()
	if c.Elapsed() != 0 {
		t.Errorf("unstarted clock elapsed %v, want 0", c.Elapsed())
	}

	c.Start()
	time.Sleep(5 * time.Millisecond)
	c.Update()
	if c.ElapsedSeconds() <= 0 {
		t.Errorf("elapsed %v seconds after sleeping", c.ElapsedSeconds())
	}

	c.Stop()
	stopped := c.Elapsed()
	c.Update()
	if c.Elapsed() != stopped {
		t.Error("stopped clock kept advancing")
	}
}

func TestMetricsVertexThroughput(t *testing.T) {
	if err := MetricsInitialize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	MetricsDrawSubmitted(300)
	MetricsDrawSubmitted(700)

	// Push the accumulated frame time past the one second rollup window.
	MetricsUpdate(1.1)

	draws, vertices := MetricsVertexThroughput()
	if draws != 2 {
		t.Errorf("draws per second %v, want 2", draws)
	}
	if vertices != 1000 {
		t.Errorf("vertices per second %v, want 1000", vertices)
	}
}
