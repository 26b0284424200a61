package systems

import (
	"testing"

	"github.com/spaghettifunk/prisma/engine/renderer/components"
)

func TestCameraSystemAcquireReturnsSameCamera(t *testing.T) {
	cs, err := NewCameraSystem(&CameraSystemConfig{MaxCameraCount: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := cs.Acquire("world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := cs.Acquire("world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Error("acquiring the same name twice returned different cameras")
	}

	other, err := cs.Acquire("editor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if other == first {
		t.Error("distinct names share a camera")
	}
}

func TestCameraSystemReleaseFreesSlot(t *testing.T) {
	cs, err := NewCameraSystem(&CameraSystemConfig{MaxCameraCount: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := cs.Acquire("a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The single slot is taken.
	if _, err := cs.Acquire("b"); err == nil {
		t.Fatal("expected acquisition to fail with no free slot")
	}

	cs.Release("a")
	if _, err := cs.Acquire("b"); err != nil {
		t.Errorf("slot not reusable after release: %v", err)
	}
}

func TestCameraSystemDefaultIsNotReleasable(t *testing.T) {
	cs, err := NewCameraSystem(&CameraSystemConfig{MaxCameraCount: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	def, err := cs.Acquire(components.DEFAULT_CAMERA_NAME)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def != cs.GetDefault() {
		t.Error("default name did not resolve to the default camera")
	}

	cs.Release(components.DEFAULT_CAMERA_NAME)
	if cs.GetDefault() == nil {
		t.Error("default camera released")
	}
}
