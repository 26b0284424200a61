package renderer

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/math"
	"github.com/spaghettifunk/prisma/engine/renderer/metadata"
	"github.com/spaghettifunk/prisma/engine/renderer/pipeline"
)

type recordingBackend struct {
	beginCalls int
	endCalls   int
	submitted  []struct {
		name        string
		vertexCount int
	}
}

func (rb *recordingBackend) BeginFrame(deltaTime float64) error {
	rb.beginCalls++
	return nil
}

func (rb *recordingBackend) Submit(draw *metadata.GeometryRenderData, outputs []pipeline.VertexOutput) error {
	rb.submitted = append(rb.submitted, struct {
		name        string
		vertexCount int
	}{draw.Geometry.Name, len(outputs)})
	return nil
}

func (rb *recordingBackend) EndFrame(deltaTime float64) error {
	rb.endCalls++
	return nil
}

func triangleDraw(name string, model math.Mat4) *metadata.GeometryRenderData {
	return &metadata.GeometryRenderData{
		Model: model,
		Geometry: &metadata.Geometry{
			Name: name,
			Vertices: []math.Vertex3D{
				{Position: math.NewVec3(0, 0, 0), Normal: math.NewVec3(0, 0, 1)},
				{Position: math.NewVec3(1, 0, 0), Normal: math.NewVec3(0, 0, 1)},
				{Position: math.NewVec3(0, 1, 0), Normal: math.NewVec3(0, 0, 1)},
			},
			Indices: []uint32{0, 1, 2},
		},
	}
}

func testPacket(draws ...*metadata.GeometryRenderData) *metadata.RenderPacket {
	return &metadata.RenderPacket{
		DeltaTime:        0.016,
		ViewMatrix:       math.NewMat4Translation(math.NewVec3(0, 0, -10)),
		ProjectionMatrix: math.NewMat4Perspective(math.DegToRad(45), 16.0/9.0, 0.1, 100.0),
		GeometryCount:    uint32(len(draws)),
		Geometries:       draws,
	}
}

func TestDrawFrameSubmitsEveryGeometry(t *testing.T) {
	backend := &recordingBackend{}
	r := New(backend, 1)

	packet := testPacket(
		triangleDraw("a", math.NewMat4Identity()),
		triangleDraw("b", math.NewMat4Translation(math.NewVec3(2, 0, 0))),
	)
	if err := r.DrawFrame(packet); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if backend.beginCalls != 1 || backend.endCalls != 1 {
		t.Errorf("begin/end called %d/%d times, want 1/1", backend.beginCalls, backend.endCalls)
	}
	if len(backend.submitted) != 2 {
		t.Fatalf("submitted %d draws, want 2", len(backend.submitted))
	}
	for i, s := range backend.submitted {
		if s.vertexCount != 3 {
			t.Errorf("draw %d: %d vertices submitted, want 3", i, s.vertexCount)
		}
	}
}

func TestDegenerateDrawFailsFrameBeforeSubmit(t *testing.T) {
	backend := &recordingBackend{}
	r := New(backend, 1)

	packet := testPacket(
		triangleDraw("collapsed", math.NewMat4Scale(math.NewVec3(0, 1, 1))),
		triangleDraw("after", math.NewMat4Identity()),
	)
	err := r.DrawFrame(packet)
	if err == nil {
		t.Fatal("expected the frame to fail")
	}

	var degenerate *core.DegenerateTransformError
	if !errors.As(err, &degenerate) {
		t.Fatalf("expected DegenerateTransformError, got %T", err)
	}
	if len(backend.submitted) != 0 {
		t.Errorf("backend received %d submissions for a failed frame, want 0", len(backend.submitted))
	}
}
