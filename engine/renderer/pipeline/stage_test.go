package pipeline

import (
	gomath "math"
	"testing"

	"github.com/spaghettifunk/prisma/engine/math"
)

func mustBundle(t *testing.T, model, view, projection math.Mat4) *TransformBundle {
	t.Helper()
	bundle, err := NewTransformBundle(model, view, projection)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return bundle
}

func TestIdentityPassThrough(t *testing.T) {
	identity := math.NewMat4Identity()
	bundle := mustBundle(t, identity, identity, identity)

	v := math.Vertex3D{
		Position: math.NewVec3(1.5, -2.0, 3.25),
		Normal:   math.NewVec3(0, 1, 0),
	}
	out := bundle.EvaluateVertex(v)

	wantClip := v.Position.ToVec4(1.0)
	if out.ClipPosition != wantClip {
		t.Errorf("clip position %v, want %v", out.ClipPosition, wantClip)
	}
	if out.WorldPosition != v.Position {
		t.Errorf("world position %v, want %v", out.WorldPosition, v.Position)
	}
	if out.WorldNormal != v.Normal {
		t.Errorf("world normal %v, want %v", out.WorldNormal, v.Normal)
	}
}

func TestWorldPositionComesFromModelMatrix(t *testing.T) {
	model := math.NewMat4Translation(math.NewVec3(3, 4, -5))
	view := math.NewMat4Translation(math.NewVec3(0, 0, -10))
	projection := math.NewMat4Perspective(math.DegToRad(45), 1.0, 0.1, 100.0)
	bundle := mustBundle(t, model, view, projection)

	v := math.Vertex3D{Position: math.NewVec3(1, 1, 1), Normal: math.NewVec3(0, 1, 0)}
	out := bundle.EvaluateVertex(v)

	// World position is the model transform alone; the projection must
	// not leak into it even though it warps clip space.
	want := math.NewVec3(4, 5, -4)
	if !out.WorldPosition.Compare(want, tolerance) {
		t.Errorf("world position %v, want %v", out.WorldPosition, want)
	}
	if out.ClipPosition.ToVec3().Compare(want, tolerance) {
		t.Error("clip position unexpectedly equals the world position under a perspective projection")
	}
}

func TestNonUniformScaleKeepsAxisNormal(t *testing.T) {
	model := math.NewMat4Scale(math.NewVec3(2, 1, 1))
	bundle := mustBundle(t, model, math.NewMat4Identity(), math.NewMat4Identity())

	v := math.Vertex3D{Position: math.NewVec3Zero(), Normal: math.NewVec3(0, 1, 0)}
	out := bundle.EvaluateVertex(v)

	if !out.WorldNormal.Normalized().Compare(math.NewVec3(0, 1, 0), tolerance) {
		t.Errorf("axis-aligned normal drifted under non-uniform scale: %v", out.WorldNormal)
	}
}

func TestNonUniformScaleTiltsSlantedNormal(t *testing.T) {
	// Stretching geometry along X flattens a 45-degree surface, so its
	// normal must tilt TOWARD Y. Multiplying by the model's upper 3x3
	// instead of the inverse-transpose tilts it the other way.
	model := math.NewMat4Scale(math.NewVec3(2, 1, 1))
	bundle := mustBundle(t, model, math.NewMat4Identity(), math.NewMat4Identity())

	invSqrt2 := float32(1.0 / gomath.Sqrt(2))
	v := math.Vertex3D{
		Position: math.NewVec3Zero(),
		Normal:   math.NewVec3(invSqrt2, invSqrt2, 0),
	}
	got := bundle.EvaluateVertex(v).WorldNormal.Normalized()

	invSqrt5 := float32(1.0 / gomath.Sqrt(5))
	want := math.NewVec3(invSqrt5, 2*invSqrt5, 0)
	if !got.Compare(want, tolerance) {
		t.Errorf("slanted normal %v, want %v", got, want)
	}
}

func TestCameraAndSceneTranslationCancel(t *testing.T) {
	projection := math.NewMat4Perspective(math.DegToRad(60), 16.0/9.0, 0.1, 100.0)
	model := math.NewMat4EulerY(0.5).Mul(math.NewMat4Translation(math.NewVec3(0, 0, -8)))
	offset := math.NewVec3(3, -2, 5)

	baseline := mustBundle(t, model, math.NewMat4Identity(), projection)

	// Move the camera and every object by the same offset; all relative
	// positions are preserved, so clip space must not change.
	shiftedModel := model.Mul(math.NewMat4Translation(offset))
	shiftedView := math.NewMat4Translation(offset).Inverse()
	shifted := mustBundle(t, shiftedModel, shiftedView, projection)

	vertices := []math.Vertex3D{
		{Position: math.NewVec3(1, 0, 0), Normal: math.NewVec3(1, 0, 0)},
		{Position: math.NewVec3(-2, 3, 1), Normal: math.NewVec3(0, 1, 0)},
		{Position: math.NewVec3(0.5, -0.5, 4), Normal: math.NewVec3(0, 0, 1)},
	}
	for i, v := range vertices {
		a := baseline.EvaluateVertex(v).ClipPosition
		b := shifted.EvaluateVertex(v).ClipPosition
		if !a.Compare(b, tolerance) {
			t.Errorf("vertex %d: clip position changed under cancelling translations: %v vs %v", i, a, b)
		}
	}
}

func TestEvaluateVertexIsDeterministic(t *testing.T) {
	model := math.NewMat4Scale(math.NewVec3(1.5, 2, 0.5)).Mul(math.NewMat4EulerXYZ(0.1, 0.2, 0.3))
	view := math.NewMat4LookAt(math.NewVec3(0, 2, 10), math.NewVec3Zero(), math.NewVec3Up())
	projection := math.NewMat4Perspective(math.DegToRad(45), 4.0/3.0, 0.1, 1000.0)
	bundle := mustBundle(t, model, view, projection)

	v := math.Vertex3D{
		Position: math.NewVec3(0.7, -1.3, 2.9),
		Normal:   math.NewVec3(0.6, 0.8, 0),
	}
	first := bundle.EvaluateVertex(v)
	for i := 0; i < 16; i++ {
		if got := bundle.EvaluateVertex(v); got != first {
			t.Fatalf("run %d: output differs from first run", i)
		}
	}
}

func makeVertices(count int) []math.Vertex3D {
	vertices := make([]math.Vertex3D, count)
	for i := range vertices {
		f := float64(i)
		vertices[i] = math.Vertex3D{
			Position: math.NewVec3(
				float32(gomath.Sin(f*0.13))*10,
				float32(gomath.Cos(f*0.07))*10,
				float32(f)*0.01-5,
			),
			Normal: math.NewVec3(float32(gomath.Sin(f*0.31)), float32(gomath.Cos(f*0.31)), 0),
		}
	}
	return vertices
}

func TestBatchMatchesSequential(t *testing.T) {
	model := math.NewMat4Scale(math.NewVec3(2, 3, 1)).Mul(math.NewMat4EulerZ(1.2)).Mul(math.NewMat4Translation(math.NewVec3(1, 2, 3)))
	view := math.NewMat4Translation(math.NewVec3(0, 0, -20))
	projection := math.NewMat4Perspective(math.DegToRad(70), 16.0/9.0, 0.5, 500.0)
	bundle := mustBundle(t, model, view, projection)

	vertices := makeVertices(5000)

	sequential := make([]VertexOutput, len(vertices))
	for i, v := range vertices {
		sequential[i] = bundle.EvaluateVertex(v)
	}

	for _, workers := range []int{0, 1, 2, 7, 32} {
		parallel := bundle.EvaluateVertices(vertices, workers)
		if len(parallel) != len(sequential) {
			t.Fatalf("workers=%d: got %d outputs, want %d", workers, len(parallel), len(sequential))
		}
		for i := range sequential {
			if parallel[i] != sequential[i] {
				t.Fatalf("workers=%d: vertex %d differs from sequential evaluation", workers, i)
			}
		}
	}
}
