package systems

import (
	"testing"

	"github.com/spaghettifunk/prisma/engine/math"
	"github.com/spaghettifunk/prisma/engine/renderer/metadata"
)

func TestGenerateCubeConfig(t *testing.T) {
	config, err := GenerateCubeConfig(2, 4, 6, "test_cube")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(config.Vertices) != 24 {
		t.Fatalf("got %d vertices, want 24", len(config.Vertices))
	}
	if len(config.Indices) != 36 {
		t.Fatalf("got %d indices, want 36", len(config.Indices))
	}

	wantMin := math.NewVec3(-1, -2, -3)
	wantMax := math.NewVec3(1, 2, 3)
	if config.MinExtents != wantMin || config.MaxExtents != wantMax {
		t.Errorf("extents [%v, %v], want [%v, %v]", config.MinExtents, config.MaxExtents, wantMin, wantMax)
	}

	for i, v := range config.Vertices {
		if length := v.Normal.Length(); length < 0.999 || length > 1.001 {
			t.Errorf("vertex %d: normal length %v, want 1", i, length)
		}
		// Face normals point away from the cube center.
		if v.Normal.Dot(v.Position) <= 0 {
			t.Errorf("vertex %d: normal %v points inward at %v", i, v.Normal, v.Position)
		}
	}

	for i, idx := range config.Indices {
		if idx >= uint32(len(config.Vertices)) {
			t.Errorf("index %d out of range: %d", i, idx)
		}
	}
}

func TestGeneratePlaneConfig(t *testing.T) {
	config, err := GeneratePlaneConfig(10, 20, 4, 2, "test_plane")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := len(config.Vertices), 5*3; got != want {
		t.Fatalf("got %d vertices, want %d", got, want)
	}
	if got, want := len(config.Indices), 4*2*6; got != want {
		t.Fatalf("got %d indices, want %d", got, want)
	}

	up := math.NewVec3Up()
	for i, v := range config.Vertices {
		if v.Normal != up {
			t.Errorf("vertex %d: normal %v, want up", i, v.Normal)
		}
		if v.Position.Y != 0 {
			t.Errorf("vertex %d: plane vertex off the XZ plane: %v", i, v.Position)
		}
	}

	if !config.Center.Compare(math.NewVec3Zero(), 1e-5) {
		t.Errorf("plane center %v, want origin", config.Center)
	}
}

func TestGeometrySystemAcquireRelease(t *testing.T) {
	gs, err := NewGeometrySystem(&GeometrySystemConfig{MaxGeometryCount: 8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gs.GetDefault() == nil {
		t.Fatal("no default geometry")
	}

	config, err := GenerateCubeConfig(1, 1, 1, "cube")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g, err := gs.AcquireFromConfig(config, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.ID == metadata.InvalidID {
		t.Fatal("acquired geometry has no id")
	}

	// A second acquire by id bumps the reference count; two releases
	// free the auto-release slot.
	if _, err := gs.AcquireByID(g.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := g.ID
	gs.Release(g)
	if g.ID == metadata.InvalidID {
		t.Fatal("slot freed while still referenced")
	}
	gs.Release(g)
	if g.ID != metadata.InvalidID {
		t.Error("auto-release slot not freed at zero references")
	}
	if _, err := gs.AcquireByID(id); err == nil {
		t.Error("acquiring a freed slot must fail")
	}
}

func TestGeometrySystemRejectsZeroCapacity(t *testing.T) {
	if _, err := NewGeometrySystem(&GeometrySystemConfig{}); err == nil {
		t.Fatal("expected configuration error")
	}
}
