package metadata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spaghettifunk/prisma/engine/math"
)

func TestForwardConfigAcceptsShippedVertexShader(t *testing.T) {
	path := filepath.Join("..", "..", "..", "assets", "shaders", "forward.vert")
	source, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read shipped shader: %v", err)
	}

	if err := ForwardShaderConfig().ValidateSource(string(source)); err != nil {
		t.Errorf("shipped vertex shader rejected: %v", err)
	}
}

func TestValidateSourceReportsMissingDeclarations(t *testing.T) {
	// Declares the attributes but none of the matrices.
	source := `#version 450
layout(location = 0) in vec3 in_position;
layout(location = 1) in vec3 in_normal;
void main() {}`

	err := ForwardShaderConfig().ValidateSource(source)
	if err == nil {
		t.Fatal("expected validation to fail")
	}
	for _, name := range []string{"projection", "view", "model", "normal_matrix"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error does not mention missing uniform %q: %v", name, err)
		}
	}
}

func TestMeshRenderDataCarriesTransform(t *testing.T) {
	mesh := NewMesh(
		&Geometry{Name: "a"},
		&Geometry{Name: "b"},
	)
	mesh.Transform.SetPosition(math.NewVec3(1, 2, 3))

	draws := MeshRenderData(mesh)
	if len(draws) != 2 {
		t.Fatalf("got %d draws, want 2", len(draws))
	}
	world := mesh.Transform.GetWorld()
	for i, draw := range draws {
		if draw.Model != world {
			t.Errorf("draw %d does not carry the mesh world matrix", i)
		}
		if draw.UniqueID != mesh.UniqueID {
			t.Errorf("draw %d does not carry the mesh id", i)
		}
	}
}
