package math

import "testing"

func TestGeometryGenerateNormals(t *testing.T) {
	// A counterclockwise triangle in the XY plane faces +Z.
	vertices := []Vertex3D{
		{Position: NewVec3(0, 0, 0)},
		{Position: NewVec3(1, 0, 0)},
		{Position: NewVec3(0, 1, 0)},
	}
	GeometryGenerateNormals(vertices, []uint32{0, 1, 2})

	want := NewVec3(0, 0, 1)
	for i, v := range vertices {
		if !v.Normal.Compare(want, tolerance) {
			t.Errorf("vertex %d: normal %v, want %v", i, v.Normal, want)
		}
	}

	// Winding the same triangle the other way flips the normal.
	GeometryGenerateNormals(vertices, []uint32{0, 2, 1})
	want = NewVec3(0, 0, -1)
	for i, v := range vertices {
		if !v.Normal.Compare(want, tolerance) {
			t.Errorf("vertex %d: reversed normal %v, want %v", i, v.Normal, want)
		}
	}
}

func TestGeometryCalculateExtents(t *testing.T) {
	vertices := []Vertex3D{
		{Position: NewVec3(-2, 1, 0)},
		{Position: NewVec3(4, -3, 2)},
		{Position: NewVec3(0, 5, -6)},
	}
	extents, center := GeometryCalculateExtents(vertices)

	if !extents.Min.Compare(NewVec3(-2, -3, -6), tolerance) {
		t.Errorf("min %v", extents.Min)
	}
	if !extents.Max.Compare(NewVec3(4, 5, 2), tolerance) {
		t.Errorf("max %v", extents.Max)
	}
	if !center.Compare(NewVec3(1, 1, -2), tolerance) {
		t.Errorf("center %v", center)
	}

	emptyExtents, emptyCenter := GeometryCalculateExtents(nil)
	if emptyExtents != (Extents3D{}) || emptyCenter != NewVec3Zero() {
		t.Error("empty input must yield zero extents and center")
	}
}

func TestVertex3dEqual(t *testing.T) {
	a := Vertex3D{Position: NewVec3(1, 2, 3), Normal: NewVec3(0, 1, 0)}
	b := a
	if !Vertex3dEqual(a, b) {
		t.Error("identical vertices reported unequal")
	}

	b.Normal = NewVec3(1, 0, 0)
	if Vertex3dEqual(a, b) {
		t.Error("vertices with different normals reported equal")
	}
}
