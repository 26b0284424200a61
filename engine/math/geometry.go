package math

// GeometryGenerateNormals writes a face normal into every vertex of each
// triangle described by indices. Smoothing, if desired, is a separate pass.
func GeometryGenerateNormals(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i+0]
		i1 := indices[i+1]
		i2 := indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		normal := edge1.Cross(edge2).Normalized()

		vertices[i0].Normal = normal
		vertices[i1].Normal = normal
		vertices[i2].Normal = normal
	}
}

func Vertex3dEqual(vert0 Vertex3D, vert1 Vertex3D) bool {
	return vert0.Position.Compare(vert1.Position, K_FLOAT_EPSILON) &&
		vert0.Normal.Compare(vert1.Normal, K_FLOAT_EPSILON)
}

// GeometryCalculateExtents returns the min/max extents and center of the
// provided vertices, in the same (object) space the vertices are in.
func GeometryCalculateExtents(vertices []Vertex3D) (Extents3D, Vec3) {
	if len(vertices) == 0 {
		return Extents3D{}, NewVec3Zero()
	}

	extents := Extents3D{
		Min: vertices[0].Position,
		Max: vertices[0].Position,
	}
	for _, v := range vertices[1:] {
		p := v.Position
		if p.X < extents.Min.X {
			extents.Min.X = p.X
		}
		if p.Y < extents.Min.Y {
			extents.Min.Y = p.Y
		}
		if p.Z < extents.Min.Z {
			extents.Min.Z = p.Z
		}
		if p.X > extents.Max.X {
			extents.Max.X = p.X
		}
		if p.Y > extents.Max.Y {
			extents.Max.Y = p.Y
		}
		if p.Z > extents.Max.Z {
			extents.Max.Z = p.Z
		}
	}

	center := extents.Min.Add(extents.Max).MulScalar(0.5)
	return extents, center
}
