package metadata

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/prisma/engine/math"
)

type Mesh struct {
	UniqueID      uuid.UUID
	Generation    uint8
	GeometryCount uint16
	Geometries    []*Geometry
	Transform     *math.Transform
}

// NewMesh wraps the provided geometries with a fresh identity transform.
func NewMesh(geometries ...*Geometry) *Mesh {
	return &Mesh{
		UniqueID:      uuid.New(),
		GeometryCount: uint16(len(geometries)),
		Geometries:    geometries,
		Transform:     math.TransformCreate(),
	}
}
