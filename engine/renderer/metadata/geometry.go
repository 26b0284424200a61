package metadata

import (
	"github.com/spaghettifunk/prisma/engine/math"
)

/** @brief An invalid 32-bit identifier. */
const InvalidID uint32 = 4294967295

/** @brief An invalid 16-bit identifier. */
const InvalidIDUint16 uint16 = 65535

/** @brief The name of the default geometry. */
const DefaultGeometryName string = "default"

/**
 * @brief Represents the configuration for a geometry.
 */
type GeometryConfig struct {
	/** @brief The number of vertices. */
	VertexCount uint32
	/** @brief An array of Vertices. */
	Vertices []math.Vertex3D
	/** @brief The number of indices. */
	IndexCount uint32
	/** @brief An array of Indices, three per triangle. */
	Indices []uint32

	Center     math.Vec3
	MinExtents math.Vec3
	MaxExtents math.Vec3

	/** @brief The Name of the geometry. */
	Name string
}

type GeometryReference struct {
	ReferenceCount uint64
	Geometry       *Geometry
	AutoRelease    bool
}

/**
 * @brief Represents actual geometry in the world. The vertex and index
 * data is read-only to the transform stage; ownership stays with the
 * mesh/geometry side.
 */
type Geometry struct {
	/** @brief The geometry identifier. */
	ID uint32
	/** @brief The geometry generation. Incremented every time the geometry changes. */
	Generation uint16
	/** @brief The center of the geometry in local coordinates. */
	Center math.Vec3
	/** @brief The extents of the geometry in local coordinates. */
	Extents math.Extents3D
	/** @brief The geometry name. */
	Name string
	/** @brief The vertices making up this geometry. */
	Vertices []math.Vertex3D
	/** @brief The triangle indices into Vertices. */
	Indices []uint32
}
