package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/** @brief A quaternion, used to represent rotational orientation. */
type Quaternion Vec4

/**
 * @brief A 3x3 matrix stored as a flat column-major array. Carries the
 * linear part of an affine transform, most notably the normal matrix
 * of a draw call.
 */
type Mat3 struct {
	/** @brief The matrix elements, column-major. */
	Data [9]float32
}

/** @brief A 4x4 matrix, typically used to represent object transformations. */
type Mat4 struct {
	/** @brief The matrix elements, column-major. */
	Data [16]float32
}

/**
 * @brief Represents the extents of a 3d object.
 */
type Extents3D struct {
	/** @brief The minimum extents of the object. */
	Min Vec3
	/** @brief The maximum extents of the object. */
	Max Vec3
}

/**
 * @brief A single vertex as consumed by the vertex stage. Position and
 * normal are in object space; the normal is expected to be unit length
 * (or near it) when authored.
 */
type Vertex3D struct {
	/** @brief The position of the vertex. */
	Position Vec3
	/** @brief The normal of the vertex. */
	Normal Vec3
}

/**
 * @brief Represents the transform of an object in the world.
 * Transforms can have a parent whose own transform is then
 * taken into account. NOTE: The properties of this should not
 * be edited directly, but via the methods in transform.go
 * to ensure proper matrix generation.
 */
type Transform struct {
	/** @brief The position in the world. */
	Position Vec3
	/** @brief The rotation in the world. */
	Rotation Quaternion
	/** @brief The scale in the world. */
	Scale Vec3
	/**
	 * @brief Indicates that the position, rotation or scale have changed,
	 * meaning the local matrix needs to be recalculated.
	 */
	IsDirty bool
	/** @brief The cached local transformation matrix. */
	Local Mat4
	/** @brief A pointer to a parent transform if one is assigned. Can also be nil. */
	Parent *Transform
}
