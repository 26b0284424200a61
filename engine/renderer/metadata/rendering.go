package metadata

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/prisma/engine/math"
)

/**
 * @brief One draw call's worth of geometry plus the model matrix it is
 * drawn with. The model matrix is captured here so the transform bundle
 * for the draw can be built without reaching back into the scene.
 */
type GeometryRenderData struct {
	Model    math.Mat4
	Geometry *Geometry
	UniqueID uuid.UUID
}

/**
 * @brief A packet describing everything a frame needs from the scene:
 * the camera matrices, supplied once per frame by the camera/scene
 * collaborator, and the geometries to be drawn.
 */
type RenderPacket struct {
	DeltaTime float64
	/** @brief The current view matrix. */
	ViewMatrix math.Mat4
	/** @brief The current projection matrix. */
	ProjectionMatrix math.Mat4
	/** @brief The current view position, if applicable. */
	ViewPosition math.Vec3
	/** @brief The number of geometries to be drawn. */
	GeometryCount uint32
	/** @brief The Geometries to be drawn. */
	Geometries []*GeometryRenderData
}

/**
 * @brief One mesh flattened into draw calls: every geometry of the mesh
 * paired with the mesh's current world matrix.
 */
func MeshRenderData(mesh *Mesh) []*GeometryRenderData {
	model := mesh.Transform.GetWorld()
	data := make([]*GeometryRenderData, 0, len(mesh.Geometries))
	for _, g := range mesh.Geometries {
		data = append(data, &GeometryRenderData{
			Model:    model,
			Geometry: g,
			UniqueID: mesh.UniqueID,
		})
	}
	return data
}
