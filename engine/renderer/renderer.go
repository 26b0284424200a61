package renderer

import (
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/renderer/metadata"
	"github.com/spaghettifunk/prisma/engine/renderer/pipeline"
)

/**
 * @brief The downstream rasterizer/fragment collaborator. It owns
 * triangle traversal, the perspective divide and perspective-correct
 * interpolation of the submitted outputs (see pipeline's interpolation
 * contract); this package only transforms vertices and hands them over.
 */
type Backend interface {
	BeginFrame(deltaTime float64) error
	// Submit receives one draw call's transformed vertices together
	// with the index list defining its triangles.
	Submit(draw *metadata.GeometryRenderData, outputs []pipeline.VertexOutput) error
	EndFrame(deltaTime float64) error
}

type Renderer struct {
	backend Backend
	// Goroutines used per draw call for vertex evaluation; <1 means one
	// per logical CPU.
	workerCount int
}

func New(backend Backend, workerCount int) *Renderer {
	return &Renderer{
		backend:     backend,
		workerCount: workerCount,
	}
}

/**
 * @brief Draws every geometry in the packet. For each draw call a
 * TransformBundle is built from the geometry's model matrix and the
 * packet's camera matrices, then all vertices are evaluated against it.
 *
 * A degenerate model transform fails the whole frame before any vertex
 * of the offending draw is evaluated; partially drawing with corrupted
 * normals is never acceptable.
 */
func (r *Renderer) DrawFrame(packet *metadata.RenderPacket) error {
	if err := r.backend.BeginFrame(packet.DeltaTime); err != nil {
		core.LogError(err.Error())
		return err
	}

	for _, draw := range packet.Geometries {
		bundle, err := pipeline.NewTransformBundle(draw.Model, packet.ViewMatrix, packet.ProjectionMatrix)
		if err != nil {
			core.LogError("draw of geometry '%s' rejected: %s", draw.Geometry.Name, err.Error())
			return err
		}

		outputs := bundle.EvaluateVertices(draw.Geometry.Vertices, r.workerCount)
		core.MetricsDrawSubmitted(len(outputs))

		if err := r.backend.Submit(draw, outputs); err != nil {
			core.LogError(err.Error())
			return err
		}
	}

	if err := r.backend.EndFrame(packet.DeltaTime); err != nil {
		core.LogError("renderer EndFrame failed. Application shutting down...")
		return err
	}
	return nil
}

/**
 * @brief A backend that discards everything it is handed. Useful for
 * headless runs and benchmarks where no rasterizer is attached.
 */
type NoopBackend struct{}

func (nb *NoopBackend) BeginFrame(deltaTime float64) error {
	return nil
}

func (nb *NoopBackend) Submit(draw *metadata.GeometryRenderData, outputs []pipeline.VertexOutput) error {
	return nil
}

func (nb *NoopBackend) EndFrame(deltaTime float64) error {
	return nil
}
