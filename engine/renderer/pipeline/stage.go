package pipeline

import (
	"runtime"
	"sync"

	"github.com/spaghettifunk/prisma/engine/math"
)

/**
 * @brief The three quantities the vertex stage hands to the rasterizer
 * and, through it, to the lighting stage. Nothing here outlives the
 * draw call that produced it.
 */
type VertexOutput struct {
	/**
	 * @brief The position in homogeneous clip space. Consumed by the
	 * rasterizer's perspective divide.
	 */
	ClipPosition math.Vec4
	/** @brief The position in world space, for the lighting stage. */
	WorldPosition math.Vec3
	/**
	 * @brief The normal in world space. NOT guaranteed unit length after
	 * the transform; renormalization is the consumer's responsibility,
	 * since interpolation across the triangle denormalizes the vector
	 * again regardless of what this stage emits.
	 */
	WorldNormal math.Vec3
}

/**
 * @brief Evaluates one vertex against the bundle. Pure: identical
 * inputs always produce identical outputs, and no evaluation observes
 * another vertex's result.
 *
 * The world position is computed from the model matrix rather than
 * re-derived from clip space; clip space loses affine invertibility
 * after the projective divide, and lighting needs the true world-space
 * position.
 */
func (b *TransformBundle) EvaluateVertex(v math.Vertex3D) VertexOutput {
	worldPosition := v.Position.Transform(b.Model)
	return VertexOutput{
		ClipPosition:  worldPosition.ToVec4(1.0).Transform(b.WorldToClip),
		WorldPosition: worldPosition,
		WorldNormal:   b.Normal.MulVec3(v.Normal),
	}
}

// Below this many vertices the fan-out overhead outweighs the work.
const parallelThreshold = 256

/**
 * @brief Evaluates all provided vertices against the bundle, fanning
 * the work out over workerCount goroutines. Vertices are independent of
 * one another, so ranges are carved up without any ordering concern;
 * the bundle is shared read-only state for the whole batch.
 *
 * A workerCount below 1 uses one worker per logical CPU.
 */
func (b *TransformBundle) EvaluateVertices(vertices []math.Vertex3D, workerCount int) []VertexOutput {
	outputs := make([]VertexOutput, len(vertices))
	if workerCount < 1 {
		workerCount = runtime.NumCPU()
	}

	if workerCount == 1 || len(vertices) < parallelThreshold {
		for i, v := range vertices {
			outputs[i] = b.EvaluateVertex(v)
		}
		return outputs
	}

	chunk := (len(vertices) + workerCount - 1) / workerCount
	var wg sync.WaitGroup
	for start := 0; start < len(vertices); start += chunk {
		end := start + chunk
		if end > len(vertices) {
			end = len(vertices)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				outputs[i] = b.EvaluateVertex(vertices[i])
			}
		}(start, end)
	}
	wg.Wait()

	return outputs
}
