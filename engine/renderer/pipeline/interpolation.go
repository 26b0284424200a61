package pipeline

import (
	"github.com/spaghettifunk/prisma/engine/math"
)

/**
 * This file is the consumer-facing half of the vertex stage contract.
 * The rasterizer owns the perspective divide and triangle traversal;
 * what it must do with the stage's outputs is fixed:
 *
 *   - ClipPosition feeds the fixed-function perspective divide.
 *   - WorldPosition and WorldNormal are interpolated linearly across
 *     the triangle in a perspective-correct manner before the fragment
 *     stage reads them.
 *   - The interpolated normal is NOT unit length and must be
 *     renormalized by the fragment stage before lighting.
 *
 * Both quantities are in world space on purpose: lighting needs
 * position and normal in a common space, and emitting only world-space
 * values rules out mixed-space defects structurally.
 *
 * PerspectiveInterpolate is a reference implementation of that rule,
 * used to validate the contract; a hardware rasterizer replaces it.
 */

/**
 * @brief Interpolates the vertex stage outputs of one triangle at the
 * screen-space barycentric weights (b0, b1, b2), b0+b1+b2 = 1.
 *
 * Screen-space weights are produced after the perspective divide, so a
 * plain weighted sum of attributes would be skewed by depth. Each
 * attribute is instead weighted by its vertex's 1/w and the result
 * divided by the interpolated 1/w.
 *
 * The returned WorldNormal is left denormalized, per the contract. The
 * returned ClipPosition is the plain barycentric combination; the
 * rasterizer has already consumed it by this point and it is carried
 * only for completeness.
 */
func PerspectiveInterpolate(v0, v1, v2 VertexOutput, b0, b1, b2 float32) VertexOutput {
	w0 := b0 / v0.ClipPosition.W
	w1 := b1 / v1.ClipPosition.W
	w2 := b2 / v2.ClipPosition.W
	wSum := w0 + w1 + w2

	position := v0.WorldPosition.MulScalar(w0).
		Add(v1.WorldPosition.MulScalar(w1)).
		Add(v2.WorldPosition.MulScalar(w2)).
		MulScalar(1.0 / wSum)

	normal := v0.WorldNormal.MulScalar(w0).
		Add(v1.WorldNormal.MulScalar(w1)).
		Add(v2.WorldNormal.MulScalar(w2)).
		MulScalar(1.0 / wSum)

	clip := v0.ClipPosition.MulScalar(b0).
		Add(v1.ClipPosition.MulScalar(b1)).
		Add(v2.ClipPosition.MulScalar(b2))

	return VertexOutput{
		ClipPosition:  clip,
		WorldPosition: position,
		WorldNormal:   normal,
	}
}

/**
 * @brief Performs the fixed-function perspective divide on a clip-space
 * position, yielding normalized device coordinates. Owned by the
 * rasterizer collaborator; provided here so the contract is testable
 * end to end.
 */
func PerspectiveDivide(clip math.Vec4) math.Vec3 {
	return math.NewVec3(clip.X/clip.W, clip.Y/clip.W, clip.Z/clip.W)
}
