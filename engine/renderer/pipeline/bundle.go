package pipeline

import (
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/math"
)

/**
 * @brief Determinants of the model matrix's linear part below this are
 * treated as singular, e.g. a zero scale on any axis.
 */
const DegenerateDeterminantEpsilon float32 = 1e-6

/**
 * @brief The per-draw-call transform state read by the vertex stage.
 * A bundle is built once before a draw begins and never mutated while
 * vertex evaluations are in flight; any number of evaluations may read
 * it concurrently.
 */
type TransformBundle struct {
	/** @brief The model matrix, object space -> world space. */
	Model math.Mat4
	/** @brief The combined projection * view matrix, world space -> clip space. */
	WorldToClip math.Mat4
	/**
	 * @brief The normal matrix: the inverse-transpose of the upper-left
	 * 3x3 of Model. Using Model's 3x3 block directly would skew normals
	 * under non-uniform scale.
	 */
	Normal math.Mat3
}

/**
 * @brief Builds the transform bundle for one draw call from the object's
 * model matrix and the camera's view and projection matrices.
 *
 * Fails with core.DegenerateTransformError when the model matrix's
 * linear part is not invertible, before any vertex is evaluated. A
 * degenerate model transform is a modeling bug upstream (e.g. a
 * zero-scale object) and must be fixed at the source, not masked here.
 */
func NewTransformBundle(model, view, projection math.Mat4) (*TransformBundle, error) {
	linear := model.ToMat3()
	det := linear.Determinant()
	if det < DegenerateDeterminantEpsilon && det > -DegenerateDeterminantEpsilon {
		return nil, &core.DegenerateTransformError{Determinant: det}
	}

	return &TransformBundle{
		Model: model,
		// Mul composes receiver-first, so this is projection * view.
		WorldToClip: view.Mul(projection),
		Normal:      linear.Inverse().Transposed(),
	}, nil
}
