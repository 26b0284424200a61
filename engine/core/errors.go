package core

import (
	"errors"
	"fmt"
)

var (
	ErrShutdown = errors.New("engine shutting down")
	ErrUnknown  = errors.New("unknown")
)

/**
 * @brief Reported when a model transform's linear part is singular, so
 * the inverse-transpose normal matrix cannot be built. Surfaced at
 * bundle construction, before any vertex is evaluated; drawing anyway
 * would push NaN/Inf normals into the lighting stage.
 */
type DegenerateTransformError struct {
	// Determinant of the model matrix's upper-left 3x3 block.
	Determinant float32
}

func (e *DegenerateTransformError) Error() string {
	return fmt.Sprintf("degenerate model transform: upper 3x3 determinant %g is not invertible", e.Determinant)
}

/**
 * @brief Owned by the external collaborator that compiles and links
 * shader programs. The engine only validates that a source declares
 * the attributes and uniforms its program contract requires; actual
 * compilation diagnostics arrive wrapped in this type.
 */
type ShaderCompilationError struct {
	ShaderName string
	Detail     string
}

func (e *ShaderCompilationError) Error() string {
	return fmt.Sprintf("shader '%s' failed to compile: %s", e.ShaderName, e.Detail)
}
