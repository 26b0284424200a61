package metadata

import (
	"fmt"
	"strings"
)

/**
 * @brief Defines shader scope, which indicates how often it gets updated.
 */
type ShaderScope int

const (
	/** @brief Global shader scope, generally updated once per frame. */
	ShaderScopeGlobal ShaderScope = 0
	/** @brief Instance shader scope, generally updated "per-instance" of the shader. */
	ShaderScopeInstance ShaderScope = 1
	/** @brief Local shader scope, generally updated per-object. */
	ShaderScopeLocal ShaderScope = 2
)

type ShaderAttributeType int

const (
	ShaderAttribTypeFloat32   ShaderAttributeType = 0
	ShaderAttribTypeFloat32_2 ShaderAttributeType = 1
	ShaderAttribTypeFloat32_3 ShaderAttributeType = 2
	ShaderAttribTypeFloat32_4 ShaderAttributeType = 3
)

type ShaderUniformType int

const (
	ShaderUniformTypeFloat32   ShaderUniformType = 0
	ShaderUniformTypeFloat32_3 ShaderUniformType = 1
	ShaderUniformTypeFloat32_4 ShaderUniformType = 2
	ShaderUniformTypeMatrix3   ShaderUniformType = 3
	ShaderUniformTypeMatrix4   ShaderUniformType = 4
)

/**
 * @brief Represents a single shader vertex attribute.
 */
type ShaderAttribute struct {
	/** @brief The attribute Name. */
	Name string
	/** @brief The attribute type. */
	Type ShaderAttributeType
	/** @brief The attribute Size in bytes. */
	Size uint32
}

/**
 * @brief Represents a single uniform the program must declare.
 */
type ShaderUniform struct {
	/** @brief The uniform Name. */
	Name string
	/** @brief The type of uniform. */
	Type ShaderUniformType
	/** @brief The Scope of the uniform. */
	Scope ShaderScope
}

/**
 * @brief The contract a forward vertex/fragment program has to satisfy
 * to be usable with the transform stage: which vertex attributes it
 * consumes and which uniforms the host will feed it. The GPU driver
 * collaborator owns compilation and linking; a program that fails to
 * declare these is that collaborator's error to report.
 */
type ShaderProgramConfig struct {
	Name       string
	Attributes []ShaderAttribute
	Uniforms   []ShaderUniform
	/** @brief The per-stage source file names, relative to the shader assets dir. */
	StageFilenames []string
}

/** @brief The name of the forward world shader program. */
const ForwardShaderName string = "shader.builtin.forward"

/**
 * @brief The program contract for the forward vertex stage: object
 * space position and normal in, projection/view once per frame, the
 * model and normal matrices once per draw.
 */
func ForwardShaderConfig() *ShaderProgramConfig {
	return &ShaderProgramConfig{
		Name: ForwardShaderName,
		Attributes: []ShaderAttribute{
			{Name: "in_position", Type: ShaderAttribTypeFloat32_3, Size: 12},
			{Name: "in_normal", Type: ShaderAttribTypeFloat32_3, Size: 12},
		},
		Uniforms: []ShaderUniform{
			{Name: "projection", Type: ShaderUniformTypeMatrix4, Scope: ShaderScopeGlobal},
			{Name: "view", Type: ShaderUniformTypeMatrix4, Scope: ShaderScopeGlobal},
			{Name: "model", Type: ShaderUniformTypeMatrix4, Scope: ShaderScopeLocal},
			{Name: "normal_matrix", Type: ShaderUniformTypeMatrix3, Scope: ShaderScopeLocal},
		},
		StageFilenames: []string{"forward.vert", "forward.frag"},
	}
}

/**
 * @brief Checks that a shader source declares every attribute and
 * uniform named by the config. This is a host-side sanity pass only; it
 * does not compile anything. A missing name means the source and the
 * host disagree about the interface, which the GPU compiler would
 * otherwise surface much later as a link error.
 */
func (sc *ShaderProgramConfig) ValidateSource(source string) error {
	var missing []string
	for _, attr := range sc.Attributes {
		if !strings.Contains(source, attr.Name) {
			missing = append(missing, attr.Name)
		}
	}
	for _, uniform := range sc.Uniforms {
		if !strings.Contains(source, uniform.Name) {
			missing = append(missing, uniform.Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("shader '%s' source is missing declarations: %s", sc.Name, strings.Join(missing, ", "))
	}
	return nil
}
