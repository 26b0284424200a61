//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Compiles the GLSL sources to SPIR-V with glslc.
func (Build) Shaders() error {
	if _, err := executeCmd("glslc", withArgs("assets/shaders/forward.vert", "-o", "assets/shaders/forward.vert.spv"), withStream()); err != nil {
		return err
	}
	if _, err := executeCmd("glslc", withArgs("assets/shaders/forward.frag", "-o", "assets/shaders/forward.frag.spv"), withStream()); err != nil {
		return err
	}
	return nil
}

// Builds the host binary.
func (Build) Host() error {
	if _, err := executeCmd("go", withArgs("build", "."), withStream()); err != nil {
		return err
	}
	return nil
}
