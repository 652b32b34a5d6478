//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binaryPath = "bin/flycam"

// glfw is cgo-only.
var cgoEnv = map[string]string{"CGO_ENABLED": "1"}

type Build mg.Namespace

// Builds the flycam binary into bin/.
func (Build) Binary() error {
	return sh.RunWithV(cgoEnv, "go", "build", "-o", binaryPath, "./cmd/flycam")
}

// Compiles the WGSL scene shaders as a validity check.
func (Build) Shaders() error {
	return sh.RunV("go", "test", "-run", "TestCompile", "./render/shaders/...")
}

// Removes build output.
func (Build) Clean() error {
	return sh.Rm("bin")
}

type Test mg.Namespace

// Runs the unit tests.
func (Test) Unit() error {
	return sh.RunWithV(cgoEnv, "go", "test", "./...")
}
