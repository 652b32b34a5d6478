//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Run mg.Namespace

// Builds and runs the viewer. FLYCAM_CONFIG is passed through when set.
func (Run) App() error {
	mg.Deps(Build.Shaders)
	return sh.RunWithV(cgoEnv, "go", "run", "./cmd/flycam")
}
