package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// assertVecNear compares by distance, so float residue against an exact zero
// component does not fail the way a relative comparison does.
func assertVecNear(t *testing.T, want, got mgl32.Vec3, tol float64) bool {
	t.Helper()
	return assert.InDelta(t, 0, got.Sub(want).Len(), tol, "want %v, got %v", want, got)
}
