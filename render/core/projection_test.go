package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPerspectiveLH_DepthRange(t *testing.T) {
	near, far := float32(0.01), float32(100)
	proj := PerspectiveLH(mgl32.DegToRad(45), 800.0/600.0, near, far)

	tests := []struct {
		name  string
		z     float32
		depth float32
	}{
		{"near plane", near, 0},
		{"far plane", far, 1},
	}
	for _, tc := range tests {
		clip := proj.Mul4x1(mgl32.Vec4{0, 0, tc.z, 1})
		assert.InDelta(t, tc.depth, clip[2]/clip[3], 1e-4, tc.name)
	}
}

func TestPerspectiveLH_FieldOfView(t *testing.T) {
	proj := PerspectiveLH(mgl32.DegToRad(90), 1, 1, 10)

	// at 90 degrees a point on the 45 degree line lands on the clip edge
	clip := proj.Mul4x1(mgl32.Vec4{0, 5, 5, 1})
	assert.InDelta(t, 1.0, clip[1]/clip[3], 1e-5)
}

func TestLookAtLH_Identity(t *testing.T) {
	view := LookAtLH(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}, WorldUp)
	ident := mgl32.Ident4()
	assert.InDeltaSlice(t, ident[:], view[:], 1e-6)
}

func TestLookAtLH_EyeAndTargetAlongPlusZ(t *testing.T) {
	// looking down +X
	view := LookAtLH(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{2, 2, 3}, WorldUp)
	p := view.Mul4x1(mgl32.Vec4{2, 2, 3, 1})
	assertVecNear(t, mgl32.Vec3{0, 0, 1}, p.Vec3(), 1e-5)
	assertVecNear(t, mgl32.Vec3{0, 0, 0}, view.Mul4x1(mgl32.Vec4{1, 2, 3, 1}).Vec3(), 1e-5)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(5, -1, 1))
	assert.Equal(t, -1, Clamp(-5, -1, 1))
	assert.Equal(t, float32(0.5), Clamp(float32(0.5), 0, 1))
}
