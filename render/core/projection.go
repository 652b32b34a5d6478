package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// LookAtLH builds a left-handed view matrix looking from eye towards target.
// The result is column-major and meant to be applied as M * v.
func LookAtLH(eye, target, up mgl32.Vec3) mgl32.Mat4 {
	z := target.Sub(eye).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	return mgl32.Mat4{
		x[0], y[0], z[0], 0,
		x[1], y[1], z[1], 0,
		x[2], y[2], z[2], 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}

// PerspectiveLH builds a left-handed perspective projection mapping view depth
// [near, far] to clip depth [0, 1].
func PerspectiveLH(fovy, aspect, near, far float32) mgl32.Mat4 {
	yScale := float32(1.0 / math.Tan(float64(fovy)/2))
	xScale := yScale / aspect
	depth := far / (far - near)

	return mgl32.Mat4{
		xScale, 0, 0, 0,
		0, yScale, 0, 0,
		0, 0, depth, 1,
		0, 0, -near * depth, 0,
	}
}
