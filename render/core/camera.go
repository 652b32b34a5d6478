package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	WorldUp      = mgl32.Vec3{0, 1, 0}
	WorldForward = mgl32.Vec3{0, 0, 1}
)

type CameraOptions struct {
	Position mgl32.Vec3
	// units per tick, not per second
	MoveSpeed           float32
	RotationSensitivity float32
	// pitch stays within [-pi/2+PitchMargin, pi/2-PitchMargin]
	PitchMargin float32
}

func DefaultCameraOptions() CameraOptions {
	return CameraOptions{
		Position:            mgl32.Vec3{0, 0, 0},
		MoveSpeed:           0.05,
		RotationSensitivity: 2.0,
		PitchMargin:         0.1,
	}
}

// Camera is a free-flying first-person camera. Orientation is kept as pitch
// and yaw in radians, roll is always zero. The coordinate system is
// left-handed with +Y up and +Z forward at zero rotation.
type Camera struct {
	opts CameraOptions

	position mgl32.Vec3
	target   mgl32.Vec3
	forward  mgl32.Vec3
	right    mgl32.Vec3
	pitch    float32
	yaw      float32
}

func NewCamera(opts CameraOptions) *Camera {
	c := &Camera{
		opts:     opts,
		position: opts.Position,
	}
	c.updateBasis()
	c.target = c.position.Add(c.forward)
	return c
}

// Update integrates one tick of input. All arguments are signed axes that
// already combine their input sources. Movement is not scaled by frame time,
// so speed follows the achieved frame rate.
func (c *Camera) Update(forward, right, up, pitchDelta, yawDelta float32) {
	c.pitch += pitchDelta * c.opts.RotationSensitivity
	c.yaw += yawDelta * c.opts.RotationSensitivity

	maxPitch := float32(math.Pi/2) - c.opts.PitchMargin
	c.pitch = Clamp(c.pitch, -maxPitch, maxPitch)

	c.updateBasis()

	speed := c.opts.MoveSpeed
	c.position = c.position.
		Add(c.forward.Mul(forward * speed)).
		Add(c.right.Mul(right * speed)).
		Add(WorldUp.Mul(up * speed))

	c.target = c.position.Add(c.forward)
}

func (c *Camera) updateBasis() {
	rotation := mgl32.Rotate3DY(c.yaw).Mul3(mgl32.Rotate3DX(c.pitch))
	c.forward = rotation.Mul3x1(WorldForward).Normalize()
	// up x forward keeps right pointing to +X at zero yaw in a left-handed frame
	c.right = WorldUp.Cross(c.forward).Normalize()
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Target() mgl32.Vec3   { return c.target }
func (c *Camera) Forward() mgl32.Vec3  { return c.forward }
func (c *Camera) Right() mgl32.Vec3    { return c.right }
func (c *Camera) Pitch() float32       { return c.pitch }
func (c *Camera) Yaw() float32         { return c.yaw }

// Up returns the camera-local up vector. The view matrix still uses WorldUp.
func (c *Camera) Up() mgl32.Vec3 {
	return c.forward.Cross(c.right).Normalize()
}

// WorldUp is the up vector handed to the view transform.
func (c *Camera) WorldUp() mgl32.Vec3 { return WorldUp }

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return LookAtLH(c.position, c.target, WorldUp)
}

// SetPosition moves the camera without touching its orientation.
func (c *Camera) SetPosition(p mgl32.Vec3) {
	c.position = p
	c.target = c.position.Add(c.forward)
}
