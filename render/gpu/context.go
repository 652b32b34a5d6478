package gpu

import (
	"errors"
	"fmt"

	"github.com/gekko3d/flycam/render/core"
	"github.com/gekko3d/flycam/render/shaders"
	"github.com/go-gl/mathgl/mgl32"
)

type State int

const (
	Uninitialized State = iota
	DeviceReady
	GeometryReady
	ShadersReady
	Renderable
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case DeviceReady:
		return "DeviceReady"
	case GeometryReady:
		return "GeometryReady"
	case ShadersReady:
		return "ShadersReady"
	case Renderable:
		return "Renderable"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Viewer supplies the look-at parameters for a frame.
type Viewer interface {
	Position() mgl32.Vec3
	Target() mgl32.Vec3
	WorldUp() mgl32.Vec3
}

type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}

type Projection struct {
	FovY float32 // radians
	Near float32
	Far  float32
}

func DefaultProjection() Projection {
	return Projection{
		FovY: mgl32.DegToRad(45),
		Near: 0.01,
		Far:  100.0,
	}
}

type Option func(*Context)

func WithProjection(p Projection) Option {
	return func(c *Context) { c.projectionParams = p }
}

func WithClearColor(rgba [4]float64) Option {
	return func(c *Context) { c.clearColor = rgba }
}

func WithVSync(enabled bool) Option {
	return func(c *Context) { c.vsync = enabled }
}

// WithShaderSources replaces the scene programs. Entry points stay
// vs_main and fs_main.
func WithShaderSources(vertex, fragment string) Option {
	return func(c *Context) {
		c.vertexSource = vertex
		c.fragmentSource = fragment
	}
}

func WithLogger(l Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.logger = l
		}
	}
}

// Context owns every GPU resource of the scene. Setup is strictly ordered:
// InitDevice, CreateGeometry, CreateShaders. Render is only valid once
// Initialize has completed all three.
type Context struct {
	driver Driver
	logger Logger
	state  State

	width, height    int
	vsync            bool
	clearColor       [4]float64
	projectionParams Projection
	projection       mgl32.Mat4
	vertexSource     string
	fragmentSource   string

	vertexBuffer  Buffer
	indexBuffer   Buffer
	uniformBuffer Buffer
	pipeline      Pipeline
	numIndices    uint32
	frames        uint64
}

func NewContext(driver Driver, opts ...Option) *Context {
	c := &Context{
		driver:           driver,
		logger:           nopLogger{},
		vsync:            true,
		clearColor:       [4]float64{1, 1, 1, 1},
		projectionParams: DefaultProjection(),
		vertexSource:     shaders.SceneVertexWGSL,
		fragmentSource:   shaders.SceneFragmentWGSL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Context) State() State       { return c.state }
func (c *Context) IndexCount() uint32 { return c.numIndices }
func (c *Context) Frames() uint64     { return c.frames }

// Projection returns the projection fixed at InitDevice.
func (c *Context) Projection() mgl32.Mat4 { return c.projection }

func (c *Context) expect(s State, op string) error {
	if c.state != s {
		return fmt.Errorf("%s in state %s, want %s: %w", op, c.state, s, ErrInvalidState)
	}
	return nil
}

// Initialize runs the whole startup sequence. Any failure releases what was
// already acquired and leaves the context Uninitialized.
func (c *Context) Initialize(surface Surface, width, height int, vertices []core.Vertex, indices []uint32) (err error) {
	if stateErr := c.expect(Uninitialized, "Initialize"); stateErr != nil {
		return stateErr
	}
	defer func() {
		if err != nil {
			c.Cleanup()
		}
	}()

	if err = c.InitDevice(surface, width, height); err != nil {
		return err
	}
	if err = c.CreateGeometry(vertices, indices); err != nil {
		return err
	}
	if err = c.CreateShaders(); err != nil {
		return err
	}
	c.state = Renderable
	c.logger.Infof("graphics context renderable (%dx%d, %d indices)", width, height, c.numIndices)
	return nil
}

func (c *Context) InitDevice(surface Surface, width, height int) error {
	if err := c.expect(Uninitialized, "InitDevice"); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return &DeviceInitError{Op: "validate surface size", Err: fmt.Errorf("invalid size %dx%d", width, height)}
	}
	if err := c.driver.CreateDevice(surface, width, height, c.vsync); err != nil {
		var devErr *DeviceInitError
		if errors.As(err, &devErr) {
			return err
		}
		return &DeviceInitError{Op: "create device", Err: err}
	}

	c.width, c.height = width, height
	p := c.projectionParams
	c.projection = core.PerspectiveLH(p.FovY, float32(width)/float32(height), p.Near, p.Far)
	c.state = DeviceReady
	c.logger.Debugf("device ready (vsync=%t)", c.vsync)
	return nil
}

// CreateGeometry uploads the mesh and allocates the transform buffer. On
// failure nothing allocated by this call is kept and the state is unchanged.
func (c *Context) CreateGeometry(vertices []core.Vertex, indices []uint32) (err error) {
	if err := c.expect(DeviceReady, "CreateGeometry"); err != nil {
		return err
	}
	if len(vertices) == 0 || len(indices) == 0 {
		return &ResourceAllocError{Resource: "geometry", Err: fmt.Errorf("empty mesh: %d vertices, %d indices", len(vertices), len(indices))}
	}

	vertexBytes, err := toBufferBytes(vertices)
	if err != nil {
		return &ResourceAllocError{Resource: "vertex buffer", Err: err}
	}
	indexBytes, err := toBufferBytes(indices)
	if err != nil {
		return &ResourceAllocError{Resource: "index buffer", Err: err}
	}

	defer func() {
		if err != nil {
			c.releaseGeometry()
		}
	}()

	if c.vertexBuffer, err = c.createBuffer(BufferDescriptor{
		Label:    "Vertex Buffer",
		Contents: vertexBytes,
		Size:     uint64(len(vertexBytes)),
		Usage:    BufferUsageVertex,
	}); err != nil {
		return err
	}
	if c.indexBuffer, err = c.createBuffer(BufferDescriptor{
		Label:    "Index Buffer",
		Contents: indexBytes,
		Size:     uint64(len(indexBytes)),
		Usage:    BufferUsageIndex,
	}); err != nil {
		return err
	}
	if c.uniformBuffer, err = c.createBuffer(BufferDescriptor{
		Label: "Transforms",
		Size:  TransformsSize,
		Usage: BufferUsageUniform | BufferUsageCopyDst,
	}); err != nil {
		return err
	}

	c.numIndices = uint32(len(indices))
	c.state = GeometryReady
	c.logger.Debugf("geometry uploaded: %d vertices (%d bytes), %d indices (%d bytes)",
		len(vertices), len(vertexBytes), len(indices), len(indexBytes))
	return nil
}

func (c *Context) releaseGeometry() {
	for _, buf := range []*Buffer{&c.uniformBuffer, &c.indexBuffer, &c.vertexBuffer} {
		if *buf != nil {
			(*buf).Release()
			*buf = nil
		}
	}
	c.numIndices = 0
}

func (c *Context) createBuffer(desc BufferDescriptor) (Buffer, error) {
	buf, err := c.driver.CreateBuffer(desc)
	if err != nil {
		return nil, &ResourceAllocError{Resource: desc.Label, Size: desc.Size, Err: err}
	}
	return buf, nil
}

func (c *Context) CreateShaders() error {
	if err := c.expect(GeometryReady, "CreateShaders"); err != nil {
		return err
	}

	vs, err := shaders.Compile(shaders.StageVertex, c.vertexSource, shaders.VertexEntryPoint)
	if err != nil {
		return &ShaderCompileError{Stage: shaders.StageVertex.String(), Err: err}
	}
	fs, err := shaders.Compile(shaders.StageFragment, c.fragmentSource, shaders.FragmentEntryPoint)
	if err != nil {
		return &ShaderCompileError{Stage: shaders.StageFragment.String(), Err: err}
	}
	layout, err := VertexLayoutOf(core.Vertex{})
	if err != nil {
		return &ShaderCompileError{Stage: "input layout", Err: err}
	}
	if err := layout.matchInputs(vs.Inputs); err != nil {
		return &ShaderCompileError{Stage: "input layout", Err: err}
	}

	pipeline, err := c.driver.CreatePipeline(PipelineDescriptor{
		Label:    "Scene Pipeline",
		Vertex:   vs,
		Fragment: fs,
		Layout:   layout,
		Topology: TopologyTriangleList,
		Uniform:  c.uniformBuffer,
	})
	if err != nil {
		return &ShaderCompileError{Stage: "pipeline", Err: err}
	}
	c.pipeline = pipeline
	c.state = ShadersReady
	c.logger.Debugf("shaders compiled, input stride %d bytes", layout.Stride)
	return nil
}

// Render draws one frame seen from v and presents it. With vsync enabled the
// driver blocks in present until the next display refresh.
func (c *Context) Render(v Viewer) error {
	if c.state != Renderable {
		return ErrNotRenderable
	}

	transforms := Transforms{
		World:      mgl32.Ident4(),
		View:       core.LookAtLH(v.Position(), v.Target(), v.WorldUp()),
		Projection: c.projection,
	}
	data, err := toBufferBytes(transforms)
	if err != nil {
		return fmt.Errorf("pack transforms: %w", err)
	}

	err = c.driver.DrawFrame(&Frame{
		ClearColor:   c.clearColor,
		ClearDepth:   1.0,
		ClearStencil: 0,
		Viewport: Viewport{
			Width:    float32(c.width),
			Height:   float32(c.height),
			MinDepth: 0,
			MaxDepth: 1,
		},
		Pipeline:     c.pipeline,
		VertexBuffer: c.vertexBuffer,
		IndexBuffer:  c.indexBuffer,
		IndexCount:   c.numIndices,
		Uniform:      c.uniformBuffer,
		UniformData:  data,
	})
	if err != nil {
		return fmt.Errorf("draw frame %d: %w", c.frames, err)
	}
	c.frames++
	return nil
}

// Cleanup releases every GPU resource in reverse acquisition order. Calling
// it on an uninitialized context does nothing.
func (c *Context) Cleanup() {
	if c.state == Uninitialized {
		return
	}
	if c.pipeline != nil {
		c.pipeline.Release()
		c.pipeline = nil
	}
	c.releaseGeometry()
	c.driver.Release()
	c.state = Uninitialized
	c.logger.Debugf("graphics context released after %d frames", c.frames)
}
