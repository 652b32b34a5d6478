package gpu

import (
	"github.com/gekko3d/flycam/render/shaders"
)

// Surface is the drawable the device presents to. It is opaque to the
// context and interpreted by the Driver.
type Surface any

type BufferUsage uint32

const (
	BufferUsageVertex BufferUsage = 1 << iota
	BufferUsageIndex
	BufferUsageUniform
	BufferUsageCopyDst
)

type BufferDescriptor struct {
	Label string
	// Contents initialises an immutable buffer. When nil, Size bytes are
	// allocated and left for later writes.
	Contents []byte
	Size     uint64
	Usage    BufferUsage
}

type Buffer interface {
	Size() uint64
	Release()
}

type Pipeline interface {
	Release()
}

type Topology int

const (
	TopologyTriangleList Topology = iota
)

type PipelineDescriptor struct {
	Label    string
	Vertex   shaders.Program
	Fragment shaders.Program
	Layout   VertexLayout
	Topology Topology
	// bound at group 0, binding 0 of the vertex stage
	Uniform Buffer
}

type Viewport struct {
	X, Y, Width, Height float32
	MinDepth, MaxDepth  float32
}

// Frame is everything a driver needs to produce and present one image.
type Frame struct {
	ClearColor   [4]float64
	ClearDepth   float32
	ClearStencil uint32
	Viewport     Viewport

	Pipeline     Pipeline
	VertexBuffer Buffer
	IndexBuffer  Buffer
	IndexCount   uint32

	Uniform     Buffer
	UniformData []byte
}

// Driver is the graphics API underneath a Context.
type Driver interface {
	// CreateDevice creates the device, a swap chain with a single back
	// buffer, a color target matching the surface and a depth/stencil target
	// of the same size.
	CreateDevice(surface Surface, width, height int, vsync bool) error
	CreateBuffer(desc BufferDescriptor) (Buffer, error)
	CreatePipeline(desc PipelineDescriptor) (Pipeline, error)
	// DrawFrame uploads the uniform data, clears both targets, issues one
	// indexed draw and presents.
	DrawFrame(frame *Frame) error
	Release()
}
