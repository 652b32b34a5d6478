package backend

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/gekko3d/flycam/render/gpu"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const DepthFormat = wgpu.TextureFormatDepth24PlusStencil8

var ErrUnsupportedSurface = errors.New("surface is not a *glfw.Window")

// Driver renders through WebGPU into a GLFW window.
type Driver struct {
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	config   *wgpu.SurfaceConfiguration

	depthTexture *wgpu.Texture
	depthView    *wgpu.TextureView
}

func New() *Driver {
	return &Driver{}
}

type buffer struct {
	buf *wgpu.Buffer
}

func (b *buffer) Size() uint64 { return b.buf.GetSize() }
func (b *buffer) Release()     { b.buf.Release() }

type pipeline struct {
	pipeline  *wgpu.RenderPipeline
	bindGroup *wgpu.BindGroup
}

func (p *pipeline) Release() {
	p.bindGroup.Release()
	p.pipeline.Release()
}

func (d *Driver) CreateDevice(surface gpu.Surface, width, height int, vsync bool) (err error) {
	win, ok := surface.(*glfw.Window)
	if !ok {
		return &gpu.DeviceInitError{Op: "surface", Err: ErrUnsupportedSurface}
	}
	defer func() {
		if err != nil {
			d.Release()
		}
	}()

	d.instance = wgpu.CreateInstance(nil)
	// wraps the GLFW window into a wgpu surface
	d.surface = d.instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(win))

	d.adapter, err = d.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    d.surface,
		PowerPreference:      wgpu.PowerPreferenceHighPerformance,
		ForceFallbackAdapter: false,
	})
	if err != nil {
		return &gpu.DeviceInitError{Op: "request adapter", Err: err}
	}

	d.device, err = d.adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
	})
	if err != nil {
		return &gpu.DeviceInitError{Op: "request device", Err: err}
	}
	d.queue = d.device.GetQueue()

	caps := d.surface.GetCapabilities(d.adapter)
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		return &gpu.DeviceInitError{Op: "surface capabilities", Err: errors.New("surface reports no formats")}
	}
	// one back buffer presented in place of the front buffer
	d.config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: presentMode(caps.PresentModes, vsync),
		AlphaMode:   caps.AlphaModes[0],
	}
	d.surface.Configure(d.adapter, d.device, d.config)

	d.depthTexture, err = d.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Stencil",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        DepthFormat,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return &gpu.DeviceInitError{Op: "create depth stencil texture", Err: err}
	}
	d.depthView, err = d.depthTexture.CreateView(nil)
	if err != nil {
		return &gpu.DeviceInitError{Op: "create depth stencil view", Err: err}
	}
	return nil
}

func presentMode(available []wgpu.PresentMode, vsync bool) wgpu.PresentMode {
	if vsync {
		return wgpu.PresentModeFifo
	}
	for _, m := range available {
		if m == wgpu.PresentModeImmediate || m == wgpu.PresentModeMailbox {
			return m
		}
	}
	return wgpu.PresentModeFifo
}

func bufferUsage(u gpu.BufferUsage) wgpu.BufferUsage {
	var out wgpu.BufferUsage
	if u&gpu.BufferUsageVertex != 0 {
		out |= wgpu.BufferUsageVertex
	}
	if u&gpu.BufferUsageIndex != 0 {
		out |= wgpu.BufferUsageIndex
	}
	if u&gpu.BufferUsageUniform != 0 {
		out |= wgpu.BufferUsageUniform
	}
	if u&gpu.BufferUsageCopyDst != 0 {
		out |= wgpu.BufferUsageCopyDst
	}
	return out
}

func (d *Driver) CreateBuffer(desc gpu.BufferDescriptor) (gpu.Buffer, error) {
	if desc.Contents != nil {
		buf, err := d.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
			Label:    desc.Label,
			Contents: desc.Contents,
			Usage:    bufferUsage(desc.Usage),
		})
		if err != nil {
			return nil, err
		}
		return &buffer{buf: buf}, nil
	}

	buf, err := d.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: desc.Label,
		Size:  desc.Size,
		Usage: bufferUsage(desc.Usage),
	})
	if err != nil {
		return nil, err
	}
	return &buffer{buf: buf}, nil
}

func vertexFormat(f gpu.VertexFormat) wgpu.VertexFormat {
	switch f {
	case gpu.VertexFormatFloat32x2:
		return wgpu.VertexFormatFloat32x2
	case gpu.VertexFormatFloat32x3:
		return wgpu.VertexFormatFloat32x3
	default:
		return wgpu.VertexFormatFloat32x4
	}
}

func vertexBufferLayout(layout gpu.VertexLayout) wgpu.VertexBufferLayout {
	attributes := make([]wgpu.VertexAttribute, 0, len(layout.Attributes))
	for _, a := range layout.Attributes {
		attributes = append(attributes, wgpu.VertexAttribute{
			ShaderLocation: a.Location,
			Offset:         a.Offset,
			Format:         vertexFormat(a.Format),
		})
	}
	return wgpu.VertexBufferLayout{
		ArrayStride: layout.Stride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  attributes,
	}
}

func (d *Driver) createShaderModule(label string, source string) (*wgpu.ShaderModule, error) {
	return d.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: source},
	})
}

func (d *Driver) CreatePipeline(desc gpu.PipelineDescriptor) (gpu.Pipeline, error) {
	uniform, ok := desc.Uniform.(*buffer)
	if !ok {
		return nil, fmt.Errorf("uniform buffer %T was not created by this driver", desc.Uniform)
	}

	vs, err := d.createShaderModule(desc.Label+" VS", desc.Vertex.Source)
	if err != nil {
		return nil, fmt.Errorf("vertex module: %w", err)
	}
	defer vs.Release()
	fs, err := d.createShaderModule(desc.Label+" FS", desc.Fragment.Source)
	if err != nil {
		return nil, fmt.Errorf("fragment module: %w", err)
	}
	defer fs.Release()

	rp, err := d.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: desc.Label,
		Vertex: wgpu.VertexState{
			Module:     vs,
			EntryPoint: desc.Vertex.EntryPoint,
			Buffers:    []wgpu.VertexBufferLayout{vertexBufferLayout(desc.Layout)},
		},
		Fragment: &wgpu.FragmentState{
			Module:     fs,
			EntryPoint: desc.Fragment.EntryPoint,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    d.config.Format,
					Blend:     nil,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCW,
			CullMode:  wgpu.CullModeBack,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            DepthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront:      keepStencil(),
			StencilBack:       keepStencil(),
			StencilReadMask:   0xFFFFFFFF,
			StencilWriteMask:  0xFFFFFFFF,
		},
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	})
	if err != nil {
		return nil, err
	}

	layout := rp.GetBindGroupLayout(0)
	defer layout.Release()
	bindGroup, err := d.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  desc.Label + " Transforms",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  uniform.buf,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		rp.Release()
		return nil, err
	}
	return &pipeline{pipeline: rp, bindGroup: bindGroup}, nil
}

func keepStencil() wgpu.StencilFaceState {
	return wgpu.StencilFaceState{
		Compare:     wgpu.CompareFunctionAlways,
		FailOp:      wgpu.StencilOperationKeep,
		DepthFailOp: wgpu.StencilOperationKeep,
		PassOp:      wgpu.StencilOperationKeep,
	}
}

// DrawFrame renders a single frame and presents it. Present blocks on vsync
// when the surface was configured with PresentModeFifo.
func (d *Driver) DrawFrame(frame *gpu.Frame) error {
	p, ok := frame.Pipeline.(*pipeline)
	if !ok {
		return fmt.Errorf("pipeline %T was not created by this driver", frame.Pipeline)
	}
	vb, vok := frame.VertexBuffer.(*buffer)
	ib, iok := frame.IndexBuffer.(*buffer)
	ub, uok := frame.Uniform.(*buffer)
	if !vok || !iok || !uok {
		return errors.New("frame buffers were not created by this driver")
	}

	if err := d.queue.WriteBuffer(ub.buf, 0, frame.UniformData); err != nil {
		return fmt.Errorf("write transforms: %w", err)
	}

	nextTexture, err := d.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("acquire back buffer: %w", err)
	}
	defer nextTexture.Release()
	view, err := nextTexture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("back buffer view: %w", err)
	}
	defer view.Release()

	encoder, err := d.device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("command encoder: %w", err)
	}
	defer encoder.Release()

	c := frame.ClearColor
	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: c[0], G: c[1], B: c[2], A: c[3]},
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:              d.depthView,
			DepthLoadOp:       wgpu.LoadOpClear,
			DepthStoreOp:      wgpu.StoreOpStore,
			DepthClearValue:   frame.ClearDepth,
			StencilLoadOp:     wgpu.LoadOpClear,
			StencilStoreOp:    wgpu.StoreOpStore,
			StencilClearValue: frame.ClearStencil,
		},
	})
	defer renderPass.Release()

	vp := frame.Viewport
	renderPass.SetViewport(vp.X, vp.Y, vp.Width, vp.Height, vp.MinDepth, vp.MaxDepth)
	renderPass.SetPipeline(p.pipeline)
	renderPass.SetBindGroup(0, p.bindGroup, nil)
	renderPass.SetVertexBuffer(0, vb.buf, 0, wgpu.WholeSize)
	renderPass.SetIndexBuffer(ib.buf, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	renderPass.DrawIndexed(frame.IndexCount, 1, 0, 0, 0)
	if err := renderPass.End(); err != nil {
		return fmt.Errorf("end render pass: %w", err)
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finish encoder: %w", err)
	}
	defer cmdBuffer.Release()

	d.queue.Submit(cmdBuffer)
	d.surface.Present()
	return nil
}

// Release drops every object created by CreateDevice, newest first.
func (d *Driver) Release() {
	if d.depthView != nil {
		d.depthView.Release()
		d.depthView = nil
	}
	if d.depthTexture != nil {
		d.depthTexture.Release()
		d.depthTexture = nil
	}
	if d.queue != nil {
		d.queue.Release()
		d.queue = nil
	}
	if d.device != nil {
		d.device.Release()
		d.device = nil
	}
	if d.adapter != nil {
		d.adapter.Release()
		d.adapter = nil
	}
	if d.surface != nil {
		d.surface.Release()
		d.surface = nil
	}
	if d.instance != nil {
		d.instance.Release()
		d.instance = nil
	}
	d.config = nil
}
