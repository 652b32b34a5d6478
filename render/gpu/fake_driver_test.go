package gpu

import (
	"errors"
)

var errOutOfMemory = errors.New("out of device memory")

type fakeBuffer struct {
	desc     BufferDescriptor
	released int
}

func (b *fakeBuffer) Size() uint64 { return b.desc.Size }
func (b *fakeBuffer) Release()     { b.released++ }

type fakePipeline struct {
	desc     PipelineDescriptor
	released int
}

func (p *fakePipeline) Release() { p.released++ }

// fakeDriver records every call and can be told to fail at a given step.
type fakeDriver struct {
	deviceErr   error
	bufferErrAt string
	pipelineErr error
	drawErr     error

	surface  Surface
	width    int
	height   int
	vsync    bool
	devices  int
	released int

	buffers   []*fakeBuffer
	pipelines []*fakePipeline
	frames    []Frame
}

func (d *fakeDriver) CreateDevice(surface Surface, width, height int, vsync bool) error {
	if d.deviceErr != nil {
		return d.deviceErr
	}
	d.surface, d.width, d.height, d.vsync = surface, width, height, vsync
	d.devices++
	return nil
}

func (d *fakeDriver) CreateBuffer(desc BufferDescriptor) (Buffer, error) {
	if d.bufferErrAt == desc.Label {
		return nil, errOutOfMemory
	}
	b := &fakeBuffer{desc: desc}
	d.buffers = append(d.buffers, b)
	return b, nil
}

func (d *fakeDriver) CreatePipeline(desc PipelineDescriptor) (Pipeline, error) {
	if d.pipelineErr != nil {
		return nil, d.pipelineErr
	}
	p := &fakePipeline{desc: desc}
	d.pipelines = append(d.pipelines, p)
	return p, nil
}

func (d *fakeDriver) DrawFrame(frame *Frame) error {
	if d.drawErr != nil {
		return d.drawErr
	}
	d.frames = append(d.frames, *frame)
	return nil
}

func (d *fakeDriver) Release() { d.released++ }

func (d *fakeDriver) buffer(label string) *fakeBuffer {
	for _, b := range d.buffers {
		if b.desc.Label == label {
			return b
		}
	}
	return nil
}
