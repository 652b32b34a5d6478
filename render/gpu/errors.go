package gpu

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidState  = errors.New("graphics context used out of order")
	ErrNotRenderable = errors.New("graphics context is not renderable")
)

// DeviceInitError reports a failure creating the device, swap chain or
// render targets.
type DeviceInitError struct {
	Op  string
	Err error
}

func (e *DeviceInitError) Error() string {
	return fmt.Sprintf("device init: %s: %v", e.Op, e.Err)
}

func (e *DeviceInitError) Unwrap() error { return e.Err }

// ResourceAllocError reports a failed GPU buffer allocation.
type ResourceAllocError struct {
	Resource string
	Size     uint64
	Err      error
}

func (e *ResourceAllocError) Error() string {
	return fmt.Sprintf("allocate %s (%d bytes): %v", e.Resource, e.Size, e.Err)
}

func (e *ResourceAllocError) Unwrap() error { return e.Err }

// ShaderCompileError reports a shader program that failed to compile or
// could not be turned into a pipeline.
type ShaderCompileError struct {
	Stage string
	Err   error
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("shader %s: %v", e.Stage, e.Err)
}

func (e *ShaderCompileError) Unwrap() error { return e.Err }
