package flycam

import "github.com/go-gl/glfw/v3.3/glfw"

// Pointer is the slice of a platform window the capture manager drives.
// *glfw.Window satisfies it.
type Pointer interface {
	SetInputMode(mode glfw.InputMode, value int)
	GetSize() (width, height int)
	SetCursorPos(x, y float64)
}

// CaptureManager hides and confines the pointer while captured so that
// pointer motion can be read as relative look input.
type CaptureManager struct {
	pointer  Pointer
	logger   Logger
	captured bool
}

func NewCaptureManager(p Pointer, logger Logger) *CaptureManager {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &CaptureManager{pointer: p, logger: logger}
}

func (m *CaptureManager) Captured() bool { return m.captured }

// SetCapture is a no-op when the requested state is already active.
func (m *CaptureManager) SetCapture(enable bool) {
	if enable == m.captured {
		return
	}
	m.captured = enable
	if enable {
		m.pointer.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		m.Recenter()
		m.logger.Debugf("pointer captured")
		return
	}
	m.pointer.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	m.logger.Debugf("pointer released")
}

func (m *CaptureManager) Toggle() {
	m.SetCapture(!m.captured)
}

// Center returns the client-area centre in window coordinates.
func (m *CaptureManager) Center() (x, y float64) {
	w, h := m.pointer.GetSize()
	return float64(w / 2), float64(h / 2)
}

// Recenter warps the pointer back to the centre. Only meaningful while captured.
func (m *CaptureManager) Recenter() {
	if !m.captured {
		return
	}
	m.pointer.SetCursorPos(m.Center())
}
