package flycam

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

type modeChange struct {
	mode  glfw.InputMode
	value int
}

type fakePointer struct {
	width, height int
	modes         []modeChange
	warps         [][2]float64
}

func newFakePointer(w, h int) *fakePointer {
	return &fakePointer{width: w, height: h}
}

func (p *fakePointer) SetInputMode(mode glfw.InputMode, value int) {
	p.modes = append(p.modes, modeChange{mode, value})
}

func (p *fakePointer) GetSize() (int, int) { return p.width, p.height }

func (p *fakePointer) SetCursorPos(x, y float64) {
	p.warps = append(p.warps, [2]float64{x, y})
}

func TestCaptureManager_EnableTwiceHidesOnce(t *testing.T) {
	p := newFakePointer(800, 600)
	m := NewCaptureManager(p, nil)

	m.SetCapture(true)
	m.SetCapture(true)

	assert.True(t, m.Captured())
	assert.Equal(t, []modeChange{{glfw.CursorMode, glfw.CursorDisabled}}, p.modes)
	assert.Equal(t, [][2]float64{{400, 300}}, p.warps)
}

func TestCaptureManager_DisableRestoresCursor(t *testing.T) {
	p := newFakePointer(800, 600)
	m := NewCaptureManager(p, NewNopLogger())

	m.SetCapture(false)
	assert.Empty(t, p.modes, "already released")

	m.SetCapture(true)
	m.SetCapture(false)

	assert.False(t, m.Captured())
	assert.Equal(t, []modeChange{
		{glfw.CursorMode, glfw.CursorDisabled},
		{glfw.CursorMode, glfw.CursorNormal},
	}, p.modes)
}

func TestCaptureManager_Toggle(t *testing.T) {
	m := NewCaptureManager(newFakePointer(640, 480), nil)

	m.Toggle()
	assert.True(t, m.Captured())
	m.Toggle()
	assert.False(t, m.Captured())
}

func TestCaptureManager_RecenterOnlyWhileCaptured(t *testing.T) {
	p := newFakePointer(801, 601)
	m := NewCaptureManager(p, nil)

	m.Recenter()
	assert.Empty(t, p.warps)

	m.SetCapture(true)
	m.Recenter()
	assert.Equal(t, [][2]float64{{400, 300}, {400, 300}}, p.warps)

	x, y := m.Center()
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 300.0, y)
}
