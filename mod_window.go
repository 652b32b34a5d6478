package flycam

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type WindowState struct {
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string
}

// Surface returns the native handle the GPU backend renders into.
func (s *WindowState) Surface() *glfw.Window { return s.windowGlfw }

func createWindowState(windowWidth int, windowHeight int, windowTitle string) (*WindowState, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	return &WindowState{
		windowGlfw:   win,
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		windowTitle:  windowTitle,
	}, nil
}

func (s *WindowState) destroy() {
	s.windowGlfw.Destroy()
	glfw.Terminate()
}

// WindowModule opens the fixed-size platform window and routes its events
// into the application state.
type WindowModule struct{}

func (m WindowModule) Install(app *App) error {
	state := app.state
	if state.Window != nil {
		return fmt.Errorf("window already created")
	}
	cfg := state.Config.Window

	ws, err := createWindowState(cfg.Width, cfg.Height, cfg.Title)
	if err != nil {
		return err
	}
	state.Window = ws
	state.Capture = NewCaptureManager(ws.windowGlfw, state.Logger)
	app.AddCleanup(ws.destroy)

	bindWindowEvents(ws.windowGlfw, state)
	app.UseSystem(System(pollEventsSystem).InStage(Prelude))

	state.Logger.Infof("window %dx%d %q", cfg.Width, cfg.Height, cfg.Title)
	return nil
}

func bindWindowEvents(win *glfw.Window, state *ApplicationState) {
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		k := KeyFromGlfw(key)
		switch action {
		case glfw.Press:
			state.OnKeyDown(k)
		case glfw.Release:
			state.OnKeyUp(k)
		}
	})
	win.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		state.OnMouseMove(xpos, ypos)
	})
	win.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused {
			state.OnFocusLost()
		}
	})
	win.SetCloseCallback(func(w *glfw.Window) {
		state.RequestQuit()
	})
}

func pollEventsSystem(state *ApplicationState) error {
	glfw.PollEvents()
	if state.Window.windowGlfw.ShouldClose() {
		state.RequestQuit()
	}
	return nil
}
