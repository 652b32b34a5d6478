package flycam

import (
	"fmt"
	"time"

	"github.com/gekko3d/flycam/render/core"
	"github.com/gekko3d/flycam/render/gpu"
	"github.com/google/uuid"
)

// Renderer draws one frame as seen by the viewer.
type Renderer interface {
	Render(viewer gpu.Viewer) error
}

// UpdateHook runs once per frame after movement has been applied.
type UpdateHook func(state *ApplicationState, dt time.Duration)

// ApplicationState is the single owner of per-run state. Window events and
// systems both mutate it from the main thread.
type ApplicationState struct {
	Config Config
	Logger Logger
	RunID  uuid.UUID

	Window   *WindowState
	Input    *InputState
	Capture  *CaptureManager
	Camera   *core.Camera
	Renderer Renderer
	Time     *Time

	UpdateHook UpdateHook

	captureKey       Key
	mouseSensitivity float64
	quit             bool
}

func (s *ApplicationState) RequestQuit() {
	if !s.quit {
		s.Logger.Infof("quit requested")
	}
	s.quit = true
}

func (s *ApplicationState) QuitRequested() bool { return s.quit }

// OnKeyDown records a key press. The capture key toggles pointer capture
// on the up-to-down transition only, so auto-repeat does not flicker it.
func (s *ApplicationState) OnKeyDown(k Key) {
	edge := s.Input.Press(k)
	if edge && k == s.captureKey && s.Capture != nil {
		s.Capture.Toggle()
		s.Logger.Debugf("capture toggled: %v", s.Capture.Captured())
	}
}

func (s *ApplicationState) OnKeyUp(k Key) {
	s.Input.Release(k)
}

// OnFocusLost drops held keys so movement does not stick after alt-tab.
func (s *ApplicationState) OnFocusLost() {
	s.Input.ReleaseAll()
}

// OnMouseMove turns the pointer offset from the client centre into a look
// rotation. Ignored while the pointer is not captured.
func (s *ApplicationState) OnMouseMove(x, y float64) {
	if s.Capture == nil || !s.Capture.Captured() {
		return
	}
	cx, cy := s.Capture.Center()
	dx := (x - cx) * s.mouseSensitivity
	dy := (y - cy) * s.mouseSensitivity
	s.Input.MouseDeltaX, s.Input.MouseDeltaY = dx, dy
	s.Camera.Update(0, 0, 0, float32(dy), float32(dx))
}

type App struct {
	state    *ApplicationState
	stages   []Stage
	systems  map[string][]SystemFn
	cleanups []func()
	renderer RendererName
	shutdown bool
}

func newApp(state *ApplicationState) *App {
	app := &App{
		state:   state,
		systems: make(map[string][]SystemFn),
	}
	for _, s := range defaultStages() {
		app.stages = append(app.stages, s)
		app.systems[s.Name] = make([]SystemFn, 0)
	}
	return app
}

func (app *App) State() *ApplicationState { return app.state }

// AddCleanup registers fn to run at shutdown. Cleanups run in reverse
// registration order.
func (app *App) AddCleanup(fn func()) *App {
	app.cleanups = append(app.cleanups, fn)
	return app
}

// Tick runs every stage once. Stages after a quit request are skipped.
func (app *App) Tick() error {
	for _, stage := range app.stages {
		for _, system := range app.systems[stage.Name] {
			if err := system(app.state); err != nil {
				return fmt.Errorf("%s: %w", stage.Name, err)
			}
		}
		if app.state.quit {
			return nil
		}
	}
	return nil
}

// Run drives frames until quit is requested or a system fails, then
// releases everything the modules acquired.
func (app *App) Run() error {
	defer app.Shutdown()

	app.Logger().Infof("running with %d stages", len(app.stages))
	for !app.state.quit {
		if err := app.Tick(); err != nil {
			app.Logger().Errorf("frame failed: %v", err)
			return err
		}
	}
	return nil
}

// Shutdown is idempotent.
func (app *App) Shutdown() {
	if app.shutdown {
		return
	}
	app.shutdown = true
	for i := len(app.cleanups) - 1; i >= 0; i-- {
		app.cleanups[i]()
	}
	app.cleanups = nil
	app.Logger().Infof("shutdown complete")
}

// ensureSingleRenderer enforces that at most one renderer is installed.
func (app *App) ensureSingleRenderer(name RendererName) error {
	if app.renderer != "" && app.renderer != name {
		app.Logger().Errorf("Multiple renderers installed: %s and %s", app.renderer, name)
		return fmt.Errorf("multiple renderers installed: %s and %s", app.renderer, name)
	}
	if app.renderer == name {
		return fmt.Errorf("renderer %s already installed", name)
	}
	app.renderer = name
	return nil
}
