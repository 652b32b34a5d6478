package flycam

import "errors"

var ErrNoPointer = errors.New("input module requires a window pointer")

// InputModule applies the startup capture setting and keeps the pointer
// pinned to the client centre while captured.
type InputModule struct{}

func (m InputModule) Install(app *App) error {
	state := app.state
	if state.Capture == nil {
		return ErrNoPointer
	}
	if state.Config.Input.CaptureOnStart {
		state.Capture.SetCapture(true)
	}
	app.UseSystem(System(recenterPointerSystem).InStage(PostRender))
	app.AddCleanup(func() { state.Capture.SetCapture(false) })
	return nil
}

func recenterPointerSystem(state *ApplicationState) error {
	state.Capture.Recenter()
	return nil
}
