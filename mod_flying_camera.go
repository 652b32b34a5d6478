package flycam

// FlyingCameraModule moves the camera from held keys once per frame.
// Movement is per frame, not per second: a held key advances the camera by
// the configured move speed every tick.
type FlyingCameraModule struct{}

func (m FlyingCameraModule) Install(app *App) error {
	app.UseSystem(System(flyingCameraSystem).InStage(Update))
	return nil
}

func flyingCameraSystem(state *ApplicationState) error {
	forward, right, up := state.Input.Axes()
	if forward == 0 && right == 0 && up == 0 {
		return nil
	}
	state.Camera.Update(forward, right, up, 0, 0)
	return nil
}
