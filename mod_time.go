package flycam

import (
	"time"
)

type Time struct {
	Time  time.Time
	Dt    time.Duration
	Frame uint64
}

type TimeModule struct {
	// Now defaults to time.Now.
	Now func() time.Time
}

func (mod TimeModule) Install(app *App) error {
	now := mod.Now
	if now == nil {
		now = time.Now
	}
	app.state.Time = &Time{Time: now()}
	app.UseSystem(System(func(state *ApplicationState) error {
		t := now()
		state.Time.Dt = t.Sub(state.Time.Time)
		state.Time.Time = t
		state.Time.Frame++
		return nil
	}).InStage(Prelude))
	return nil
}

func (s *ApplicationState) frameDelta() time.Duration {
	if s.Time == nil {
		return 0
	}
	return s.Time.Dt
}
