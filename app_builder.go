package flycam

import (
	"fmt"

	"github.com/gekko3d/flycam/render/core"
	"github.com/google/uuid"
)

type Module interface {
	Install(app *App) error
}

type AppBuilder struct {
	config  Config
	logger  Logger
	hook    UpdateHook
	modules []Module
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{config: DefaultConfig()}
}

func (b *AppBuilder) UseConfig(cfg Config) *AppBuilder {
	b.config = cfg
	return b
}

// UseLogger overrides the logger built from the [log] config section.
func (b *AppBuilder) UseLogger(l Logger) *AppBuilder {
	b.logger = l
	return b
}

func (b *AppBuilder) UseUpdateHook(hook UpdateHook) *AppBuilder {
	b.hook = hook
	return b
}

func (b *AppBuilder) UseModule(modules ...Module) *AppBuilder {
	b.modules = append(b.modules, modules...)
	return b
}

// Build validates the config and installs modules in order. If a module
// fails, whatever earlier modules acquired is released before returning.
func (b *AppBuilder) Build() (*App, error) {
	if err := b.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	captureKey, err := b.config.CaptureKey()
	if err != nil {
		return nil, err
	}

	runID := uuid.New()
	logger := b.logger
	if logger == nil {
		logger = NewDefaultLogger(b.config.Log.Prefix, b.config.Log.Debug).With("run", runID.String())
	}

	state := &ApplicationState{
		Config:           b.config,
		Logger:           logger,
		RunID:            runID,
		Input:            NewInputState(),
		Camera:           core.NewCamera(b.config.CameraOptions()),
		UpdateHook:       b.hook,
		captureKey:       captureKey,
		mouseSensitivity: b.config.Input.MouseSensitivity,
	}
	app := newApp(state)
	app.UseSystem(System(updateHookSystem).InStage(PostUpdate))

	for _, module := range b.modules {
		if err := module.Install(app); err != nil {
			app.Shutdown()
			return nil, fmt.Errorf("install %T: %w", module, err)
		}
	}
	logger.Debugf("installed %d modules", len(b.modules))

	return app, nil
}

func updateHookSystem(state *ApplicationState) error {
	if state.UpdateHook == nil {
		return nil
	}
	state.UpdateHook(state, state.frameDelta())
	return nil
}
