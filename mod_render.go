package flycam

import (
	"errors"
	"fmt"

	"github.com/gekko3d/flycam/render/backend"
	"github.com/gekko3d/flycam/render/core"
	"github.com/gekko3d/flycam/render/gpu"
)

var ErrNoWindow = errors.New("render module requires a window")

// RendererName identifies a concrete renderer module.
type RendererName string

const RendererWGPU RendererName = "wgpu"

// RenderModule brings up the graphics context on the window surface and
// draws the scene once per frame.
type RenderModule struct {
	// Driver defaults to the wgpu backend.
	Driver gpu.Driver
	// Vertices and Indices default to core.CubeScene.
	Vertices []core.Vertex
	Indices  []uint32
}

func (m RenderModule) Install(app *App) error {
	if err := app.ensureSingleRenderer(RendererWGPU); err != nil {
		return err
	}
	state := app.state
	if state.Window == nil {
		return ErrNoWindow
	}

	clearColor, err := state.Config.ClearColorRGBA()
	if err != nil {
		return err
	}
	driver := m.Driver
	if driver == nil {
		driver = backend.New()
	}
	ctx := gpu.NewContext(driver,
		gpu.WithProjection(state.Config.ProjectionParams()),
		gpu.WithClearColor(clearColor),
		gpu.WithVSync(state.Config.Render.VSync),
		gpu.WithLogger(state.Logger),
	)

	vertices, indices := m.Vertices, m.Indices
	if vertices == nil {
		vertices, indices = core.CubeScene()
	}

	ws := state.Window
	if err := ctx.Initialize(ws.windowGlfw, ws.WindowWidth, ws.WindowHeight, vertices, indices); err != nil {
		return fmt.Errorf("graphics init: %w", err)
	}
	state.Renderer = ctx
	app.AddCleanup(ctx.Cleanup)
	app.UseSystem(System(renderSystem).InStage(Render))

	state.Logger.Infof("renderer ready: %d vertices, %d indices", len(vertices), len(indices))
	return nil
}

func renderSystem(state *ApplicationState) error {
	if state.Renderer == nil {
		return nil
	}
	return state.Renderer.Render(state.Camera)
}
