package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/gekko3d/flycam"
)

func init() {
	// GLFW and the surface must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "flycam:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := flycam.LoadConfig(os.Getenv(flycam.ConfigEnv))
	if err != nil {
		return err
	}

	app, err := flycam.NewAppBuilder().
		UseConfig(cfg).
		UseModule(
			flycam.TimeModule{},
			flycam.WindowModule{},
			flycam.InputModule{},
			flycam.FlyingCameraModule{},
			flycam.RenderModule{},
		).
		Build()
	if err != nil {
		return err
	}
	return app.Run()
}
