package flycam

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gekko3d/flycam/render/core"
	"github.com/gekko3d/flycam/render/gpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
)

// ConfigEnv names the environment variable holding an optional TOML config path.
const ConfigEnv = "FLYCAM_CONFIG"

type Config struct {
	Window     WindowConfig     `toml:"window"`
	Camera     CameraConfig     `toml:"camera"`
	Projection ProjectionConfig `toml:"projection"`
	Render     RenderConfig     `toml:"render"`
	Input      InputConfig      `toml:"input"`
	Log        LogConfig        `toml:"log"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type CameraConfig struct {
	Position            [3]float32 `toml:"position"`
	MoveSpeed           float32    `toml:"move_speed"`
	RotationSensitivity float32    `toml:"rotation_sensitivity"`
	PitchMargin         float32    `toml:"pitch_margin"`
}

type ProjectionConfig struct {
	FovDegrees float32 `toml:"fov_degrees"`
	Near       float32 `toml:"near"`
	Far        float32 `toml:"far"`
}

type RenderConfig struct {
	// CSS color name, e.g. "white"
	ClearColor string `toml:"clear_color"`
	VSync      bool   `toml:"vsync"`
}

type InputConfig struct {
	MouseSensitivity float64 `toml:"mouse_sensitivity"`
	CaptureKey       string  `toml:"capture_key"`
	CaptureOnStart   bool    `toml:"capture_on_start"`
}

type LogConfig struct {
	Debug  bool   `toml:"debug"`
	Prefix string `toml:"prefix"`
}

func DefaultConfig() Config {
	cam := core.DefaultCameraOptions()
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "3D Game (Press ESC to toggle mouse capture)",
		},
		Camera: CameraConfig{
			Position:            cam.Position,
			MoveSpeed:           cam.MoveSpeed,
			RotationSensitivity: cam.RotationSensitivity,
			PitchMargin:         cam.PitchMargin,
		},
		Projection: ProjectionConfig{
			FovDegrees: 45,
			Near:       0.01,
			Far:        100,
		},
		Render: RenderConfig{
			ClearColor: "white",
			VSync:      true,
		},
		Input: InputConfig{
			MouseSensitivity: 0.005,
			CaptureKey:       "escape",
			CaptureOnStart:   true,
		},
		Log: LogConfig{
			Prefix: "flycam",
		},
	}
}

// LoadConfig reads a TOML file over the defaults. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("config %s: %s", path, strict.String())
		}
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Projection.FovDegrees <= 0 || c.Projection.FovDegrees >= 180 {
		errs = append(errs, fmt.Errorf("fov_degrees must be in (0, 180), got %g", c.Projection.FovDegrees))
	}
	if c.Projection.Near <= 0 || c.Projection.Near >= c.Projection.Far {
		errs = append(errs, fmt.Errorf("need 0 < near < far, got near=%g far=%g", c.Projection.Near, c.Projection.Far))
	}
	if c.Camera.PitchMargin <= 0 || c.Camera.PitchMargin >= 1.5 {
		errs = append(errs, fmt.Errorf("pitch_margin must be in (0, 1.5), got %g", c.Camera.PitchMargin))
	}
	if _, err := c.ClearColorRGBA(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.CaptureKey(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c Config) CameraOptions() core.CameraOptions {
	return core.CameraOptions{
		Position:            mgl32.Vec3(c.Camera.Position),
		MoveSpeed:           c.Camera.MoveSpeed,
		RotationSensitivity: c.Camera.RotationSensitivity,
		PitchMargin:         c.Camera.PitchMargin,
	}
}

func (c Config) ProjectionParams() gpu.Projection {
	return gpu.Projection{
		FovY: mgl32.DegToRad(c.Projection.FovDegrees),
		Near: c.Projection.Near,
		Far:  c.Projection.Far,
	}
}

func (c Config) ClearColorRGBA() ([4]float64, error) {
	rgba, ok := colornames.Map[strings.ToLower(strings.TrimSpace(c.Render.ClearColor))]
	if !ok {
		return [4]float64{}, fmt.Errorf("unknown clear_color %q", c.Render.ClearColor)
	}
	return [4]float64{
		float64(rgba.R) / 255,
		float64(rgba.G) / 255,
		float64(rgba.B) / 255,
		float64(rgba.A) / 255,
	}, nil
}

func (c Config) CaptureKey() (Key, error) {
	k, ok := KeyByName(c.Input.CaptureKey)
	if !ok {
		return KeyUnknown, fmt.Errorf("unknown capture_key %q", c.Input.CaptureKey)
	}
	return k, nil
}
