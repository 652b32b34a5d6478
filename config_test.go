package flycam

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flycam.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Contains(t, cfg.Window.Title, "ESC")
	assert.Equal(t, float32(0.05), cfg.Camera.MoveSpeed)
	assert.Equal(t, float32(2.0), cfg.Camera.RotationSensitivity)
	assert.True(t, cfg.Render.VSync)

	rgba, err := cfg.ClearColorRGBA()
	require.NoError(t, err)
	assert.Equal(t, [4]float64{1, 1, 1, 1}, rgba)

	key, err := cfg.CaptureKey()
	require.NoError(t, err)
	assert.Equal(t, KeyEscape, key)

	p := cfg.ProjectionParams()
	assert.InDelta(t, mgl32.DegToRad(45), p.FovY, 1e-6)
}

func TestLoadConfig_EmptyPathIsDefault(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeConfig(t, `
[window]
width = 1024

[camera]
move_speed = 0.1
position = [0.0, 1.0, -2.0]

[render]
clear_color = "Black"
vsync = false

[input]
capture_key = "tab"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height, "untouched keys keep defaults")
	assert.Equal(t, float32(0.1), cfg.Camera.MoveSpeed)
	assert.Equal(t, mgl32.Vec3{0, 1, -2}, cfg.CameraOptions().Position)
	assert.False(t, cfg.Render.VSync)

	rgba, err := cfg.ClearColorRGBA()
	require.NoError(t, err)
	assert.Equal(t, [4]float64{0, 0, 0, 1}, rgba)

	key, err := cfg.CaptureKey()
	require.NoError(t, err)
	assert.Equal(t, KeyTab, key)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "[window]\ndepth = 3\n"},
		{"bad size", "[window]\nwidth = 0\n"},
		{"near past far", "[projection]\nnear = 10.0\nfar = 1.0\n"},
		{"bad fov", "[projection]\nfov_degrees = 180.0\n"},
		{"bad color", "[render]\nclear_color = \"not-a-color\"\n"},
		{"bad key", "[input]\ncapture_key = \"hyper\"\n"},
		{"syntax", "[window\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
