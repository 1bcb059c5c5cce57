package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "prism", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.True(t, cfg.Renderer.VSync)
	assert.Equal(t, float32(4.0), cfg.Camera.Speed)
	assert.Equal(t, float32(0.4), cfg.Camera.Sensitivity)
	assert.Equal(t, 10, cfg.Grid.CountPerRow)
	assert.Equal(t, float32(3.0), cfg.Grid.Spacing)
}

func TestParseOverridesDefaults(t *testing.T) {
	data := []byte(`
window:
  title: custom
  width: 1920
  height: 1080
renderer:
  vsync: false
grid:
  count_per_row: 5
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "custom", cfg.Window.Title)
	assert.Equal(t, 1920, cfg.Window.Width)
	assert.Equal(t, 1080, cfg.Window.Height)
	assert.False(t, cfg.Renderer.VSync)
	assert.Equal(t, 5, cfg.Grid.CountPerRow)

	// Untouched sections keep their defaults.
	assert.Equal(t, float32(4.0), cfg.Camera.Speed)
	assert.Equal(t, "assets/cube.obj", cfg.Model.Path)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"zero width", "window:\n  width: 0\n"},
		{"inverted planes", "camera:\n  near: 10\n  far: 1\n"},
		{"zero grid", "grid:\n  count_per_row: 0\n"},
		{"empty model path", "model:\n  path: \"\"\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
