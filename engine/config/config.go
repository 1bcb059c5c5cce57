// Package config loads the application configuration from YAML, filling in
// defaults for anything the file leaves unset.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WindowConfig holds windowing settings.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// RendererConfig holds renderer settings.
type RendererConfig struct {
	// VSync caps presentation to the display refresh rate. Defaults to true.
	VSync bool `yaml:"vsync"`

	// ForceSoftware forces the CPU fallback adapter instead of a hardware GPU.
	ForceSoftware bool `yaml:"force_software"`
}

// CameraConfig holds camera and controller settings.
type CameraConfig struct {
	// Speed is the movement speed in world units per second.
	Speed float32 `yaml:"speed"`

	// Sensitivity is the mouse-look sensitivity factor.
	Sensitivity float32 `yaml:"sensitivity"`

	// FovYDegrees is the vertical field of view in degrees.
	FovYDegrees float32 `yaml:"fov_y_degrees"`

	// Near and Far are the clipping plane distances.
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

// GridConfig holds the instanced model grid settings.
type GridConfig struct {
	// CountPerRow is the number of instances per grid row.
	CountPerRow int `yaml:"count_per_row"`

	// Spacing is the distance between neighboring instances in world units.
	Spacing float32 `yaml:"spacing"`
}

// ModelConfig holds the model and debug material asset paths.
type ModelConfig struct {
	// Path is the OBJ file to load and instance.
	Path string `yaml:"path"`

	// DebugDiffuse and DebugNormal are the texture files of the debug
	// substitution material. Both must be set for the material to load.
	DebugDiffuse string `yaml:"debug_diffuse"`
	DebugNormal  string `yaml:"debug_normal"`
}

// Config is the top-level application configuration.
type Config struct {
	Window    WindowConfig   `yaml:"window"`
	Renderer  RendererConfig `yaml:"renderer"`
	Camera    CameraConfig   `yaml:"camera"`
	Grid      GridConfig     `yaml:"grid"`
	Model     ModelConfig    `yaml:"model"`
	Profiling bool           `yaml:"profiling"`
}

// Default returns the configuration used when no file is provided.
//
// Returns:
//   - *Config: the default configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "prism",
			Width:  1280,
			Height: 720,
		},
		Renderer: RendererConfig{
			VSync: true,
		},
		Camera: CameraConfig{
			Speed:       4.0,
			Sensitivity: 0.4,
			FovYDegrees: 45.0,
			Near:        0.1,
			Far:         100.0,
		},
		Grid: GridConfig{
			CountPerRow: 10,
			Spacing:     3.0,
		},
		Model: ModelConfig{
			Path:         "assets/cube.obj",
			DebugDiffuse: "assets/cobble-diffuse.png",
			DebugNormal:  "assets/cobble-normal.png",
		},
	}
}

// Load reads a YAML configuration file, layering it over the defaults.
// An empty path returns the defaults unchanged.
//
// Parameters:
//   - path: the YAML file to read, or empty for defaults
//
// Returns:
//   - *Config: the loaded configuration
//   - error: error if the file cannot be read or parsed
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration data, layering it over the defaults.
//
// Parameters:
//   - data: raw YAML contents
//
// Returns:
//   - *Config: the parsed configuration
//   - error: error if the data cannot be parsed or is invalid
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.FovYDegrees <= 0 || c.Camera.FovYDegrees >= 180 {
		return fmt.Errorf("camera fov must be in (0, 180) degrees, got %g", c.Camera.FovYDegrees)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera planes must satisfy 0 < near < far, got near=%g far=%g", c.Camera.Near, c.Camera.Far)
	}
	if c.Grid.CountPerRow < 1 {
		return fmt.Errorf("grid count_per_row must be at least 1, got %d", c.Grid.CountPerRow)
	}
	if c.Model.Path == "" {
		return fmt.Errorf("model path must be set")
	}
	return nil
}
