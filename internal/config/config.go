package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"scene-demos/internal/colorcube"
	"scene-demos/internal/logger"
	"scene-demos/internal/physics"
	"scene-demos/internal/scene"
	"scene-demos/internal/triangle"
)

// ConfigPath is the default config file, relative to the process working directory.
const ConfigPath = "config/demos.yaml"

// Window is the size, title and frame rate of a demo window.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title,omitempty"`
	FPS    int    `yaml:"fps"`
}

// Spawner configures the falling-cubes demo.
type Spawner struct {
	Gravity     float32    `yaml:"gravity"`
	CameraSpeed float32    `yaml:"camera_speed"`
	Camera      scene.Vec3 `yaml:"camera"`
	Background  string     `yaml:"background"`
	GridVisible bool       `yaml:"grid_visible"`
	Seed        int64      `yaml:"seed,omitempty"`
}

// ColorCube configures the per-vertex color demo.
type ColorCube struct {
	File        string     `yaml:"file"`
	CameraSpeed float32    `yaml:"camera_speed"`
	Camera      scene.Vec3 `yaml:"camera"`
	Background  string     `yaml:"background"`
	Seed        int64      `yaml:"seed,omitempty"`
}

// Triangle configures the triangle demo.
type Triangle struct {
	File       string `yaml:"file"`
	Background string `yaml:"background"`
}

// Debug holds overlay toggles. Only the key legend is shown by default.
type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	ShowHelp     bool `yaml:"show_help"`
}

// Config is the full demo configuration. Persisted across runs.
type Config struct {
	Window    Window    `yaml:"window"`
	LogFile   string    `yaml:"log_file"`
	Spawner   Spawner   `yaml:"spawner"`
	ColorCube ColorCube `yaml:"colorcube"`
	Triangle  Triangle  `yaml:"triangle"`
	Debug     Debug     `yaml:"debug"`
}

// Default returns the built-in configuration: an 800x600 window at 60 FPS and the demo defaults.
func Default() Config {
	return Config{
		Window:  Window{Width: 800, Height: 600, FPS: 60},
		LogFile: logger.LogFilePath,
		Spawner: Spawner{
			Gravity:     physics.DefaultGravity,
			CameraSpeed: 0.5,
			Camera:      scene.Vec3{5, 5, 5},
			Background:  scene.CornflowerBlue.Hex(),
			GridVisible: true,
		},
		ColorCube: ColorCube{
			File:        colorcube.DefaultFile,
			CameraSpeed: 0.05,
			Camera:      scene.Vec3{0, 0, 5},
			Background:  scene.CornflowerBlue.Hex(),
		},
		Triangle: Triangle{
			File:       triangle.DefaultFile,
			Background: scene.RGB(0.39, 0.58, 0.93).Hex(),
		},
		Debug: Debug{ShowHelp: true},
	}
}

// Load reads the config at path on top of Default(). If the file is missing or invalid,
// returns Default() and does not create a file.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), nil
	}
	return c, nil
}

// Save writes c to path, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "config dir")
	}
	data, err := yaml.Marshal(&c)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "write config")
}

// Color parses a config color, falling back to def when s is empty or malformed.
func Color(s string, def scene.Color) scene.Color {
	if s == "" {
		return def
	}
	c, err := scene.ParseHexColor(s)
	if err != nil {
		return def
	}
	return c
}
