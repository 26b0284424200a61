package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/prisma/engine/core"
)

type Application struct {
	Name     string `toml:"name"`
	Width    uint32 `toml:"width"`
	Height   uint32 `toml:"height"`
	LogLevel string `toml:"log_level"`
}

type Camera struct {
	// Vertical field of view in degrees.
	FOV      float32 `toml:"fov"`
	NearClip float32 `toml:"near_clip"`
	FarClip  float32 `toml:"far_clip"`
}

type Renderer struct {
	// Goroutines used per draw call for vertex evaluation. Zero means
	// one per logical CPU.
	WorkerCount int    `toml:"worker_count"`
	ShaderDir   string `toml:"shader_dir"`
}

type Config struct {
	Application Application `toml:"application"`
	Camera      Camera      `toml:"camera"`
	Renderer    Renderer    `toml:"renderer"`
}

func Default() *Config {
	return &Config{
		Application: Application{
			Name:     "prisma",
			Width:    1280,
			Height:   720,
			LogLevel: "info",
		},
		Camera: Camera{
			FOV:      45.0,
			NearClip: 0.1,
			FarClip:  1000.0,
		},
		Renderer: Renderer{
			WorkerCount: 0,
			ShaderDir:   "assets/shaders",
		},
	}
}

// Load reads the TOML config at path, falling back to defaults when the
// file does not exist. A file that exists but fails to parse is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			core.LogDebug("no config file at '%s', using defaults", path)
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// AspectRatio of the configured window.
func (c *Config) AspectRatio() float32 {
	if c.Application.Height == 0 {
		return 1.0
	}
	return float32(c.Application.Width) / float32(c.Application.Height)
}
