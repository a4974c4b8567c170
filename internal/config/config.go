// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/isoterrain/internal/render"
	"github.com/Faultbox/isoterrain/internal/viewport"
	"github.com/Faultbox/isoterrain/pkg/terrain"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	View     ViewConfig     `yaml:"view"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// TerrainConfig holds generation settings.
type TerrainConfig struct {
	Size           int     `yaml:"size"` // Side length, must be 2^k+1
	Seed           int64   `yaml:"seed"` // 0 picks a seed at startup
	SeedElevation  float32 `yaml:"seed_elevation"`
	InitialOffset  float32 `yaml:"initial_offset"`
	WaterLevel     float32 `yaml:"water_level"`
	Algorithm      string  `yaml:"algorithm"`
	Rounds         int     `yaml:"rounds"`
	BlurIterations int     `yaml:"blur_iterations"`
}

// ViewConfig holds the initial view selection.
type ViewConfig struct {
	RenderStyle string `yaml:"render_style"`
	ShaderStyle string `yaml:"shader_style"`
	Zoom        int    `yaml:"zoom"`
	ShowOverlay bool   `yaml:"show_overlay"`
}

// OutputConfig holds file output settings.
type OutputConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1800,
			Height:     1000,
			Fullscreen: false,
			VSync:      true,
		},
		Terrain: TerrainConfig{
			Size:           129,
			Seed:           0,
			SeedElevation:  terrain.DefaultSeedElevation,
			InitialOffset:  terrain.DefaultInitialOffset,
			WaterLevel:     terrain.DefaultWaterLevel,
			Algorithm:      terrain.DiamondSquare.String(),
			Rounds:         2,
			BlurIterations: 1,
		},
		View: ViewConfig{
			RenderStyle: render.DefaultRenderStyle.String(),
			ShaderStyle: render.DefaultShaderStyle.String(),
			Zoom:        render.DefaultZoom,
			ShowOverlay: false,
		},
		Output: OutputConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks that the settings can be used to generate and show terrain.
func (c *Config) Validate() error {
	if !terrain.ValidSize(c.Terrain.Size) {
		return fmt.Errorf("%w: terrain size %d is not 2^k+1 with k >= 1", ErrInvalidConfig, c.Terrain.Size)
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidConfig, c.Graphics.Width, c.Graphics.Height)
	}
	if c.Terrain.Rounds < 0 || c.Terrain.BlurIterations < 0 {
		return fmt.Errorf("%w: negative smoothing rounds", ErrInvalidConfig)
	}
	if c.View.Zoom < viewport.MinZoom || c.View.Zoom > viewport.MaxZoom {
		return fmt.Errorf("%w: zoom %d outside [%d, %d]", ErrInvalidConfig, c.View.Zoom, viewport.MinZoom, viewport.MaxZoom)
	}
	if _, err := terrain.ParseAlgorithm(c.Terrain.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := render.ParseRenderStyle(c.View.RenderStyle); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := render.ParseShaderStyle(c.View.ShaderStyle); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Generator builds a terrain generator from the terrain settings.
// Call Validate first.
func (c *Config) Generator() (*terrain.Generator, error) {
	algo, err := terrain.ParseAlgorithm(c.Terrain.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &terrain.Generator{
		Algorithm:      algo,
		Rounds:         c.Terrain.Rounds,
		BlurIterations: c.Terrain.BlurIterations,
	}, nil
}

// Styles returns the configured render and shader styles.
func (c *Config) Styles() (render.RenderStyle, render.ShaderStyle, error) {
	rs, err := render.ParseRenderStyle(c.View.RenderStyle)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	ss, err := render.ParseShaderStyle(c.View.ShaderStyle)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return rs, ss, nil
}
