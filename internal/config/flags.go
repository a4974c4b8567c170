package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging and the polygon overlay")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagSize       = flag.Int("size", 0, "Terrain side length (2^k+1)")
	flagSeed       = flag.Int64("seed", 0, "Terrain seed (0 for random)")
	flagAlgorithm  = flag.String("algorithm", "", "Terrain algorithm: diamond-square or perlin")
	flagRender     = flag.String("render", "", "Render style: filled, wireframe or both")
	flagShader     = flag.String("shader", "", "Shader style: flat, slope or height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.View.ShowOverlay = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagSize > 0 {
		cfg.Terrain.Size = *flagSize
	}
	if *flagSeed != 0 {
		cfg.Terrain.Seed = *flagSeed
	}
	if *flagAlgorithm != "" {
		cfg.Terrain.Algorithm = *flagAlgorithm
	}
	if *flagRender != "" {
		cfg.View.RenderStyle = *flagRender
	}
	if *flagShader != "" {
		cfg.View.ShaderStyle = *flagShader
	}
}
