// terraintool generates and renders terrain without opening a window.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/Faultbox/isoterrain/internal/config"
	"github.com/Faultbox/isoterrain/internal/engine/debug"
	"github.com/Faultbox/isoterrain/internal/logger"
	"github.com/Faultbox/isoterrain/internal/session"
	"github.com/Faultbox/isoterrain/pkg/terrain"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "render":
		err = cmdRender(args)
	case "dump":
		err = cmdDump(args)
	case "stats":
		err = cmdStats(args)
	case "init-config":
		err = cmdInitConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`terraintool - isometric terrain generator

Usage:
  terraintool <command> [options]

Commands:
  render       Render terrain to a PNG file
  dump         Print the elevation grid
  stats        Print land/water counts and elevation range
  init-config  Write the default config file

Common options:
  -config <file>   Load settings from a YAML file
  -size <n>        Terrain side length (2^k+1)
  -seed <n>        Terrain seed (0 for random)
  -algorithm <a>   diamond-square or perlin
  -debug           Log at debug level

Examples:
  terraintool render -size 257 -seed 42 -o island.png
  terraintool render -render both -shader height -zoom 12
  terraintool dump -size 9 -seed 1
  terraintool stats -size 129 -seed 42`)
}

// terrainFlags are shared by every command that generates terrain.
type terrainFlags struct {
	configPath string
	debug      bool
	size       int
	seed       int64
	algorithm  string
}

func addTerrainFlags(fs *flag.FlagSet) *terrainFlags {
	tf := &terrainFlags{}
	fs.StringVar(&tf.configPath, "config", "", "Path to config file")
	fs.BoolVar(&tf.debug, "debug", false, "Enable debug logging")
	fs.IntVar(&tf.size, "size", 0, "Terrain side length (2^k+1)")
	fs.Int64Var(&tf.seed, "seed", 0, "Terrain seed (0 for random)")
	fs.StringVar(&tf.algorithm, "algorithm", "", "Terrain algorithm")
	return tf
}

// load builds the config from defaults, the optional file and the flags,
// and initializes logging.
func (tf *terrainFlags) load() (*config.Config, error) {
	cfg := config.Default()
	if tf.configPath != "" {
		var err error
		if cfg, err = config.LoadFile(tf.configPath); err != nil {
			return nil, err
		}
	}

	if tf.size > 0 {
		cfg.Terrain.Size = tf.size
	}
	if tf.seed != 0 {
		cfg.Terrain.Seed = tf.seed
	}
	if tf.algorithm != "" {
		cfg.Terrain.Algorithm = tf.algorithm
	}
	if tf.debug {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, logger.FileConfig{Path: cfg.Logging.LogFile}, tf.debug); err != nil {
		return nil, err
	}
	return cfg, nil
}

func cmdRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	tf := addTerrainFlags(fs)
	output := fs.String("o", "terrain.png", "Output PNG path")
	width := fs.Int("width", 0, "Image width")
	height := fs.Int("height", 0, "Image height")
	zoom := fs.Int("zoom", 0, "Zoom level (10-30)")
	renderStyle := fs.String("render", "", "Render style: filled, wireframe or both")
	shaderStyle := fs.String("shader", "", "Shader style: flat, slope or height")
	overlay := fs.Bool("overlay", false, "Draw the polygon counter")
	fs.Parse(args)

	cfg, err := tf.load()
	if err != nil {
		return err
	}
	if *width > 0 {
		cfg.Graphics.Width = *width
	}
	if *height > 0 {
		cfg.Graphics.Height = *height
	}
	if *zoom > 0 {
		cfg.View.Zoom = *zoom
	}
	if *renderStyle != "" {
		cfg.View.RenderStyle = *renderStyle
	}
	if *shaderStyle != "" {
		cfg.View.ShaderStyle = *shaderStyle
	}
	if *overlay {
		cfg.View.ShowOverlay = true
	}

	s, err := session.New(cfg, cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return err
	}
	img, _ := s.Render()

	if dir := filepath.Dir(*output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	if err := debug.WritePNG(*output, img); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%dx%d, seed %d, %d polygons)\n",
		*output, img.Rect.Dx(), img.Rect.Dy(), s.Seed(), s.Frame().PolygonsDrawn)
	return nil
}

func cmdDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	tf := addTerrainFlags(fs)
	raw := fs.Bool("raw", false, "Print elevations before smoothing and water leveling")
	fs.Parse(args)

	cfg, err := tf.load()
	if err != nil {
		return err
	}

	grid, err := generate(cfg, *raw)
	if err != nil {
		return err
	}
	fmt.Print(grid.String())
	return nil
}

func cmdStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	tf := addTerrainFlags(fs)
	fs.Parse(args)

	cfg, err := tf.load()
	if err != nil {
		return err
	}

	grid, err := generate(cfg, false)
	if err != nil {
		return err
	}

	st := grid.Stats()
	total := st.Land + st.Water
	fmt.Printf("Size:      %dx%d\n", grid.Size(), grid.Size())
	fmt.Printf("Seed:      %d\n", cfg.Terrain.Seed)
	fmt.Printf("Algorithm: %s\n", cfg.Terrain.Algorithm)
	fmt.Printf("Land:      %d (%.1f%%)\n", st.Land, 100*float64(st.Land)/float64(total))
	fmt.Printf("Water:     %d (%.1f%%)\n", st.Water, 100*float64(st.Water)/float64(total))
	fmt.Printf("Elevation: %.2f .. %.2f\n", st.MinElevation, st.MaxElevation)
	return nil
}

func cmdInitConfig(args []string) error {
	fs := flag.NewFlagSet("init-config", flag.ExitOnError)
	path := fs.String("o", "", "Output path (default: user config directory)")
	force := fs.Bool("f", false, "Overwrite an existing file")
	fs.Parse(args)

	target := *path
	if target == "" {
		target = filepath.Join(config.ConfigDir(), "config.yaml")
	}
	if _, err := os.Stat(target); err == nil && !*force {
		return fmt.Errorf("%s already exists (use -f to overwrite)", target)
	}

	if err := config.Default().SaveTo(target); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", target)
	return nil
}

// generate builds the grid for cfg, optionally stopping before smoothing.
func generate(cfg *config.Config, raw bool) (*terrain.Grid, error) {
	gen, err := cfg.Generator()
	if err != nil {
		return nil, err
	}
	gen.Logger = logger.Named("terrain")

	params := terrain.Params{
		SeedElevation: cfg.Terrain.SeedElevation,
		InitialOffset: cfg.Terrain.InitialOffset,
		WaterLevel:    cfg.Terrain.WaterLevel,
		Rand:          rand.New(rand.NewSource(cfg.ResolveSeed())),
	}
	if raw {
		return gen.Raw(cfg.Terrain.Size, params)
	}
	return gen.Generate(cfg.Terrain.Size, params)
}
