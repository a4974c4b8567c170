// Package session ties a generated terrain grid to a viewport and a
// rasterizer. Both the interactive viewer and the command-line tool drive
// rendering through it.
package session

import (
	"fmt"
	"image"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/isoterrain/internal/config"
	"github.com/Faultbox/isoterrain/internal/logger"
	"github.com/Faultbox/isoterrain/internal/render"
	"github.com/Faultbox/isoterrain/internal/viewport"
	"github.com/Faultbox/isoterrain/pkg/terrain"
)

// Session owns one terrain and the view onto it. It is not safe for
// concurrent use.
type Session struct {
	terrain config.TerrainConfig
	gen     *terrain.Generator
	seed    int64
	grid    *terrain.Grid

	view   *viewport.Controller
	raster *render.Rasterizer
	frame  render.Frame
	drawn  bool // False until the current grid has been rendered

	log *zap.Logger
}

// New generates terrain from cfg and prepares a width x height view onto
// it. A zero seed in cfg is resolved to a time-based one.
func New(cfg *config.Config, width, height int) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gen, err := cfg.Generator()
	if err != nil {
		return nil, err
	}
	rs, ss, err := cfg.Styles()
	if err != nil {
		return nil, err
	}

	s := &Session{
		terrain: cfg.Terrain,
		gen:     gen,
		log:     logger.Named("session"),
	}
	gen.Logger = logger.Named("terrain")

	if err := s.Regenerate(cfg.ResolveSeed()); err != nil {
		return nil, err
	}

	s.view = viewport.New(cfg.Terrain.Size, width, height)
	s.view.SetZoom(cfg.View.Zoom)
	s.view.Recenter(cfg.Terrain.Size)
	s.view.SetRenderStyle(rs)
	s.view.SetShaderStyle(ss)
	s.view.SetOverlay(cfg.View.ShowOverlay)
	s.raster = render.NewRasterizer(width, height)

	return s, nil
}

// Regenerate replaces the terrain with one generated from seed. The view
// keeps its pan and zoom.
func (s *Session) Regenerate(seed int64) error {
	params := terrain.Params{
		SeedElevation: s.terrain.SeedElevation,
		InitialOffset: s.terrain.InitialOffset,
		WaterLevel:    s.terrain.WaterLevel,
		Rand:          rand.New(rand.NewSource(seed)),
	}
	grid, err := s.gen.Generate(s.terrain.Size, params)
	if err != nil {
		return fmt.Errorf("generating terrain: %w", err)
	}

	s.grid = grid
	s.seed = seed
	s.drawn = false

	stats := grid.Stats()
	s.log.Info("terrain ready",
		zap.Int64("seed", seed),
		zap.Int("size", grid.Size()),
		zap.Int("land", stats.Land),
		zap.Int("water", stats.Water),
	)
	return nil
}

// Grid returns the current terrain.
func (s *Session) Grid() *terrain.Grid {
	return s.grid
}

// Seed returns the seed the current terrain was generated from.
func (s *Session) Seed() int64 {
	return s.seed
}

// Viewport returns the view controller for input handling.
func (s *Session) Viewport() *viewport.Controller {
	return s.view
}

// Frame returns the polygons of the most recent render.
func (s *Session) Frame() render.Frame {
	return s.frame
}

// Render returns the current image, rebuilding it only when the view or
// the terrain changed since the last call. redrawn reports whether a new
// frame was produced.
func (s *Session) Render() (img *image.RGBA, redrawn bool) {
	if s.drawn && !s.view.Dirty() {
		return s.raster.Image(), false
	}

	start := time.Now()
	s.frame = render.BuildFrame(s.grid, s.view.Projector(), s.view.View())
	img = s.raster.Draw(s.frame)
	s.view.ClearDirty()
	s.drawn = true

	s.log.Debug("frame rendered",
		zap.Int("polygons", s.frame.PolygonsDrawn),
		zap.Duration("elapsed", time.Since(start)),
	)
	return img, true
}
