package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/isoterrain/internal/config"
	"github.com/Faultbox/isoterrain/internal/render"
)

func smallConfig() *config.Config {
	cfg := config.Default()
	cfg.Terrain.Size = 17
	cfg.Terrain.Seed = 7
	cfg.View.Zoom = 10
	return cfg
}

func TestNewAppliesConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.View.RenderStyle = "both"
	cfg.View.ShaderStyle = "height"
	cfg.View.ShowOverlay = true

	s, err := New(cfg, 320, 240)
	require.NoError(t, err)

	assert.Equal(t, int64(7), s.Seed())
	assert.Equal(t, 17, s.Grid().Size())

	v := s.Viewport().View()
	assert.Equal(t, 10, v.Zoom)
	assert.Equal(t, render.Both, v.RenderStyle)
	assert.Equal(t, render.Height, v.ShaderStyle)
	assert.True(t, v.ShowOverlay)
	assert.Equal(t, 320, v.CanvasWidth)
	assert.Equal(t, 240, v.CanvasHeight)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Terrain.Size = 18

	_, err := New(cfg, 320, 240)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig), "got %v", err)
}

func TestNewResolvesZeroSeed(t *testing.T) {
	cfg := smallConfig()
	cfg.Terrain.Seed = 0

	s, err := New(cfg, 64, 64)
	require.NoError(t, err)
	assert.NotZero(t, s.Seed())
	assert.Equal(t, s.Seed(), cfg.Terrain.Seed)
}

func TestRenderCachesUntilViewChanges(t *testing.T) {
	s, err := New(smallConfig(), 320, 240)
	require.NoError(t, err)

	img, redrawn := s.Render()
	require.True(t, redrawn)
	require.NotNil(t, img)
	assert.Equal(t, 320, img.Rect.Dx())
	assert.Equal(t, 240, img.Rect.Dy())
	assert.Positive(t, s.Frame().PolygonsDrawn)

	_, redrawn = s.Render()
	assert.False(t, redrawn, "unchanged view should reuse the last frame")

	s.Viewport().Zoom(1)
	_, redrawn = s.Render()
	assert.True(t, redrawn)
	assert.Equal(t, 11, s.Viewport().View().Zoom)
}

func TestRegenerate(t *testing.T) {
	s, err := New(smallConfig(), 320, 240)
	require.NoError(t, err)
	first := s.Grid().String()

	s.Render()
	require.NoError(t, s.Regenerate(8))
	assert.Equal(t, int64(8), s.Seed())
	assert.NotEqual(t, first, s.Grid().String())

	_, redrawn := s.Render()
	assert.True(t, redrawn, "new terrain must be rendered")

	require.NoError(t, s.Regenerate(7))
	assert.Equal(t, first, s.Grid().String(), "same seed gives same terrain")
}
