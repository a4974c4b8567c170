// Package renderer presents software-rasterized frames through OpenGL.
package renderer

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/isoterrain/internal/engine/framebuffer"
	"github.com/Faultbox/isoterrain/internal/logger"
	"github.com/Faultbox/isoterrain/internal/render"
)

// Config holds renderer configuration.
type Config struct {
	Width  int // Drawable width in pixels
	Height int // Drawable height in pixels
}

// Renderer uploads frames to a GL texture and blits them to the window.
type Renderer struct {
	config Config
	fb     *framebuffer.Framebuffer
	log    *zap.Logger
}

// New creates a renderer.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	bg := render.BackgroundColor
	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1.0)

	var err error
	r.fb, err = framebuffer.New(int32(cfg.Width), int32(cfg.Height))
	if err != nil {
		return nil, fmt.Errorf("failed to create framebuffer: %w", err)
	}

	return r, nil
}

// Close releases GL resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.fb != nil {
		r.fb.Destroy()
	}
}

// Resize updates the drawable size.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Present clears the screen and draws img stretched over the drawable.
func (r *Renderer) Present(img *image.RGBA) {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if img == nil || img.Rect.Empty() {
		return
	}
	r.fb.Upload(img)
	r.fb.BlitToScreen(int32(r.config.Width), int32(r.config.Height))
}
