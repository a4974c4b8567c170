// Package app implements the interactive terrain viewer loop.
package app

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/isoterrain/internal/config"
	"github.com/Faultbox/isoterrain/internal/engine/debug"
	"github.com/Faultbox/isoterrain/internal/engine/input"
	"github.com/Faultbox/isoterrain/internal/engine/renderer"
	"github.com/Faultbox/isoterrain/internal/engine/window"
	"github.com/Faultbox/isoterrain/internal/logger"
	"github.com/Faultbox/isoterrain/internal/session"
)

// Title is the window title prefix.
const Title = "Isometric Terrain"

// Viewer is the interactive terrain viewer.
type Viewer struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	session  *session.Session
	shots    *debug.ScreenshotCapture
	log      *zap.Logger
}

// New opens the window and generates the initial terrain.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		config: cfg,
		log:    logger.Named("viewer"),
	}

	v.log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("terrain_size", cfg.Terrain.Size),
	)

	var err error
	v.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context created by the window
	dw, dh := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{Width: dw, Height: dh})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	w, h := v.window.Size()
	v.session, err = session.New(cfg, w, h)
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to create terrain: %w", err)
	}

	v.input = input.New()
	v.shots = debug.NewScreenshotCapture(cfg.Output.ScreenshotDir, "terrain")
	v.updateTitle()

	v.log.Info("viewer initialized")
	return v, nil
}

// Run processes input and presents frames until the window is closed.
func (v *Viewer) Run() error {
	v.running = true

	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting viewer loop")

	for v.running {
		if v.input.Update() {
			v.running = false
			break
		}

		for _, ev := range v.input.Events() {
			if err := v.handle(ev); err != nil {
				return err
			}
		}

		img, redrawn := v.session.Render()
		v.renderer.Present(img)
		v.window.SwapBuffers()
		if redrawn {
			v.updateTitle()
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Int("polygons", v.session.Frame().PolygonsDrawn),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handle applies one input event to the session.
func (v *Viewer) handle(ev input.Event) error {
	vp := v.session.Viewport()

	switch ev.Type {
	case input.EventWindowResize:
		w, h := v.window.Size()
		dw, dh := v.window.DrawableSize()
		vp.Resize(w, h)
		v.renderer.Resize(dw, dh)

	case input.EventMouseDown:
		if ev.Button == input.ButtonLeft {
			vp.BeginDrag(ev.MouseX, ev.MouseY)
		}

	case input.EventMouseMove:
		vp.Drag(ev.MouseX, ev.MouseY)

	case input.EventMouseUp:
		if ev.Button == input.ButtonLeft {
			vp.EndDrag()
		}

	case input.EventMouseWheel:
		zoom := vp.Zoom(ev.Wheel)
		v.log.Debug("zoom", zap.Int("level", zoom))

	case input.EventKeyDown:
		return v.perform(actionFor(ev))
	}

	return nil
}

// perform executes a key action.
func (v *Viewer) perform(a Action) error {
	vp := v.session.Viewport()

	switch a {
	case ActionQuit:
		v.running = false
	case ActionCycleRenderStyle:
		v.log.Info("render style", zap.Stringer("style", vp.CycleRenderStyle()))
	case ActionCycleShaderStyle:
		v.log.Info("shader style", zap.Stringer("style", vp.CycleShaderStyle()))
	case ActionToggleOverlay:
		vp.ToggleOverlay()
	case ActionScreenshot:
		img, _ := v.session.Render()
		path, err := v.shots.CaptureFromImage(img)
		if err != nil {
			v.log.Error("screenshot failed", zap.Error(err))
			return nil
		}
		v.log.Info("screenshot saved", zap.String("path", path))
	case ActionRegenerate:
		if err := v.session.Regenerate(rand.Int63()); err != nil {
			return fmt.Errorf("regenerating terrain: %w", err)
		}
	case ActionRecenter:
		vp.Recenter(v.session.Grid().Size())
	case ActionPanLeft:
		vp.Pan(keyPanStep, 0)
	case ActionPanRight:
		vp.Pan(-keyPanStep, 0)
	case ActionPanUp:
		vp.Pan(0, keyPanStep)
	case ActionPanDown:
		vp.Pan(0, -keyPanStep)
	case ActionZoomIn:
		vp.Zoom(1)
	case ActionZoomOut:
		vp.Zoom(-1)
	}
	return nil
}

func (v *Viewer) updateTitle() {
	view := v.session.Viewport().View()
	v.window.SetTitle(fmt.Sprintf("%s - seed %d - %s/%s - zoom %d",
		Title, v.session.Seed(), view.RenderStyle, view.ShaderStyle, view.Zoom))
}

// Close releases the window and GL resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
