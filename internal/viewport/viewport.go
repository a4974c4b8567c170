// Package viewport owns pan, zoom and style selection for the terrain view
// and turns raw pointer and wheel input into projector parameters.
package viewport

import (
	"github.com/Faultbox/isoterrain/internal/render"
	"github.com/Faultbox/isoterrain/pkg/iso"
)

// Zoom constraints.
const (
	MinZoom         = 10
	MaxZoom         = 30
	MaxZoomPerEvent = 2
)

// Controller holds the mutable view state between frames.
type Controller struct {
	view      render.ViewState
	projector iso.Projector

	// Drag anchor: pointer position minus pan at drag start.
	dragging bool
	anchorX  int
	anchorY  int

	dirty bool
}

// New creates a controller for a grid of the given side length shown on a
// width x height canvas. The view starts at the default zoom and styles,
// panned so the middle of the grid sits at the canvas center.
func New(gridSize, width, height int) *Controller {
	c := &Controller{
		view: render.ViewState{
			Zoom:         render.DefaultZoom,
			RenderStyle:  render.DefaultRenderStyle,
			ShaderStyle:  render.DefaultShaderStyle,
			CanvasWidth:  width,
			CanvasHeight: height,
		},
	}
	c.center(gridSize)
	c.rebuild()
	return c
}

// center pans so the grid midpoint at zero elevation maps to the canvas
// center. The projector already places the model origin there; the grid
// midpoint projects (gridSize-1)/2 * zoom pixels below it.
func (c *Controller) center(gridSize int) {
	mid := float32(gridSize-1) / 2
	p := iso.New(float32(c.view.Zoom), 0, 0).Project(mid, 0, mid)
	c.view.PanX = -int(p.X)
	c.view.PanY = -int(p.Y)
}

// rebuild recreates the projector from the current zoom and canvas size.
func (c *Controller) rebuild() {
	c.projector = iso.ForCanvas(c.view.Zoom, c.view.CanvasWidth, c.view.CanvasHeight)
	c.dirty = true
}

// View returns a snapshot of the current view state.
func (c *Controller) View() render.ViewState {
	return c.view
}

// Projector returns the projector for the current zoom and canvas size.
func (c *Controller) Projector() iso.Projector {
	return c.projector
}

// Dirty reports whether the view changed since the last ClearDirty.
func (c *Controller) Dirty() bool {
	return c.dirty
}

// ClearDirty marks the current view as rendered.
func (c *Controller) ClearDirty() {
	c.dirty = false
}

// SetRenderStyle selects the render style.
func (c *Controller) SetRenderStyle(s render.RenderStyle) {
	c.view.RenderStyle = s
	c.dirty = true
}

// SetShaderStyle selects the shader style.
func (c *Controller) SetShaderStyle(s render.ShaderStyle) {
	c.view.ShaderStyle = s
	c.dirty = true
}

// CycleRenderStyle advances to the next render style.
func (c *Controller) CycleRenderStyle() render.RenderStyle {
	c.SetRenderStyle(c.view.RenderStyle.Next())
	return c.view.RenderStyle
}

// CycleShaderStyle advances to the next shader style.
func (c *Controller) CycleShaderStyle() render.ShaderStyle {
	c.SetShaderStyle(c.view.ShaderStyle.Next())
	return c.view.ShaderStyle
}

// ToggleOverlay shows or hides the polygon counter.
func (c *Controller) ToggleOverlay() bool {
	c.view.ShowOverlay = !c.view.ShowOverlay
	c.dirty = true
	return c.view.ShowOverlay
}

// BeginDrag captures the pointer position relative to the current pan.
func (c *Controller) BeginDrag(px, py int) {
	c.dragging = true
	c.anchorX = px - c.view.PanX
	c.anchorY = py - c.view.PanY
}

// Drag moves the pan so the point grabbed in BeginDrag follows the pointer.
// It is ignored when no drag is in progress.
func (c *Controller) Drag(px, py int) {
	if !c.dragging {
		return
	}
	c.view.PanX = px - c.anchorX
	c.view.PanY = py - c.anchorY
	c.dirty = true
}

// EndDrag finishes the current drag.
func (c *Controller) EndDrag() {
	c.dragging = false
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// Pan adds a device-space delta to the pan offset.
func (c *Controller) Pan(dx, dy int) {
	c.view.PanX += dx
	c.view.PanY += dy
	c.dirty = true
}

// Zoom applies a wheel delta. The delta is limited to MaxZoomPerEvent in
// either direction and the resulting zoom to [MinZoom, MaxZoom].
func (c *Controller) Zoom(delta int) int {
	delta = clamp(delta, -MaxZoomPerEvent, MaxZoomPerEvent)
	c.view.Zoom = clamp(c.view.Zoom+delta, MinZoom, MaxZoom)
	c.rebuild()
	return c.view.Zoom
}

// SetZoom sets the zoom level directly, clamped to [MinZoom, MaxZoom].
func (c *Controller) SetZoom(level int) int {
	c.view.Zoom = clamp(level, MinZoom, MaxZoom)
	c.rebuild()
	return c.view.Zoom
}

// SetOverlay shows or hides the polygon counter.
func (c *Controller) SetOverlay(show bool) {
	c.view.ShowOverlay = show
	c.dirty = true
}

// Recenter pans so the middle of a gridSize grid sits at the canvas center
// at the current zoom.
func (c *Controller) Recenter(gridSize int) {
	c.center(gridSize)
	c.dirty = true
}

// Resize updates the canvas size.
func (c *Controller) Resize(width, height int) {
	c.view.CanvasWidth = width
	c.view.CanvasHeight = height
	c.rebuild()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
