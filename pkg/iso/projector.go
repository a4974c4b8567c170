// Package iso implements the fixed isometric projection from terrain model
// space to screen space.
package iso

import (
	"github.com/Faultbox/isoterrain/pkg/math"
)

// ElevationScale converts an elevation into model Y. The sign flip makes
// higher ground draw further up the screen.
const ElevationScale float32 = -0.2

// Projector maps model coordinates (grid x, model y, grid y) to screen
// coordinates. It is immutable; build a new one when the zoom or the canvas
// size changes.
type Projector struct {
	scale      float32
	translateX float32
	translateY float32
	matrix     math.Mat4
}

// New creates a projector with scale s and screen translation (tx, ty).
func New(s, tx, ty float32) Projector {
	return Projector{
		scale:      s,
		translateX: tx,
		translateY: ty,
		matrix:     math.Isometric(s, tx, ty),
	}
}

// ForCanvas creates a projector for a zoom level that places the model
// origin at the center of a width x height canvas.
func ForCanvas(zoom, width, height int) Projector {
	return New(float32(zoom), float32(width)/2, float32(height)/2)
}

// Scale returns the zoom scale.
func (p Projector) Scale() float32 {
	return p.scale
}

// Translation returns the screen translation.
func (p Projector) Translation() (tx, ty float32) {
	return p.translateX, p.translateY
}

// Matrix returns the underlying affine transform.
func (p Projector) Matrix() math.Mat4 {
	return p.matrix
}

// Transform projects a raw model-space point.
func (p Projector) Transform(model math.Vec3) math.Vec2 {
	return p.matrix.TransformVec3(model).XY()
}

// Project projects a terrain point given its grid coordinates and elevation.
func (p Projector) Project(gridX, elevation, gridY float32) math.Vec2 {
	return p.Transform(math.Vec3{X: gridX, Y: elevation * ElevationScale, Z: gridY})
}
