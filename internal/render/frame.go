// Package render turns a terrain grid into shaded screen-space polygons and
// rasterizes them.
package render

import (
	"image"
	"image/color"

	"github.com/Faultbox/isoterrain/pkg/iso"
	"github.com/Faultbox/isoterrain/pkg/terrain"
)

// SquareRenderSize is the nominal on-screen size of one cell. Polygons are
// kept if a corner lands within twice this margin around the canvas.
const SquareRenderSize = 10

// Colors used by the fill and outline policies.
var (
	WaterColor      = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	OutlineColor    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BackgroundColor = color.RGBA{R: 26, G: 26, B: 38, A: 255}
)

// Heightfield is the read-only view of a terrain grid the renderer needs.
type Heightfield interface {
	Size() int
	Elevation(x, y int) float32
	Class(x, y int) terrain.Classification
	Slope(x, y int) float32
}

// Polygon is one projected terrain cell.
type Polygon struct {
	CellX, CellY int
	// Points in winding order top, left, bottom, right.
	Points   [4]image.Point
	Fill     color.RGBA
	Filled   bool
	Outlined bool
}

// Frame is the output of one render pass.
type Frame struct {
	Polygons      []Polygon
	PolygonsDrawn int
	Width         int
	Height        int
	ShowOverlay   bool
}

// BuildFrame projects every cell of the grid and keeps the polygons that
// may be visible on the canvas. It does not modify the grid or the view.
func BuildFrame(grid Heightfield, proj iso.Projector, view ViewState) Frame {
	frame := Frame{
		Width:       view.CanvasWidth,
		Height:      view.CanvasHeight,
		ShowOverlay: view.ShowOverlay,
	}

	cells := grid.Size() - 1
	if cells < 1 {
		return frame
	}

	fills := view.RenderStyle.Fills()
	outlines := view.RenderStyle.Outlines()
	panX, panY := float32(view.PanX), float32(view.PanY)

	for y := 0; y < cells; y++ {
		for x := 0; x < cells; x++ {
			alts := [4]float32{
				grid.Elevation(x, y),
				grid.Elevation(x, y+1),
				grid.Elevation(x+1, y+1),
				grid.Elevation(x+1, y),
			}

			fx, fy := float32(x), float32(y)
			model := [4][2]float32{
				{fx - 0.5, fy - 0.5}, // Top
				{fx - 0.5, fy + 0.5}, // Left
				{fx + 0.5, fy + 0.5}, // Bottom
				{fx + 0.5, fy - 0.5}, // Right
			}

			poly := Polygon{CellX: x, CellY: y, Filled: fills, Outlined: outlines}
			visible := false
			for k := 0; k < 4; k++ {
				p := proj.Project(model[k][0], alts[k], model[k][1])
				sx, sy := p.X+panX, p.Y+panY
				poly.Points[k] = image.Pt(int(p.X)+view.PanX, int(p.Y)+view.PanY)
				if onCanvas(sx, sy, view.CanvasWidth, view.CanvasHeight) {
					visible = true
				}
			}
			if !visible {
				continue
			}

			if fills {
				poly.Fill = FillColor(grid, x, y, view.ShaderStyle)
			}
			frame.Polygons = append(frame.Polygons, poly)
		}
	}

	frame.PolygonsDrawn = len(frame.Polygons)
	return frame
}

// onCanvas reports whether a screen point lies inside the canvas grown by
// the culling margin on every side.
func onCanvas(sx, sy float32, width, height int) bool {
	const margin = SquareRenderSize * 2
	return sx > -margin && sx < float32(width+margin) &&
		sy > -margin && sy < float32(height+margin)
}

// FillColor returns the fill for cell (x, y) under the given shader.
func FillColor(grid Heightfield, x, y int, shader ShaderStyle) color.RGBA {
	if grid.Class(x, y) == terrain.Water {
		return WaterColor
	}

	var green float32
	switch shader {
	case Height:
		green = clampChannel(absf(grid.Elevation(x, y)))
	case Slope:
		green = clampChannel(absf(grid.Slope(x, y)) * 128)
	case Flat:
		green = 255
	}
	return color.RGBA{R: 0, G: uint8(green), B: 0, A: 255}
}

func clampChannel(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
