package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Overlay placement for the polygon counter.
var (
	overlayBox  = image.Rect(98, 47, 218, 67)
	overlayText = image.Pt(100, 60)
)

// outlineWidth is the stroke width of wireframe edges in pixels.
const outlineWidth = 1.0

// Rasterizer draws frames into an RGBA image. It reuses its buffers between
// frames and is not safe for concurrent use.
type Rasterizer struct {
	z   *vector.Rasterizer
	img *image.RGBA
}

// NewRasterizer creates a rasterizer for a width x height canvas.
func NewRasterizer(width, height int) *Rasterizer {
	r := &Rasterizer{}
	r.Resize(width, height)
	return r
}

// Resize changes the canvas size. It is a no-op if the size is unchanged.
func (r *Rasterizer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if r.img != nil && r.img.Rect.Dx() == width && r.img.Rect.Dy() == height {
		return
	}
	r.img = image.NewRGBA(image.Rect(0, 0, width, height))
	r.z = vector.NewRasterizer(width, height)
}

// Image returns the most recently drawn frame.
func (r *Rasterizer) Image() *image.RGBA {
	return r.img
}

// Draw clears the canvas and paints the frame's polygons in order, so later
// cells overdraw earlier ones.
func (r *Rasterizer) Draw(frame Frame) *image.RGBA {
	r.Resize(frame.Width, frame.Height)
	bounds := r.img.Bounds()
	draw.Draw(r.img, bounds, image.NewUniform(BackgroundColor), image.Point{}, draw.Src)
	if bounds.Empty() {
		return r.img
	}

	outline := image.NewUniform(OutlineColor)
	for i := range frame.Polygons {
		p := &frame.Polygons[i]
		if p.Filled {
			r.fillPolygon(p.Points, image.NewUniform(p.Fill))
		}
		if p.Outlined {
			for k := 0; k < len(p.Points); k++ {
				r.strokeSegment(p.Points[k], p.Points[(k+1)%len(p.Points)], outline)
			}
		}
	}

	if frame.ShowOverlay {
		r.drawOverlay(frame.PolygonsDrawn)
	}
	return r.img
}

func (r *Rasterizer) fillPolygon(pts [4]image.Point, src image.Image) {
	r.z.Reset(r.img.Rect.Dx(), r.img.Rect.Dy())
	r.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		r.z.LineTo(float32(pt.X), float32(pt.Y))
	}
	r.z.ClosePath()
	r.z.Draw(r.img, r.img.Bounds(), src, image.Point{})
}

// strokeSegment draws a line as a thin quad around the segment a-b.
func (r *Rasterizer) strokeSegment(a, b image.Point, src image.Image) {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	// Offset perpendicular to the segment by half the stroke width.
	nx := float32(-dy / length * outlineWidth / 2)
	ny := float32(dx / length * outlineWidth / 2)
	ax, ay := float32(a.X), float32(a.Y)
	bx, by := float32(b.X), float32(b.Y)

	r.z.Reset(r.img.Rect.Dx(), r.img.Rect.Dy())
	r.z.MoveTo(ax+nx, ay+ny)
	r.z.LineTo(bx+nx, by+ny)
	r.z.LineTo(bx-nx, by-ny)
	r.z.LineTo(ax-nx, ay-ny)
	r.z.ClosePath()
	r.z.Draw(r.img, r.img.Bounds(), src, image.Point{})
}

// drawOverlay prints the polygon counter over a cleared box.
func (r *Rasterizer) drawOverlay(polygons int) {
	draw.Draw(r.img, overlayBox, image.NewUniform(color.White), image.Point{}, draw.Src)
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(overlayText.X, overlayText.Y),
	}
	d.DrawString(fmt.Sprintf("drawing %d polys", polygons))
}
