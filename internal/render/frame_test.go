package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/isoterrain/pkg/iso"
	"github.com/Faultbox/isoterrain/pkg/terrain"
)

func flatGrid(t *testing.T, size int, elevation float32) *terrain.Grid {
	t.Helper()
	g, err := terrain.NewGrid(size)
	require.NoError(t, err)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			g.SetElevation(x, y, elevation)
		}
	}
	return g
}

func testView(width, height int) ViewState {
	return ViewState{
		Zoom:         20,
		RenderStyle:  Filled,
		ShaderStyle:  Flat,
		CanvasWidth:  width,
		CanvasHeight: height,
	}
}

func TestBuildFrameCellCount(t *testing.T) {
	g := flatGrid(t, 5, 0)
	frame := BuildFrame(g, iso.New(20, 200, 200), testView(400, 400))

	// Cells come from 2x2 corner windows, so the last row and column of
	// points never form their own cell.
	require.Len(t, frame.Polygons, 16)
	assert.Equal(t, 16, frame.PolygonsDrawn)

	// Row-major order: y outer, x inner.
	assert.Equal(t, 0, frame.Polygons[0].CellX)
	assert.Equal(t, 0, frame.Polygons[0].CellY)
	assert.Equal(t, 1, frame.Polygons[1].CellX)
	assert.Equal(t, 0, frame.Polygons[1].CellY)
	assert.Equal(t, 0, frame.Polygons[4].CellX)
	assert.Equal(t, 1, frame.Polygons[4].CellY)
}

func TestBuildFrameWinding(t *testing.T) {
	g := flatGrid(t, 3, 0)
	frame := BuildFrame(g, iso.New(20, 100, 100), testView(400, 400))

	require.NotEmpty(t, frame.Polygons)
	want := [4]image.Point{
		{100, 90},  // Top
		{80, 100},  // Left
		{100, 110}, // Bottom
		{120, 100}, // Right
	}
	assert.Equal(t, want, frame.Polygons[0].Points)
}

func TestBuildFrameAppliesPan(t *testing.T) {
	g := flatGrid(t, 3, 0)
	view := testView(400, 400)
	view.PanX, view.PanY = 7, -3

	frame := BuildFrame(g, iso.New(20, 100, 100), view)

	require.NotEmpty(t, frame.Polygons)
	assert.Equal(t, image.Pt(107, 87), frame.Polygons[0].Points[0])
}

func TestBuildFrameElevationRaisesCorner(t *testing.T) {
	g := flatGrid(t, 3, 0)
	g.SetElevation(0, 0, 10)

	frame := BuildFrame(g, iso.New(20, 100, 100), testView(400, 400))

	// modelY = 10 * -0.2 = -2, times 2s = -80 pixels.
	assert.Equal(t, image.Pt(100, 10), frame.Polygons[0].Points[0])
}

func TestBuildFrameCullsOffCanvas(t *testing.T) {
	g := flatGrid(t, 9, 0)
	frame := BuildFrame(g, iso.New(20, 5000, 5000), testView(100, 100))

	assert.Empty(t, frame.Polygons)
	assert.Zero(t, frame.PolygonsDrawn)
}

func TestBuildFrameCullingMargin(t *testing.T) {
	g := flatGrid(t, 2, 0)

	// Single cell: corners at tx+{0,-20,0,20}. The margin is 20 pixels.
	culled := BuildFrame(g, iso.New(20, -40, 50), testView(100, 100))
	assert.Empty(t, culled.Polygons, "rightmost corner at exactly -20 is outside the margin")

	kept := BuildFrame(g, iso.New(20, -39, 50), testView(100, 100))
	assert.Len(t, kept.Polygons, 1, "rightmost corner at -19 is inside the margin")

	pannedIn := BuildFrame(g, iso.New(20, -40, 50), ViewState{
		PanX: 1, RenderStyle: Filled, CanvasWidth: 100, CanvasHeight: 100,
	})
	assert.Len(t, pannedIn.Polygons, 1, "pan is applied before culling")
}

func TestBuildFrameEmptyGrid(t *testing.T) {
	g := flatGrid(t, 1, 0)
	frame := BuildFrame(g, iso.New(20, 0, 0), testView(100, 100))
	assert.Empty(t, frame.Polygons)
}

func TestBuildFrameRenderStyles(t *testing.T) {
	g := flatGrid(t, 3, 0)

	for _, style := range []RenderStyle{Filled, Wireframe, Both} {
		view := testView(400, 400)
		view.RenderStyle = style
		frame := BuildFrame(g, iso.New(20, 100, 100), view)

		for _, p := range frame.Polygons {
			assert.Equal(t, style.Fills(), p.Filled, style.String())
			assert.Equal(t, style.Outlines(), p.Outlined, style.String())
			if !p.Filled {
				assert.Equal(t, color.RGBA{}, p.Fill)
			}
		}
	}
}

func TestFillColor(t *testing.T) {
	g, err := terrain.NewGrid(3)
	require.NoError(t, err)

	g.SetElevation(0, 0, 300)
	g.SetElevation(1, 0, -20)
	g.SetClass(1, 1, terrain.Water)
	g.SetElevation(1, 1, 40)
	// Cell (0,1) window: (0,1)=0, (0,2)=0, (1,2)=0, (1,1)=40 -> slope |40-1| clamps to 255.

	tests := []struct {
		name   string
		x, y   int
		shader ShaderStyle
		want   color.RGBA
	}{
		{"water ignores shader", 1, 1, Height, WaterColor},
		{"water flat", 1, 1, Flat, WaterColor},
		{"flat land", 0, 0, Flat, color.RGBA{G: 255, A: 255}},
		{"height clamps high", 0, 0, Height, color.RGBA{G: 255, A: 255}},
		{"height uses abs", 1, 0, Height, color.RGBA{G: 20, A: 255}},
		{"slope clamps", 0, 1, Slope, color.RGBA{G: 255, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FillColor(g, tt.x, tt.y, tt.shader))
		})
	}
}

func TestFillColorFlatSlope(t *testing.T) {
	g := flatGrid(t, 2, 60)
	// Flat window: slope 1, green = 128.
	assert.Equal(t, color.RGBA{G: 128, A: 255}, FillColor(g, 0, 0, Slope))
}

func TestBuildFrameDoesNotMutateGrid(t *testing.T) {
	params := terrain.DefaultParams(3)
	g, err := terrain.Generate(17, params)
	require.NoError(t, err)
	before := g.Clone()

	BuildFrame(g, iso.New(20, 400, 300), testView(800, 600))

	assert.Equal(t, before.String(), g.String())
	assert.Equal(t, before.Stats(), g.Stats())
}
