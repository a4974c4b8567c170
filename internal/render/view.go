package render

// Defaults for a fresh view.
const (
	DefaultZoom        = 20
	DefaultRenderStyle = Filled
	DefaultShaderStyle = Slope
)

// ViewState is the per-frame snapshot of everything the renderer needs
// besides the grid and the projector.
type ViewState struct {
	PanX, PanY   int
	Zoom         int
	RenderStyle  RenderStyle
	ShaderStyle  ShaderStyle
	CanvasWidth  int
	CanvasHeight int
	ShowOverlay  bool
}
