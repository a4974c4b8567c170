package render

import (
	"fmt"
	"strings"
)

// RenderStyle selects whether polygons are filled, outlined or both.
type RenderStyle uint8

// Render styles.
const (
	Filled RenderStyle = iota
	Wireframe
	Both
)

// String returns the style name.
func (s RenderStyle) String() string {
	switch s {
	case Filled:
		return "filled"
	case Wireframe:
		return "wireframe"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("RenderStyle(%d)", s)
	}
}

// Fills reports whether polygons are filled in this style.
func (s RenderStyle) Fills() bool {
	switch s {
	case Filled, Both:
		return true
	case Wireframe:
		return false
	}
	return false
}

// Outlines reports whether polygon boundaries are stroked in this style.
func (s RenderStyle) Outlines() bool {
	switch s {
	case Wireframe, Both:
		return true
	case Filled:
		return false
	}
	return false
}

// Next returns the following style, wrapping around.
func (s RenderStyle) Next() RenderStyle {
	return (s + 1) % (Both + 1)
}

// ParseRenderStyle parses a style name, ignoring case.
func ParseRenderStyle(name string) (RenderStyle, error) {
	switch strings.ToLower(name) {
	case "filled":
		return Filled, nil
	case "wireframe":
		return Wireframe, nil
	case "both":
		return Both, nil
	default:
		return 0, fmt.Errorf("unknown render style %q", name)
	}
}

// ShaderStyle selects how land fill colors are derived.
type ShaderStyle uint8

// Shader styles.
const (
	Flat ShaderStyle = iota
	Slope
	Height
)

// String returns the shader name.
func (s ShaderStyle) String() string {
	switch s {
	case Flat:
		return "flat"
	case Slope:
		return "slope"
	case Height:
		return "height"
	default:
		return fmt.Sprintf("ShaderStyle(%d)", s)
	}
}

// Next returns the following shader, wrapping around.
func (s ShaderStyle) Next() ShaderStyle {
	return (s + 1) % (Height + 1)
}

// ParseShaderStyle parses a shader name, ignoring case.
func ParseShaderStyle(name string) (ShaderStyle, error) {
	switch strings.ToLower(name) {
	case "flat":
		return Flat, nil
	case "slope":
		return Slope, nil
	case "height":
		return Height, nil
	default:
		return 0, fmt.Errorf("unknown shader style %q", name)
	}
}
