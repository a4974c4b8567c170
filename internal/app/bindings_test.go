package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/isoterrain/internal/engine/input"
)

func keyDown(key sdl.Scancode, repeat bool) input.Event {
	return input.Event{Type: input.EventKeyDown, Key: key, Repeat: repeat}
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		name string
		ev   input.Event
		want Action
	}{
		{"escape quits", keyDown(sdl.SCANCODE_ESCAPE, false), ActionQuit},
		{"r cycles render style", keyDown(sdl.SCANCODE_R, false), ActionCycleRenderStyle},
		{"s cycles shader style", keyDown(sdl.SCANCODE_S, false), ActionCycleShaderStyle},
		{"o toggles overlay", keyDown(sdl.SCANCODE_O, false), ActionToggleOverlay},
		{"f12 screenshot", keyDown(sdl.SCANCODE_F12, false), ActionScreenshot},
		{"unbound key", keyDown(sdl.SCANCODE_Q, false), ActionNone},
		{"key up ignored", input.Event{Type: input.EventKeyUp, Key: sdl.SCANCODE_R}, ActionNone},
		{"repeat ignored for toggles", keyDown(sdl.SCANCODE_O, true), ActionNone},
		{"repeat allowed for pan", keyDown(sdl.SCANCODE_LEFT, true), ActionPanLeft},
		{"repeat allowed for zoom", keyDown(sdl.SCANCODE_EQUALS, true), ActionZoomIn},
		{"mouse event", input.Event{Type: input.EventMouseDown, Button: input.ButtonLeft}, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, actionFor(tt.ev))
		})
	}
}
