package app

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/isoterrain/internal/engine/input"
)

// Action is a viewer command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionCycleRenderStyle
	ActionCycleShaderStyle
	ActionToggleOverlay
	ActionScreenshot
	ActionRegenerate
	ActionRecenter
	ActionPanLeft
	ActionPanRight
	ActionPanUp
	ActionPanDown
	ActionZoomIn
	ActionZoomOut
)

// keyPanStep is the pan distance of one arrow key press in pixels.
const keyPanStep = 40

// keyBindings maps scancodes to actions.
var keyBindings = map[sdl.Scancode]Action{
	sdl.SCANCODE_ESCAPE: ActionQuit,
	sdl.SCANCODE_R:      ActionCycleRenderStyle,
	sdl.SCANCODE_S:      ActionCycleShaderStyle,
	sdl.SCANCODE_O:      ActionToggleOverlay,
	sdl.SCANCODE_F12:    ActionScreenshot,
	sdl.SCANCODE_N:      ActionRegenerate,
	sdl.SCANCODE_C:      ActionRecenter,
	sdl.SCANCODE_LEFT:   ActionPanLeft,
	sdl.SCANCODE_RIGHT:  ActionPanRight,
	sdl.SCANCODE_UP:     ActionPanUp,
	sdl.SCANCODE_DOWN:   ActionPanDown,
	sdl.SCANCODE_EQUALS: ActionZoomIn,
	sdl.SCANCODE_MINUS:  ActionZoomOut,
}

// actionFor returns the action bound to a key press. Auto-repeat only
// triggers pan and zoom.
func actionFor(ev input.Event) Action {
	if ev.Type != input.EventKeyDown {
		return ActionNone
	}
	a, ok := keyBindings[ev.Key]
	if !ok {
		return ActionNone
	}
	if ev.Repeat && !a.repeatable() {
		return ActionNone
	}
	return a
}

func (a Action) repeatable() bool {
	switch a {
	case ActionPanLeft, ActionPanRight, ActionPanUp, ActionPanDown, ActionZoomIn, ActionZoomOut:
		return true
	}
	return false
}
