package input

import (
	"github.com/cbodonnell/blockdrop/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// RepeatDelay is the number of ticks a key is held before it repeats
	RepeatDelay = 10
	// RepeatInterval is the number of ticks between repeats of a held key
	RepeatInterval = 3
)

// KeyBinding maps a key to the game action it triggers.
type KeyBinding struct {
	Key    ebiten.Key
	Action types.Action
	// Repeat is true when holding the key repeats the action
	Repeat bool
}

// DefaultKeyBindings is the keyboard layout of the game.
var DefaultKeyBindings = []KeyBinding{
	{Key: ebiten.KeyArrowLeft, Action: types.ActionLeft, Repeat: true},
	{Key: ebiten.KeyArrowRight, Action: types.ActionRight, Repeat: true},
	{Key: ebiten.KeyArrowDown, Action: types.ActionSoftDrop, Repeat: true},
	{Key: ebiten.KeySpace, Action: types.ActionHardDrop},
	{Key: ebiten.KeyArrowUp, Action: types.ActionRotateRight},
	{Key: ebiten.KeyQ, Action: types.ActionRotateLeft},
	{Key: ebiten.KeyP, Action: types.ActionPause},
	{Key: ebiten.KeyEscape, Action: types.ActionQuit},
}

// Actions returns the actions triggered by the keyboard during the current tick.
func Actions(bindings []KeyBinding) []types.Action {
	var actions []types.Action
	for _, b := range bindings {
		if IsTriggered(inpututil.KeyPressDuration(b.Key), b.Repeat) {
			actions = append(actions, b.Action)
		}
	}
	return actions
}

// IsTriggered returns true when a key held for duration ticks fires on this tick.
// A key fires on the tick it is pressed and, when it repeats, every
// RepeatInterval ticks once it has been held for RepeatDelay ticks.
func IsTriggered(duration int, repeat bool) bool {
	if duration == 1 {
		return true
	}
	if !repeat || duration < RepeatDelay {
		return false
	}
	return (duration-RepeatDelay)%RepeatInterval == 0
}

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
// This is used to handle both keyboard and gamepad inputs.
func IsPositiveJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}
	gamepadIDs := ebiten.AppendGamepadIDs(nil)
	for _, g := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				return true
			}
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightRight) {
				return true
			}
		} else {
			// The button 0/1 might not be A/B buttons.
			if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton0) {
				return true
			}
			if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton1) {
				return true
			}
		}
	}
	return false
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsCopyJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyC)
}
