// Package rlinput samples keyboard and mouse state from raylib.
package rlinput

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-demos/internal/input"
)

var keyCodes = map[input.Key]int32{
	input.KeyA:      rl.KeyA,
	input.KeyB:      rl.KeyB,
	input.KeyC:      rl.KeyC,
	input.KeyD:      rl.KeyD,
	input.KeyE:      rl.KeyE,
	input.KeyG:      rl.KeyG,
	input.KeyQ:      rl.KeyQ,
	input.KeyR:      rl.KeyR,
	input.KeyS:      rl.KeyS,
	input.KeyT:      rl.KeyT,
	input.KeyV:      rl.KeyV,
	input.KeyW:      rl.KeyW,
	input.KeyEscape: rl.KeyEscape,
}

// Sampler polls raylib. It must be used on the thread that owns the window, after InitWindow.
type Sampler struct{}

// New returns a raylib sampler.
func New() *Sampler {
	return &Sampler{}
}

// Sample reads the held keys, the mouse position and delta, and the buttons pressed this frame.
func (Sampler) Sample() input.State {
	var s input.State
	held := make([]input.Key, 0, 4)
	for _, k := range input.Keys {
		if rl.IsKeyDown(keyCodes[k]) {
			held = append(held, k)
		}
	}
	s = s.WithKeys(held...)
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		s = s.WithPressed(input.ButtonLeft)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		s = s.WithPressed(input.ButtonRight)
	}
	pos := rl.GetMousePosition()
	delta := rl.GetMouseDelta()
	s.MouseX, s.MouseY = pos.X, pos.Y
	s.DeltaX, s.DeltaY = delta.X, delta.Y
	s.Width, s.Height = float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	return s
}
