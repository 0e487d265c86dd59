// Package ebinput samples keyboard and mouse state from ebiten.
package ebinput

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"scene-demos/internal/input"
)

var keyCodes = map[input.Key]ebiten.Key{
	input.KeyA:      ebiten.KeyA,
	input.KeyB:      ebiten.KeyB,
	input.KeyC:      ebiten.KeyC,
	input.KeyD:      ebiten.KeyD,
	input.KeyE:      ebiten.KeyE,
	input.KeyG:      ebiten.KeyG,
	input.KeyQ:      ebiten.KeyQ,
	input.KeyR:      ebiten.KeyR,
	input.KeyS:      ebiten.KeyS,
	input.KeyT:      ebiten.KeyT,
	input.KeyV:      ebiten.KeyV,
	input.KeyW:      ebiten.KeyW,
	input.KeyEscape: ebiten.KeyEscape,
}

// Sampler polls ebiten from inside Game.Update. ebiten does not report mouse deltas,
// so the sampler remembers the previous cursor position.
type Sampler struct {
	width, height int
	lastX, lastY  int
	primed        bool
}

// New returns a sampler for a logical screen of width x height pixels.
func New(width, height int) *Sampler {
	return &Sampler{width: width, height: height}
}

// Sample reads the held keys, the cursor position and the buttons that went down this tick.
func (s *Sampler) Sample() input.State {
	var st input.State
	held := make([]input.Key, 0, 4)
	for _, k := range input.Keys {
		if ebiten.IsKeyPressed(keyCodes[k]) {
			held = append(held, k)
		}
	}
	st = st.WithKeys(held...)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		st = st.WithPressed(input.ButtonLeft)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		st = st.WithPressed(input.ButtonRight)
	}
	mx, my := ebiten.CursorPosition()
	if s.primed {
		st.DeltaX, st.DeltaY = float32(mx-s.lastX), float32(my-s.lastY)
	}
	s.lastX, s.lastY, s.primed = mx, my, true
	st.MouseX, st.MouseY = float32(mx), float32(my)
	st.Width, st.Height = float32(s.width), float32(s.height)
	return st
}
