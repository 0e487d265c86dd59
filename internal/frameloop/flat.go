package frameloop

import (
	"scene-demos/internal/input"
	"scene-demos/internal/quad"
	"scene-demos/internal/triangle"
)

// TriangleHelp is the key legend shown by the triangle demo.
var TriangleHelp = []string{
	"ESC - quit",
	"R, G, B - raise tint channel",
	"A - fade tint",
	"C - reset tint",
	"Mouse - rotate view",
}

// Triangle is the triangle demo loop.
type Triangle struct {
	State *triangle.State
}

// Tick applies tint keys and mouse rotation. dt is unused; steps are per frame.
func (l *Triangle) Tick(in input.State, _ float32) triangle.Snapshot {
	if in.Down(input.KeyR) {
		l.State.RaiseRed()
	}
	if in.Down(input.KeyG) {
		l.State.RaiseGreen()
	}
	if in.Down(input.KeyB) {
		l.State.RaiseBlue()
	}
	if in.Down(input.KeyA) {
		l.State.Fade()
	}
	if in.Down(input.KeyC) {
		l.State.ResetTint()
	}
	if in.MouseMoved() {
		l.State.Rotate(in.DeltaX, in.DeltaY)
	}
	return l.State.Snapshot()
}

// Quad is the mouse-following square demo loop.
type Quad struct {
	State *quad.State
}

// Tick moves the square with WASD, then snaps it to the cursor if the mouse moved this frame.
func (l *Quad) Tick(in input.State, _ float32) quad.Snapshot {
	if in.Down(input.KeyW) {
		l.State.Move(0, quad.Step)
	}
	if in.Down(input.KeyS) {
		l.State.Move(0, -quad.Step)
	}
	if in.Down(input.KeyA) {
		l.State.Move(-quad.Step, 0)
	}
	if in.Down(input.KeyD) {
		l.State.Move(quad.Step, 0)
	}
	if in.MouseMoved() {
		l.State.Follow(in.MouseX, in.MouseY, in.Width, in.Height)
	}
	return l.State.Snapshot()
}
