// Package frameloop holds the per-frame update of each demo. A tick applies the sampled input to the
// demo's state, advances it by the elapsed time, and returns a snapshot for the renderer.
// Nothing here touches a graphics API, so every loop runs headless in tests.
package frameloop

import (
	"scene-demos/internal/input"
)

// Loop is one demo's update step producing a snapshot of type S.
type Loop[S any] interface {
	Tick(in input.State, dt float32) S
}

// Renderer consumes snapshots. It returns nothing to the loop.
type Renderer[S any] interface {
	Render(snap S)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc[S any] func(snap S)

// Render calls f(snap).
func (f RendererFunc[S]) Render(snap S) { f(snap) }

// Frame runs one frame: sample input, update, render, strictly in that order.
// It reports quit=true without updating when Escape is held.
func Frame[S any](sampler input.Sampler, loop Loop[S], r Renderer[S], dt float32) (quit bool) {
	in := sampler.Sample()
	if in.Down(input.KeyEscape) {
		return true
	}
	snap := loop.Tick(in, dt)
	r.Render(snap)
	return false
}

// TickSeconds is the fixed step of a host running tps ticks per second.
// A non-positive rate (unset, or synced to the display) yields 0.
func TickSeconds(tps int) float32 {
	if tps <= 0 {
		return 0
	}
	return float32(1.0 / float64(tps))
}
