package physics

import (
	"scene-demos/internal/scene"
)

// DefaultGravity is the fall speed in units per second applied while gravity is enabled.
const DefaultGravity = float32(9.8)

// World advances cube positions under a constant downward speed.
// It is not a rigid-body simulation: there is no acceleration, no velocity state and no collision.
type World struct {
	Gravity float32
}

// NewWorld returns a world with DefaultGravity.
func NewWorld() *World {
	return &World{Gravity: DefaultGravity}
}

// SetGravity sets the fall speed. Negative values are accepted but cubes on the ground stay there.
func (w *World) SetGravity(g float32) {
	w.Gravity = g
}

// Step advances every cube in s by dt seconds. Nothing moves while s.GravityEnabled is false.
// Each cube is updated independently, so the result does not depend on cube order.
func (w *World) Step(s *scene.State, dt float32) {
	if !s.GravityEnabled {
		return
	}
	for i := range s.Cubes {
		s.Cubes[i].Position[1] = Fall(s.Cubes[i].Position[1], dt, w.Gravity)
	}
}

// Fall returns the height y after falling for dt seconds at speed g, clamped to the ground at 0.
// A height that is already at or below 0 is returned unchanged.
func Fall(y, dt, g float32) float32 {
	if y <= 0 {
		return y
	}
	y -= dt * g
	if y < 0 {
		y = 0
	}
	return y
}
