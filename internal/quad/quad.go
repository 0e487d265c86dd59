package quad

import (
	"scene-demos/internal/scene"
)

const (
	// HalfSize is half the side of the square in normalized device coordinates.
	HalfSize = 0.05
	// Step is how far a held movement key moves the square per frame.
	Step = 0.05
)

// State is the square's centre in normalized device coordinates: (-1,-1) bottom-left, (1,1) top-right.
type State struct {
	X, Y float32
}

// Move shifts the centre by (dx, dy) NDC units.
func (s *State) Move(dx, dy float32) {
	s.X += dx
	s.Y += dy
}

// Follow centres the square on the pixel (mx, my) of a width x height window whose origin is top-left.
// A zero-sized window leaves the square where it is.
func (s *State) Follow(mx, my, width, height float32) {
	if width <= 0 || height <= 0 {
		return
	}
	hw, hh := width/2, height/2
	s.X = (mx - hw) / hw
	s.Y = -(my - hh) / hh
}

// Corners returns the square's corners counter-clockwise from bottom-left.
func (s *State) Corners() [4][2]float32 {
	return [4][2]float32{
		{s.X - HalfSize, s.Y - HalfSize},
		{s.X + HalfSize, s.Y - HalfSize},
		{s.X + HalfSize, s.Y + HalfSize},
		{s.X - HalfSize, s.Y + HalfSize},
	}
}

// Snapshot is the render-ready square.
type Snapshot struct {
	Corners    [4][2]float32
	Color      scene.Color
	Background scene.Color
}

// Snapshot returns a black square on a white background.
func (s *State) Snapshot() Snapshot {
	return Snapshot{Corners: s.Corners(), Color: scene.RGB(0, 0, 0), Background: scene.White}
}
