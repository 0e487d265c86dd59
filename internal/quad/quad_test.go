package quad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scene-demos/internal/quad"
	"scene-demos/internal/scene"
)

func TestFollow(t *testing.T) {
	tests := []struct {
		name   string
		mx, my float32
		x, y   float32
	}{
		{"centre", 400, 300, 0, 0},
		{"top-left", 0, 0, -1, 1},
		{"bottom-right", 800, 600, 1, -1},
		{"quarter", 600, 150, 0.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s quad.State
			s.Follow(tt.mx, tt.my, 800, 600)
			assert.Equal(t, tt.x, s.X)
			assert.Equal(t, tt.y, s.Y)
		})
	}
}

func TestFollowZeroWindow(t *testing.T) {
	s := quad.State{X: 0.25, Y: -0.25}
	s.Follow(10, 10, 0, 600)
	assert.Equal(t, quad.State{X: 0.25, Y: -0.25}, s)
}

func TestMove(t *testing.T) {
	var s quad.State
	s.Move(0.5, -0.25)
	s.Move(0.25, 0)
	assert.Equal(t, quad.State{X: 0.75, Y: -0.25}, s)
}

func TestCorners(t *testing.T) {
	s := quad.State{X: 0.5, Y: 0.5}
	c := s.Corners()

	assert.InDelta(t, 0.45, c[0][0], 1e-6)
	assert.InDelta(t, 0.45, c[0][1], 1e-6)
	assert.InDelta(t, 0.55, c[2][0], 1e-6)
	assert.InDelta(t, 0.55, c[2][1], 1e-6)
	assert.Equal(t, c[1][0], c[2][0])
	assert.Equal(t, c[0][0], c[3][0])
}

func TestSnapshot(t *testing.T) {
	s := quad.State{}
	snap := s.Snapshot()
	assert.Equal(t, s.Corners(), snap.Corners)
	assert.Equal(t, scene.White, snap.Background)
	assert.Equal(t, scene.RGB(0, 0, 0), snap.Color)
}
