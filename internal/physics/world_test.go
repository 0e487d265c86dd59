package physics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-demos/internal/physics"
	"scene-demos/internal/scene"
)

func TestFall(t *testing.T) {
	tests := []struct {
		name     string
		y, dt, g float32
		want     float32
	}{
		{"falls", 10, 0.5, 4, 8},
		{"lands exactly", 2, 0.5, 4, 0},
		{"clamps overshoot", 1, 0.5, 4, 0},
		{"zero dt", 3, 0, 9.8, 3},
		{"on ground", 0, 1, 9.8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, physics.Fall(tt.y, tt.dt, tt.g))
		})
	}
}

func TestStepStaysOnGround(t *testing.T) {
	s := scene.New(scene.Vec3{}, scene.White)
	s.SpawnCube(scene.Vec3{0, 0.5, 0}, 1, scene.Red)
	w := physics.NewWorld()

	for i := 0; i < 10; i++ {
		w.Step(s, 0.25)
		assert.Equal(t, float32(0), s.Cubes[0].Position[1])
	}
}

func TestStepOnlyMovesY(t *testing.T) {
	s := scene.New(scene.Vec3{}, scene.White)
	s.SpawnCube(scene.Vec3{0.25, 5, 0.75}, 1, scene.Red)
	w := &physics.World{Gravity: 2}

	w.Step(s, 0.5)

	assert.Equal(t, scene.Vec3{0.25, 4, 0.75}, s.Cubes[0].Position)
}

func TestStepGravityDisabled(t *testing.T) {
	s := scene.New(scene.Vec3{}, scene.White)
	s.SpawnCube(scene.Vec3{0, 5, 0}, 1, scene.Red)
	s.ToggleGravity()

	physics.NewWorld().Step(s, 1)

	assert.Equal(t, float32(5), s.Cubes[0].Position[1])
}

func TestStepIsDeterministic(t *testing.T) {
	run := func() []scene.Cube {
		s := scene.New(scene.Vec3{}, scene.White)
		s.SpawnCube(scene.Vec3{0, 3.3, 0}, 1, scene.Red)
		s.SpawnCube(scene.Vec3{0, 5.7, 0}, 1, scene.Red)
		s.SpawnCube(scene.Vec3{0, 0, 0}, 1, scene.Red)
		w := physics.NewWorld()
		for _, dt := range []float32{0.016, 0.017, 0.033, 0.1, 0.016} {
			w.Step(s, dt)
		}
		return s.Cubes
	}
	a, b := run(), run()
	require.Len(t, a, 3)
	assert.Equal(t, a, b)
	for _, c := range a {
		assert.GreaterOrEqual(t, c.Position[1], float32(0))
	}
}

func TestStepOrderIndependent(t *testing.T) {
	s1 := scene.New(scene.Vec3{}, scene.White)
	s1.SpawnCube(scene.Vec3{0, 1, 0}, 1, scene.Red)
	s1.SpawnCube(scene.Vec3{0, 4, 0}, 1, scene.Blue)
	s2 := scene.New(scene.Vec3{}, scene.White)
	s2.SpawnCube(scene.Vec3{0, 4, 0}, 1, scene.Blue)
	s2.SpawnCube(scene.Vec3{0, 1, 0}, 1, scene.Red)

	w := &physics.World{Gravity: 3}
	w.Step(s1, 0.5)
	w.Step(s2, 0.5)

	assert.Equal(t, s1.Cubes[0], s2.Cubes[1])
	assert.Equal(t, s1.Cubes[1], s2.Cubes[0])
}
