package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-demos/internal/scene"
)

func TestNewDefaults(t *testing.T) {
	s := scene.New(scene.Vec3{5, 5, 5}, scene.CornflowerBlue)

	assert.Empty(t, s.Cubes)
	assert.True(t, s.GravityEnabled)
	assert.True(t, s.GridVisible)
	assert.Equal(t, scene.Vec3{5, 5, 5}, s.Camera)
	assert.Equal(t, scene.CornflowerBlue, s.Background)
}

func TestClearThenSpawnKeepsCallOrder(t *testing.T) {
	s := scene.New(scene.Vec3{}, scene.White)
	s.SpawnCube(scene.Vec3{9, 9, 9}, 1, scene.Red)
	s.ClearCubes()

	for i := 0; i < 5; i++ {
		s.SpawnCube(scene.Vec3{float32(i), 1, 0}, 0.5, scene.Green)
	}

	require.Len(t, s.Cubes, 5)
	for i, c := range s.Cubes {
		assert.Equal(t, float32(i), c.Position[0])
	}
}

func TestClearIsIdempotent(t *testing.T) {
	s := scene.New(scene.Vec3{}, scene.White)
	s.ClearCubes()
	s.ClearCubes()
	assert.Empty(t, s.Cubes)

	s.SpawnCube(scene.Vec3{}, 1, scene.Red)
	s.ClearCubes()
	s.ClearCubes()
	assert.Empty(t, s.Cubes)
}

func TestDuplicatesAllowed(t *testing.T) {
	s := scene.New(scene.Vec3{}, scene.White)
	s.SpawnCube(scene.Vec3{1, 2, 3}, 1, scene.Red)
	s.SpawnCube(scene.Vec3{1, 2, 3}, 1, scene.Red)

	require.Len(t, s.Cubes, 2)
	assert.Equal(t, s.Cubes[0], s.Cubes[1])
}

func TestToggles(t *testing.T) {
	s := scene.New(scene.Vec3{}, scene.White)

	s.ToggleGravity()
	assert.False(t, s.GravityEnabled)
	s.ToggleGravity()
	assert.True(t, s.GravityEnabled)

	s.ToggleGrid()
	assert.False(t, s.GridVisible)
	s.SetGridVisible(true)
	assert.True(t, s.GridVisible)

	s.SetBackgroundColor(scene.Red)
	assert.Equal(t, scene.Red, s.Background)

	s.MoveCamera(scene.Vec3{1, -2, 0.5})
	assert.Equal(t, scene.Vec3{1, -2, 0.5}, s.Camera)
}

func TestSnapshotIsIndependent(t *testing.T) {
	s := scene.New(scene.Vec3{5, 5, 5}, scene.White)
	s.SpawnCube(scene.Vec3{0, 4, 0}, 1, scene.Red)

	snap := s.Snapshot()
	s.Cubes[0].Position[1] = 0
	s.SpawnCube(scene.Vec3{1, 1, 1}, 1, scene.Blue)
	s.SetGridVisible(false)

	require.Len(t, snap.Cubes, 1)
	assert.Equal(t, float32(4), snap.Cubes[0].Position[1])
	assert.Equal(t, scene.Red, snap.Cubes[0].Color)
	assert.True(t, snap.GridVisible)
	assert.Equal(t, scene.Vec3{5, 5, 5}, snap.Camera)
}

func TestSnapshotEmpty(t *testing.T) {
	snap := scene.New(scene.Vec3{}, scene.White).Snapshot()
	assert.Empty(t, snap.Cubes)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want scene.Color
	}{
		{"#ff0000", scene.Red},
		{"00ff00", scene.Green},
		{"#0000ffff", scene.Blue},
		{"#ffffff80", scene.Color{R: 1, G: 1, B: 1, A: float32(0x80) / 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := scene.ParseHexColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "#fff", "#gggggg", "#1234567"} {
		_, err := scene.ParseHexColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestHexRoundTrip(t *testing.T) {
	c, err := scene.ParseHexColor(scene.CornflowerBlue.Hex())
	require.NoError(t, err)
	assert.Equal(t, "#6495edff", c.Hex())
	assert.InDelta(t, scene.CornflowerBlue.R, c.R, 1e-6)
	assert.InDelta(t, scene.CornflowerBlue.G, c.G, 1e-6)
	assert.InDelta(t, scene.CornflowerBlue.B, c.B, 1e-6)
}
