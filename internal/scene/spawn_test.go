package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scene-demos/internal/scene"
)

func TestSpawnerRanges(t *testing.T) {
	opts := scene.DefaultSpawnOptions()
	opts.Seed = 42
	sp := scene.NewSpawner(opts)

	for i := 0; i < 200; i++ {
		pos, size, c := sp.Next()
		assert.GreaterOrEqual(t, pos[0], float32(0))
		assert.Less(t, pos[0], float32(1))
		assert.GreaterOrEqual(t, pos[1], float32(3))
		assert.Less(t, pos[1], float32(6))
		assert.GreaterOrEqual(t, pos[2], float32(0))
		assert.Less(t, pos[2], float32(1))
		assert.GreaterOrEqual(t, size, float32(0.5))
		assert.Less(t, size, float32(1.0))
		assert.Equal(t, float32(1), c.A)
	}
}

func TestSpawnerSeedIsDeterministic(t *testing.T) {
	opts := scene.DefaultSpawnOptions()
	opts.Seed = 7
	a, b := scene.NewSpawner(opts), scene.NewSpawner(opts)

	for i := 0; i < 10; i++ {
		pa, sa, ca := a.Next()
		pb, sb, cb := b.Next()
		assert.Equal(t, pa, pb)
		assert.Equal(t, sa, sb)
		assert.Equal(t, ca, cb)
	}
}

func TestSpawnAppends(t *testing.T) {
	opts := scene.DefaultSpawnOptions()
	opts.Seed = 1
	sp := scene.NewSpawner(opts)
	s := scene.New(scene.Vec3{}, scene.White)

	sp.Spawn(s)
	sp.Spawn(s)

	assert.Len(t, s.Cubes, 2)
}

func TestSpawnerFixesBadSizes(t *testing.T) {
	sp := scene.NewSpawner(scene.SpawnOptions{MinSize: -1, MaxSize: -2, Seed: 3})
	_, size, _ := sp.Next()
	assert.Equal(t, float32(0.5), size)
}
