package scene

import (
	"math/rand"
	"time"
)

// SpawnOptions controls where random cubes appear and how big they are.
// Min/Max pairs are half-open ranges [Min, Max). Seed == 0 uses a time-based seed.
type SpawnOptions struct {
	MinPosition Vec3
	MaxPosition Vec3
	MinSize     float32
	MaxSize     float32
	Seed        int64
}

// DefaultSpawnOptions drops cubes from between 3 and 6 units above a 1x1 patch next to the origin.
func DefaultSpawnOptions() SpawnOptions {
	return SpawnOptions{
		MinPosition: Vec3{0, 3, 0},
		MaxPosition: Vec3{1, 6, 1},
		MinSize:     0.5,
		MaxSize:     1.0,
	}
}

// Spawner produces random cubes and colors. Two spawners with the same non-zero seed
// produce the same sequence.
type Spawner struct {
	opts SpawnOptions
	rng  *rand.Rand
}

// NewSpawner returns a spawner. Sizes that are not positive fall back to the defaults.
func NewSpawner(opts SpawnOptions) *Spawner {
	def := DefaultSpawnOptions()
	if opts.MinSize <= 0 {
		opts.MinSize = def.MinSize
	}
	if opts.MaxSize < opts.MinSize {
		opts.MaxSize = opts.MinSize
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Spawner{opts: opts, rng: rand.New(rand.NewSource(seed))}
}

// Spawn adds one random cube to s.
func (sp *Spawner) Spawn(s *State) {
	pos, size, color := sp.Next()
	s.SpawnCube(pos, size, color)
}

// Next returns the position, size and color for the next random cube.
func (sp *Spawner) Next() (Vec3, float32, Color) {
	var pos Vec3
	for i := range pos {
		pos[i] = sp.between(sp.opts.MinPosition[i], sp.opts.MaxPosition[i])
	}
	size := sp.between(sp.opts.MinSize, sp.opts.MaxSize)
	return pos, size, sp.Color()
}

// Color returns a random opaque color.
func (sp *Spawner) Color() Color {
	return RGB(sp.rng.Float32(), sp.rng.Float32(), sp.rng.Float32())
}

func (sp *Spawner) between(lo, hi float32) float32 {
	return lo + sp.rng.Float32()*(hi-lo)
}
