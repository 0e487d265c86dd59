package colorcube

import (
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"

	"scene-demos/internal/scene"
)

// Outcome reports whether a color operation changed anything.
// Invalid cube indices are not errors; they yield NoOp.
type Outcome int

const (
	// NoOp means the target did not exist or had nothing to restore; no color changed.
	NoOp Outcome = iota
	// Applied means the operation ran on an existing cube.
	Applied
)

func (o Outcome) String() string {
	if o == Applied {
		return "applied"
	}
	return "no-op"
}

// Cube is a cube with one color per vertex. Vertices are fixed at construction;
// colors[i] is the color of vertices[i] and can be repainted and reset.
type Cube struct {
	vertices []scene.Vec3
	colors   []scene.Color
	initial  []scene.Color // nil when the cube was built without a snapshot
}

// NewCube builds a cube and snapshots colors as its initial colors.
// colors is truncated or padded with opaque white so it matches len(vertices).
func NewCube(vertices []scene.Vec3, colors []scene.Color) *Cube {
	c := newCube(vertices, colors)
	c.initial = cloneColors(c.colors)
	return c
}

// NewCubeWithoutSnapshot builds a cube with no initial colors; Reset on it is a no-op.
func NewCubeWithoutSnapshot(vertices []scene.Vec3, colors []scene.Color) *Cube {
	return newCube(vertices, colors)
}

func newCube(vertices []scene.Vec3, colors []scene.Color) *Cube {
	c := &Cube{
		vertices: append([]scene.Vec3(nil), vertices...),
		colors:   make([]scene.Color, len(vertices)),
	}
	for i := range c.colors {
		if i < len(colors) {
			c.colors[i] = colors[i]
		} else {
			c.colors[i] = scene.White
		}
	}
	return c
}

// Vertices returns a copy of the vertex positions.
func (c *Cube) Vertices() []scene.Vec3 {
	return append([]scene.Vec3(nil), c.vertices...)
}

// Colors returns a copy of the current vertex colors.
func (c *Cube) Colors() []scene.Color {
	return cloneColors(c.colors)
}

// InitialColors returns a copy of the load-time colors, or nil if there is no snapshot.
func (c *Cube) InitialColors() []scene.Color {
	if c.initial == nil {
		return nil
	}
	return cloneColors(c.initial)
}

// Paint sets every vertex to col.
func (c *Cube) Paint(col scene.Color) {
	for i := range c.colors {
		c.colors[i] = col
	}
}

// Reset restores the load-time colors. It is a no-op when the cube has no snapshot.
func (c *Cube) Reset() Outcome {
	if c.initial == nil {
		return NoOp
	}
	copy(c.colors, c.initial)
	return Applied
}

func cloneColors(src []scene.Color) []scene.Color {
	dst := make([]scene.Color, 0, len(src))
	if err := copier.CopyWithOption(&dst, src, copier.Option{DeepCopy: true}); err != nil {
		// same element type on both sides; copier only fails on mismatched kinds
		panic(errors.Wrap(err, "copy colors"))
	}
	return dst
}
