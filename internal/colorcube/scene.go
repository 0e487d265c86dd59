package colorcube

import (
	"scene-demos/internal/scene"
)

// Faces lists the cube's six faces as vertex-index quads in the default vertex order
// (front, back, left, right, top, bottom). Each face is drawn twice with a rotated
// quad so both windings are covered.
var Faces = [][4]int{
	{0, 1, 2, 3}, {0, 2, 3, 1},
	{4, 5, 6, 7}, {4, 6, 7, 5},
	{0, 3, 7, 4}, {0, 7, 4, 3},
	{1, 2, 6, 5}, {1, 6, 5, 2},
	{0, 1, 5, 4}, {0, 5, 4, 1},
	{2, 3, 7, 6}, {2, 7, 6, 3},
}

// Scene holds the per-vertex colored cubes of the color demo together with the camera and background.
type Scene struct {
	Cubes      []*Cube
	Camera     scene.Vec3
	Background scene.Color
}

// NewScene returns an empty scene.
func NewScene(camera scene.Vec3, background scene.Color) *Scene {
	return &Scene{Camera: camera, Background: background}
}

// Add appends a cube and returns its index.
func (s *Scene) Add(c *Cube) int {
	s.Cubes = append(s.Cubes, c)
	return len(s.Cubes) - 1
}

func (s *Scene) cube(index int) *Cube {
	if index < 0 || index >= len(s.Cubes) {
		return nil
	}
	return s.Cubes[index]
}

// SetUniformColor paints every vertex of the cube at index with col.
// An out-of-range index is tolerated and returns NoOp.
func (s *Scene) SetUniformColor(index int, col scene.Color) Outcome {
	c := s.cube(index)
	if c == nil {
		return NoOp
	}
	c.Paint(col)
	return Applied
}

// ResetColor restores the load-time colors of the cube at index.
// An out-of-range index or a cube without a color snapshot returns NoOp.
func (s *Scene) ResetColor(index int) Outcome {
	c := s.cube(index)
	if c == nil {
		return NoOp
	}
	return c.Reset()
}

// MoveCamera offsets the camera; it always looks at the origin.
func (s *Scene) MoveCamera(d scene.Vec3) {
	s.Camera = s.Camera.Add(d)
}

// Vertex is one colored corner in a draw list.
type Vertex struct {
	Position scene.Vec3
	Color    scene.Color
}

// Snapshot is the render-ready form of a Scene: a flat triangle list, three vertices per triangle.
type Snapshot struct {
	Background scene.Color
	Camera     scene.Vec3
	Triangles  []Vertex
}

// Snapshot builds the triangle list for every cube. Faces referring to vertices the cube
// does not have (a data file with fewer than 8 valid lines) are skipped.
func (s *Scene) Snapshot() Snapshot {
	snap := Snapshot{Background: s.Background, Camera: s.Camera}
	for _, c := range s.Cubes {
		snap.Triangles = appendTriangles(snap.Triangles, c)
	}
	return snap
}

func appendTriangles(dst []Vertex, c *Cube) []Vertex {
	n := len(c.vertices)
	for _, f := range Faces {
		if f[0] >= n || f[1] >= n || f[2] >= n || f[3] >= n {
			continue
		}
		for _, i := range [6]int{f[0], f[1], f[2], f[0], f[2], f[3]} {
			dst = append(dst, Vertex{Position: c.vertices[i], Color: c.colors[i]})
		}
	}
	return dst
}
