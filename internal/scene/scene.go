package scene

import (
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

// Cube is one drawable box. Position is the cube centre and is the only mutable field;
// size and color are fixed when the cube is spawned.
type Cube struct {
	Position Vec3
	Size     float32
	Color    Color
}

// State holds the world between frames: the cubes in spawn order plus the global view settings.
// It is owned by a single frame loop and is not safe for concurrent use.
type State struct {
	Cubes          []Cube
	Background     Color
	Camera         Vec3
	GravityEnabled bool
	GridVisible    bool
}

// New returns an empty scene with the given camera position and background.
// Gravity is on and the grid is visible by default.
func New(camera Vec3, background Color) *State {
	return &State{
		Background:     background,
		Camera:         camera,
		GravityEnabled: true,
		GridVisible:    true,
	}
}

// SpawnCube appends a cube. There is no upper bound on the number of cubes.
func (s *State) SpawnCube(position Vec3, size float32, color Color) {
	s.Cubes = append(s.Cubes, Cube{Position: position, Size: size, Color: color})
}

// ClearCubes removes every cube. Calling it on an empty scene does nothing.
func (s *State) ClearCubes() {
	s.Cubes = s.Cubes[:0]
}

// SetBackgroundColor replaces the clear color used from the next frame on.
func (s *State) SetBackgroundColor(c Color) {
	s.Background = c
}

// ToggleGravity flips the gravity flag for all cubes.
func (s *State) ToggleGravity() {
	s.GravityEnabled = !s.GravityEnabled
}

// SetGridVisible sets whether the ground grid is drawn.
func (s *State) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// ToggleGrid flips grid visibility.
func (s *State) ToggleGrid() {
	s.GridVisible = !s.GridVisible
}

// MoveCamera offsets the camera position. The camera always looks at the origin.
func (s *State) MoveCamera(d Vec3) {
	s.Camera = s.Camera.Add(d)
}

// Snapshot is the render-ready view of a State for one frame.
// It shares no memory with the State it was taken from.
type Snapshot struct {
	Background  Color
	Camera      Vec3
	GridVisible bool
	Cubes       []Cube
}

// Snapshot copies the drawable parts of the scene.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Background:  s.Background,
		Camera:      s.Camera,
		GridVisible: s.GridVisible,
	}
	if len(s.Cubes) > 0 {
		if err := copier.CopyWithOption(&snap.Cubes, s.Cubes, copier.Option{DeepCopy: true}); err != nil {
			// []Cube to []Cube; copier only fails on mismatched kinds
			panic(errors.Wrap(err, "snapshot cubes"))
		}
	}
	return snap
}
