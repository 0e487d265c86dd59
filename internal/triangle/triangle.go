package triangle

import (
	"bufio"
	"bytes"
	"io/fs"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/hack-pad/hackpadfs"
	"github.com/pkg/errors"

	"scene-demos/internal/scene"
)

// DefaultFile is the vertex file name used when none is configured.
const DefaultFile = "triangle_vertices.txt"

const (
	// colorStep is how much a held R/G/B/A key changes its channel per frame.
	colorStep = 0.01
	// mouseSensitivity converts mouse movement in pixels to degrees of rotation.
	mouseSensitivity = 0.1
)

// CornerColors are the fixed corner colors: red, green, blue.
var CornerColors = [3]scene.Color{scene.Red, scene.Green, scene.Blue}

// DefaultTint is the tint the triangle starts with and returns to on reset.
var DefaultTint = scene.Red

// State is the triangle demo: three corners, an adjustable tint, and the view angles in degrees.
type State struct {
	Vertices [3]scene.Vec3
	Tint     scene.Color
	Yaw      float32 // rotation around Y, driven by horizontal mouse movement
	Pitch    float32 // rotation around X, driven by vertical mouse movement
}

// New returns a triangle with the default tint and no rotation.
func New(vertices [3]scene.Vec3) *State {
	return &State{Vertices: vertices, Tint: DefaultTint}
}

// Load reads three "x y z" lines from name. Extra lines are ignored.
func Load(fsys hackpadfs.FS, name string) ([3]scene.Vec3, error) {
	var out [3]scene.Vec3
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return out, errors.Wrapf(err, "read %s", name)
	}
	sc := bufio.NewScanner(bytes.NewReader(b))
	n := 0
	for n < len(out) && sc.Scan() {
		parts := strings.Split(sc.Text(), " ")
		if len(parts) < 3 {
			return out, errors.Errorf("%s: line %d: want 3 space-separated numbers", name, n+1)
		}
		for i := 0; i < 3; i++ {
			f, err := strconv.ParseFloat(parts[i], 32)
			if err != nil {
				return out, errors.Wrapf(err, "%s: line %d", name, n+1)
			}
			out[n][i] = float32(f)
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return out, errors.Wrapf(err, "read %s", name)
	}
	if n < len(out) {
		return out, errors.Errorf("%s: want 3 vertex lines, got %d", name, n)
	}
	return out, nil
}

// RaiseRed, RaiseGreen and RaiseBlue brighten one tint channel, saturating at 1.
func (s *State) RaiseRed() { s.Tint.R = math32.Min(1, s.Tint.R+colorStep) }
func (s *State) RaiseGreen() { s.Tint.G = math32.Min(1, s.Tint.G+colorStep) }
func (s *State) RaiseBlue() { s.Tint.B = math32.Min(1, s.Tint.B+colorStep) }

// Fade lowers the tint alpha, stopping at 0.
func (s *State) Fade() {
	s.Tint.A = math32.Max(0, s.Tint.A-colorStep)
}

// ResetTint returns the tint to opaque red.
func (s *State) ResetTint() {
	s.Tint = DefaultTint
}

// Rotate turns the view by a mouse movement of (dx, dy) pixels.
func (s *State) Rotate(dx, dy float32) {
	s.Yaw += dx * mouseSensitivity
	s.Pitch += dy * mouseSensitivity
}

// Snapshot is the triangle as the renderer should draw it: corners already rotated into view space.
type Snapshot struct {
	Corners [3]scene.Vec3
	Colors  [3]scene.Color
	Tint    scene.Color
}

// Snapshot rotates the corners by pitch around X, then by yaw around Y.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{Colors: CornerColors, Tint: s.Tint}
	yaw := s.Yaw * math32.Pi / 180
	pitch := s.Pitch * math32.Pi / 180
	for i, v := range s.Vertices {
		snap.Corners[i] = rotateY(rotateX(v, pitch), yaw)
	}
	return snap
}

func rotateX(v scene.Vec3, a float32) scene.Vec3 {
	sin, cos := math32.Sincos(a)
	return scene.Vec3{v[0], v[1]*cos - v[2]*sin, v[1]*sin + v[2]*cos}
}

func rotateY(v scene.Vec3, a float32) scene.Vec3 {
	sin, cos := math32.Sincos(a)
	return scene.Vec3{v[0]*cos + v[2]*sin, v[1], -v[0]*sin + v[2]*cos}
}
