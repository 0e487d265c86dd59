package colorcube_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-demos/internal/colorcube"
	"scene-demos/internal/scene"
)

func unitCube() *colorcube.Cube {
	d, err := colorcube.Parse(defaultReader())
	if err != nil {
		panic(err)
	}
	return d.Cube()
}

func TestSetUniformColor(t *testing.T) {
	s := colorcube.NewScene(scene.Vec3{0, 0, 5}, scene.White)
	idx := s.Add(unitCube())

	got := s.SetUniformColor(idx, scene.Green)

	assert.Equal(t, colorcube.Applied, got)
	for _, c := range s.Cubes[idx].Colors() {
		assert.Equal(t, scene.Green, c)
	}
}

func TestResetRestoresInitial(t *testing.T) {
	s := colorcube.NewScene(scene.Vec3{}, scene.White)
	idx := s.Add(unitCube())
	initial := s.Cubes[idx].Colors()

	s.SetUniformColor(idx, scene.Red)
	s.SetUniformColor(idx, scene.Color{R: 1, A: 0.5})
	got := s.ResetColor(idx)

	assert.Equal(t, colorcube.Applied, got)
	assert.Equal(t, initial, s.Cubes[idx].Colors())
}

func TestResetIsIdempotent(t *testing.T) {
	s := colorcube.NewScene(scene.Vec3{}, scene.White)
	idx := s.Add(unitCube())
	s.SetUniformColor(idx, scene.Blue)

	s.ResetColor(idx)
	once := s.Cubes[idx].Colors()
	s.ResetColor(idx)

	assert.Equal(t, once, s.Cubes[idx].Colors())
}

func TestOutOfRangeIsNoOp(t *testing.T) {
	s := colorcube.NewScene(scene.Vec3{}, scene.White)
	idx := s.Add(unitCube())
	before := s.Cubes[idx].Colors()

	assert.Equal(t, colorcube.NoOp, s.SetUniformColor(-1, scene.Red))
	assert.Equal(t, colorcube.NoOp, s.SetUniformColor(1, scene.Red))
	assert.Equal(t, colorcube.NoOp, s.ResetColor(5))
	assert.Equal(t, before, s.Cubes[idx].Colors())

	empty := colorcube.NewScene(scene.Vec3{}, scene.White)
	assert.Equal(t, colorcube.NoOp, empty.SetUniformColor(0, scene.Red))
	assert.Equal(t, colorcube.NoOp, empty.ResetColor(0))
}

func TestResetWithoutSnapshot(t *testing.T) {
	verts := []scene.Vec3{{0, 0, 0}, {1, 0, 0}}
	c := colorcube.NewCubeWithoutSnapshot(verts, []scene.Color{scene.Red, scene.Blue})
	c.Paint(scene.Green)

	assert.Equal(t, colorcube.NoOp, c.Reset())
	assert.Nil(t, c.InitialColors())
	assert.Equal(t, []scene.Color{scene.Green, scene.Green}, c.Colors())
}

func TestVerticesNeverChange(t *testing.T) {
	c := unitCube()
	before := c.Vertices()

	c.Paint(scene.Red)
	c.Reset()

	assert.Equal(t, before, c.Vertices())
	assert.Len(t, c.Colors(), len(before))
}

func TestInitialColorsAreACopy(t *testing.T) {
	c := unitCube()
	initial := c.InitialColors()
	initial[0] = scene.Color{}

	c.Paint(scene.Blue)
	c.Reset()

	assert.Equal(t, scene.Red, c.Colors()[0])
}

func TestNewCubePadsAndTruncatesColors(t *testing.T) {
	verts := []scene.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	padded := colorcube.NewCube(verts, []scene.Color{scene.Red})
	assert.Equal(t, []scene.Color{scene.Red, scene.White, scene.White}, padded.Colors())

	cut := colorcube.NewCube(verts[:1], []scene.Color{scene.Red, scene.Green})
	assert.Equal(t, []scene.Color{scene.Red}, cut.Colors())
}

func TestSnapshotTriangles(t *testing.T) {
	s := colorcube.NewScene(scene.Vec3{0, 0, 5}, scene.White)
	s.Add(unitCube())

	snap := s.Snapshot()

	require.Len(t, snap.Triangles, len(colorcube.Faces)*6)
	first := colorcube.Faces[0]
	verts := s.Cubes[0].Vertices()
	assert.Equal(t, verts[first[0]], snap.Triangles[0].Position)
	assert.Equal(t, verts[first[2]], snap.Triangles[4].Position)
	assert.Equal(t, verts[first[3]], snap.Triangles[5].Position)
	assert.Equal(t, scene.Vec3{0, 0, 5}, snap.Camera)
}

func TestSnapshotSkipsMissingVertices(t *testing.T) {
	verts := []scene.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	s := colorcube.NewScene(scene.Vec3{}, scene.White)
	s.Add(colorcube.NewCube(verts, nil))

	snap := s.Snapshot()

	// only the two front quads reference indices 0..3
	assert.Len(t, snap.Triangles, 12)
}

func TestSnapshotTracksPaint(t *testing.T) {
	s := colorcube.NewScene(scene.Vec3{}, scene.White)
	idx := s.Add(unitCube())
	s.SetUniformColor(idx, scene.Blue)

	for _, v := range s.Snapshot().Triangles {
		assert.Equal(t, scene.Blue, v.Color)
	}
}

func TestMoveCamera(t *testing.T) {
	s := colorcube.NewScene(scene.Vec3{0, 0, 5}, scene.White)
	s.MoveCamera(scene.Vec3{0, 0, -0.5})
	assert.Equal(t, scene.Vec3{0, 0, 4.5}, s.Camera)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "applied", colorcube.Applied.String())
	assert.Equal(t, "no-op", colorcube.NoOp.String())
}
