package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-demos/internal/colorcube"
	"scene-demos/internal/scene"
	"scene-demos/internal/triangle"
)

const (
	gridHalfSize = 10
	gridSpacing  = 1
	axisLength   = 5
	fovy         = 45
	// orthoHeight is the visible height of the triangle view, matching a -1..1 orthographic box.
	orthoHeight = 2
)

// Renderer draws demo snapshots with raylib. All methods must be called between
// BeginDrawing and EndDrawing on the window thread.
type Renderer struct {
	cube litCube
}

// New returns a renderer. GPU resources are created on first use.
func New() *Renderer {
	return &Renderer{}
}

// Close releases GPU resources. Call before the window closes.
func (r *Renderer) Close() {
	r.cube.unload()
}

// DrawScene draws the falling-cubes demo: axes, optional grid, then cubes in spawn order.
func (r *Renderer) DrawScene(snap scene.Snapshot) {
	rl.ClearBackground(Color(snap.Background))
	cam := perspective(snap.Camera)
	r.cube.setView(cam.Position)
	rl.BeginMode3D(cam)
	drawAxes()
	if snap.GridVisible {
		drawGrid()
	}
	for _, c := range snap.Cubes {
		r.cube.draw(vec3(c.Position), c.Size, Color(c.Color))
	}
	rl.EndMode3D()
}

// DrawColorCube draws the per-vertex colored triangle list using immediate-mode vertices.
func (r *Renderer) DrawColorCube(snap colorcube.Snapshot) {
	rl.ClearBackground(Color(snap.Background))
	rl.BeginMode3D(perspective(snap.Camera))
	rl.Begin(rl.Triangles)
	for _, v := range snap.Triangles {
		c := Color(v.Color)
		rl.Color4ub(c.R, c.G, c.B, c.A)
		rl.Vertex3f(v.Position[0], v.Position[1], v.Position[2])
	}
	rl.End()
	rl.EndMode3D()
}

// DrawTriangle draws the triangle demo in an orthographic view. Corners keep their fixed
// colors with the tint's alpha; the outline is drawn in the tint color.
func (r *Renderer) DrawTriangle(bg scene.Color, snap triangle.Snapshot) {
	rl.ClearBackground(Color(bg))
	cam := rl.Camera3D{
		Position:   rl.NewVector3(0, 0, 10),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       orthoHeight,
		Projection: rl.CameraOrthographic,
	}
	rl.BeginMode3D(cam)
	rl.Begin(rl.Triangles)
	for i, p := range snap.Corners {
		col := snap.Colors[i]
		col.A = snap.Tint.A
		c := Color(col)
		rl.Color4ub(c.R, c.G, c.B, c.A)
		rl.Vertex3f(p[0], p[1], p[2])
	}
	rl.End()
	tint := Color(snap.Tint)
	for i := range snap.Corners {
		rl.DrawLine3D(vec3(snap.Corners[i]), vec3(snap.Corners[(i+1)%3]), tint)
	}
	rl.EndMode3D()
}

func perspective(pos scene.Vec3) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec3(pos),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       fovy,
		Projection: rl.CameraPerspective,
	}
}

// drawAxes draws the X (red), Y (green) and Z (blue) axes from the origin.
func drawAxes() {
	origin := rl.NewVector3(0, 0, 0)
	rl.DrawLine3D(origin, rl.NewVector3(axisLength, 0, 0), rl.Red)
	rl.DrawLine3D(origin, rl.NewVector3(0, axisLength, 0), rl.Green)
	rl.DrawLine3D(origin, rl.NewVector3(0, 0, axisLength), rl.Blue)
}

// drawGrid draws a white grid on the XZ plane (Y=0).
func drawGrid() {
	var start, end rl.Vector3
	extent := float32(gridHalfSize * gridSpacing)
	for i := -gridHalfSize; i <= gridHalfSize; i++ {
		f := float32(i * gridSpacing)
		start.X, start.Y, start.Z = f, 0, -extent
		end.X, end.Y, end.Z = f, 0, extent
		rl.DrawLine3D(start, end, rl.White)
		start.X, start.Y, start.Z = -extent, 0, f
		end.X, end.Y, end.Z = extent, 0, f
		rl.DrawLine3D(start, end, rl.White)
	}
}

func vec3(v scene.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

// Color converts a scene color to a raylib color, clamping channels to [0,1].
func Color(c scene.Color) rl.Color {
	return rl.NewColor(channel(c.R), channel(c.G), channel(c.B), channel(c.A))
}

func channel(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}
