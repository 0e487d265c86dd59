package frameloop

import (
	"scene-demos/internal/colorcube"
	"scene-demos/internal/input"
	"scene-demos/internal/logger"
	"scene-demos/internal/scene"
)

// ColorCubeHelp is the key legend shown by the color demo.
var ColorCubeHelp = []string{
	"ESC - quit",
	"R, G, B - paint red, green, blue",
	"V - random color",
	"T - translucent red",
	"C - restore loaded colors",
	"W, A, S, D, Q, E - move camera",
}

// translucentRed is painted by T.
var translucentRed = scene.Color{R: 1, A: 0.5}

// ColorCube is the per-vertex color demo loop. Color keys act on Target.
type ColorCube struct {
	Scene       *colorcube.Scene
	Rand        *scene.Spawner
	CameraSpeed float32
	Target      int
	log         *logger.Logger
}

// NewColorCube returns a loop that paints cube 0 of s.
func NewColorCube(s *colorcube.Scene, rnd *scene.Spawner, cameraSpeed float32, log *logger.Logger) *ColorCube {
	if log == nil {
		log = logger.Discard()
	}
	return &ColorCube{Scene: s, Rand: rnd, CameraSpeed: cameraSpeed, log: log}
}

// Tick applies color and camera input and returns the frame's triangle list.
// Nothing in this demo depends on dt.
func (l *ColorCube) Tick(in input.State, _ float32) colorcube.Snapshot {
	if in.Down(input.KeyR) {
		l.paint(scene.Red)
	}
	if in.Down(input.KeyG) {
		l.paint(scene.Green)
	}
	if in.Down(input.KeyB) {
		l.paint(scene.Blue)
	}
	if in.Down(input.KeyV) {
		l.paint(l.Rand.Color())
	}
	if in.Down(input.KeyT) {
		l.paint(translucentRed)
	}
	if in.Down(input.KeyC) {
		if l.Scene.ResetColor(l.Target) == colorcube.Applied {
			l.log.Log("cube colors reset to initial values")
		}
	}

	speed := l.CameraSpeed
	if in.Down(input.KeyW) {
		l.Scene.MoveCamera(scene.Vec3{0, 0, -speed})
	}
	if in.Down(input.KeyS) {
		l.Scene.MoveCamera(scene.Vec3{0, 0, speed})
	}
	if in.Down(input.KeyA) {
		l.Scene.MoveCamera(scene.Vec3{-speed, 0, 0})
	}
	if in.Down(input.KeyD) {
		l.Scene.MoveCamera(scene.Vec3{speed, 0, 0})
	}
	if in.Down(input.KeyQ) {
		l.Scene.MoveCamera(scene.Vec3{0, speed, 0})
	}
	if in.Down(input.KeyE) {
		l.Scene.MoveCamera(scene.Vec3{0, -speed, 0})
	}
	return l.Scene.Snapshot()
}

func (l *ColorCube) paint(c scene.Color) {
	if l.Scene.SetUniformColor(l.Target, c) == colorcube.Applied {
		l.log.Logf("cube color changed to R:%.2f G:%.2f B:%.2f", c.R, c.G, c.B)
	}
}
