package frameloop

import (
	"scene-demos/internal/input"
	"scene-demos/internal/logger"
	"scene-demos/internal/physics"
	"scene-demos/internal/scene"
)

// SpawnerHelp is the key legend shown by the falling-cubes demo.
var SpawnerHelp = []string{
	"ESC - quit",
	"B - random background color",
	"V - toggle grid",
	"G - toggle gravity",
	"Left click - spawn cube",
	"Right click - clear cubes",
	"W, A, S, D - move camera",
}

// Spawner is the falling-cubes demo loop.
type Spawner struct {
	Scene       *scene.State
	World       *physics.World
	Rand        *scene.Spawner
	CameraSpeed float32
	log         *logger.Logger
}

// NewSpawner wires a scene, a physics world and a random cube source into a loop.
// cameraSpeed is the camera step per frame while a movement key is held.
func NewSpawner(s *scene.State, w *physics.World, rnd *scene.Spawner, cameraSpeed float32, log *logger.Logger) *Spawner {
	if log == nil {
		log = logger.Discard()
	}
	return &Spawner{Scene: s, World: w, Rand: rnd, CameraSpeed: cameraSpeed, log: log}
}

// Tick applies input, lets the cubes fall for dt seconds and returns the frame's snapshot.
// Toggles act on held keys, so holding G or V flips the flag on every frame it is held.
func (l *Spawner) Tick(in input.State, dt float32) scene.Snapshot {
	l.applyInput(in)
	l.World.Step(l.Scene, dt)
	return l.Scene.Snapshot()
}

func (l *Spawner) applyInput(in input.State) {
	speed := l.CameraSpeed
	if in.Down(input.KeyW) {
		l.Scene.MoveCamera(scene.Vec3{-speed, 0, 0})
	}
	if in.Down(input.KeyS) {
		l.Scene.MoveCamera(scene.Vec3{speed, 0, 0})
	}
	if in.Down(input.KeyA) {
		l.Scene.MoveCamera(scene.Vec3{0, 0, speed})
	}
	if in.Down(input.KeyD) {
		l.Scene.MoveCamera(scene.Vec3{0, 0, -speed})
	}

	if in.Down(input.KeyB) {
		c := l.Rand.Color()
		l.Scene.SetBackgroundColor(c)
		l.log.Logf("background changed to %s", c.Hex())
	}
	if in.Down(input.KeyV) {
		l.Scene.ToggleGrid()
	}
	if in.Down(input.KeyG) {
		l.Scene.ToggleGravity()
	}

	if in.Pressed(input.ButtonLeft) {
		l.Rand.Spawn(l.Scene)
	} else if in.Pressed(input.ButtonRight) {
		l.Scene.ClearCubes()
		l.log.Log("cube list cleared")
	}
}
