package main

import (
	"fmt"

	"scene-demos/internal/commands"
	"scene-demos/internal/config"
	"scene-demos/internal/debug"
	"scene-demos/internal/frameloop"
	"scene-demos/internal/graphics"
	"scene-demos/internal/hud"
	"scene-demos/internal/input/rlinput"
	"scene-demos/internal/physics"
	"scene-demos/internal/render"
	"scene-demos/internal/scene"
)

func registerSpawner(reg *commands.Registry) {
	var cfgPath string
	var seed int64
	fs := newFlagSet("spawner", &cfgPath)
	fs.Int64Var(&seed, "seed", 0, "random seed for spawned cubes (0 = time based; overrides config)")
	reg.Register("spawner", "falling cubes with gravity, grid and background toggles", fs, func() error {
		e, err := loadEnv(cfgPath)
		if err != nil {
			return err
		}
		sc := e.cfg.Spawner
		if seed != 0 {
			sc.Seed = seed
		}
		st := scene.New(sc.Camera, config.Color(sc.Background, scene.CornflowerBlue))
		st.SetGridVisible(sc.GridVisible)
		world := physics.NewWorld()
		world.SetGravity(sc.Gravity)
		opts := scene.DefaultSpawnOptions()
		opts.Seed = sc.Seed
		loop := frameloop.NewSpawner(st, world, scene.NewSpawner(opts), sc.CameraSpeed, e.log)

		r := render.New()
		sampler := rlinput.New()
		overlay := hud.New(e.log, frameloop.SpawnerHelp, e.cfg.Debug.ShowHelp)
		dbg := debug.New()
		dbg.SetShowFPS(e.cfg.Debug.ShowFPS)
		dbg.SetShowMemAlloc(e.cfg.Debug.ShowMemAlloc)
		dbg.Stats = func() []string {
			return []string{fmt.Sprintf("Cubes: %d", len(st.Cubes)), fmt.Sprintf("Gravity: %t", st.GravityEnabled)}
		}

		opt := e.window("3D Cube Spawner")
		opt.Cleanup = r.Close
		graphics.Run(opt, func(dt float32) bool {
			return frameloop.Frame[scene.Snapshot](sampler, loop, frameloop.RendererFunc[scene.Snapshot](r.DrawScene), dt)
		}, func() {
			overlay.Draw()
			dbg.Draw()
		})
		return nil
	})
}
