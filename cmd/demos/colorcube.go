package main

import (
	"scene-demos/internal/colorcube"
	"scene-demos/internal/commands"
	"scene-demos/internal/config"
	"scene-demos/internal/debug"
	"scene-demos/internal/frameloop"
	"scene-demos/internal/graphics"
	"scene-demos/internal/hud"
	"scene-demos/internal/input/rlinput"
	"scene-demos/internal/render"
	"scene-demos/internal/scene"
)

func registerColorCube(reg *commands.Registry) {
	var cfgPath, file string
	fs := newFlagSet("colorcube", &cfgPath)
	fs.StringVar(&file, "file", "", "vertex color file (overrides config; created with defaults if missing)")
	reg.Register("colorcube", "cube with per-vertex colors loaded from a text file", fs, func() error {
		e, err := loadEnv(cfgPath)
		if err != nil {
			return err
		}
		cc := e.cfg.ColorCube
		if file != "" {
			cc.File = file
		}
		fsys, name, err := dirFS(cc.File)
		if err != nil {
			return err
		}
		created, err := colorcube.EnsureFile(fsys, name)
		if err != nil {
			return err
		}
		if created {
			e.log.Logf("%s did not exist; wrote default cube data", cc.File)
		}
		data, err := colorcube.Load(fsys, name)
		if err != nil {
			return err
		}
		for i, v := range data.Vertices {
			c := data.Colors[i]
			e.log.Logf("vertex (%g, %g, %g) color (R: %g, G: %g, B: %g)", v[0], v[1], v[2], c.R, c.G, c.B)
		}
		if data.Skipped > 0 {
			e.log.Logf("skipped %d malformed line(s) in %s", data.Skipped, cc.File)
		}

		sc := colorcube.NewScene(cc.Camera, config.Color(cc.Background, scene.CornflowerBlue))
		sc.Add(data.Cube())
		opts := scene.DefaultSpawnOptions()
		opts.Seed = cc.Seed
		loop := frameloop.NewColorCube(sc, scene.NewSpawner(opts), cc.CameraSpeed, e.log)

		r := render.New()
		sampler := rlinput.New()
		overlay := hud.New(e.log, frameloop.ColorCubeHelp, e.cfg.Debug.ShowHelp)
		dbg := debug.New()
		dbg.SetShowFPS(e.cfg.Debug.ShowFPS)
		dbg.SetShowMemAlloc(e.cfg.Debug.ShowMemAlloc)

		opt := e.window("3D Color Manipulation Cube")
		opt.Cleanup = r.Close
		graphics.Run(opt, func(dt float32) bool {
			return frameloop.Frame[colorcube.Snapshot](sampler, loop, frameloop.RendererFunc[colorcube.Snapshot](r.DrawColorCube), dt)
		}, func() {
			overlay.Draw()
			dbg.Draw()
		})
		return nil
	})
}
