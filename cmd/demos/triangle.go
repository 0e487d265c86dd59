package main

import (
	"scene-demos/internal/commands"
	"scene-demos/internal/config"
	"scene-demos/internal/frameloop"
	"scene-demos/internal/graphics"
	"scene-demos/internal/hud"
	"scene-demos/internal/input/rlinput"
	"scene-demos/internal/render"
	"scene-demos/internal/scene"
	"scene-demos/internal/triangle"
)

func registerTriangle(reg *commands.Registry) {
	var cfgPath, file string
	fs := newFlagSet("triangle", &cfgPath)
	fs.StringVar(&file, "file", "", "triangle vertex file, three \"x y z\" lines (overrides config)")
	reg.Register("triangle", "colored triangle with mouse rotation and tint keys", fs, func() error {
		e, err := loadEnv(cfgPath)
		if err != nil {
			return err
		}
		tc := e.cfg.Triangle
		if file != "" {
			tc.File = file
		}
		fsys, name, err := dirFS(tc.File)
		if err != nil {
			return err
		}
		verts, err := triangle.Load(fsys, name)
		if err != nil {
			return err
		}
		loop := &frameloop.Triangle{State: triangle.New(verts)}
		bg := config.Color(tc.Background, scene.CornflowerBlue)

		r := render.New()
		sampler := rlinput.New()
		overlay := hud.New(e.log, frameloop.TriangleHelp, e.cfg.Debug.ShowHelp)
		draw := frameloop.RendererFunc[triangle.Snapshot](func(s triangle.Snapshot) { r.DrawTriangle(bg, s) })

		opt := e.window("Triangle Color and Camera Control")
		opt.Cleanup = r.Close
		graphics.Run(opt, func(dt float32) bool {
			return frameloop.Frame[triangle.Snapshot](sampler, loop, draw, dt)
		}, overlay.Draw)
		return nil
	})
}
