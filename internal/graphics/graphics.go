package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Options describes the demo window.
type Options struct {
	Width, Height int32
	Title         string
	FPS           int32
	// Cleanup, if set, runs after the loop ends and before the window closes (e.g. to unload GPU resources).
	Cleanup       func()
}

// Run opens the window and runs the main loop. Each frame it calls frame with the elapsed seconds
// between BeginDrawing and EndDrawing, then overlay (e.g. help text, FPS) on top.
// The loop ends when frame returns true or the window is closed. ESC closes the window.
func Run(opts Options, frame func(dt float32) (quit bool), overlay func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	rl.InitWindow(opts.Width, opts.Height, opts.Title)
	defer rl.CloseWindow()
	if opts.Cleanup != nil {
		defer opts.Cleanup()
	}

	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(opts.FPS)

	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		quit := frame(rl.GetFrameTime())
		if overlay != nil {
			overlay()
		}
		rl.EndDrawing()
		if quit {
			break
		}
	}
}
