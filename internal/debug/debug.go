package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime debugging overlays (FPS, heap, demo counters). All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool

	// Stats, if set, returns extra lines such as the cube count. Refreshed with the other text.
	Stats func() []string

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastStats    []string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the heap allocation counter is drawn (top-right, under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// Draw renders enabled overlays right-aligned at the top of the screen.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw() {
	d.frameCount++
	update := d.frameCount%updateInterval == 0 || d.frameCount == 1

	if update {
		if d.ShowFPS {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		if d.ShowMemAlloc {
			runtime.ReadMemStats(&d.lastMemStats)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.lastMemStats.Alloc)/(1024*1024))
		}
		if d.Stats != nil {
			d.lastStats = d.Stats()
		}
	}

	y := int32(padding)
	if d.ShowFPS {
		drawRight(d.lastFpsText, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		drawRight(d.lastMemText, y)
		y += lineHeight
	}
	if d.ShowFPS || d.ShowMemAlloc {
		for _, s := range d.lastStats {
			drawRight(s, y)
			y += lineHeight
		}
	}
}

func drawRight(text string, y int32) {
	if text == "" {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	x := screenW - rl.MeasureText(text, fontSize) - padding
	rl.DrawText(text, x, y, fontSize, rl.Green)
}
