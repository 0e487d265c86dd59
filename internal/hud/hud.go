package hud

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-demos/internal/logger"
)

const (
	fontSize   = 18
	padding    = 8
	lineHeight = fontSize + 4
	// Number of log lines drawn at the bottom of the screen.
	maxLogLines = 6
	// Long log lines are cut to this many bytes.
	maxLineLen = 120
)

var (
	panelColor = rl.NewColor(24, 24, 24, 200)
	textColor  = rl.LightGray
)

// HUD draws the key legend in the top-left corner and the most recent log lines at the bottom.
// F1 shows/hides it.
type HUD struct {
	log     *logger.Logger
	help    []string
	visible bool
}

// New returns a HUD showing help and the tail of log. It starts visible when visible is true.
func New(log *logger.Logger, help []string, visible bool) *HUD {
	return &HUD{log: log, help: help, visible: visible}
}

// Draw handles the F1 toggle and draws the overlay. Call after the scene, inside BeginDrawing.
func (h *HUD) Draw() {
	if rl.IsKeyPressed(rl.KeyF1) {
		h.visible = !h.visible
	}
	if !h.visible {
		return
	}
	if len(h.help) > 0 {
		height := int32(len(h.help)*lineHeight + 2*padding)
		rl.DrawRectangle(0, 0, widest(h.help)+2*padding, height, panelColor)
		for i, line := range h.help {
			rl.DrawText(line, padding, int32(padding+i*lineHeight), fontSize, textColor)
		}
	}

	lines := h.log.Tail(maxLogLines)
	if len(lines) == 0 {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	height := int32(len(lines)*lineHeight + 2*padding)
	y := screenH - height
	rl.DrawRectangle(0, y, screenW, height, panelColor)
	for i, line := range lines {
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		rl.DrawText(line, padding, y+int32(padding+i*lineHeight), fontSize, textColor)
	}
}

func widest(lines []string) int32 {
	var w int32
	for _, l := range lines {
		if lw := rl.MeasureText(l, fontSize); lw > w {
			w = lw
		}
	}
	return w
}
