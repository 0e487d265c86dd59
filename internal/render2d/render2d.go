// Package render2d hosts the 2D square demo on ebiten.
package render2d

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"scene-demos/internal/frameloop"
	"scene-demos/internal/input"
	"scene-demos/internal/quad"
	"scene-demos/internal/scene"
)

// Game adapts the quad frame loop to ebiten.Game. Update runs the frame loop and keeps the
// snapshot; Draw paints the last snapshot.
type Game struct {
	width, height int
	sampler       input.Sampler
	loop          frameloop.Loop[quad.Snapshot]
	last          quad.Snapshot
}

// NewGame returns a game with a logical screen of width x height pixels.
func NewGame(width, height int, sampler input.Sampler, loop frameloop.Loop[quad.Snapshot]) *Game {
	return &Game{width: width, height: height, sampler: sampler, loop: loop}
}

// Update runs one frame. ESC ends the game.
func (g *Game) Update() error {
	keep := frameloop.RendererFunc[quad.Snapshot](func(s quad.Snapshot) { g.last = s })
	dt := frameloop.TickSeconds(ebiten.TPS())
	if frameloop.Frame[quad.Snapshot](g.sampler, g.loop, keep, dt) {
		return ebiten.Termination
	}
	return nil
}

// Draw fills the background and draws the square.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(RGBA(g.last.Background))
	c := g.last.Corners
	x0, y0 := g.toPixels(c[3][0], c[3][1]) // top-left
	x1, y1 := g.toPixels(c[1][0], c[1][1]) // bottom-right
	vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, RGBA(g.last.Color), false)
}

// Layout keeps a fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// toPixels maps normalized device coordinates to screen pixels with the origin top-left.
func (g *Game) toPixels(x, y float32) (float32, float32) {
	w, h := float32(g.width), float32(g.height)
	return (x + 1) / 2 * w, (1 - y) / 2 * h
}

// RGBA converts a scene color to an 8-bit color, clamping channels to [0,1].
func RGBA(c scene.Color) color.RGBA {
	return color.RGBA{R: channel(c.R * c.A), G: channel(c.G * c.A), B: channel(c.B * c.A), A: channel(c.A)}
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
