package scene

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Vec3 is a point or offset in world space (X, Y, Z). Y is up; the ground plane is Y=0.
type Vec3 [3]float32

// Add returns v+d.
func (v Vec3) Add(d Vec3) Vec3 {
	return Vec3{v[0] + d[0], v[1] + d[1], v[2] + d[2]}
}

// Color is a straight (non-premultiplied) RGBA color with channels in [0,1].
// Channels are not clamped; values outside the range are passed to the renderer as-is.
type Color struct {
	R, G, B, A float32
}

// RGB returns an opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Common colors used by the demos.
var (
	Red            = RGB(1, 0, 0)
	Green          = RGB(0, 1, 0)
	Blue           = RGB(0, 0, 1)
	White          = RGB(1, 1, 1)
	CornflowerBlue = RGB(100.0/255, 149.0/255, 237.0/255)
)

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" (leading # optional) into a Color.
// Used for colors stored in the YAML config.
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, errors.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, errors.Wrapf(err, "color %q", s)
	}
	if len(h) == 6 {
		n = n<<8 | 0xff
	}
	return Color{
		R: float32(n>>24&0xff) / 255,
		G: float32(n>>16&0xff) / 255,
		B: float32(n>>8&0xff) / 255,
		A: float32(n&0xff) / 255,
	}, nil
}

// Hex formats c as "#RRGGBBAA". Channels are clamped to [0,1] before conversion.
func (c Color) Hex() string {
	return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B) + hexByte(c.A)
}

func hexByte(f float32) string {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	s := strconv.FormatUint(uint64(f*255+0.5), 16)
	if len(s) == 1 {
		s = "0" + s
	}
	return s
}
