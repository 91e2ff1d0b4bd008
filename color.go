package easel

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to the rasterizer.
type Color struct {
	R, G, B, A float64
}

// Common colors used by the built-in overlays.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorTransparent = Color{}
)

// ErrBadColor is returned by ParseColor for strings it cannot interpret.
var ErrBadColor = errors.New("easel: bad color")

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts c to an 8-bit straight-alpha color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: unit8(c.R),
		G: unit8(c.G),
		B: unit8(c.B),
		A: unit8(c.A),
	}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

func unit8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// RGBA8 builds a Color from 8-bit channels and a [0, 1] alpha, mirroring the
// CSS rgba() notation.
func RGBA8(r, g, b uint8, a float64) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, a}
}

// ParseColor interprets a CSS-style color string. Accepted forms are SVG
// color names ("goldenrod"), "#rgb", "#rrggbb", "rgb(r, g, b)" and
// "rgba(r, g, b, a)".
func ParseColor(s string) (Color, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	switch {
	case in == "":
		return Color{}, fmt.Errorf("parse color %q: %w", s, ErrBadColor)
	case in == "transparent":
		return ColorTransparent, nil
	case strings.HasPrefix(in, "#"):
		c, err := parseHex(in[1:])
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return c, nil
	case strings.HasPrefix(in, "rgba(") || strings.HasPrefix(in, "rgb("):
		c, err := parseFunc(in)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return c, nil
	}
	named, ok := colornames.Map[in]
	if !ok {
		return Color{}, fmt.Errorf("parse color %q: %w", s, ErrBadColor)
	}
	return RGBA8(named.R, named.G, named.B, float64(named.A)/255), nil
}

// MustParseColor is like ParseColor but panics on error. Intended for
// package-level palettes.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(h string) (Color, error) {
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	default:
		return Color{}, ErrBadColor
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, ErrBadColor
	}
	return RGBA8(uint8(v>>16), uint8(v>>8), uint8(v), 1), nil
}

func parseFunc(in string) (Color, error) {
	open := strings.IndexByte(in, '(')
	if !strings.HasSuffix(in, ")") {
		return Color{}, ErrBadColor
	}
	parts := strings.Split(in[open+1:len(in)-1], ",")
	withAlpha := strings.HasPrefix(in, "rgba")
	if (withAlpha && len(parts) != 4) || (!withAlpha && len(parts) != 3) {
		return Color{}, ErrBadColor
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return Color{}, ErrBadColor
		}
		ch[i] = uint8(v)
	}
	a := 1.0
	if withAlpha {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || v < 0 || v > 1 {
			return Color{}, ErrBadColor
		}
		a = v
	}
	return RGBA8(ch[0], ch[1], ch[2], a), nil
}
