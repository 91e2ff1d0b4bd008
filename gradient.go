package easel

import "github.com/fogleman/gg"

// ColorStop is a color at a normalized offset along a gradient.
type ColorStop struct {
	Offset float64
	Color  Color
}

// RadialGradient blends between two circles: the start circle (X0, Y0, R0)
// at offset 0 and the end circle (X1, Y1, R1) at offset 1.
type RadialGradient struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []ColorStop
}

// NewRadialGradient creates a gradient with no color stops.
func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) *RadialGradient {
	return &RadialGradient{X0: x0, Y0: y0, R0: r0, X1: x1, Y1: y1, R1: r1}
}

// AddColorStop appends a stop. Offsets outside [0, 1] are clamped.
func (g *RadialGradient) AddColorStop(offset float64, c Color) {
	offset = min(max(offset, 0), 1)
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
}

func (g *RadialGradient) pattern() gg.Pattern {
	p := gg.NewRadialGradient(g.X0, g.Y0, g.R0, g.X1, g.Y1, g.R1)
	for _, st := range g.Stops {
		p.AddColorStop(st.Offset, st.Color.NRGBA())
	}
	return p
}
