package easel

// Grid and guidewire defaults.
var (
	GridColor      = MustParseColor("lightgray")
	GuidewireColor = RGBA8(0, 0, 230, 0.4)
)

const (
	DefaultGridStep = 10
	gridLineWidth   = 0.5
)

// DrawGrid fills the surface white and rules it with lines every stepX and
// stepY pixels. Lines sit on half-pixel offsets so a thin line covers one
// pixel column.
func DrawGrid(s *Surface, c Color, stepX, stepY float64) {
	s.Save()
	defer s.RestoreState()

	w, h := float64(s.Width()), float64(s.Height())
	s.SetFillColor(ColorWhite)
	s.FillRect(0, 0, w, h)

	s.SetStrokeColor(c)
	s.SetLineWidth(gridLineWidth)
	if stepX > 0 {
		for x := stepX + 0.5; x < w; x += stepX {
			s.StrokeLine(x, 0, x, h)
		}
	}
	if stepY > 0 {
		for y := stepY + 0.5; y < h; y += stepY {
			s.StrokeLine(0, y, w, y)
		}
	}
}

// DrawGuidewires draws a full-width horizontal line and a full-height
// vertical line through (x, y).
func DrawGuidewires(s *Surface, x, y float64) {
	s.Save()
	defer s.RestoreState()

	w, h := float64(s.Width()), float64(s.Height())
	s.SetStrokeColor(GuidewireColor)
	s.SetLineWidth(gridLineWidth)
	s.StrokeLine(x+0.5, 0, x+0.5, h)
	s.StrokeLine(0, y+0.5, w, y+0.5)
}
