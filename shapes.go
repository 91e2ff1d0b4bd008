package easel

// RoundedRect adds a rectangle with corners rounded to radius r as a new
// sub-path. Width and height may be negative, in which case the rectangle
// extends left of or above (x, y). Each corner is an ArcTo, so the four
// corner arcs join into one outline.
func RoundedRect(s *Surface, x, y, w, h, r float64) {
	if w > 0 {
		s.MoveTo(x+r, y)
	} else {
		s.MoveTo(x-r, y)
	}
	s.ArcTo(x+w, y, x+w, y+h, r)
	s.ArcTo(x+w, y+h, x, y+h, r)
	s.ArcTo(x, y+h, x, y, r)
	if w > 0 {
		s.ArcTo(x, y, x+r, y, r)
	} else {
		s.ArcTo(x, y, x-r, y, r)
	}
}

// DrawRoundedRect strokes and then fills a rounded rectangle in the given
// colors. The surface's colors are left set to them.
func DrawRoundedRect(s *Surface, stroke, fill Color, x, y, w, h, r float64) {
	s.BeginPath()
	RoundedRect(s, x, y, w, h, r)
	s.SetStrokeColor(stroke)
	s.SetFillColor(fill)
	s.Stroke()
	s.Fill()
}
