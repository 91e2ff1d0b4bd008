package easel

import "math"

// MinSides is the smallest side count a Polygon can have.
const MinSides = 3

// Style is how a polygon is painted.
type Style struct {
	Stroke Color
	Fill   Color
	Filled bool
}

// Polygon is a regular N-gon described by its center, circumscribed radius,
// side count and the angle of its first vertex. The outline is derived from
// these fields on every use and never cached, so edits show up on the next
// render.
type Polygon struct {
	X, Y       float64 // center in surface coordinates
	Radius     float64 // distance from center to each vertex
	Sides      int
	StartAngle float64 // angle of the first vertex, radians
	Style
}

// NewPolygon creates a polygon. Side counts below MinSides and negative
// radii are clamped rather than reported.
func NewPolygon(x, y, radius float64, sides int, startAngle float64, style Style) *Polygon {
	p := &Polygon{X: x, Y: y, Radius: radius, Sides: sides, StartAngle: startAngle, Style: style}
	p.clamp()
	return p
}

func (p *Polygon) clamp() {
	if p.Sides < MinSides {
		p.Sides = MinSides
	}
	if p.Radius < 0 || math.IsNaN(p.Radius) {
		p.Radius = 0
	}
}

// Center returns the polygon's center.
func (p *Polygon) Center() Vec2 {
	return Vec2{p.X, p.Y}
}

// Vertex returns vertex i relative to the center.
func (p *Polygon) Vertex(i int) Vec2 {
	n := max(p.Sides, MinSides)
	a := p.StartAngle + float64(i)*2*math.Pi/float64(n)
	return Vec2{p.Radius * math.Cos(a), p.Radius * math.Sin(a)}
}

// LocalOutline returns the closed outline relative to the center.
func (p *Polygon) LocalOutline() Path {
	return p.outline(0, 0)
}

// Outline returns the closed outline in surface coordinates.
func (p *Polygon) Outline() Path {
	return p.outline(p.X, p.Y)
}

func (p *Polygon) outline(ox, oy float64) Path {
	n := max(p.Sides, MinSides)
	path := make(Path, 0, n+1)
	for i := 0; i < n; i++ {
		v := p.Vertex(i)
		kind := SegmentLineTo
		if i == 0 {
			kind = SegmentMoveTo
		}
		path = append(path, Segment{Kind: kind, Point: Vec2{ox + v.X, oy + v.Y}})
	}
	return append(path, Segment{Kind: SegmentClose})
}

// Contains reports whether (x, y) is inside the polygon's current outline.
func (p *Polygon) Contains(x, y float64) bool {
	return p.Outline().Contains(x, y)
}

// Rotate adds delta radians to the start angle.
func (p *Polygon) Rotate(delta float64) {
	p.StartAngle += delta
}

// Draw paints the polygon with its own style.
func (p *Polygon) Draw(s *Surface) {
	p.Render(s, 0, p.Style)
}

// Render paints the polygon rotated by a transient angle about its center
// using style. The angle is not written back to the polygon. The outline is
// always stroked and filled only when style.Filled is set.
func (p *Polygon) Render(s *Surface, angle float64, style Style) {
	s.Save()
	s.Translate(p.X, p.Y)
	if angle != 0 {
		s.Rotate(angle)
	}
	s.SetStrokeColor(style.Stroke)
	s.SetFillColor(style.Fill)
	s.BeginPath()
	p.LocalOutline().Apply(s)
	s.Stroke()
	if style.Filled {
		s.Fill()
	}
	s.BeginPath()
	s.RestoreState()
}
