package easel

// SegmentKind identifies a path construction step.
type SegmentKind uint8

const (
	SegmentMoveTo SegmentKind = iota // start a new sub-path at Point
	SegmentLineTo                    // straight line to Point
	SegmentClose                     // close the current sub-path; Point is unused
)

// Segment is one step of a Path.
type Segment struct {
	Kind  SegmentKind
	Point Vec2
}

// Path is an ordered sequence of straight-line segments.
type Path []Segment

// Apply replays the path onto the surface's current path. It does not
// begin a new path, stroke or fill.
func (p Path) Apply(s *Surface) {
	for _, seg := range p {
		switch seg.Kind {
		case SegmentMoveTo:
			s.MoveTo(seg.Point.X, seg.Point.Y)
		case SegmentLineTo:
			s.LineTo(seg.Point.X, seg.Point.Y)
		case SegmentClose:
			s.ClosePath()
		}
	}
}

// Vertices returns the points of every MoveTo and LineTo segment in order.
func (p Path) Vertices() []Vec2 {
	pts := make([]Vec2, 0, len(p))
	for _, seg := range p {
		if seg.Kind != SegmentClose {
			pts = append(pts, seg.Point)
		}
	}
	return pts
}

// Contains reports whether (x, y) lies inside the path using the even-odd
// rule. Every sub-path is treated as closed. Points exactly on an edge may
// report either way.
func (p Path) Contains(x, y float64) bool {
	in := false
	var start, prev Vec2
	open := false
	for _, seg := range p {
		switch seg.Kind {
		case SegmentMoveTo:
			if open && rayCrosses(x, y, prev, start) {
				in = !in
			}
			start, prev, open = seg.Point, seg.Point, true
		case SegmentLineTo:
			if !open {
				start, prev, open = seg.Point, seg.Point, true
				continue
			}
			if rayCrosses(x, y, prev, seg.Point) {
				in = !in
			}
			prev = seg.Point
		case SegmentClose:
			if open && rayCrosses(x, y, prev, start) {
				in = !in
			}
			prev = start
			open = false
		}
	}
	if open && rayCrosses(x, y, prev, start) {
		in = !in
	}
	return in
}

// rayCrosses reports whether a horizontal ray from (x, y) toward +X crosses
// the segment a-b. Half-open in Y so shared vertices count once.
func rayCrosses(x, y float64, a, b Vec2) bool {
	return (a.Y > y) != (b.Y > y) &&
		x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X
}
