package easel

// Scene is the ordered collection of placed polygons. Insertion order is
// draw order: later polygons paint over earlier ones. The scene owns every
// polygon added to it.
type Scene struct {
	polygons []*Polygon

	// GridColor and GridStep control the background drawn by RedrawAll.
	// A zero GridStep disables the grid lines but keeps the white fill.
	GridColor Color
	GridStep  float64
}

// NewScene creates an empty scene with the default grid.
func NewScene() *Scene {
	return &Scene{GridColor: GridColor, GridStep: DefaultGridStep}
}

// Add appends p to the top of the draw order. Nil is ignored.
func (sc *Scene) Add(p *Polygon) {
	if p == nil {
		return
	}
	sc.polygons = append(sc.polygons, p)
}

// Len returns the number of polygons.
func (sc *Scene) Len() int { return len(sc.polygons) }

// At returns the polygon at index i in draw order.
func (sc *Scene) At(i int) *Polygon { return sc.polygons[i] }

// Polygons returns the polygons in draw order. The returned slice MUST NOT
// be mutated.
func (sc *Scene) Polygons() []*Polygon { return sc.polygons }

// Clear removes every polygon.
func (sc *Scene) Clear() {
	clear(sc.polygons)
	sc.polygons = sc.polygons[:0]
}

// IndexOf returns the draw-order index of p, or -1.
func (sc *Scene) IndexOf(p *Polygon) int {
	for i, q := range sc.polygons {
		if q == p {
			return i
		}
	}
	return -1
}

// HitTest returns the first polygon in draw order whose outline contains
// (x, y), with its index. The earliest-added polygon wins where shapes
// overlap. Returns -1, nil when nothing is hit.
func (sc *Scene) HitTest(x, y float64) (int, *Polygon) {
	for i, p := range sc.polygons {
		if p.Contains(x, y) {
			return i, p
		}
	}
	return -1, nil
}

// DrawBackground clears the surface and paints the grid.
func (sc *Scene) DrawBackground(s *Surface) {
	s.Clear()
	DrawGrid(s, sc.GridColor, sc.GridStep, sc.GridStep)
}

// RedrawAll clears the surface, paints the grid and then every polygon in
// draw order with its own style.
func (sc *Scene) RedrawAll(s *Surface) {
	sc.DrawBackground(s)
	for _, p := range sc.polygons {
		p.Draw(s)
	}
}
