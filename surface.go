package easel

import (
	"errors"
	"image"
	"image/draw"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// ErrSnapshotMismatch is returned by Surface.Restore when the snapshot was
// taken from a surface of a different size.
var ErrSnapshotMismatch = errors.New("easel: snapshot does not match surface")

// Surface is an immediate-mode 2D drawing surface backed by an RGBA pixel
// buffer. Its method set mirrors the HTML canvas 2D context: a current path
// built with MoveTo/LineTo/Arc/ArcTo, Stroke and Fill that leave the path
// intact, Save/Restore of transform and style state, and pixel snapshots.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	img *image.RGBA
	dc  *gg.Context

	// Current point and sub-path start in user space, tracked for ArcTo.
	cur, start Vec2
	hasCur     bool

	stroke      Color
	fill        Color
	fillPattern gg.Pattern
	stack       []surfaceState
}

type surfaceState struct {
	stroke, fill Color
	fillPattern  gg.Pattern
}

// Snapshot is an opaque copy of a Surface's pixels.
type Snapshot struct {
	pix  []byte
	rect image.Rectangle
}

// NewSurface creates a transparent surface of the given size in pixels.
// Stroke and fill default to opaque black, line width to 1.
func NewSurface(width, height int) *Surface {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	s := &Surface{img: img, dc: gg.NewContextForRGBA(img)}
	s.dc.SetFontFace(basicfont.Face7x13)
	s.SetStrokeColor(ColorBlack)
	s.SetFillColor(ColorBlack)
	s.SetLineWidth(1)
	return s
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.img.Bounds().Dx() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.img.Bounds().Dy() }

// Pixels returns the backing pixel buffer. Pixels are premultiplied RGBA.
// The returned image MUST NOT be retained across Restore calls if the
// caller expects it to be stable.
func (s *Surface) Pixels() *image.RGBA { return s.img }

// Context exposes the underlying gg context for drawing the facade does
// not cover.
func (s *Surface) Context() *gg.Context { return s.dc }

// --- Snapshots ---

// Snapshot copies the entire pixel buffer.
func (s *Surface) Snapshot() *Snapshot {
	return s.SnapshotInto(nil)
}

// SnapshotInto copies the pixel buffer into dst, reusing its storage when
// large enough. A nil dst allocates a new snapshot. Returns dst.
func (s *Surface) SnapshotInto(dst *Snapshot) *Snapshot {
	if dst == nil {
		dst = &Snapshot{}
	}
	if cap(dst.pix) < len(s.img.Pix) {
		dst.pix = make([]byte, len(s.img.Pix))
	}
	dst.pix = dst.pix[:len(s.img.Pix)]
	copy(dst.pix, s.img.Pix)
	dst.rect = s.img.Rect
	return dst
}

// Restore repaints the whole surface from snap. Transform, style and path
// state are not affected.
func (s *Surface) Restore(snap *Snapshot) error {
	if snap == nil || snap.rect != s.img.Rect || len(snap.pix) != len(s.img.Pix) {
		return ErrSnapshotMismatch
	}
	copy(s.img.Pix, snap.pix)
	return nil
}

// --- Clearing ---

// Clear sets every pixel to transparent black.
func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// ClearRect sets the pixels of the given device-space rectangle to
// transparent black. The current transform is ignored.
func (s *Surface) ClearRect(x, y, w, h float64) {
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h))).Canon()
	draw.Draw(s.img, r.Intersect(s.img.Rect), image.Transparent, image.Point{}, draw.Src)
}

// --- State ---

// Save pushes the transform and style state.
func (s *Surface) Save() {
	s.stack = append(s.stack, surfaceState{s.stroke, s.fill, s.fillPattern})
	s.dc.Push()
}

// RestoreState pops the state pushed by the matching Save. The current path
// is kept, as with the canvas context. Unbalanced calls are ignored.
func (s *Surface) RestoreState() {
	if len(s.stack) == 0 {
		return
	}
	st := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.dc.Pop()
	s.stroke, s.fill, s.fillPattern = st.stroke, st.fill, st.fillPattern
}

// Translate moves the origin by (x, y).
func (s *Surface) Translate(x, y float64) { s.dc.Translate(x, y) }

// Rotate rotates the coordinate system clockwise by angle radians.
func (s *Surface) Rotate(angle float64) { s.dc.Rotate(angle) }

// SetStrokeColor sets the color used by Stroke.
func (s *Surface) SetStrokeColor(c Color) {
	s.stroke = c
	s.dc.SetStrokeStyle(gg.NewSolidPattern(c.NRGBA()))
}

// SetFillColor sets the color used by Fill and text drawing.
func (s *Surface) SetFillColor(c Color) {
	s.fill = c
	s.fillPattern = gg.NewSolidPattern(c.NRGBA())
	s.dc.SetFillStyle(s.fillPattern)
}

// SetFillGradient fills with g until the next SetFillColor. Text keeps the
// last solid fill color.
func (s *Surface) SetFillGradient(g *RadialGradient) {
	s.fillPattern = g.pattern()
	s.dc.SetFillStyle(s.fillPattern)
}

// StrokeColor returns the current stroke color.
func (s *Surface) StrokeColor() Color { return s.stroke }

// FillColor returns the current solid fill color.
func (s *Surface) FillColor() Color { return s.fill }

// SetLineWidth sets the stroke width in user-space units.
func (s *Surface) SetLineWidth(w float64) { s.dc.SetLineWidth(w) }

// --- Paths ---

// BeginPath discards the current path.
func (s *Surface) BeginPath() {
	s.dc.ClearPath()
	s.hasCur = false
}

// MoveTo starts a new sub-path at (x, y).
func (s *Surface) MoveTo(x, y float64) {
	s.dc.MoveTo(x, y)
	s.cur = Vec2{x, y}
	s.start = s.cur
	s.hasCur = true
}

// LineTo adds a straight segment to (x, y). Without a current point it
// behaves like MoveTo.
func (s *Surface) LineTo(x, y float64) {
	if !s.hasCur {
		s.MoveTo(x, y)
		return
	}
	s.dc.LineTo(x, y)
	s.cur = Vec2{x, y}
}

// ClosePath joins the current point to the start of the sub-path.
func (s *Surface) ClosePath() {
	if !s.hasCur {
		return
	}
	s.dc.ClosePath()
	s.cur = s.start
}

// Arc adds a circular arc centered at (x, y) from angle a1 to a2 (radians,
// clockwise on screen). With a current point, a straight segment joins it
// to the arc start.
func (s *Surface) Arc(x, y, r, a1, a2 float64) {
	if !s.hasCur {
		s.start = Vec2{x + r*math.Cos(a1), y + r*math.Sin(a1)}
	}
	s.dc.DrawArc(x, y, r, a1, a2)
	s.cur = Vec2{x + r*math.Cos(a2), y + r*math.Sin(a2)}
	s.hasCur = true
}

// Circle adds a closed circle as its own sub-path.
func (s *Surface) Circle(x, y, r float64) {
	s.dc.NewSubPath()
	s.hasCur = false
	s.Arc(x, y, r, 0, 2*math.Pi)
	s.ClosePath()
}

// ArcTo adds an arc of radius r tangent to the line from the current point
// to (x1, y1) and to the line from (x1, y1) to (x2, y2), joined to the
// current point by a straight segment. Degenerate input (no current point,
// collinear points, zero radius) falls back to a line to (x1, y1).
//
// The current point is tracked in user space; changing the transform
// between building segments and calling ArcTo gives undefined corners.
func (s *Surface) ArcTo(x1, y1, x2, y2, r float64) {
	if !s.hasCur {
		s.MoveTo(x1, y1)
		return
	}
	p0, p1, p2 := s.cur, Vec2{x1, y1}, Vec2{x2, y2}
	corner, ok := tangentArc(p0, p1, p2, r)
	if !ok {
		s.LineTo(x1, y1)
		return
	}
	s.LineTo(corner.from.X, corner.from.Y)
	s.Arc(corner.center.X, corner.center.Y, r, corner.a1, corner.a2)
}

// Rect adds a closed rectangle sub-path.
func (s *Surface) Rect(x, y, w, h float64) {
	s.MoveTo(x, y)
	s.LineTo(x+w, y)
	s.LineTo(x+w, y+h)
	s.LineTo(x, y+h)
	s.ClosePath()
}

// Stroke outlines the current path. The path is kept.
func (s *Surface) Stroke() { s.dc.StrokePreserve() }

// Fill fills the current path with the non-zero rule. The path is kept.
func (s *Surface) Fill() { s.dc.FillPreserve() }

// FillRect fills a rectangle. Like a BeginPath, it leaves the current
// path empty.
func (s *Surface) FillRect(x, y, w, h float64) {
	s.BeginPath()
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

// StrokeLine strokes a single segment and leaves the current path empty.
func (s *Surface) StrokeLine(x1, y1, x2, y2 float64) {
	s.BeginPath()
	s.dc.DrawLine(x1, y1, x2, y2)
	s.dc.Stroke()
}

// --- Text ---

// SetFace sets the font face for text drawing and measurement.
func (s *Surface) SetFace(face font.Face) { s.dc.SetFontFace(face) }

// FillText draws text with its baseline-left corner at (x, y) in the
// current fill color.
func (s *Surface) FillText(text string, x, y float64) {
	s.withTextColor(s.fill, func() {
		s.dc.DrawString(text, x, y)
	})
}

// FillTextCentered draws text centered horizontally and vertically on
// (x, y).
func (s *Surface) FillTextCentered(text string, x, y float64) {
	s.withTextColor(s.fill, func() {
		s.dc.DrawStringAnchored(text, x, y, 0.5, 0.5)
	})
}

// StrokeText draws text in the stroke color with its baseline-left corner
// at (x, y). Glyphs are not outlined; use OutlineText for a ringed look.
func (s *Surface) StrokeText(text string, x, y float64) {
	s.withTextColor(s.stroke, func() {
		s.dc.DrawString(text, x, y)
	})
}

// OutlineText draws text at (x, y) ringed by the stroke color. The ring is
// approximated by drawing the glyphs at every integer offset within width.
func (s *Surface) OutlineText(text string, x, y, width float64) {
	s.strokeRing(text, x, y, width)
	s.FillText(text, x, y)
}

func (s *Surface) strokeRing(text string, x, y, width float64) {
	s.withTextColor(s.stroke, func() {
		for dy := -width; dy <= width; dy++ {
			for dx := -width; dx <= width; dx++ {
				if dx*dx+dy*dy > width*width {
					continue
				}
				s.dc.DrawString(text, x+dx, y+dy)
			}
		}
	})
}

// withTextColor runs fn with gg's text color set to c. gg draws glyphs in
// its single current color, and setting it resets both patterns, so they
// are reinstated afterwards.
func (s *Surface) withTextColor(c Color, fn func()) {
	s.dc.SetColor(c.NRGBA())
	fn()
	s.dc.SetStrokeStyle(gg.NewSolidPattern(s.stroke.NRGBA()))
	s.dc.SetFillStyle(s.fillPattern)
}

// MeasureText returns the advance width and line height of text.
func (s *Surface) MeasureText(text string) (w, h float64) {
	return s.dc.MeasureString(text)
}

// --- Geometry helpers ---

type arcCorner struct {
	from   Vec2
	center Vec2
	a1, a2 float64
}

// tangentArc computes the arc joining segment p0->p1 and p1->p2 with radius r.
func tangentArc(p0, p1, p2 Vec2, r float64) (arcCorner, bool) {
	v1 := p0.Sub(p1)
	v2 := p2.Sub(p1)
	l1, l2 := v1.Len(), v2.Len()
	if r <= 0 || l1 == 0 || l2 == 0 {
		return arcCorner{}, false
	}
	u1 := Vec2{v1.X / l1, v1.Y / l1}
	u2 := Vec2{v2.X / l2, v2.Y / l2}

	cross := u1.X*u2.Y - u1.Y*u2.X
	dot := u1.X*u2.X + u1.Y*u2.Y
	theta := math.Acos(math.Max(-1, math.Min(1, dot)))
	if math.Abs(cross) < 1e-12 || theta < 1e-9 {
		return arcCorner{}, false
	}

	d := r / math.Tan(theta/2)
	t1 := Vec2{p1.X + u1.X*d, p1.Y + u1.Y*d}
	t2 := Vec2{p1.X + u2.X*d, p1.Y + u2.Y*d}

	bis := Vec2{u1.X + u2.X, u1.Y + u2.Y}
	bl := bis.Len()
	h := r / math.Sin(theta/2)
	c := Vec2{p1.X + bis.X/bl*h, p1.Y + bis.Y/bl*h}

	a1 := math.Atan2(t1.Y-c.Y, t1.X-c.X)
	a2 := math.Atan2(t2.Y-c.Y, t2.X-c.X)
	// Take the short way round, which is always the tangent side.
	for a2-a1 > math.Pi {
		a2 -= 2 * math.Pi
	}
	for a1-a2 > math.Pi {
		a2 += 2 * math.Pi
	}
	return arcCorner{from: t1, center: c, a1: a1, a2: a2}, true
}
