package easel

import (
	"fmt"
	"math"
)

// Rotation overlay geometry, in pixels relative to the target's radius.
const (
	CentroidRadius     = 10
	DegreeRingMargin   = 35
	TrackingRingMargin = 55
	TickWidth          = 10
	DegreeTextSize     = 11
	guidewireKnob      = 5
)

// Rotation overlay colors.
var (
	centroidStroke     = RGBA8(0, 0, 0, 0.8)
	centroidFill       = RGBA8(255, 255, 255, 0.2)
	tickLongStroke     = RGBA8(100, 140, 230, 0.9)
	tickShortStroke    = RGBA8(100, 140, 230, 0.7)
	trackingRingStroke = RGBA8(100, 140, 230, 0.3)
	dialBandFill       = RGBA8(100, 140, 230, 0.1)
	dialStroke         = RGBA8(0, 0, 0, 0.1)
	degreeTextFill     = RGBA8(0, 0, 230, 0.8)
)

const (
	tickStep  = math.Pi / 64
	tickCount = 128 // ticks per turn
	labelStep = math.Pi / 8
)

// DrawRotationAnnotations paints the rotation overlay around p: a centroid
// marker, a guidewire from the center along angle ending in a knob on the
// tracking ring, the shaded band between the degree dial and the tracking
// ring, degree ticks and degree labels. style supplies the guidewire and
// knob colors.
func DrawRotationAnnotations(s *Surface, p *Polygon, angle float64, style Style) {
	s.Save()
	defer s.RestoreState()
	s.SetLineWidth(1)

	drawCentroid(s, p)
	drawCentroidGuidewire(s, p, angle, style)
	drawDialBand(s, p)
	drawDegreeDialTicks(s, p)
	drawDegreeTickDial(s, p)
	drawDegreeAnnotations(s, p)
	s.BeginPath()
}

func drawCentroid(s *Surface, p *Polygon) {
	s.SetStrokeColor(centroidStroke)
	s.SetFillColor(centroidFill)
	s.BeginPath()
	s.Arc(p.X, p.Y, CentroidRadius, 0, 2*math.Pi)
	s.Stroke()
	s.Fill()
}

func drawCentroidGuidewire(s *Surface, p *Polygon, angle float64, style Style) {
	r := p.Radius + TrackingRingMargin
	ex := p.X + r*math.Cos(angle)
	ey := p.Y + r*math.Sin(angle)

	s.SetStrokeColor(style.Stroke)
	s.SetFillColor(style.Fill)
	s.BeginPath()
	s.MoveTo(p.X, p.Y)
	s.LineTo(ex, ey)
	s.Stroke()

	s.BeginPath()
	s.Arc(ex, ey, guidewireKnob, 0, 2*math.Pi)
	s.Stroke()
	s.Fill()
}

// drawDialBand strokes the tracking ring and shades the band inside it. The
// degree ring is wound the other way so the non-zero fill leaves its
// interior clear.
func drawDialBand(s *Surface, p *Polygon) {
	s.SetStrokeColor(trackingRingStroke)
	s.BeginPath()
	s.Arc(p.X, p.Y, p.Radius+TrackingRingMargin, 0, 2*math.Pi)
	s.Stroke()

	s.MoveTo(p.X+p.Radius+DegreeRingMargin, p.Y)
	s.Arc(p.X, p.Y, p.Radius+DegreeRingMargin, 0, -2*math.Pi)
	s.SetFillColor(dialBandFill)
	s.Fill()

	s.SetStrokeColor(dialStroke)
	s.BeginPath()
	s.Arc(p.X, p.Y, p.Radius+DegreeRingMargin, 0, 2*math.Pi)
	s.Stroke()
}

func drawDegreeDialTicks(s *Surface, p *Polygon) {
	r := p.Radius + DegreeRingMargin
	for i := 0; i < tickCount; i++ {
		a := float64(i) * tickStep
		inner := r - TickWidth/2
		s.SetStrokeColor(tickShortStroke)
		if i%4 == 0 {
			inner = r - TickWidth
			s.SetStrokeColor(tickLongStroke)
		}
		cos, sin := math.Cos(a), math.Sin(a)
		s.StrokeLine(p.X+cos*inner, p.Y+sin*inner, p.X+cos*r, p.Y+sin*r)
	}
}

func drawDegreeTickDial(s *Surface, p *Polygon) {
	s.SetStrokeColor(dialStroke)
	s.BeginPath()
	s.Arc(p.X, p.Y, p.Radius+DegreeRingMargin-TickWidth, 0, 2*math.Pi)
	s.Stroke()
}

func drawDegreeAnnotations(s *Surface, p *Polygon) {
	r := p.Radius + DegreeRingMargin - 2*TickWidth
	s.SetFace(FaceOrDefault(DegreeTextSize))
	s.SetFillColor(degreeTextFill)
	for i := 0; i < 16; i++ {
		a := float64(i) * labelStep
		s.FillTextCentered(DegreeLabel(a), p.X+math.Cos(a)*r, p.Y+math.Sin(a)*r)
	}
}

// DegreeLabel formats angle in whole degrees, rounding halves up.
func DegreeLabel(angle float64) string {
	return fmt.Sprintf("%.0f", math.Floor(Degrees(angle)+0.5))
}
