package easel

import (
	"math"
	"strconv"
	"time"

	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
)

// Clock face layout.
const (
	ClockFontHeight     = 15
	ClockMargin         = 35
	ClockNumeralSpacing = 20
	clockCenterDot      = 5
	clockHandSeconds    = 0.4 // duration of a hand's ease to its new position
)

// ClockFace is an analog clock drawn from circles, numerals and three
// hands. Hand angles are in radians clockwise from twelve o'clock and ease
// toward each new time set with SetTime.
type ClockFace struct {
	Width, Height float64

	Hour, Minute, Second float64 // current hand angles

	face          font.Face
	numeralWidths [12]float64
	tweens        []*TweenGroup
}

// NewClockFace creates a clock filling a width x height surface.
func NewClockFace(width, height int) *ClockFace {
	return &ClockFace{
		Width:  float64(width),
		Height: float64(height),
		face:   FaceOrDefault(ClockFontHeight),
	}
}

// Radius returns the radius of the dial circle.
func (c *ClockFace) Radius() float64 { return c.Width/2 - ClockMargin }

// handTruncation is how much shorter than the dial the hands are.
func (c *ClockFace) handTruncation() float64 { return c.Width / 25 }

func (c *ClockFace) hourHandTruncation() float64 { return c.Width / 10 }

// HandAngles returns the hour, minute and second hand angles for t. The
// hour hand advances with the minutes.
func HandAngles(t time.Time) (hour, minute, second float64) {
	h := t.Hour()
	if h > 12 {
		h -= 12
	}
	toAngle := func(loc float64) float64 { return 2 * math.Pi * loc / 60 }
	hour = toAngle(float64(h)*5 + float64(t.Minute())/60*5)
	minute = toAngle(float64(t.Minute()))
	second = toAngle(float64(t.Second()))
	return hour, minute, second
}

// SetTime points the hands at t. With animate set the hands ease there
// over the next Update calls; otherwise they jump.
func (c *ClockFace) SetTime(t time.Time, animate bool) {
	h, m, s := HandAngles(t)
	if !animate {
		c.Hour, c.Minute, c.Second = h, m, s
		c.tweens = c.tweens[:0]
		return
	}
	c.tweens = append(c.tweens[:0],
		TweenAngle(&c.Hour, h, clockHandSeconds, ease.OutCubic),
		TweenAngle(&c.Minute, m, clockHandSeconds, ease.OutCubic),
		TweenAngle(&c.Second, s, clockHandSeconds, ease.OutElastic),
	)
}

// Update advances hand animations by dt seconds.
func (c *ClockFace) Update(dt float64) {
	for _, g := range c.tweens {
		g.Update(float32(dt))
	}
}

// Animating reports whether any hand is still moving.
func (c *ClockFace) Animating() bool {
	for _, g := range c.tweens {
		if !g.Done {
			return true
		}
	}
	return false
}

// Draw clears s and paints the whole clock.
func (c *ClockFace) Draw(s *Surface) {
	s.Clear()
	s.Save()
	defer s.RestoreState()
	s.SetFace(c.face)

	cx, cy := c.Width/2, c.Height/2

	s.BeginPath()
	s.Arc(cx, cy, c.Radius(), 0, -2*math.Pi)
	s.Stroke()

	s.BeginPath()
	s.Arc(cx, cy, clockCenterDot, 0, -2*math.Pi)
	s.Fill()

	c.drawNumerals(s, cx, cy)

	s.BeginPath()
	c.drawHand(s, cx, cy, c.Hour, true)
	c.drawHand(s, cx, cy, c.Minute, false)
	c.drawHand(s, cx, cy, c.Second, false)
	s.BeginPath()
}

// numeralWidth returns the advance width of numeral n (1-12), measured once.
func (c *ClockFace) numeralWidth(s *Surface, n int) float64 {
	if w := c.numeralWidths[n-1]; w != 0 {
		return w
	}
	w, _ := s.MeasureText(strconv.Itoa(n))
	c.numeralWidths[n-1] = w
	return w
}

func (c *ClockFace) drawNumerals(s *Surface, cx, cy float64) {
	r := c.Radius() + ClockNumeralSpacing
	for n := 1; n <= 12; n++ {
		a := math.Pi / 6 * float64(n)
		w := c.numeralWidth(s, n)
		s.FillText(strconv.Itoa(n),
			cx+math.Sin(a)*r-w/2,
			cy-math.Cos(a)*r+ClockFontHeight/2)
	}
}

func (c *ClockFace) drawHand(s *Surface, cx, cy, angle float64, hour bool) {
	r := c.Radius() - c.handTruncation()
	if hour {
		r -= c.hourHandTruncation()
	}
	s.MoveTo(cx, cy)
	s.LineTo(cx+math.Sin(angle)*r, cy-math.Cos(angle)*r)
	s.Stroke()
}
