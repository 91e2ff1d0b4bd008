package easel

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one
// with TweenFloats or TweenAngle and call Update(dt) each frame; values are
// written straight into the fields.
//
// There is no global animation manager; callers drive Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenFloats creates a TweenGroup moving each *fields[i] from its current
// value to to[i] over duration seconds. Extra entries past 4, or past the
// shorter of the two slices, are ignored.
func TweenFloats(fields []*float64, to []float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	n := min(len(fields), len(to), len(g.tweens))
	for i := 0; i < n; i++ {
		g.tweens[i] = gween.New(float32(*fields[i]), float32(to[i]), duration, fn)
		g.fields[i] = fields[i]
	}
	g.count = n
	if n == 0 {
		g.Done = true
	}
	return g
}

// TweenAngle creates a TweenGroup turning *field to the angle to (radians)
// the short way round, so 350° to 10° passes through 0° rather than
// sweeping back. The field may end outside [0, 2π).
func TweenAngle(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := *field
	d := NormalizeAngle(to - from)
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	return TweenFloats([]*float64{field}, []float64{from + d}, duration, fn)
}
