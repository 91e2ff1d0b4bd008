package easel

import "math"

// SnapStep is the rotation snapping increment: one long tick of the
// rotation dial.
const SnapStep = math.Pi / 16

// AngleFromCenter returns the angle of the ray from center to p, in
// radians in (-π, π]. Y grows downward, so a point straight above center
// yields -π/2. A point on center yields 0.
func AngleFromCenter(center, p Vec2) float64 {
	dx := p.X - center.X
	dy := p.Y - center.Y
	if dx == 0 {
		switch {
		case dy < 0:
			return -math.Pi / 2
		case dy > 0:
			return math.Pi / 2
		default:
			return 0
		}
	}
	return math.Atan2(dy, dx)
}

// SnapAngle rounds angle to the nearest multiple of step. A non-positive
// step returns angle unchanged.
func SnapAngle(angle, step float64) float64 {
	if step <= 0 {
		return angle
	}
	return math.Round(angle/step) * step
}

// NormalizeAngle wraps angle into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
