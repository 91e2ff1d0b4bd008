package easel

import "math"

// CoordMapper converts between screen coordinates and surface-local
// coordinates. Bounds is where the surface is displayed on screen; Width
// and Height are the surface's own size. The display may be scaled
// non-uniformly.
type CoordMapper struct {
	Bounds        Rect
	Width, Height float64
}

// IdentityMapper maps a surface displayed unscaled at the screen origin.
func IdentityMapper(width, height int) CoordMapper {
	w, h := float64(width), float64(height)
	return CoordMapper{Bounds: Rect{Width: w, Height: h}, Width: w, Height: h}
}

// FitMapper letterboxes a surface of surfW x surfH into a screen of
// screenW x screenH, keeping its aspect ratio and centering it.
func FitMapper(screenW, screenH, surfW, surfH int) CoordMapper {
	sw, sh := float64(screenW), float64(screenH)
	w, h := float64(surfW), float64(surfH)
	if w <= 0 || h <= 0 || sw <= 0 || sh <= 0 {
		return IdentityMapper(surfW, surfH)
	}
	scale := math.Min(sw/w, sh/h)
	dw, dh := w*scale, h*scale
	return CoordMapper{
		Bounds: Rect{X: (sw - dw) / 2, Y: (sh - dh) / 2, Width: dw, Height: dh},
		Width:  w,
		Height: h,
	}
}

// ToSurface converts a screen point to surface coordinates.
func (m CoordMapper) ToSurface(x, y float64) Vec2 {
	if m.degenerate() {
		return Vec2{x - m.Bounds.X, y - m.Bounds.Y}
	}
	return Vec2{
		X: (x - m.Bounds.X) * m.Width / m.Bounds.Width,
		Y: (y - m.Bounds.Y) * m.Height / m.Bounds.Height,
	}
}

// ToScreen converts a surface point to screen coordinates.
func (m CoordMapper) ToScreen(x, y float64) Vec2 {
	if m.degenerate() {
		return Vec2{x + m.Bounds.X, y + m.Bounds.Y}
	}
	return Vec2{
		X: x*m.Bounds.Width/m.Width + m.Bounds.X,
		Y: y*m.Bounds.Height/m.Height + m.Bounds.Y,
	}
}

// Scale returns the horizontal and vertical display scale factors.
func (m CoordMapper) Scale() (sx, sy float64) {
	if m.degenerate() {
		return 1, 1
	}
	return m.Bounds.Width / m.Width, m.Bounds.Height / m.Height
}

func (m CoordMapper) degenerate() bool {
	return m.Bounds.Width <= 0 || m.Bounds.Height <= 0 || m.Width <= 0 || m.Height <= 0
}
