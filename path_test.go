package easel

import "testing"

func square(x, y, size float64) Path {
	return Path{
		{Kind: SegmentMoveTo, Point: Vec2{x, y}},
		{Kind: SegmentLineTo, Point: Vec2{x + size, y}},
		{Kind: SegmentLineTo, Point: Vec2{x + size, y + size}},
		{Kind: SegmentLineTo, Point: Vec2{x, y + size}},
		{Kind: SegmentClose},
	}
}

func TestPathContains(t *testing.T) {
	p := square(0, 0, 10)
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 5, 5, true},
		{"near corner", 0.5, 9.5, true},
		{"left", -1, 5, false},
		{"right", 11, 5, false},
		{"above", 5, -0.1, false},
		{"below", 5, 10.1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPathContains_EvenOddHole(t *testing.T) {
	p := append(square(0, 0, 30), square(10, 10, 10)...)
	if !p.Contains(5, 5) {
		t.Error("point in outer ring should be inside")
	}
	if p.Contains(15, 15) {
		t.Error("point in hole should be outside")
	}
}

func TestPathContains_OpenSubPathIsClosed(t *testing.T) {
	p := Path{
		{Kind: SegmentMoveTo, Point: Vec2{0, 0}},
		{Kind: SegmentLineTo, Point: Vec2{10, 0}},
		{Kind: SegmentLineTo, Point: Vec2{10, 10}},
	}
	if !p.Contains(8, 3) {
		t.Error("open triangle should be treated as closed")
	}
	if p.Contains(2, 8) {
		t.Error("point outside triangle reported inside")
	}
}

func TestPathContains_Empty(t *testing.T) {
	if (Path{}).Contains(0, 0) {
		t.Error("empty path contains nothing")
	}
}

func TestPathVertices(t *testing.T) {
	v := square(0, 0, 1).Vertices()
	if len(v) != 4 {
		t.Fatalf("len(Vertices) = %d, want 4", len(v))
	}
	if v[2] != (Vec2{1, 1}) {
		t.Errorf("Vertices[2] = %v, want {1 1}", v[2])
	}
}
