package easel

import (
	"image/color"
	"testing"
)

func TestSceneAddAndClear(t *testing.T) {
	sc := NewScene()
	sc.Add(nil)
	if sc.Len() != 0 {
		t.Fatalf("Len after Add(nil) = %d, want 0", sc.Len())
	}
	a := NewPolygon(0, 0, 10, 3, 0, Style{})
	b := NewPolygon(5, 5, 10, 4, 0, Style{})
	sc.Add(a)
	sc.Add(b)
	if sc.Len() != 2 || sc.At(0) != a || sc.At(1) != b {
		t.Fatal("polygons not kept in insertion order")
	}
	if sc.IndexOf(b) != 1 || sc.IndexOf(NewPolygon(0, 0, 1, 3, 0, Style{})) != -1 {
		t.Error("IndexOf mismatch")
	}
	sc.Clear()
	if sc.Len() != 0 || len(sc.Polygons()) != 0 {
		t.Error("Clear should remove every polygon")
	}
}

func TestSceneHitTest_FirstAddedWins(t *testing.T) {
	sc := NewScene()
	first := NewPolygon(100, 100, 50, 8, 0, Style{})
	second := NewPolygon(120, 100, 50, 8, 0, Style{})
	sc.Add(first)
	sc.Add(second)

	idx, p := sc.HitTest(110, 100)
	if idx != 0 || p != first {
		t.Errorf("overlap hit = (%d, %p), want first polygon", idx, p)
	}
	idx, p = sc.HitTest(165, 100)
	if idx != 1 || p != second {
		t.Errorf("hit = (%d, %p), want second polygon", idx, p)
	}
	idx, p = sc.HitTest(400, 400)
	if idx != -1 || p != nil {
		t.Errorf("miss = (%d, %v), want (-1, nil)", idx, p)
	}
}

func TestSceneRedrawAll(t *testing.T) {
	s := NewSurface(100, 100)
	s.SetFillColor(Color{0, 1, 0, 1})
	s.FillRect(0, 0, 100, 100)

	sc := NewScene()
	sc.Add(NewPolygon(50, 50, 20, 4, 0, Style{Stroke: ColorBlack, Fill: Color{1, 0, 0, 1}, Filled: true}))
	sc.RedrawAll(s)

	if got := pixel(s, 5, 5); !isWhite(got) {
		t.Errorf("background = %v, want white", got)
	}
	if got := pixel(s, 50, 50); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("polygon center = %v, want red", got)
	}
}

func TestDrawGrid(t *testing.T) {
	s := NewSurface(40, 40)
	DrawGrid(s, MustParseColor("lightgray"), 10, 10)
	if got := pixel(s, 5, 5); !isWhite(got) {
		t.Errorf("cell interior = %v, want white", got)
	}
	if got := pixel(s, 10, 5); isWhite(got) {
		t.Error("expected a grid line in column 10")
	}
	if got := pixel(s, 5, 20); isWhite(got) {
		t.Error("expected a grid line in row 20")
	}
}

func TestDrawGuidewires(t *testing.T) {
	s := NewSurface(40, 40)
	DrawGrid(s, ColorWhite, 0, 0)
	DrawGuidewires(s, 13, 27)
	if isWhite(pixel(s, 13, 2)) {
		t.Error("expected vertical guidewire at x=13")
	}
	if isWhite(pixel(s, 35, 27)) {
		t.Error("expected horizontal guidewire at y=27")
	}
	if !isWhite(pixel(s, 2, 2)) {
		t.Error("guidewires painted away from their lines")
	}
}
