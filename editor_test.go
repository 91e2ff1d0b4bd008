package easel

import (
	"math"
	"testing"
)

type recordingSink struct {
	events []EditorEvent
}

func (r *recordingSink) EmitEvent(ev EditorEvent) { r.events = append(r.events, ev) }

func (r *recordingSink) types() []EditorEventType {
	out := make([]EditorEventType, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

func newTestEditor() (*Editor, *recordingSink) {
	ed := NewEditor(NewSurface(400, 300), DefaultSettings())
	sink := &recordingSink{}
	ed.SetEventSink(sink)
	return ed, sink
}

// addPolygon places a polygon directly and repaints.
func addPolygon(ed *Editor, x, y, r float64) *Polygon {
	p := NewPolygon(x, y, r, 8, 0, ed.Settings().Style())
	ed.Scene().Add(p)
	ed.Redraw()
	return p
}

func TestEditor_DragCreatesPolygon(t *testing.T) {
	ed, sink := newTestEditor()

	ed.HandlePointerDown(Vec2{50, 50}, 0)
	if ed.Mode() != ModeDragging {
		t.Fatalf("mode after press = %v, want dragging", ed.Mode())
	}
	ed.HandlePointerMove(Vec2{100, 50}, 0)
	ed.HandlePointerMove(Vec2{150, 50}, 0)
	ed.HandlePointerUp(Vec2{150, 50}, 0)

	if ed.Mode() != ModeIdle {
		t.Errorf("mode after release = %v, want idle", ed.Mode())
	}
	if ed.Scene().Len() != 1 {
		t.Fatalf("scene has %d polygons, want 1", ed.Scene().Len())
	}
	p := ed.Scene().At(0)
	if p.X != 50 || p.Y != 50 {
		t.Errorf("center = (%v, %v), want (50, 50)", p.X, p.Y)
	}
	if !approxEqual(p.Radius, 100, 1e-9) {
		t.Errorf("Radius = %f, want 100", p.Radius)
	}
	if p.Sides != 8 || p.StartAngle != 0 {
		t.Errorf("Sides = %d, StartAngle = %f, want 8, 0", p.Sides, p.StartAngle)
	}
	if len(sink.events) != 1 || sink.events[0].Type != EventShapeCreated || sink.events[0].Index != 0 {
		t.Errorf("events = %+v, want one shape-created at index 0", sink.events)
	}
}

func TestEditor_RadiusIsDistance(t *testing.T) {
	ed, _ := newTestEditor()
	ed.HandlePointerDown(Vec2{100, 100}, 0)
	ed.HandlePointerUp(Vec2{130, 140}, 0)
	if ed.Scene().Len() != 1 {
		t.Fatal("expected a polygon")
	}
	if r := ed.Scene().At(0).Radius; !approxEqual(r, 50, 1e-9) {
		t.Errorf("Radius = %f, want 50", r)
	}
}

func TestEditor_ZeroRadiusNotCommitted(t *testing.T) {
	ed, sink := newTestEditor()
	ed.HandlePointerDown(Vec2{80, 80}, 0)
	ed.HandlePointerUp(Vec2{80, 80}, 0)
	if ed.Scene().Len() != 0 {
		t.Errorf("scene has %d polygons, want 0", ed.Scene().Len())
	}
	if len(sink.events) != 0 {
		t.Errorf("unexpected events %v", sink.types())
	}
}

func TestEditor_SettingsReadLive(t *testing.T) {
	ed, _ := newTestEditor()
	ed.HandlePointerDown(Vec2{100, 100}, 0)
	ed.HandlePointerMove(Vec2{120, 100}, 0)
	ed.Settings().Sides = 5
	ed.Settings().StartAngle = 90
	ed.Settings().Fill = true
	ed.HandlePointerUp(Vec2{140, 100}, 0)

	p := ed.Scene().At(0)
	if p.Sides != 5 {
		t.Errorf("Sides = %d, want 5", p.Sides)
	}
	if !approxEqual(p.StartAngle, math.Pi/2, 1e-12) {
		t.Errorf("StartAngle = %f, want π/2", p.StartAngle)
	}
	if !p.Filled {
		t.Error("polygon should pick up the fill checkbox")
	}
}

func TestEditor_PreviewDoesNotAccumulate(t *testing.T) {
	ed, _ := newTestEditor()
	ed.Settings().Guidewires = false
	ed.Settings().Fill = true
	s := ed.Surface()
	if !isWhite(pixel(s, 143, 103)) {
		t.Fatal("expected a white grid cell at (143,103)")
	}

	ed.HandlePointerDown(Vec2{50, 100}, 0)
	ed.HandlePointerMove(Vec2{150, 100}, 0) // large preview covering (143,103)
	if isWhite(pixel(s, 143, 103)) {
		t.Fatal("large preview did not paint (143,103)")
	}
	ed.HandlePointerMove(Vec2{60, 100}, 0) // shrink

	if got := pixel(s, 143, 103); !isWhite(got) {
		t.Errorf("pixel (143,103) = %v after shrinking, want white background", got)
	}
}

func TestEditor_GuidewiresDrawnThroughOrigin(t *testing.T) {
	ed, _ := newTestEditor()
	s := ed.Surface()
	bg := pixel(s, 55, 285)

	ed.HandlePointerDown(Vec2{55, 100}, 0)
	ed.HandlePointerMove(Vec2{65, 100}, 0)
	if pixel(s, 55, 285) == bg {
		t.Error("expected the vertical guidewire at x=55")
	}

	ed.Settings().Guidewires = false
	ed.HandlePointerMove(Vec2{66, 100}, 0)
	if pixel(s, 55, 285) != bg {
		t.Error("guidewire drawn while disabled")
	}
}

func TestEditor_RotateQuarterTurn(t *testing.T) {
	ed, sink := newTestEditor()
	p := addPolygon(ed, 100, 100, 50)
	ed.SetEditing(true)

	ed.HandlePointerDown(Vec2{130, 100}, 0) // angle 0
	if ed.Mode() != ModeRotating || ed.Rotating() != p {
		t.Fatalf("mode = %v, rotating = %p; want rotating %p", ed.Mode(), ed.Rotating(), p)
	}
	ed.HandlePointerUp(Vec2{130, 100}, 0)
	if ed.Mode() != ModeRotating {
		t.Fatal("release in editing mode should keep rotating")
	}

	ed.HandlePointerMove(Vec2{100, 130}, 0) // angle π/2
	if p.StartAngle != 0 {
		t.Errorf("preview changed StartAngle to %f", p.StartAngle)
	}
	if got := ed.RotationPreview(Vec2{100, 130}, 0); !approxEqual(got, math.Pi/2, 1e-12) {
		t.Errorf("RotationPreview = %f, want π/2", got)
	}

	ed.HandlePointerDown(Vec2{100, 130}, 0)
	if !approxEqual(p.StartAngle, math.Pi/2, 1e-12) {
		t.Errorf("StartAngle = %f, want π/2", p.StartAngle)
	}
	// The commit press landed inside the polygon again, so it is reselected.
	if ed.Mode() != ModeRotating || ed.Rotating() != p {
		t.Errorf("mode = %v after commit press inside polygon, want rotating", ed.Mode())
	}

	want := []EditorEventType{EventEditingChanged, EventRotationStarted, EventShapeRotated, EventRotationStarted}
	got := sink.types()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
	if d := sink.events[2].Delta; !approxEqual(d, math.Pi/2, 1e-12) {
		t.Errorf("rotated Delta = %f, want π/2", d)
	}
}

func TestEditor_RotateSnapsWithShift(t *testing.T) {
	ed, _ := newTestEditor()
	p := addPolygon(ed, 100, 100, 50)
	ed.SetEditing(true)
	ed.HandlePointerDown(Vec2{130, 100}, 0)

	// atan2(9.3, 30) is about 0.3 rad, which snaps to 2·π/16.
	target := Vec2{130, 109.3}
	ed.HandlePointerMove(target, ModShift)
	ed.HandlePointerDown(target, ModShift)
	if !approxEqual(p.StartAngle, 2*SnapStep, 1e-12) {
		t.Errorf("StartAngle = %f, want %f", p.StartAngle, 2*SnapStep)
	}
}

func TestEditor_CommitOnEmptySpaceReturnsIdle(t *testing.T) {
	ed, _ := newTestEditor()
	p := addPolygon(ed, 100, 100, 40)
	ed.SetEditing(true)
	ed.HandlePointerDown(Vec2{120, 100}, 0) // lock at angle 0
	ed.HandlePointerDown(Vec2{300, 100}, 0) // still angle 0, outside

	if ed.Mode() != ModeIdle || ed.Rotating() != nil {
		t.Errorf("mode = %v, rotating = %v; want idle with no target", ed.Mode(), ed.Rotating())
	}
	if !approxEqual(p.StartAngle, 0, 1e-12) {
		t.Errorf("StartAngle = %f, want 0", p.StartAngle)
	}
}

func TestEditor_EditingMissDoesNothing(t *testing.T) {
	ed, sink := newTestEditor()
	ed.SetEditing(true)
	sink.events = nil
	ed.HandlePointerDown(Vec2{10, 10}, 0)
	ed.HandlePointerMove(Vec2{80, 10}, 0)
	ed.HandlePointerUp(Vec2{80, 10}, 0)
	if ed.Mode() != ModeIdle || ed.Scene().Len() != 0 || len(sink.events) != 0 {
		t.Errorf("mode %v, %d polygons, events %v; want nothing to happen", ed.Mode(), ed.Scene().Len(), sink.types())
	}
}

func TestEditor_SetEditingOffResets(t *testing.T) {
	ed, _ := newTestEditor()
	p := addPolygon(ed, 100, 100, 50)
	ed.SetEditing(true)
	ed.HandlePointerDown(Vec2{130, 100}, 0)
	ed.HandlePointerMove(Vec2{100, 130}, 0)

	ed.SetEditing(false)
	if ed.Editing() || ed.Mode() != ModeIdle || ed.Rotating() != nil {
		t.Errorf("editing=%v mode=%v rotating=%v, want all reset", ed.Editing(), ed.Mode(), ed.Rotating())
	}
	if p.StartAngle != 0 {
		t.Errorf("abandoned rotation changed StartAngle to %f", p.StartAngle)
	}
	// With editing off a press starts a new drag.
	ed.HandlePointerDown(Vec2{300, 200}, 0)
	if ed.Mode() != ModeDragging {
		t.Errorf("mode = %v, want dragging", ed.Mode())
	}
}

func TestEditor_SetEditingSameValueNoEvent(t *testing.T) {
	ed, sink := newTestEditor()
	ed.SetEditing(false)
	if len(sink.events) != 0 {
		t.Errorf("events = %v, want none", sink.types())
	}
}

func TestEditor_EraseAll(t *testing.T) {
	ed, sink := newTestEditor()
	addPolygon(ed, 100, 100, 50)
	ed.EraseAll()
	if ed.Scene().Len() != 0 {
		t.Errorf("scene has %d polygons after erase", ed.Scene().Len())
	}
	if got := pixel(ed.Surface(), 105, 105); !isWhite(got) {
		t.Errorf("pixel at old polygon = %v, want white grid cell", got)
	}
	if n := len(sink.events); n != 1 || sink.events[0].Type != EventSceneCleared {
		t.Errorf("events = %v, want scene-cleared", sink.types())
	}
}

func TestEditor_RotationOverlayLeavesSceneIntact(t *testing.T) {
	ed, _ := newTestEditor()
	addPolygon(ed, 200, 150, 40)
	ed.SetEditing(true)
	ed.HandlePointerDown(Vec2{220, 150}, 0)
	ed.HandlePointerMove(Vec2{200, 170}, 0)

	ed.SetEditing(false)
	want := NewSurface(400, 300)
	ed.Scene().RedrawAll(want)
	if got := ed.Surface().Pixels().Pix; string(got) != string(want.Pixels().Pix) {
		t.Error("leaving editing mode should repaint exactly the scene")
	}
}

func TestEditorModeString(t *testing.T) {
	for m, want := range map[EditorMode]string{
		ModeIdle: "idle", ModeDragging: "dragging", ModeRotating: "rotating", 9: "unknown",
	} {
		if got := m.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", m, got, want)
		}
	}
}

func TestEditorStatus(t *testing.T) {
	ed, _ := newTestEditor()
	addPolygon(ed, 50, 50, 10)
	want := "idle | sides 8 | angle 0 | fill off | edit off | 1 polygons"
	if got := ed.Status(); got != want {
		t.Errorf("Status = %q, want %q", got, want)
	}
}

func TestEditor_SecondPressErasesAbandonedPreview(t *testing.T) {
	ed, _ := newTestEditor()
	ed.Settings().Guidewires = false
	ed.Settings().Fill = true
	s := ed.Surface()

	ed.HandlePointerDown(Vec2{50, 100}, 0)
	ed.HandlePointerMove(Vec2{150, 100}, 0) // preview covers (143,103)
	ed.HandlePointerDown(Vec2{300, 250}, 0) // no release in between
	if got := pixel(s, 143, 103); !isWhite(got) {
		t.Errorf("pixel (143,103) = %v after second press, want white", got)
	}
	ed.HandlePointerUp(Vec2{320, 250}, 0)

	if ed.Scene().Len() != 1 {
		t.Fatalf("scene has %d polygons, want 1", ed.Scene().Len())
	}
	if p := ed.Scene().At(0); p.X != 300 || p.Y != 250 || !approxEqual(p.Radius, 20, 1e-9) {
		t.Errorf("polygon at (%v, %v) r=%f, want (300, 250) r=20", p.X, p.Y, p.Radius)
	}
	if got := pixel(s, 143, 103); !isWhite(got) {
		t.Errorf("pixel (143,103) = %v after release, want white", got)
	}
}

func TestEditor_EditingOnAbandonsDrag(t *testing.T) {
	ed, _ := newTestEditor()
	ed.Settings().Guidewires = false
	ed.Settings().Fill = true
	s := ed.Surface()

	ed.HandlePointerDown(Vec2{50, 100}, 0)
	ed.HandlePointerMove(Vec2{150, 100}, 0)
	ed.SetEditing(true)
	if ed.Mode() != ModeIdle {
		t.Errorf("mode after SetEditing(true) mid-drag = %v, want idle", ed.Mode())
	}
	if got := pixel(s, 143, 103); !isWhite(got) {
		t.Errorf("pixel (143,103) = %v, want preview erased", got)
	}

	// A release that belonged to the abandoned drag creates nothing.
	ed.HandlePointerUp(Vec2{150, 100}, 0)
	// A click on empty space selects nothing.
	ed.HandlePointerDown(Vec2{300, 250}, 0)
	ed.HandlePointerUp(Vec2{300, 250}, 0)

	if ed.Mode() != ModeIdle || ed.Scene().Len() != 0 {
		t.Errorf("mode = %v, scene = %d, want idle with no polygons", ed.Mode(), ed.Scene().Len())
	}
	if got := pixel(s, 143, 103); !isWhite(got) {
		t.Errorf("pixel (143,103) = %v, want white", got)
	}
}

func TestEditor_ReleaseAfterCommitIgnored(t *testing.T) {
	ed, sink := newTestEditor()
	ed.HandlePointerDown(Vec2{50, 50}, 0)
	ed.HandlePointerUp(Vec2{80, 50}, 0)
	ed.HandlePointerUp(Vec2{90, 50}, 0)
	if ed.Scene().Len() != 1 || len(sink.events) != 1 {
		t.Errorf("scene = %d, events = %v, want one polygon and one event", ed.Scene().Len(), sink.types())
	}
}
