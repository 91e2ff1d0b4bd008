package easel

import "fmt"

// EditorMode is the interaction state of an Editor.
type EditorMode uint8

const (
	ModeIdle     EditorMode = iota // waiting for a pointer press
	ModeDragging                   // rubberbanding a new polygon
	ModeRotating                   // a polygon is selected and follows the pointer
)

// String returns the mode's name.
func (m EditorMode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDragging:
		return "dragging"
	case ModeRotating:
		return "rotating"
	}
	return "unknown"
}

// Editor is an interactive polygon editing session bound to one Surface.
// With editing off, a press-drag-release rubberbands a new regular polygon
// centered on the press point. With editing on, pressing inside a polygon
// selects it; the polygon then rotates to follow the pointer (press not
// required) until the next press commits the rotation.
//
// The surface is saved to a snapshot when an interaction starts and
// restored before every preview, so previews never accumulate.
//
// Editor is not safe for concurrent use; drive it from one goroutine.
type Editor struct {
	surface  *Surface
	scene    *Scene
	settings Settings
	editing  bool

	mode     EditorMode
	origin   Vec2
	snapshot *Snapshot

	rotating    *Polygon
	lockAngle   float64
	lockEngaged bool

	sink  EventSink
	debug bool
}

// NewEditor creates an editor drawing into s with the given controls and
// paints the empty grid.
func NewEditor(s *Surface, settings Settings) *Editor {
	e := &Editor{surface: s, scene: NewScene(), settings: settings}
	e.scene.RedrawAll(s)
	return e
}

// Surface returns the surface the editor draws into.
func (e *Editor) Surface() *Surface { return e.surface }

// Update implements Sketch. The editor only draws in response to events.
func (e *Editor) Update(dt float64) error { return nil }

// Scene returns the editor's scene.
func (e *Editor) Scene() *Scene { return e.scene }

// Settings returns the live controls. Changes take effect on the next
// pointer event.
func (e *Editor) Settings() *Settings { return &e.settings }

// Mode returns the current interaction mode.
func (e *Editor) Mode() EditorMode { return e.mode }

// Editing reports whether editing mode is on.
func (e *Editor) Editing() bool { return e.editing }

// Rotating returns the polygon being rotated, or nil.
func (e *Editor) Rotating() *Polygon { return e.rotating }

// SetEventSink sets the receiver for editor events. Nil disables events.
func (e *Editor) SetEventSink(sink EventSink) { e.sink = sink }

// SetDebugMode enables debug logging of state transitions to stderr.
func (e *Editor) SetDebugMode(enabled bool) { e.debug = enabled }

// SetEditing turns editing mode on or off. A drag in progress is abandoned
// and its preview erased. Turning editing off also abandons any rotation
// in progress and repaints the scene without overlays.
func (e *Editor) SetEditing(on bool) {
	if on == e.editing {
		return
	}
	e.editing = on
	if e.mode == ModeDragging {
		e.abandonDrag()
	}
	if !on {
		e.resetRotation()
		e.mode = ModeIdle
		e.Redraw()
	}
	e.debugLog("editing=%v", on)
	e.emit(EditorEvent{Type: EventEditingChanged, Index: -1, Editing: on})
}

// EraseAll removes every polygon and repaints the empty grid. Any
// interaction in progress is abandoned.
func (e *Editor) EraseAll() {
	n := e.scene.Len()
	e.scene.Clear()
	e.resetRotation()
	e.resetDrag()
	e.mode = ModeIdle
	e.scene.RedrawAll(e.surface)
	e.snapshot = e.surface.SnapshotInto(e.snapshot)
	e.debugLog("erase all (%d polygons)", n)
	e.emit(EditorEvent{Type: EventSceneCleared, Index: -1})
}

// Redraw repaints the grid and every polygon.
func (e *Editor) Redraw() {
	e.scene.RedrawAll(e.surface)
}

// HandlePointerDown implements PointerHandler.
func (e *Editor) HandlePointerDown(p Vec2, mods KeyModifiers) {
	if e.mode == ModeDragging {
		// A press without a release in between supersedes the old drag.
		e.abandonDrag()
	}
	if e.mode == ModeRotating {
		e.commitRotation(p, mods)
		e.Redraw()
	}
	if e.editing {
		e.selectAt(p)
		return
	}
	e.startDrag(p)
}

// HandlePointerMove implements PointerHandler.
func (e *Editor) HandlePointerMove(p Vec2, mods KeyModifiers) {
	switch e.mode {
	case ModeRotating:
		e.previewRotation(p, mods)
	case ModeDragging:
		e.restore()
		e.drawCandidate(p)
		if e.settings.Guidewires {
			DrawGuidewires(e.surface, e.origin.X, e.origin.Y)
		}
	}
}

// HandlePointerUp implements PointerHandler. In editing mode a release is
// ignored so the selected polygon keeps following the pointer.
func (e *Editor) HandlePointerUp(p Vec2, mods KeyModifiers) {
	if e.mode != ModeDragging {
		return
	}
	e.restore()
	c := e.drawCandidate(p)
	if c.Radius > 0 {
		e.scene.Add(c)
		idx := e.scene.Len() - 1
		e.debugLog("created polygon %d at (%.1f, %.1f) r=%.1f sides=%d", idx, c.X, c.Y, c.Radius, c.Sides)
		e.emit(polygonEvent(EventShapeCreated, idx, c))
	}
	e.resetDrag()
	e.mode = ModeIdle
}

// --- dragging ---

func (e *Editor) startDrag(p Vec2) {
	e.origin = p
	e.snapshot = e.surface.SnapshotInto(e.snapshot)
	e.mode = ModeDragging
}

// candidate builds the polygon a release at p would create, reading the
// controls as they are now.
func (e *Editor) candidate(p Vec2) *Polygon {
	return NewPolygon(e.origin.X, e.origin.Y, e.origin.Dist(p),
		e.settings.Sides, e.settings.StartAngleRadians(), e.settings.Style())
}

func (e *Editor) drawCandidate(p Vec2) *Polygon {
	c := e.candidate(p)
	c.Draw(e.surface)
	return c
}

func (e *Editor) resetDrag() {
	e.origin = Vec2{}
}

// abandonDrag erases the uncommitted preview and returns to idle.
func (e *Editor) abandonDrag() {
	e.restore()
	e.resetDrag()
	e.mode = ModeIdle
	e.debugLog("drag abandoned")
}

// --- rotating ---

// selectAt hit tests p and, on a hit, starts rotating that polygon.
func (e *Editor) selectAt(p Vec2) {
	idx, target := e.scene.HitTest(p.X, p.Y)
	if target == nil {
		e.mode = ModeIdle
		return
	}
	e.rotating = target
	e.mode = ModeRotating
	e.snapshot = e.surface.SnapshotInto(e.snapshot)
	if !e.lockEngaged {
		e.lockEngaged = true
		e.lockAngle = AngleFromCenter(target.Center(), p)
	}
	DrawRotationAnnotations(e.surface, target, 0, e.settings.Style())
	e.debugLog("rotating polygon %d, lock %.3f rad", idx, e.lockAngle)
	e.emit(polygonEvent(EventRotationStarted, idx, target))
}

// rotationAt returns the rotation the pointer at p asks for, relative to
// the angle captured when the polygon was selected.
func (e *Editor) rotationAt(p Vec2, mods KeyModifiers) float64 {
	a := AngleFromCenter(e.rotating.Center(), p) - e.lockAngle
	if mods.Has(ModShift) {
		a = SnapAngle(a, SnapStep)
	}
	return a
}

func (e *Editor) previewRotation(p Vec2, mods KeyModifiers) {
	a := e.rotationAt(p, mods)
	e.restore()
	e.Redraw()
	e.rotating.Render(e.surface, a, e.settings.Style())
	DrawRotationAnnotations(e.surface, e.rotating, a, e.settings.Style())
}

func (e *Editor) commitRotation(p Vec2, mods KeyModifiers) {
	target := e.rotating
	delta := e.rotationAt(p, mods)
	target.Rotate(delta)
	idx := e.scene.IndexOf(target)
	e.resetRotation()
	e.mode = ModeIdle
	e.debugLog("rotated polygon %d by %.3f rad", idx, delta)
	ev := polygonEvent(EventShapeRotated, idx, target)
	ev.Delta = delta
	e.emit(ev)
}

func (e *Editor) resetRotation() {
	e.rotating = nil
	e.lockEngaged = false
	e.lockAngle = 0
}

// --- helpers ---

func (e *Editor) restore() {
	if e.snapshot == nil {
		return
	}
	if err := e.surface.Restore(e.snapshot); err != nil {
		e.debugLog("restore: %v", err)
	}
}

func (e *Editor) emit(ev EditorEvent) {
	if e.sink != nil {
		e.sink.EmitEvent(ev)
	}
}

// RotationPreview returns the rotation that a move to p would preview, or
// 0 when nothing is selected.
func (e *Editor) RotationPreview(p Vec2, mods KeyModifiers) float64 {
	if e.rotating == nil {
		return 0
	}
	return e.rotationAt(p, mods)
}

// Status summarizes the editor state in one line.
func (e *Editor) Status() string {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	return fmt.Sprintf("%s | sides %d | angle %g | fill %s | edit %s | %d polygons",
		e.mode, e.settings.Sides, e.settings.StartAngle,
		onOff(e.settings.Fill), onOff(e.editing), e.scene.Len())
}
