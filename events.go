package easel

// EditorEventType identifies what changed in an editor session.
type EditorEventType uint8

const (
	EventShapeCreated    EditorEventType = iota // a polygon was added to the scene
	EventRotationStarted                        // a polygon was selected for rotation
	EventShapeRotated                           // a rotation was committed
	EventSceneCleared                           // EraseAll ran
	EventEditingChanged                         // editing mode toggled
)

var editorEventNames = [...]string{
	EventShapeCreated:    "shape-created",
	EventRotationStarted: "rotation-started",
	EventShapeRotated:    "shape-rotated",
	EventSceneCleared:    "scene-cleared",
	EventEditingChanged:  "editing-changed",
}

// String returns the event type's name.
func (t EditorEventType) String() string {
	if int(t) < len(editorEventNames) {
		return editorEventNames[t]
	}
	return "unknown"
}

// EditorEvent describes a committed change to the scene or editor mode.
// Fields not meaningful for a type are zero. Index is the polygon's draw
// order position.
type EditorEvent struct {
	Type       EditorEventType
	Index      int
	X, Y       float64
	Radius     float64
	Sides      int
	StartAngle float64 // radians, after the change
	Delta      float64 // rotation applied, radians
	Editing    bool
}

// EventSink receives editor events. Set one with Editor.SetEventSink.
type EventSink interface {
	EmitEvent(event EditorEvent)
}

// polygonEvent fills the shape fields of an event from p.
func polygonEvent(t EditorEventType, index int, p *Polygon) EditorEvent {
	return EditorEvent{
		Type:       t,
		Index:      index,
		X:          p.X,
		Y:          p.Y,
		Radius:     p.Radius,
		Sides:      p.Sides,
		StartAngle: p.StartAngle,
	}
}
