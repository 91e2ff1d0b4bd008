package easel

// syntheticPointerEvent represents a single injected pointer event in
// screen coordinates. It goes through the same mapping and state machine
// as real input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
	mods             KeyModifiers
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next Update.
func (in *Input) InjectPress(x, y float64) {
	in.InjectPressMods(x, y, 0)
}

// InjectPressMods is InjectPress with modifier keys held.
func (in *Input) InjectPressMods(x, y float64, mods KeyModifiers) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y, pressed: true, mods: mods,
	})
}

// InjectMove queues a pointer move with the button held down. Use it
// between InjectPress and InjectRelease to simulate a drag.
func (in *Input) InjectMove(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y, pressed: true,
	})
}

// InjectHover queues a pointer move with no button held, optionally with
// modifier keys.
func (in *Input) InjectHover(x, y float64, mods KeyModifiers) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y, pressed: false, mods: mods,
	})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (in *Input) InjectRelease(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y, pressed: false,
	})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (in *Input) InjectClick(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes frames frames.
// Minimum frames is 2 (press + release).
func (in *Input) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	in.InjectRelease(toX, toY)
}

// Pending returns the number of queued injected events.
func (in *Input) Pending() int { return len(in.injectQueue) }

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (real
// input should be skipped). Modifiers held for real are merged with the
// event's own.
func (in *Input) processInjectedInput(mods KeyModifiers) bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	in.processPointer(evt.screenX, evt.screenY, evt.pressed, mods|evt.mods)
	return true
}

// Step consumes one injected event without polling real input. Headless
// drivers call it in place of Update. Returns false when the queue was
// empty.
func (in *Input) Step() bool {
	return in.processInjectedInput(0)
}
