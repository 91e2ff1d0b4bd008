package easel

import "github.com/hajimehoshi/ebiten/v2"

// pointerState tracks the single pointer the editor listens to.
type pointerState struct {
	down    bool
	lastX   float64
	lastY   float64
	touchID ebiten.TouchID
	touch   bool // the current press came from a touch
	seen    bool // lastX/lastY hold a real position
}

// Input turns per-frame pointer polling into Down/Move/Up events for a
// PointerHandler. The pointer is the mouse or, while one is active, the
// first touch. Moves are delivered whether or not a button is held.
//
// Positions are converted from screen to surface coordinates with Mapper
// before they reach the handler.
type Input struct {
	handler PointerHandler
	Mapper  CoordMapper

	ptr         pointerState
	injectQueue []syntheticPointerEvent
	touchIDs    []ebiten.TouchID

	// events counts handler calls since the last ResetEventCount.
	events int
}

// NewInput creates an Input feeding handler. A nil handler drops events.
func NewInput(handler PointerHandler, mapper CoordMapper) *Input {
	return &Input{handler: handler, Mapper: mapper}
}

// SetHandler replaces the event receiver.
func (in *Input) SetHandler(handler PointerHandler) { in.handler = handler }

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// Update polls ebiten once. Called from the game's Update. While injected
// events are queued, one is consumed per frame and real input is ignored.
func (in *Input) Update() {
	mods := readModifiers()
	if in.processInjectedInput(mods) {
		return
	}
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	if len(in.touchIDs) > 0 {
		tid := in.touchIDs[0]
		if in.ptr.down && in.ptr.touch {
			// Stay with the touch that started the press while it lasts.
			for _, id := range in.touchIDs {
				if id == in.ptr.touchID {
					tid = id
					break
				}
			}
		}
		tx, ty := ebiten.TouchPosition(tid)
		in.ptr.touch, in.ptr.touchID = true, tid
		in.processPointer(float64(tx), float64(ty), true, mods)
		return
	}
	if in.ptr.down && in.ptr.touch {
		in.processPointer(in.ptr.lastX, in.ptr.lastY, false, mods)
		in.ptr.touch = false
		return
	}
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.processPointer(float64(mx), float64(my), pressed, mods)
}

// processPointer runs the pointer state machine for one sample in screen
// coordinates.
func (in *Input) processPointer(sx, sy float64, pressed bool, mods KeyModifiers) {
	ps := &in.ptr
	moved := !ps.seen || sx != ps.lastX || sy != ps.lastY
	ps.lastX, ps.lastY, ps.seen = sx, sy, true
	p := in.Mapper.ToSurface(sx, sy)

	switch {
	case pressed && !ps.down:
		ps.down = true
		in.dispatch(func(h PointerHandler) { h.HandlePointerDown(p, mods) })
	case !pressed && ps.down:
		ps.down = false
		in.dispatch(func(h PointerHandler) { h.HandlePointerUp(p, mods) })
	case moved:
		in.dispatch(func(h PointerHandler) { h.HandlePointerMove(p, mods) })
	}
}

func (in *Input) dispatch(fn func(PointerHandler)) {
	if in.handler == nil {
		return
	}
	in.events++
	fn(in.handler)
}

// Down reports whether the pointer is pressed.
func (in *Input) Down() bool { return in.ptr.down }

// ResetEventCount returns the number of events dispatched since the last
// call and zeroes the counter.
func (in *Input) ResetEventCount() int {
	n := in.events
	in.events = 0
	return n
}
