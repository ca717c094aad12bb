package glyphboard

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// maxPointers bounds simultaneous inputs: pointer 0 = mouse, 1-9 = touch.
const maxPointers = 10

// InputAdapter polls Ebitengine mouse and touch state once per frame and
// feeds the gizmo its pointer protocol: down, move, up, and cancel, with a
// stable pointer id per input for exclusive capture. It also pushes the
// gizmo's hover cursor to the window.
//
// The adapter is the only place this package reads global input state; the
// gizmo itself is host-agnostic.
type InputAdapter struct {
	gizmo *Gizmo

	mouseDown    bool
	lastX, lastY float64

	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	touchX       [maxPointers]float64
	touchY       [maxPointers]float64
	prevTouchIDs []ebiten.TouchID
}

// NewInputAdapter wires a gizmo to Ebitengine input.
func NewInputAdapter(g *Gizmo) *InputAdapter {
	return &InputAdapter{gizmo: g}
}

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

// Update is called once per frame from the host's Update.
func (a *InputAdapter) Update() {
	mods := readModifiers()
	a.processMouse(mods)
	a.processTouches(mods)
	a.applyCursor()
}

func (a *InputAdapter) processMouse(mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	ev := PointerEvent{PointerID: 0, ScreenX: sx, ScreenY: sy, Modifiers: mods}
	switch {
	case pressed && !a.mouseDown:
		a.mouseDown = true
		a.gizmo.OnPointerDown(ev)
	case !pressed && a.mouseDown:
		a.mouseDown = false
		a.gizmo.OnPointerUp(ev)
	case sx != a.lastX || sy != a.lastY:
		a.gizmo.OnPointerMove(ev)
	}
	a.lastX = sx
	a.lastY = sy
}

func (a *InputAdapter) processTouches(mods KeyModifiers) {
	touchIDs := ebiten.AppendTouchIDs(a.prevTouchIDs[:0])
	a.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := a.touchSlot(tid)
		if slot < 0 {
			continue
		}
		tx, ty := ebiten.TouchPosition(tid)
		sx, sy := float64(tx), float64(ty)
		ev := PointerEvent{PointerID: slot, ScreenX: sx, ScreenY: sy, Modifiers: mods}

		if !activeSlots[slot] && !a.touchUsed[slot] {
			// Slot was just allocated this frame.
			a.touchUsed[slot] = true
			a.gizmo.OnPointerDown(ev)
		} else if sx != a.touchX[slot] || sy != a.touchY[slot] {
			a.gizmo.OnPointerMove(ev)
		}
		activeSlots[slot] = true
		a.touchX[slot] = sx
		a.touchY[slot] = sy
	}

	// Lifted touches release their slots.
	for i := 1; i < maxPointers; i++ {
		if a.touchUsed[i] && !activeSlots[i] {
			a.gizmo.OnPointerUp(PointerEvent{
				PointerID: i, ScreenX: a.touchX[i], ScreenY: a.touchY[i], Modifiers: mods,
			})
			a.touchUsed[i] = false
			a.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or reserves a new one. Returns -1 if full.
func (a *InputAdapter) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if a.touchUsed[i] && a.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !a.touchUsed[i] {
			a.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// applyCursor maps the gizmo's hover affordance to a system cursor shape.
func (a *InputAdapter) applyCursor() {
	var shape ebiten.CursorShapeType
	switch a.gizmo.Cursor() {
	case CursorMove:
		shape = ebiten.CursorShapeMove
	case CursorGrab:
		shape = ebiten.CursorShapePointer
	case CursorResizeEW:
		shape = ebiten.CursorShapeEWResize
	case CursorResizeNS:
		shape = ebiten.CursorShapeNSResize
	case CursorResizeNWSE:
		shape = ebiten.CursorShapeNWSEResize
	case CursorResizeNESW:
		shape = ebiten.CursorShapeNESWResize
	default:
		shape = ebiten.CursorShapeDefault
	}
	if ebiten.CursorShape() != shape {
		ebiten.SetCursorShape(shape)
	}
}
