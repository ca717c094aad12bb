package glyphboard

import "math"

// PointerEvent is one pointer sample delivered by the host: down, move, up,
// or cancel. Coordinates are in screen space; the gizmo converts them
// through its Surface. PointerID distinguishes concurrent input devices
// (mouse, touches) for exclusive capture.
type PointerEvent struct {
	PointerID        int
	ScreenX, ScreenY float64
	Modifiers        KeyModifiers
}

// spriteSnapshot captures a sprite's transform fields at pointer-down.
// Every session keeps one; the drag math always starts from these values,
// never from the live (mid-drag) fields.
type spriteSnapshot struct {
	X, Y     float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
}

func snapshotOf(s *Sprite) spriteSnapshot {
	return spriteSnapshot{X: s.X, Y: s.Y, Rotation: s.Rotation, ScaleX: s.ScaleX, ScaleY: s.ScaleY}
}

// session is the active manipulation. One variant per interaction mode, each
// owning exactly the data its math needs, so scale-only fields cannot be
// read from a drag or rotate session.
type session interface {
	mode() Mode
	target() *Sprite
}

type dragSession struct {
	sprite       *Sprite
	downX, downY float64 // pointer-down world position
	start        spriteSnapshot
}

func (s *dragSession) mode() Mode      { return ModeDragging }
func (s *dragSession) target() *Sprite { return s.sprite }

type rotateSession struct {
	sprite       *Sprite
	downX, downY float64
	start        spriteSnapshot
}

func (s *rotateSession) mode() Mode      { return ModeRotating }
func (s *rotateSession) target() *Sprite { return s.sprite }

type scaleSession struct {
	sprite         *Sprite
	corner         Mode // one of the four ModeScaling values
	downX, downY   float64
	start          spriteSnapshot
	pivotX, pivotY float64 // pointer-down position in the local frame at drag start
}

func (s *scaleSession) mode() Mode      { return s.corner }
func (s *scaleSession) target() *Sprite { return s.sprite }

// Gizmo is the interaction state machine. It interprets pointer events
// against the handle geometry and hit tester, mutates sprite fields in
// place, and reports provisional changes during a drag and one committed
// change when the gesture ends.
//
// Only one session is active at a time; a pointer-down from a second
// pointer while a session runs is ignored. All methods must be called from
// a single goroutine.
type Gizmo struct {
	board   *Board
	metrics GlyphMetrics
	surface Surface

	session  session
	captured int // pointer id owning the session; -1 when idle
	cursor   Cursor
}

// NewGizmo creates the interaction state machine for a board.
func NewGizmo(board *Board, metrics GlyphMetrics, surface Surface) *Gizmo {
	return &Gizmo{board: board, metrics: metrics, surface: surface, captured: -1}
}

// Mode returns the current interaction mode.
func (g *Gizmo) Mode() Mode {
	if g.session == nil {
		return ModeIdle
	}
	return g.session.mode()
}

// Active reports whether a manipulation session is engaged.
func (g *Gizmo) Active() bool {
	return g.session != nil
}

// Cursor returns the hover affordance computed by the last idle pointer
// move.
func (g *Gizmo) Cursor() Cursor {
	return g.cursor
}

// SpriteHandles returns the five manipulation handles for a sprite.
func (g *Gizmo) SpriteHandles(spr *Sprite) []Handle {
	return Handles(spr, g.metrics)
}

// OnPointerDown starts a manipulation session. Priority order: the selected
// sprite's rotation handle, then its corner handles, then a full sprite hit
// test. Hitting a sprite selects it and starts a drag; hitting nothing
// clears the selection and stays idle.
func (g *Gizmo) OnPointerDown(ev PointerEvent) {
	if g.session != nil {
		return
	}
	wx, wy := ScreenToWorld(g.surface, ev.ScreenX, ev.ScreenY)

	if sel := g.board.Selected(); sel != nil {
		handles := Handles(sel, g.metrics)

		// Rotation handle wins over corners when they overlap.
		for _, h := range handles {
			if h.Mode == ModeRotating && hitsHandle(h, wx, wy) {
				g.session = &rotateSession{sprite: sel, downX: wx, downY: wy, start: snapshotOf(sel)}
				g.captured = ev.PointerID
				return
			}
		}
		for _, h := range handles {
			if h.Mode.IsScaling() && hitsHandle(h, wx, wy) {
				// The pivot uses the scale at this instant; the whole drag
				// is solved against it.
				px, py := WorldToLocal(sel, wx, wy)
				g.session = &scaleSession{
					sprite: sel, corner: h.Mode,
					downX: wx, downY: wy,
					start:  snapshotOf(sel),
					pivotX: px, pivotY: py,
				}
				g.captured = ev.PointerID
				return
			}
		}
	}

	hit := HitTest(g.board.Sprites(), g.metrics, wx, wy)
	if hit == nil {
		g.board.Deselect()
		return
	}
	g.board.Select(hit.ID)
	g.session = &dragSession{sprite: hit, downX: wx, downY: wy, start: snapshotOf(hit)}
	g.captured = ev.PointerID
}

// OnPointerMove applies a provisional update for the captured pointer, or
// recomputes the hover cursor when idle. Provisional updates never push a
// history snapshot; the single commit happens on release.
func (g *Gizmo) OnPointerMove(ev PointerEvent) {
	if g.session == nil {
		g.updateCursor(ev)
		return
	}
	if ev.PointerID != g.captured {
		return
	}
	wx, wy := ScreenToWorld(g.surface, ev.ScreenX, ev.ScreenY)

	switch s := g.session.(type) {
	case *dragSession:
		s.sprite.X = s.start.X + (wx - s.downX)
		s.sprite.Y = s.start.Y + (wy - s.downY)
	case *rotateSession:
		// Track from the live center, not the drag-start center, so a
		// translation mid-rotation would still read correctly.
		s.sprite.Rotation = pointerAngle(wx-s.sprite.X, wy-s.sprite.Y)
	case *scaleSession:
		g.applyScale(s, wx, wy, ev.Modifiers&ModShift != 0)
	}
	g.board.NotifySpriteChanged(g.session.target().ID, false)
}

// applyScale updates the sprite's scale from the current pointer position.
// The pointer is expressed in the frame captured at drag start; reading the
// live scale here would feed the result back into the next frame's input.
func (g *Gizmo) applyScale(s *scaleSession, wx, wy float64, nonUniform bool) {
	curX, curY := WorldToLocalWith(s.sprite, wx, wy, s.start.ScaleX, s.start.ScaleY, s.start.Rotation)

	if nonUniform {
		if math.Abs(s.pivotX) > pivotEpsilon {
			s.sprite.ScaleX = clampScale(s.start.ScaleX * (curX / s.pivotX))
		}
		if math.Abs(s.pivotY) > pivotEpsilon {
			s.sprite.ScaleY = clampScale(s.start.ScaleY * (curY / s.pivotY))
		}
		return
	}

	startDist := math.Hypot(s.pivotX, s.pivotY)
	if startDist < pivotEpsilon {
		return
	}
	ratio := math.Hypot(curX, curY) / startDist
	s.sprite.ScaleX = clampScale(s.start.ScaleX * ratio)
	s.sprite.ScaleY = clampScale(s.start.ScaleY * ratio)
}

// OnPointerUp ends the session for the captured pointer and commits the
// edit. There is no abort path: every engaged manipulation ends by
// committing, including cancellation.
func (g *Gizmo) OnPointerUp(ev PointerEvent) {
	if g.session == nil || ev.PointerID != g.captured {
		return
	}
	id := g.session.target().ID
	g.session = nil
	g.captured = -1
	g.board.NotifySpriteChanged(id, true)
}

// OnPointerCancel handles an externally-initiated cancel (device
// disconnection) identically to release: the in-progress edit is committed,
// not reverted.
func (g *Gizmo) OnPointerCancel(ev PointerEvent) {
	g.OnPointerUp(ev)
}

// pointerAngle maps a vector from the sprite center to the pointer onto the
// rotation convention: straight up reads 0°, straight right reads 90°.
func pointerAngle(dx, dy float64) float64 {
	return math.Atan2(dy, dx)*180/math.Pi + 90
}

// clampScale takes the magnitude and floors it at MinScale.
func clampScale(v float64) float64 {
	v = math.Abs(v)
	if v < MinScale {
		return MinScale
	}
	return v
}

// --- Hover cursor ---

// resizeCursors maps the eight compass directions (E, SE, S, SW, W, NW, N,
// NE) to the matching bidirectional resize affordance.
var resizeCursors = [8]Cursor{
	CursorResizeEW, CursorResizeNWSE, CursorResizeNS, CursorResizeNESW,
	CursorResizeEW, CursorResizeNWSE, CursorResizeNS, CursorResizeNESW,
}

func (g *Gizmo) updateCursor(ev PointerEvent) {
	wx, wy := ScreenToWorld(g.surface, ev.ScreenX, ev.ScreenY)

	if sel := g.board.Selected(); sel != nil {
		for _, h := range Handles(sel, g.metrics) {
			if !hitsHandle(h, wx, wy) {
				continue
			}
			if h.Mode == ModeRotating {
				g.cursor = CursorGrab
			} else {
				g.cursor = cornerCursor(sel, h)
			}
			return
		}
	}
	if HitTest(g.board.Sprites(), g.metrics, wx, wy) != nil {
		g.cursor = CursorMove
		return
	}
	g.cursor = CursorDefault
}

// cornerCursor picks a resize cursor from the angle between the sprite
// center and the handle, snapped to the nearest of 8 compass directions.
// The half-sector offset centers each direction's 45° band.
func cornerCursor(spr *Sprite, h Handle) Cursor {
	deg := math.Atan2(h.Y-spr.Y, h.X-spr.X) * 180 / math.Pi
	dir := int(math.Mod(deg+22.5+360, 360) / 45)
	return resizeCursors[dir%8]
}
