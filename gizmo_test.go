package glyphboard

import (
	"testing"
)

// testRig wires a board to a gizmo with deterministic metrics and a
// zero-offset surface, so screen coordinates equal world coordinates.
type testRig struct {
	board *Board
	gizmo *Gizmo

	provisional int
	committed   int
}

func newTestRig() *testRig {
	r := &testRig{board: NewBoard()}
	r.gizmo = NewGizmo(r.board, squareMetrics, CenteredSurface{})
	r.board.OnChange(func(c Change) {
		if c.Kind != ChangeSprite {
			return
		}
		if c.Committed {
			r.committed++
		} else {
			r.provisional++
		}
	})
	return r
}

func ptr(x, y float64) PointerEvent {
	return PointerEvent{PointerID: 0, ScreenX: x, ScreenY: y}
}

func ptrShift(x, y float64) PointerEvent {
	return PointerEvent{PointerID: 0, ScreenX: x, ScreenY: y, Modifiers: ModShift}
}

// --- Selection ---

func TestPointerDownSelectsTopmost(t *testing.T) {
	r := newTestRig()
	r.board.AddSprite("★", 0, 0)
	top := r.board.AddSprite("♥", 0, 0)
	r.board.Deselect()

	r.gizmo.OnPointerDown(ptr(0, 0))
	if r.board.SelectedID() != top.ID {
		t.Fatalf("selected %q, want topmost %q", r.board.SelectedID(), top.ID)
	}
	if r.gizmo.Mode() != ModeDragging {
		t.Fatalf("mode = %v, want dragging", r.gizmo.Mode())
	}
}

func TestPointerDownOnEmptyDeselects(t *testing.T) {
	r := newTestRig()
	r.board.AddSprite("★", 0, 0)

	r.gizmo.OnPointerDown(ptr(200, 200))
	if r.board.Selected() != nil {
		t.Error("selection should clear")
	}
	if r.gizmo.Mode() != ModeIdle {
		t.Errorf("mode = %v, want idle", r.gizmo.Mode())
	}
}

func TestPointerDownSwitchesSelection(t *testing.T) {
	r := newTestRig()
	a := r.board.AddSprite("★", -50, 0)
	bSpr := r.board.AddSprite("♥", 50, 0)
	r.board.Select(a.ID)

	r.gizmo.OnPointerDown(ptr(50, 0))
	if r.board.SelectedID() != bSpr.ID {
		t.Error("clicking a different sprite should select it")
	}
	if r.gizmo.Mode() != ModeDragging {
		t.Error("and immediately start dragging it")
	}
}

// --- Dragging ---

func TestDragMovesSprite(t *testing.T) {
	r := newTestRig()
	spr := r.board.AddSprite("★", 0, 0)

	r.gizmo.OnPointerDown(ptr(2, 3))
	r.gizmo.OnPointerMove(ptr(32, 23))
	assertNear(t, "x", spr.X, 30)
	assertNear(t, "y", spr.Y, 20)

	// Deltas accumulate from the drag start, not from the last frame.
	r.gizmo.OnPointerMove(ptr(12, 13))
	assertNear(t, "x back", spr.X, 10)
	assertNear(t, "y back", spr.Y, 10)
}

func TestDragCommitsOnceOnRelease(t *testing.T) {
	r := newTestRig()
	r.board.AddSprite("★", 0, 0)

	r.gizmo.OnPointerDown(ptr(0, 0))
	r.gizmo.OnPointerMove(ptr(10, 0))
	r.gizmo.OnPointerMove(ptr(20, 0))
	r.gizmo.OnPointerMove(ptr(30, 0))
	if r.committed != 0 {
		t.Fatalf("committed %d times during drag, want 0", r.committed)
	}
	if r.provisional != 3 {
		t.Fatalf("provisional = %d, want 3", r.provisional)
	}

	r.gizmo.OnPointerUp(ptr(30, 0))
	if r.committed != 1 {
		t.Fatalf("committed = %d, want exactly 1", r.committed)
	}
	if r.gizmo.Mode() != ModeIdle {
		t.Error("mode should return to idle")
	}
}

func TestCancelCommitsLikeRelease(t *testing.T) {
	r := newTestRig()
	spr := r.board.AddSprite("★", 0, 0)

	r.gizmo.OnPointerDown(ptr(0, 0))
	r.gizmo.OnPointerMove(ptr(25, 0))
	r.gizmo.OnPointerCancel(ptr(25, 0))

	// No abort path: the edit stands and is committed.
	assertNear(t, "x", spr.X, 25)
	if r.committed != 1 {
		t.Fatalf("committed = %d, want 1", r.committed)
	}
	if r.gizmo.Active() {
		t.Error("session should be cleared")
	}
}

// --- Pointer capture ---

func TestSecondPointerIgnoredDuringSession(t *testing.T) {
	r := newTestRig()
	spr := r.board.AddSprite("★", 0, 0)

	r.gizmo.OnPointerDown(ptr(0, 0))
	r.gizmo.OnPointerDown(PointerEvent{PointerID: 1, ScreenX: 5, ScreenY: 5})
	r.gizmo.OnPointerMove(PointerEvent{PointerID: 1, ScreenX: 100, ScreenY: 100})
	assertNear(t, "x untouched by other pointer", spr.X, 0)

	r.gizmo.OnPointerUp(PointerEvent{PointerID: 1, ScreenX: 100, ScreenY: 100})
	if !r.gizmo.Active() {
		t.Error("other pointer's release must not end the session")
	}

	r.gizmo.OnPointerMove(ptr(40, 0))
	assertNear(t, "captured pointer still drives", spr.X, 40)
	r.gizmo.OnPointerUp(ptr(40, 0))
}

// --- Rotation ---

func TestRotationHandleMapping(t *testing.T) {
	r := newTestRig()
	spr := r.board.AddSprite("★", 0, 0)

	// Rotation handle for the 16x16 sprite sits at (0, -37).
	r.gizmo.OnPointerDown(ptr(0, -37))
	if r.gizmo.Mode() != ModeRotating {
		t.Fatalf("mode = %v, want rotating", r.gizmo.Mode())
	}

	r.gizmo.OnPointerMove(ptr(50, 0)) // straight right of center
	assertNear(t, "right = 90", spr.Rotation, 90)

	r.gizmo.OnPointerMove(ptr(0, -50)) // straight up
	assertNear(t, "up = 0", spr.Rotation, 0)

	r.gizmo.OnPointerMove(ptr(0, 50)) // straight down
	assertNear(t, "down = 180", spr.Rotation, 180)
	r.gizmo.OnPointerUp(ptr(0, 50))
}

func TestRotationTracksLiveCenter(t *testing.T) {
	r := newTestRig()
	spr := r.board.AddSprite("★", 0, 0)

	r.gizmo.OnPointerDown(ptr(0, -37))
	// If something moves the sprite mid-rotation, the angle must follow the
	// live center.
	spr.X = 100
	r.gizmo.OnPointerMove(ptr(150, 0))
	assertNear(t, "rotation from moved center", spr.Rotation, 90)
	r.gizmo.OnPointerUp(ptr(150, 0))
}

// --- Scaling ---

func TestUniformScalePinsGrabbedPoint(t *testing.T) {
	r := newTestRig()
	spr := r.board.AddSprite("★", 0, 0)

	// BR handle center is (12, 12); grab just inside it at local (10, 10).
	r.gizmo.OnPointerDown(ptr(10, 10))
	if r.gizmo.Mode() != ModeScalingBR {
		t.Fatalf("mode = %v, want scaling BR", r.gizmo.Mode())
	}

	r.gizmo.OnPointerMove(ptr(20, 20))
	assertNearTol(t, "scaleX", spr.ScaleX, 2.0, 1e-6)
	assertNearTol(t, "scaleY", spr.ScaleY, 2.0, 1e-6)

	// The local point grabbed at drag start is still under the pointer.
	wx, wy := LocalToWorld(spr, 10, 10)
	assertNearTol(t, "pinned x", wx, 20, 1e-6)
	assertNearTol(t, "pinned y", wy, 20, 1e-6)
	r.gizmo.OnPointerUp(ptr(20, 20))
}

func TestScaleUsesDragStartFrameNotLive(t *testing.T) {
	r := newTestRig()
	spr := r.board.AddSprite("★", 0, 0)

	r.gizmo.OnPointerDown(ptr(10, 10))
	// Two intermediate frames; if the math read the live scale the result
	// would compound and drift past 2.
	r.gizmo.OnPointerMove(ptr(15, 15))
	r.gizmo.OnPointerMove(ptr(18, 18))
	r.gizmo.OnPointerMove(ptr(20, 20))
	assertNearTol(t, "scaleX", spr.ScaleX, 2.0, 1e-6)
	assertNearTol(t, "scaleY", spr.ScaleY, 2.0, 1e-6)
	r.gizmo.OnPointerUp(ptr(20, 20))
}

func TestNonUniformScaleWithModifier(t *testing.T) {
	r := newTestRig()
	spr := r.board.AddSprite("★", 0, 0)

	r.gizmo.OnPointerDown(ptr(10, 10))
	r.gizmo.OnPointerMove(ptrShift(20, 10))
	assertNearTol(t, "scaleX", spr.ScaleX, 2.0, 1e-6)
	assertNearTol(t, "scaleY", spr.ScaleY, 1.0, 1e-6)

	r.gizmo.OnPointerMove(ptrShift(20, 5))
	assertNearTol(t, "scaleX again", spr.ScaleX, 2.0, 1e-6)
	assertNearTol(t, "scaleY halved", spr.ScaleY, 0.5, 1e-6)
	r.gizmo.OnPointerUp(ptrShift(20, 5))
}

func TestScaleFloor(t *testing.T) {
	r := newTestRig()
	spr := r.board.AddSprite("★", 0, 0)

	r.gizmo.OnPointerDown(ptr(10, 10))
	r.gizmo.OnPointerMove(ptr(0.3, 0.3))
	if spr.ScaleX != MinScale || spr.ScaleY != MinScale {
		t.Fatalf("scale = %v,%v, want floor %v", spr.ScaleX, spr.ScaleY, MinScale)
	}
	r.gizmo.OnPointerUp(ptr(0.3, 0.3))
}

func TestScaleDegeneratePivotSkipsFrame(t *testing.T) {
	r := newTestRig()
	spr := r.board.AddSprite("★", 0, 0)

	// A pivot at the sprite origin cannot produce a ratio; the frame must
	// be skipped rather than divided through.
	r.gizmo.session = &scaleSession{
		sprite: spr, corner: ModeScalingBR,
		start: snapshotOf(spr),
	}
	r.gizmo.captured = 0

	r.gizmo.OnPointerMove(ptr(50, 50))
	assertNear(t, "scaleX unchanged", spr.ScaleX, 1)
	assertNear(t, "scaleY unchanged", spr.ScaleY, 1)

	r.gizmo.OnPointerMove(ptrShift(50, 50))
	assertNear(t, "non-uniform skips too", spr.ScaleX, 1)
	r.gizmo.OnPointerUp(ptr(50, 50))
}

func TestScaleOnRotatedSprite(t *testing.T) {
	r := newTestRig()
	spr := r.board.AddSprite("★", 0, 0)
	spr.Rotation = 90

	// BR anchor (12, 12) rotated 90° CW lands at (-12, 12).
	r.gizmo.OnPointerDown(ptr(-12, 12))
	if r.gizmo.Mode() != ModeScalingBR {
		t.Fatalf("mode = %v, want scaling BR", r.gizmo.Mode())
	}
	r.gizmo.OnPointerMove(ptr(-24, 24))
	assertNearTol(t, "scaleX", spr.ScaleX, 2.0, 1e-6)
	assertNearTol(t, "scaleY", spr.ScaleY, 2.0, 1e-6)
	assertNear(t, "rotation untouched", spr.Rotation, 90)
	r.gizmo.OnPointerUp(ptr(-24, 24))
}

// --- Hover cursor ---

func TestHoverCursor(t *testing.T) {
	r := newTestRig()
	spr := r.board.AddSprite("★", 0, 0)
	r.board.Select(spr.ID)

	r.gizmo.OnPointerMove(ptr(0, -37))
	if r.gizmo.Cursor() != CursorGrab {
		t.Errorf("rotation hover = %v, want grab", r.gizmo.Cursor())
	}

	r.gizmo.OnPointerMove(ptr(12, 12)) // BR: southeast of center
	if r.gizmo.Cursor() != CursorResizeNWSE {
		t.Errorf("BR hover = %v, want NWSE", r.gizmo.Cursor())
	}

	r.gizmo.OnPointerMove(ptr(12, -12)) // TR: northeast of center
	if r.gizmo.Cursor() != CursorResizeNESW {
		t.Errorf("TR hover = %v, want NESW", r.gizmo.Cursor())
	}

	r.gizmo.OnPointerMove(ptr(0, 0))
	if r.gizmo.Cursor() != CursorMove {
		t.Errorf("body hover = %v, want move", r.gizmo.Cursor())
	}

	r.gizmo.OnPointerMove(ptr(200, 200))
	if r.gizmo.Cursor() != CursorDefault {
		t.Errorf("empty hover = %v, want default", r.gizmo.Cursor())
	}
}

func TestHoverCursorFollowsRotation(t *testing.T) {
	r := newTestRig()
	spr := r.board.AddSprite("★", 0, 0)
	spr.Rotation = 90
	r.board.Select(spr.ID)

	// The TL handle rotates from northwest to northeast of the center, so
	// its resize direction flips to NESW.
	r.gizmo.OnPointerMove(ptr(12, -12))
	if r.gizmo.Cursor() != CursorResizeNESW {
		t.Errorf("rotated TL hover = %v, want NESW", r.gizmo.Cursor())
	}
}

func TestHoverDoesNotMutate(t *testing.T) {
	r := newTestRig()
	spr := r.board.AddSprite("★", 5, 5)
	before := *spr

	r.gizmo.OnPointerMove(ptr(5, 5))
	r.gizmo.OnPointerMove(ptr(100, 100))
	if *spr != before {
		t.Error("hover must not mutate the model")
	}
	if r.provisional != 0 || r.committed != 0 {
		t.Error("hover must not notify")
	}
}
