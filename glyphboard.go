package glyphboard

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// KeyModifiers is a bitmask of keyboard modifier keys.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Mode identifies what a manipulation session is doing to the selected sprite.
type Mode uint8

const (
	ModeIdle          Mode = iota // no active manipulation
	ModeDragging                  // translating the sprite body
	ModeRotating                  // dragging the rotation handle
	ModeScalingTL                 // dragging the top-left corner handle
	ModeScalingTR                 // dragging the top-right corner handle
	ModeScalingBL                 // dragging the bottom-left corner handle
	ModeScalingBR                 // dragging the bottom-right corner handle
)

// IsScaling reports whether m is one of the four corner-scale modes.
func (m Mode) IsScaling() bool {
	return m >= ModeScalingTL && m <= ModeScalingBR
}

// Cursor is the hover affordance the host should display for the current
// pointer position. Purely advisory; the engine never reads it back.
type Cursor uint8

const (
	CursorDefault    Cursor = iota // nothing under the pointer
	CursorMove                     // over a sprite body
	CursorGrab                     // over the rotation handle
	CursorResizeEW                 // east-west resize
	CursorResizeNS                 // north-south resize
	CursorResizeNWSE               // northwest-southeast resize
	CursorResizeNESW               // northeast-southwest resize
)

// --- Gizmo geometry constants ---

// Visual sizes are what DrawGizmo paints; hit sizes are the larger regions
// used for pointer acquisition. Keeping them separate lets small handles
// stay easy to grab.
const (
	// HandleMargin is the gap between the sprite bounds and the corner
	// handles / selection box, in world units.
	HandleMargin = 4.0

	// HandleVisualSize is the painted side length of a corner handle square.
	HandleVisualSize = 8.0

	// HandleHitSize is the side length of a corner handle's hit box.
	HandleHitSize = 14.0

	// RotationHandleOffset is the distance from the top edge of the expanded
	// bounds to the rotation handle center.
	RotationHandleOffset = 25.0

	// RotationHandleRadius is both the painted radius of the rotation handle
	// circle and the radius of its circular hit test.
	RotationHandleRadius = 6.0

	// MinScale is the magnitude floor applied to every scale-drag result.
	MinScale = 0.1

	// ReferenceGlyphSize is the glyph size, in world units, that a sprite
	// scale of 1.0 corresponds to.
	ReferenceGlyphSize = 64.0
)

// pivotEpsilon guards scale-drag ratio math against a drag-start pivot that
// sits on (or numerically at) the sprite origin.
const pivotEpsilon = 1e-3
