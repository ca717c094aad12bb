// Package glyphboard is an interactive transform engine for glyph sprites
// on a 2D canvas: direct-manipulation dragging, rotating, and corner
// scaling via on-canvas handles, with full snapshot-based undo/redo.
//
// # Model
//
// A [Board] owns the sprites, a single selection, and the view toggles.
// Each [Sprite] is a short glyph string with a world position, a clockwise
// rotation in degrees, and independent per-axis scale where 1.0 equals
// [ReferenceGlyphSize]. Paint and hit-test order come from the dense ZIndex
// sequence, which every add, delete, and reorder operation keeps tight.
//
// Observers register with [Board.OnChange] and are invoked synchronously in
// registration order. Changes are either provisional (intra-drag frames) or
// committed (history boundaries).
//
// # Interaction
//
// The [Gizmo] interprets pointer events against the handle geometry and the
// hit tester:
//
//	gizmo := glyphboard.NewGizmo(board, metrics, surface)
//	gizmo.OnPointerDown(ev)
//	gizmo.OnPointerMove(ev)
//	gizmo.OnPointerUp(ev)
//
// A gesture mutates the sprite provisionally on every move and commits
// exactly once on release (or cancel — there is no abort path). In an
// Ebitengine host, [InputAdapter] does the event plumbing for you.
//
// # History
//
// [History] subscribes to the board and snapshots the full state on every
// committed change, deduplicating identical snapshots and keeping a
// baseline entry that can never be undone past. Snapshots are handed to an
// optional [Store]; [FileStore] persists them to disk and can watch for
// external edits.
//
// # Interchange
//
// [Board.Export] produces the compact JSON wire format (defaults omitted);
// [Board.Import] accepts both the compact and the legacy long-name schema.
// [RenderPNG] rasterizes a board to an image file.
package glyphboard
