package glyphboard

import (
	"bytes"
	"log/slog"
)

// maxUndoDepth bounds the undo stack; the oldest snapshot is evicted first.
const maxUndoDepth = 50

// Store persists committed snapshots. Failures are reported to the caller
// and never block in-memory history.
type Store interface {
	Save(snapshot []byte) error
	Load() ([]byte, error)
}

// History captures full-board snapshots at committed-edit boundaries and
// replays them for undo/redo. It subscribes to the board's change feed and
// commits on every committed change, so hosts normally never call Commit
// directly.
//
// The undo stack always holds at least one entry once constructed — the
// baseline state — so the editor can never be undone into nothing.
type History struct {
	board  *Board
	store  Store // optional
	handle CallbackHandle

	undo [][]byte
	redo [][]byte

	restoring bool
}

// NewHistory creates a history manager seeded with the board's current
// state as the baseline. store may be nil.
func NewHistory(board *Board, store Store) *History {
	h := &History{
		board: board,
		store: store,
		undo:  [][]byte{board.MarshalState()},
	}
	h.handle = board.OnChange(func(c Change) {
		if c.Committed {
			h.Commit()
		}
	})
	return h
}

// Close detaches the history from the board's change feed.
func (h *History) Close() {
	h.handle.Remove()
}

// Commit snapshots the board. A snapshot identical to the current top of
// the undo stack is discarded, which absorbs repeated commits of unchanged
// state. Otherwise it is pushed, the redo stack is cleared, and the same
// serialized form is handed to the store.
func (h *History) Commit() {
	if h.restoring {
		return
	}
	data := h.board.MarshalState()
	if bytes.Equal(data, h.undo[len(h.undo)-1]) {
		return
	}
	if len(h.undo) >= maxUndoDepth {
		copy(h.undo, h.undo[1:])
		h.undo[len(h.undo)-1] = nil
		h.undo = h.undo[:len(h.undo)-1]
	}
	h.undo = append(h.undo, data)
	h.redo = h.redo[:0]

	if h.store != nil {
		if err := h.store.Save(data); err != nil {
			slog.Error("persist snapshot", "error", err)
		}
	}
}

// CanUndo reports whether an undo step is available. The baseline entry is
// never discarded, so a single-entry stack cannot be undone.
func (h *History) CanUndo() bool {
	return len(h.undo) > 1
}

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Undo moves the current state to the redo stack and restores the previous
// snapshot. No-op at the baseline floor.
func (h *History) Undo() {
	if !h.CanUndo() {
		return
	}
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, top)
	h.restore(h.undo[len(h.undo)-1])
}

// Redo restores the most recently undone snapshot. No-op when the redo
// stack is empty.
func (h *History) Redo() {
	if !h.CanRedo() {
		return
	}
	data := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, data)
	h.restore(data)
}

func (h *History) restore(data []byte) {
	h.restoring = true
	defer func() { h.restoring = false }()
	if err := h.board.RestoreState(data); err != nil {
		// Snapshots come from MarshalState; a decode failure means memory
		// corruption, not user input.
		slog.Error("restore snapshot", "error", err)
	}
}
