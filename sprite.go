package glyphboard

import (
	"encoding/json"
	"sort"

	"github.com/google/uuid"
)

// Sprite is the manipulable entity: a short glyph string placed on the
// canvas. Position is world-space (canvas-center-relative), rotation is in
// degrees clockwise, and ScaleX/ScaleY are independent multipliers where 1.0
// equals ReferenceGlyphSize. ZIndex gives paint and hit-test order; higher
// paints later (on top).
type Sprite struct {
	ID       string
	Content  string
	X, Y     float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
	ZIndex   int
}

// ChangeKind identifies what part of the board a Change touched.
type ChangeKind uint8

const (
	ChangeSprite    ChangeKind = iota // a sprite's fields were mutated
	ChangeSelection                   // the selected sprite changed
	ChangeOrder                       // sprites were added, removed, or reordered
	ChangeView                        // a view toggle flipped
	ChangeDocument                    // the whole board was replaced (import, undo, redo)
)

// Change describes one board mutation. Committed changes mark history
// boundaries; provisional changes are intra-drag frames that observers may
// repaint from but must not snapshot.
type Change struct {
	Kind      ChangeKind
	SpriteID  string
	Committed bool
}

type changeHandler struct {
	id uint32
	fn func(Change)
}

// CallbackHandle allows removing a registered board observer.
type CallbackHandle struct {
	id    uint32
	board *Board
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.board == nil {
		return
	}
	s := h.board.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = changeHandler{}
			h.board.handlers = s[:len(s)-1]
			return
		}
	}
}

// Board owns the sprite collection, the single selection, and the view
// toggles. Collection order is irrelevant; paint order is derived from
// ZIndex. Boards are not safe for concurrent use — all mutation happens on
// the host's event loop.
type Board struct {
	sprites  []*Sprite
	selected string

	ShowOrigin bool
	ShowAxes   bool
	AxesOnTop  bool

	handlers      []changeHandler
	nextHandlerID uint32

	depthBuf []*Sprite // reused buffer for ZIndex-sorted traversal
}

// NewBoard creates an empty board with axes visible.
func NewBoard() *Board {
	return &Board{ShowAxes: true}
}

// OnChange registers an observer invoked synchronously, in registration
// order, after every committed or provisional mutation.
func (b *Board) OnChange(fn func(Change)) CallbackHandle {
	b.nextHandlerID++
	id := b.nextHandlerID
	b.handlers = append(b.handlers, changeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, board: b}
}

func (b *Board) notify(c Change) {
	for _, h := range b.handlers {
		h.fn(c)
	}
}

// NotifySpriteChanged reports an in-place edit of a sprite's fields made by
// a caller holding the *Sprite directly (the gizmo, property editors).
func (b *Board) NotifySpriteChanged(id string, committed bool) {
	b.notify(Change{Kind: ChangeSprite, SpriteID: id, Committed: committed})
}

// --- Collection access ---

// Sprites returns the live sprite slice in collection order.
// The returned slice MUST NOT be mutated by the caller.
func (b *Board) Sprites() []*Sprite {
	return b.sprites
}

// NumSprites returns the number of live sprites.
func (b *Board) NumSprites() int {
	return len(b.sprites)
}

// SpriteByID returns the sprite with the given id, or nil.
func (b *Board) SpriteByID(id string) *Sprite {
	for _, s := range b.sprites {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// PaintOrder returns the sprites sorted by ascending ZIndex (bottom first).
// The returned slice is reused across calls and MUST NOT be retained.
func (b *Board) PaintOrder() []*Sprite {
	b.depthBuf = append(b.depthBuf[:0], b.sprites...)
	sort.SliceStable(b.depthBuf, func(i, j int) bool {
		return b.depthBuf[i].ZIndex < b.depthBuf[j].ZIndex
	})
	return b.depthBuf
}

// --- Selection ---

// Select makes the sprite with the given id the selection. Selecting an
// unknown id clears the selection.
func (b *Board) Select(id string) {
	if b.SpriteByID(id) == nil {
		id = ""
	}
	if id == b.selected {
		return
	}
	b.selected = id
	b.notify(Change{Kind: ChangeSelection, SpriteID: id, Committed: false})
}

// Deselect clears the selection.
func (b *Board) Deselect() {
	b.Select("")
}

// Selected returns the selected sprite, or nil if nothing is selected.
func (b *Board) Selected() *Sprite {
	if b.selected == "" {
		return nil
	}
	return b.SpriteByID(b.selected)
}

// SelectedID returns the selected sprite's id, or "".
func (b *Board) SelectedID() string {
	return b.selected
}

// --- Add / delete ---

// AddSprite places a new sprite at the given world position with identity
// transform, on top of everything else, and selects it.
func (b *Board) AddSprite(content string, x, y float64) *Sprite {
	spr := &Sprite{
		ID:      uuid.NewString(),
		Content: content,
		X:       x,
		Y:       y,
		ScaleX:  1,
		ScaleY:  1,
		ZIndex:  len(b.sprites),
	}
	b.sprites = append(b.sprites, spr)
	b.selected = spr.ID
	b.notify(Change{Kind: ChangeOrder, SpriteID: spr.ID, Committed: true})
	return spr
}

// DeleteSprite removes the sprite with the given id and re-tightens the
// ZIndex sequence. Returns false if the id is unknown.
func (b *Board) DeleteSprite(id string) bool {
	for i, s := range b.sprites {
		if s.ID == id {
			copy(b.sprites[i:], b.sprites[i+1:])
			b.sprites[len(b.sprites)-1] = nil
			b.sprites = b.sprites[:len(b.sprites)-1]
			if b.selected == id {
				b.selected = ""
			}
			b.renormalizeZ()
			b.notify(Change{Kind: ChangeOrder, SpriteID: id, Committed: true})
			return true
		}
	}
	return false
}

// --- Depth reordering ---

// renormalizeZ reassigns ZIndex values to the dense sequence 0..n-1,
// preserving relative depth order.
func (b *Board) renormalizeZ() {
	ordered := b.PaintOrder()
	for i, s := range ordered {
		s.ZIndex = i
	}
}

// reorder moves the sprite to a new position in depth order and renumbers.
// to is clamped to the valid range.
func (b *Board) reorder(id string, to func(from, n int) int) bool {
	ordered := b.PaintOrder()
	from := -1
	for i, s := range ordered {
		if s.ID == id {
			from = i
			break
		}
	}
	if from < 0 {
		return false
	}
	n := len(ordered)
	dest := to(from, n)
	if dest < 0 {
		dest = 0
	}
	if dest > n-1 {
		dest = n - 1
	}
	if dest == from {
		return false
	}
	spr := ordered[from]
	if from < dest {
		copy(ordered[from:], ordered[from+1:dest+1])
	} else {
		copy(ordered[dest+1:], ordered[dest:from])
	}
	ordered[dest] = spr
	for i, s := range ordered {
		s.ZIndex = i
	}
	b.notify(Change{Kind: ChangeOrder, SpriteID: id, Committed: true})
	return true
}

// BringToFront moves the sprite to the top of the depth order.
func (b *Board) BringToFront(id string) bool {
	return b.reorder(id, func(from, n int) int { return n - 1 })
}

// SendToBack moves the sprite to the bottom of the depth order.
func (b *Board) SendToBack(id string) bool {
	return b.reorder(id, func(from, n int) int { return 0 })
}

// BringForward moves the sprite one step toward the top.
func (b *Board) BringForward(id string) bool {
	return b.reorder(id, func(from, n int) int { return from + 1 })
}

// SendBackward moves the sprite one step toward the bottom.
func (b *Board) SendBackward(id string) bool {
	return b.reorder(id, func(from, n int) int { return from - 1 })
}

// --- View toggles ---

// SetShowOrigin toggles the origin marker.
func (b *Board) SetShowOrigin(v bool) {
	if b.ShowOrigin == v {
		return
	}
	b.ShowOrigin = v
	b.notify(Change{Kind: ChangeView, Committed: true})
}

// SetShowAxes toggles the axes.
func (b *Board) SetShowAxes(v bool) {
	if b.ShowAxes == v {
		return
	}
	b.ShowAxes = v
	b.notify(Change{Kind: ChangeView, Committed: true})
}

// SetAxesOnTop toggles whether axes paint above the sprites.
func (b *Board) SetAxesOnTop(v bool) {
	if b.AxesOnTop == v {
		return
	}
	b.AxesOnTop = v
	b.notify(Change{Kind: ChangeView, Committed: true})
}

// --- Full-state serialization (history snapshots) ---

// boardState is the full-fidelity internal document, distinct from the
// compact interchange format in wire.go: it keeps ids and selection so that
// undo/redo restores the editor exactly.
type boardState struct {
	Sprites    []savedSprite `json:"sprites"`
	Selected   string        `json:"selected,omitempty"`
	ShowOrigin bool          `json:"showOrigin,omitempty"`
	ShowAxes   bool          `json:"showAxes,omitempty"`
	AxesOnTop  bool          `json:"axesOnTop,omitempty"`
}

type savedSprite struct {
	ID       string  `json:"id"`
	Content  string  `json:"content"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	ScaleX   float64 `json:"scaleX"`
	ScaleY   float64 `json:"scaleY"`
	ZIndex   int     `json:"zIndex"`
}

// MarshalState serializes the entire board. The output is deterministic
// for a given state, so byte equality doubles as state equality.
func (b *Board) MarshalState() []byte {
	st := boardState{
		Sprites:    make([]savedSprite, len(b.sprites)),
		Selected:   b.selected,
		ShowOrigin: b.ShowOrigin,
		ShowAxes:   b.ShowAxes,
		AxesOnTop:  b.AxesOnTop,
	}
	for i, s := range b.PaintOrder() {
		st.Sprites[i] = savedSprite{
			ID: s.ID, Content: s.Content,
			X: s.X, Y: s.Y, Rotation: s.Rotation,
			ScaleX: s.ScaleX, ScaleY: s.ScaleY, ZIndex: s.ZIndex,
		}
	}
	data, err := json.Marshal(st)
	if err != nil {
		// Only unmarshalable values can fail here, and boardState has none.
		panic("glyphboard: marshal board state: " + err.Error())
	}
	return data
}

// RestoreState replaces the board contents from a MarshalState document.
// On error the board is left unchanged.
func (b *Board) RestoreState(data []byte) error {
	var st boardState
	if err := json.Unmarshal(data, &st); err != nil {
		return err
	}
	sprites := make([]*Sprite, len(st.Sprites))
	for i, s := range st.Sprites {
		sprites[i] = &Sprite{
			ID: s.ID, Content: s.Content,
			X: s.X, Y: s.Y, Rotation: s.Rotation,
			ScaleX: s.ScaleX, ScaleY: s.ScaleY, ZIndex: s.ZIndex,
		}
	}
	b.sprites = sprites
	b.selected = st.Selected
	if b.SpriteByID(b.selected) == nil {
		b.selected = ""
	}
	b.ShowOrigin = st.ShowOrigin
	b.ShowAxes = st.ShowAxes
	b.AxesOnTop = st.AxesOnTop
	b.renormalizeZ()
	b.notify(Change{Kind: ChangeDocument, Committed: false})
	return nil
}
