package glyphboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// PasteOffset is the world-space nudge applied to pasted sprites so a copy
// never lands exactly on its source.
const PasteOffset = 10.0

var errNoSelection = errors.New("glyphboard: no sprite selected")

// CopySelection writes the selected sprite to the system clipboard as a
// single-element wire document.
func CopySelection(b *Board) error {
	sel := b.Selected()
	if sel == nil {
		return errNoSelection
	}
	return clipboard.WriteAll(string(marshalWire([]*Sprite{sel})))
}

// Paste reads a wire document from the system clipboard, adds its sprites
// on top of the board at a small offset, and selects the last one. A
// clipboard that does not hold a wire document is an error and leaves the
// board unchanged.
func Paste(b *Board) error {
	text, err := clipboard.ReadAll()
	if err != nil {
		return err
	}
	sprites, err := parseWire([]byte(text))
	if err != nil {
		return err
	}
	if len(sprites) == 0 {
		return errMissingContent
	}
	for _, spr := range sprites {
		spr.X += PasteOffset
		spr.Y += PasteOffset
		spr.ZIndex = len(b.sprites)
		b.sprites = append(b.sprites, spr)
	}
	b.selected = sprites[len(sprites)-1].ID
	b.notify(Change{Kind: ChangeOrder, SpriteID: b.selected, Committed: true})
	return nil
}
