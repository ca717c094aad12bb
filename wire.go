package glyphboard

import (
	"encoding/json"
	"errors"
	"math"

	"github.com/google/uuid"
)

// The interchange document is a JSON array in back-to-front render order
// (index 0 paints first). Every field equal to its default is omitted, so a
// plain sprite exports to {"e":"…"} exactly. Scale is written as "s" when
// uniform and not 1, or as independent "sx"/"sy" otherwise — never both.
type wireSprite struct {
	E  string   `json:"e"`
	X  *float64 `json:"x,omitempty"`
	Y  *float64 `json:"y,omitempty"`
	R  *float64 `json:"r,omitempty"`
	S  *float64 `json:"s,omitempty"`
	SX *float64 `json:"sx,omitempty"`
	SY *float64 `json:"sy,omitempty"`
}

// importSprite additionally accepts the legacy long-name schema. Compact
// keys win when a document carries both.
type importSprite struct {
	E     *string  `json:"e"`
	Emoji *string  `json:"emoji"`
	X     *float64 `json:"x"`
	Y     *float64 `json:"y"`
	R     *float64 `json:"r"`
	Rot   *float64 `json:"rotation"`
	S     *float64 `json:"s"`
	Scale *float64 `json:"scale"`
	SX    *float64 `json:"sx"`
	LSX   *float64 `json:"scaleX"`
	SY    *float64 `json:"sy"`
	LSY   *float64 `json:"scaleY"`
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// Export serializes the board's sprites to the compact wire format,
// back-to-front.
func (b *Board) Export() []byte {
	return marshalWire(b.PaintOrder())
}

// marshalWire serializes sprites, assumed already in back-to-front order.
func marshalWire(ordered []*Sprite) []byte {
	out := make([]wireSprite, len(ordered))
	for i, spr := range ordered {
		w := wireSprite{E: spr.Content}
		if x := roundTo(spr.X, 2); x != 0 {
			w.X = &x
		}
		if y := roundTo(spr.Y, 2); y != 0 {
			w.Y = &y
		}
		if r := roundTo(spr.Rotation, 1); r != 0 {
			w.R = &r
		}
		sx := roundTo(spr.ScaleX, 4)
		sy := roundTo(spr.ScaleY, 4)
		switch {
		case sx == sy && sx != 1:
			w.S = &sx
		case sx != sy:
			if sx != 1 {
				w.SX = &sx
			}
			if sy != 1 {
				w.SY = &sy
			}
		}
		out[i] = w
	}
	data, err := json.Marshal(out)
	if err != nil {
		panic("glyphboard: marshal wire format: " + err.Error())
	}
	return data
}

var errMissingContent = errors.New("glyphboard: sprite element has no content")

// Import replaces the board's sprites from a wire document, accepting both
// the compact and the legacy schema. Identifiers in the input are
// discarded; fresh ids are generated and ZIndex comes from array position.
// On error the board is left unchanged.
func (b *Board) Import(data []byte) error {
	sprites, err := parseWire(data)
	if err != nil {
		return err
	}
	b.sprites = sprites
	b.selected = ""
	b.notify(Change{Kind: ChangeDocument, Committed: true})
	return nil
}

// parseWire decodes a wire document into fresh sprites with generated ids
// and ZIndex taken from array position.
func parseWire(data []byte) ([]*Sprite, error) {
	var raw []importSprite
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	sprites := make([]*Sprite, len(raw))
	for i, in := range raw {
		content := ""
		switch {
		case in.E != nil:
			content = *in.E
		case in.Emoji != nil:
			content = *in.Emoji
		}
		if content == "" {
			return nil, errMissingContent
		}
		spr := &Sprite{
			ID:      uuid.NewString(),
			Content: content,
			ScaleX:  1,
			ScaleY:  1,
			ZIndex:  i,
		}
		if in.X != nil {
			spr.X = *in.X
		}
		if in.Y != nil {
			spr.Y = *in.Y
		}
		switch {
		case in.R != nil:
			spr.Rotation = *in.R
		case in.Rot != nil:
			spr.Rotation = *in.Rot
		}
		// A uniform scale applies to both axes first; per-axis values then
		// override individually.
		switch {
		case in.S != nil:
			spr.ScaleX = *in.S
			spr.ScaleY = *in.S
		case in.Scale != nil:
			spr.ScaleX = *in.Scale
			spr.ScaleY = *in.Scale
		}
		switch {
		case in.SX != nil:
			spr.ScaleX = *in.SX
		case in.LSX != nil:
			spr.ScaleX = *in.LSX
		}
		switch {
		case in.SY != nil:
			spr.ScaleY = *in.SY
		case in.LSY != nil:
			spr.ScaleY = *in.LSY
		}
		sprites[i] = spr
	}
	return sprites, nil
}
