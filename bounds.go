package glyphboard

// GlyphExtents describes the actually-rendered ink of a glyph string drawn
// at a given size: distances from the text origin to the leftmost and
// rightmost ink, and above/below the baseline. These are ink bounds, not
// font-box metrics — a glyph that paints outside its advance still measures
// correctly.
type GlyphExtents struct {
	Left, Right     float64
	Ascent, Descent float64
}

// GlyphMetrics measures glyph ink. Implemented by the rendering surface or
// by FaceMetrics in metrics.go; a single provider instance represents one
// font family.
type GlyphMetrics interface {
	Extents(text string, size float64) GlyphExtents
}

// LocalBounds is a sprite's axis-aligned bounding box in its own unrotated
// frame, centered on the sprite origin. Width and Height include the
// sprite's scale; PenX and PenY are the unscaled offset from the visual
// center to the native text-draw origin.
//
// LocalBounds is derived, never stored: it depends on the live content and
// scale, so holding one across an interaction is a correctness bug.
type LocalBounds struct {
	X, Y          float64
	Width, Height float64
	PenX, PenY    float64
}

// ComputeBounds derives the sprite's LocalBounds from its glyph extents at
// the reference size. Pen offsets center the glyph's visual ink — not its
// font box — on the sprite origin, so rotation and scale pivot at the
// apparent center regardless of font idiosyncrasies.
func ComputeBounds(spr *Sprite, m GlyphMetrics) LocalBounds {
	ext := m.Extents(spr.Content, ReferenceGlyphSize)
	baseW := ext.Left + ext.Right
	baseH := ext.Ascent + ext.Descent
	w := baseW * spr.ScaleX
	h := baseH * spr.ScaleY
	return LocalBounds{
		X:      -w / 2,
		Y:      -h / 2,
		Width:  w,
		Height: h,
		PenX:   -baseW/2 + ext.Left,
		PenY:   ext.Ascent - baseH/2,
	}
}
