package glyphboard

import "sort"

// IsPointInSprite reports whether the world point lies inside the sprite's
// rotated bounds. The point is brought into the sprite's rotated-but-unscaled
// frame and tested against the scaled LocalBounds rect centered at the origin.
func IsPointInSprite(spr *Sprite, m GlyphMetrics, wx, wy float64) bool {
	b := ComputeBounds(spr, m)
	lx, ly := WorldToLocalWith(spr, wx, wy, 1, 1, spr.Rotation)
	return lx >= -b.Width/2 && lx <= b.Width/2 &&
		ly >= -b.Height/2 && ly <= b.Height/2
}

// HitTest returns the topmost sprite occupying the world point, or nil.
// Sprites are tested in descending ZIndex so that the visually topmost
// sprite wins when several overlap — this ordering is what makes
// click-to-select behave correctly.
func HitTest(sprites []*Sprite, m GlyphMetrics, wx, wy float64) *Sprite {
	ordered := make([]*Sprite, len(sprites))
	copy(ordered, sprites)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ZIndex > ordered[j].ZIndex
	})
	for _, spr := range ordered {
		if IsPointInSprite(spr, m, wx, wy) {
			return spr
		}
	}
	return nil
}
