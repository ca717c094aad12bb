package glyphboard

// Handle is a transient description of one on-canvas manipulation handle:
// its world-space center, its hit-box size, and the interaction mode it
// triggers. Handles are recomputed on every pointer-down and hover check and
// never persisted.
type Handle struct {
	Mode          Mode
	X, Y          float64
	Width, Height float64
}

// cornerAnchor returns the local-frame anchor for a corner mode, given the
// half extents of the bounds expanded by HandleMargin.
func cornerAnchor(mode Mode, halfW, halfH float64) (x, y float64) {
	switch mode {
	case ModeScalingTL:
		return -halfW, -halfH
	case ModeScalingTR:
		return halfW, -halfH
	case ModeScalingBL:
		return -halfW, halfH
	default: // ModeScalingBR
		return halfW, halfH
	}
}

// handleWorldPos places a local-frame anchor in world space using the
// sprite's current rotation and position. Anchors are in the scaled frame
// already (bounds include scale), so only rotation and translation apply.
func handleWorldPos(spr *Sprite, ax, ay float64) (x, y float64) {
	rx, ry := RotatePoint(ax, ay, spr.Rotation)
	return rx + spr.X, ry + spr.Y
}

// Handles computes the five handles for a sprite: the four corner scale
// handles in TL, TR, BL, BR order, then the rotation handle. Corner handles
// report the enlarged HandleHitSize box; the rotation handle is hit-tested
// as a circle of RotationHandleRadius (its Width/Height report the
// equivalent bounding square).
func Handles(spr *Sprite, m GlyphMetrics) []Handle {
	b := ComputeBounds(spr, m)
	halfW := b.Width/2 + HandleMargin
	halfH := b.Height/2 + HandleMargin

	out := make([]Handle, 0, 5)
	for _, mode := range [...]Mode{ModeScalingTL, ModeScalingTR, ModeScalingBL, ModeScalingBR} {
		ax, ay := cornerAnchor(mode, halfW, halfH)
		wx, wy := handleWorldPos(spr, ax, ay)
		out = append(out, Handle{Mode: mode, X: wx, Y: wy, Width: HandleHitSize, Height: HandleHitSize})
	}

	rx, ry := handleWorldPos(spr, 0, -halfH-RotationHandleOffset)
	out = append(out, Handle{
		Mode: ModeRotating, X: rx, Y: ry,
		Width: RotationHandleRadius * 2, Height: RotationHandleRadius * 2,
	})
	return out
}

// hitsHandle reports whether the world point lands on the handle: an
// axis-aligned box for corner handles, a circle for the rotation handle.
func hitsHandle(h Handle, wx, wy float64) bool {
	if h.Mode == ModeRotating {
		dx := wx - h.X
		dy := wy - h.Y
		r := RotationHandleRadius
		return dx*dx+dy*dy <= r*r
	}
	return wx >= h.X-h.Width/2 && wx <= h.X+h.Width/2 &&
		wy >= h.Y-h.Height/2 && wy <= h.Y+h.Height/2
}
