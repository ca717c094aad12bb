package glyphboard

import "math"

// Surface provides the screen offset of the canvas's logical center.
// Implemented by the host rendering surface; there is no zoom in this
// engine, so screen↔world conversion is a pure translation.
type Surface interface {
	OriginOffset() (x, y float64)
}

// CenteredSurface is a Surface whose world origin sits at the center of a
// fixed-size viewport. Sufficient for most hosts.
type CenteredSurface struct {
	Width, Height float64
}

// OriginOffset returns the viewport center.
func (s CenteredSurface) OriginOffset() (x, y float64) {
	return s.Width / 2, s.Height / 2
}

// ScreenToWorld converts screen coordinates to world coordinates.
func ScreenToWorld(s Surface, sx, sy float64) (wx, wy float64) {
	ox, oy := s.OriginOffset()
	return sx - ox, sy - oy
}

// WorldToScreen converts world coordinates to screen coordinates.
func WorldToScreen(s Surface, wx, wy float64) (sx, sy float64) {
	ox, oy := s.OriginOffset()
	return wx + ox, wy + oy
}

// RotatePoint rotates (x, y) about the origin by degrees, clockwise in the
// y-down screen convention.
func RotatePoint(x, y, degrees float64) (rx, ry float64) {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return x*cos - y*sin, x*sin + y*cos
}

// WorldToLocal converts a world-space point into the sprite's local frame:
// unrotated, unscaled, origin at the sprite position. This is the exact
// inverse of the paint transform (translate, then rotate, then scale).
func WorldToLocal(spr *Sprite, wx, wy float64) (lx, ly float64) {
	return WorldToLocalWith(spr, wx, wy, spr.ScaleX, spr.ScaleY, spr.Rotation)
}

// WorldToLocalWith is WorldToLocal with explicit scale and rotation values.
// Scale drags must express the pointer in the frame captured at drag start,
// not the live (already-changing) one, or reading the current scale to
// compute the next scale drifts without bound.
func WorldToLocalWith(spr *Sprite, wx, wy, scaleX, scaleY, rotation float64) (lx, ly float64) {
	lx, ly = RotatePoint(wx-spr.X, wy-spr.Y, -rotation)
	if scaleX != 0 {
		lx /= scaleX
	}
	if scaleY != 0 {
		ly /= scaleY
	}
	return lx, ly
}

// LocalToWorld converts a point in the sprite's local frame back to world
// space using the sprite's current transform.
func LocalToWorld(spr *Sprite, lx, ly float64) (wx, wy float64) {
	rx, ry := RotatePoint(lx*spr.ScaleX, ly*spr.ScaleY, spr.Rotation)
	return rx + spr.X, ry + spr.Y
}
