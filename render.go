package glyphboard

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Gizmo paint colors. The handle fill is opaque so handles stay readable
// over any sprite.
var (
	gizmoStroke = color.RGBA{0x4a, 0x9e, 0xff, 0xff}
	gizmoFill   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	axisColor   = color.RGBA{0x55, 0x55, 0x55, 0xff}
	originColor = color.RGBA{0x88, 0x88, 0x88, 0xff}
)

// DrawGizmo paints the selection gizmo for a sprite: the rotated bounding
// box expanded by HandleMargin, four HandleVisualSize corner squares, a stem,
// and the circular rotation handle. The painted sizes are deliberately
// smaller than the hit sizes used by the interaction machine.
func DrawGizmo(dst *ebiten.Image, spr *Sprite, m GlyphMetrics, surface Surface) {
	b := ComputeBounds(spr, m)
	halfW := b.Width/2 + HandleMargin
	halfH := b.Height/2 + HandleMargin

	toScreen := func(lx, ly float64) (float32, float32) {
		wx, wy := handleWorldPos(spr, lx, ly)
		sx, sy := WorldToScreen(surface, wx, wy)
		return float32(sx), float32(sy)
	}

	// Box edges.
	x0, y0 := toScreen(-halfW, -halfH)
	x1, y1 := toScreen(halfW, -halfH)
	x2, y2 := toScreen(halfW, halfH)
	x3, y3 := toScreen(-halfW, halfH)
	vector.StrokeLine(dst, x0, y0, x1, y1, 1, gizmoStroke, true)
	vector.StrokeLine(dst, x1, y1, x2, y2, 1, gizmoStroke, true)
	vector.StrokeLine(dst, x2, y2, x3, y3, 1, gizmoStroke, true)
	vector.StrokeLine(dst, x3, y3, x0, y0, 1, gizmoStroke, true)

	// Stem from the top edge to the rotation handle.
	tx, ty := toScreen(0, -halfH)
	rx, ry := toScreen(0, -halfH-RotationHandleOffset)
	vector.StrokeLine(dst, tx, ty, rx, ry, 1, gizmoStroke, true)

	// Corner handles: screen-axis-aligned squares centered on the rotated
	// anchor positions.
	half := float32(HandleVisualSize / 2)
	for _, c := range [4][2]float64{{-halfW, -halfH}, {halfW, -halfH}, {-halfW, halfH}, {halfW, halfH}} {
		cx, cy := toScreen(c[0], c[1])
		vector.DrawFilledRect(dst, cx-half, cy-half, half*2, half*2, gizmoFill, true)
		vector.StrokeRect(dst, cx-half, cy-half, half*2, half*2, 1, gizmoStroke, true)
	}

	// Rotation handle.
	vector.DrawFilledCircle(dst, rx, ry, RotationHandleRadius, gizmoFill, true)
	vector.StrokeCircle(dst, rx, ry, RotationHandleRadius, 1, gizmoStroke, true)
}

// DrawAxes paints the world axes and origin marker according to the board's
// view toggles. Call before or after the sprite pass depending on
// Board.AxesOnTop.
func DrawAxes(dst *ebiten.Image, board *Board, surface Surface) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	ox, oy := WorldToScreen(surface, 0, 0)

	if board.ShowAxes {
		vector.StrokeLine(dst, 0, float32(oy), float32(w), float32(oy), 1, axisColor, false)
		vector.StrokeLine(dst, float32(ox), 0, float32(ox), float32(h), 1, axisColor, false)
	}
	if board.ShowOrigin {
		const arm = 6
		vector.StrokeLine(dst, float32(ox)-arm, float32(oy), float32(ox)+arm, float32(oy), 2, originColor, false)
		vector.StrokeLine(dst, float32(ox), float32(oy)-arm, float32(ox), float32(oy)+arm, 2, originColor, false)
	}
}
