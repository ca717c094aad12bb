package glyphboard

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Sprite simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenRotation) and call Update(dt) each frame. The group writes values
// directly into the sprite and fires a provisional change on the board; the
// caller should commit once the group reports Done if the animation is a
// real edit.
//
// There is no global animation manager — hosts call Update themselves,
// outside of any active manipulation session.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	board  *Board
	target *Sprite
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target
// fields, and fires a provisional change. If the target sprite has been
// deleted from the board, Done is set and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.board != nil && g.board.SpriteByID(g.target.ID) == nil {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.board != nil {
		g.board.NotifySpriteChanged(g.target.ID, false)
	}
}

// TweenPosition creates a TweenGroup that animates the sprite's X and Y to
// the given world coordinates over the specified duration.
func TweenPosition(board *Board, spr *Sprite, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, board: board, target: spr}
	g.tweens[0] = gween.New(float32(spr.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(spr.Y), float32(toY), duration, fn)
	g.fields[0] = &spr.X
	g.fields[1] = &spr.Y
	return g
}

// TweenScale creates a TweenGroup that animates the sprite's ScaleX and
// ScaleY to the given target values over the specified duration.
func TweenScale(board *Board, spr *Sprite, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, board: board, target: spr}
	g.tweens[0] = gween.New(float32(spr.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(spr.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &spr.ScaleX
	g.fields[1] = &spr.ScaleY
	return g
}

// TweenRotation creates a TweenGroup that animates the sprite's rotation to
// the target angle in degrees over the specified duration.
func TweenRotation(board *Board, spr *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, board: board, target: spr}
	g.tweens[0] = gween.New(float32(spr.Rotation), float32(to), duration, fn)
	g.fields[0] = &spr.Rotation
	return g
}

// TweenReset animates the sprite back to an identity transform at its
// current position. Handy as a "straighten" gesture in editors.
func TweenReset(board *Board, spr *Sprite, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3, board: board, target: spr}
	g.tweens[0] = gween.New(float32(spr.Rotation), 0, duration, fn)
	g.tweens[1] = gween.New(float32(spr.ScaleX), 1, duration, fn)
	g.tweens[2] = gween.New(float32(spr.ScaleY), 1, duration, fn)
	g.fields[0] = &spr.Rotation
	g.fields[1] = &spr.ScaleX
	g.fields[2] = &spr.ScaleY
	return g
}
