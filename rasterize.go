package glyphboard

import (
	"errors"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// pngPadding is the margin, in world units, added around the outermost
// sprite ink when rasterizing.
const pngPadding = 16.0

var errNothingToExport = errors.New("glyphboard: nothing to export")

// RenderPNG rasterizes the board to a PNG file, back-to-front, with each
// glyph drawn ink-centered at its sprite position and the full rotation and
// per-axis scale applied. ttf selects the export font; nil uses the bundled
// Go Regular face.
func RenderPNG(b *Board, m GlyphMetrics, ttf []byte, path string) error {
	sprites := b.PaintOrder()
	if len(sprites) == 0 {
		return errNothingToExport
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, spr := range sprites {
		lb := ComputeBounds(spr, m)
		// The rotated box's world AABB.
		for _, c := range [4][2]float64{
			{-lb.Width / 2, -lb.Height / 2}, {lb.Width / 2, -lb.Height / 2},
			{-lb.Width / 2, lb.Height / 2}, {lb.Width / 2, lb.Height / 2},
		} {
			rx, ry := RotatePoint(c[0], c[1], spr.Rotation)
			minX = math.Min(minX, rx+spr.X)
			maxX = math.Max(maxX, rx+spr.X)
			minY = math.Min(minY, ry+spr.Y)
			maxY = math.Max(maxY, ry+spr.Y)
		}
	}
	minX -= pngPadding
	minY -= pngPadding
	maxX += pngPadding
	maxY += pngPadding

	imageWidth := int(math.Ceil(maxX - minX))
	imageHeight := int(math.Ceil(maxY - minY))
	if imageWidth < 1 || imageHeight < 1 {
		return errNothingToExport
	}

	if ttf == nil {
		ttf = goregular.TTF
	}
	ttfFont, err := truetype.Parse(ttf)
	if err != nil {
		return err
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    ReferenceGlyphSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetFontFace(face)
	dc.SetColor(color.Black)

	for _, spr := range sprites {
		lb := ComputeBounds(spr, m)
		dc.Push()
		dc.Translate(spr.X-minX, spr.Y-minY)
		dc.Rotate(spr.Rotation * math.Pi / 180)
		dc.Scale(spr.ScaleX, spr.ScaleY)
		dc.DrawString(spr.Content, lb.PenX, lb.PenY)
		dc.Pop()
	}

	return dc.SavePNG(path)
}
