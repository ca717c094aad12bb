package glyphboard

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FaceMetrics measures glyph ink using an OpenType font. It implements
// GlyphMetrics over font.BoundString, which returns the tight bounds of the
// rendered outline rather than the font-box metrics.
//
// Not safe for concurrent use; the engine is single-threaded by contract.
type FaceMetrics struct {
	fnt   *opentype.Font
	faces map[float64]font.Face
}

// NewFaceMetrics parses TTF/OTF data into a metrics provider.
func NewFaceMetrics(data []byte) (*FaceMetrics, error) {
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return &FaceMetrics{fnt: fnt, faces: make(map[float64]font.Face)}, nil
}

// GoRegularMetrics returns a provider backed by the bundled Go Regular face.
func GoRegularMetrics() *FaceMetrics {
	m, err := NewFaceMetrics(goregular.TTF)
	if err != nil {
		panic("glyphboard: parse bundled font: " + err.Error())
	}
	return m
}

func (m *FaceMetrics) face(size float64) (font.Face, error) {
	if f, ok := m.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(m.fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	m.faces[size] = f
	return f, nil
}

// Extents measures the ink bounds of text drawn at the given size.
// Left may be negative when the first glyph's ink starts right of the
// origin; Left+Right is always the full ink width.
func (m *FaceMetrics) Extents(text string, size float64) GlyphExtents {
	if text == "" {
		return GlyphExtents{}
	}
	f, err := m.face(size)
	if err != nil {
		return GlyphExtents{}
	}
	bounds, _ := font.BoundString(f, text)
	return GlyphExtents{
		Left:    -fixedToFloat(bounds.Min.X),
		Right:   fixedToFloat(bounds.Max.X),
		Ascent:  -fixedToFloat(bounds.Min.Y),
		Descent: fixedToFloat(bounds.Max.Y),
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
