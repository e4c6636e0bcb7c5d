package draw

import (
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultFace is used when no face is given, it fits matrices of 13 rows or more.
var DefaultFace font.Face = basicfont.Face7x13

// LoadFace parses a TrueType font at size points. LED matrices are addressed in pixels, so the
// face is rendered at 72 DPI where a point is a pixel.
func LoadFace(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Text draws s with its baseline starting at dot. It returns the dot after the last glyph, so
// scrolling text can be drawn from a negative x.
func Text(dst Image, dot image.Point, face font.Face, s string, c color.Color) image.Point {
	if face == nil {
		face = DefaultFace
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(dot.X, dot.Y),
	}
	d.DrawString(s)
	return image.Pt(d.Dot.X.Round(), d.Dot.Y.Round())
}

// TextWidth is the advance of s in pixels.
func TextWidth(face font.Face, s string) int {
	if face == nil {
		face = DefaultFace
	}
	return font.MeasureString(face, s).Ceil()
}
