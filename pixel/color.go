package pixel

import "image/color"

// Models for the packed color types.
var (
	RGB24Model  color.Model = color.ModelFunc(rgb24Model)
	ARGB32Model color.Model = color.ModelFunc(argb32Model)
)

// Model returns the color model matching the layout.
func (l Layout) Model() color.Model {
	if l == LayoutARGB {
		return ARGB32Model
	}
	return RGB24Model
}

// RGB24 represents a 24-bit 8-8-8 RGB color.
type RGB24 struct {
	// CRed, 8, CGreen, 8, CBlue, 8
	V Color
}

func (c RGB24) RGBA() (r, g, b, a uint32) {
	r = uint32(Red(c.V)) * 0x101
	g = uint32(Green(c.V)) * 0x101
	b = uint32(Blue(c.V)) * 0x101
	return r, g, b, 0xffff
}

func rgb24Model(c color.Color) color.Color {
	switch c := c.(type) {
	case RGB24:
		return c
	case ARGB32:
		return RGB24{c.V & 0xffffff}
	default:
		r, g, b, _ := c.RGBA()
		return RGB24{RGB(int(r>>8), int(g>>8), int(b>>8))}
	}
}

// ARGB32 represents a 32-bit 8-8-8-8 ARGB color, not alpha-premultiplied.
type ARGB32 struct {
	// CAlpha, 8, CRed, 8, CGreen, 8, CBlue, 8
	V Color
}

func (c ARGB32) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{
		R: Red(c.V),
		G: Green(c.V),
		B: Blue(c.V),
		A: Alpha(c.V),
	}.RGBA()
}

func argb32Model(c color.Color) color.Color {
	switch c := c.(type) {
	case ARGB32:
		return c
	case RGB24:
		return ARGB32{c.V | 0xff000000}
	default:
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		return ARGB32{ARGB(int(n.A), int(n.R), int(n.G), int(n.B))}
	}
}

// packedColor converts any color to a value packed for layout.
func packedColor(layout Layout, c color.Color) Color {
	if layout == LayoutARGB {
		return argb32Model(c).(ARGB32).V
	}
	return rgb24Model(c).(RGB24).V
}

// unpackedColor wraps a value packed for layout.
func unpackedColor(layout Layout, c Color) color.Color {
	if layout == LayoutARGB {
		return ARGB32{c}
	}
	return RGB24{c}
}
