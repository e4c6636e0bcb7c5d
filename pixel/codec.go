package pixel

// Color is a packed color, either 0xRRGGBB or 0xAARRGGBB depending on the layout it was packed for.
type Color uint32

// Channel identifies one 8-bit color component.
type Channel uint8

// Channels, the value is the bit offset of the channel in a packed color.
const (
	ChannelBlue  Channel = 0
	ChannelGreen Channel = 8
	ChannelRed   Channel = 16
	ChannelAlpha Channel = 24
)

func (c Channel) String() string {
	switch c {
	case ChannelBlue:
		return "blue"
	case ChannelGreen:
		return "green"
	case ChannelRed:
		return "red"
	case ChannelAlpha:
		return "alpha"
	default:
		return "invalid"
	}
}

// Layout is the channel set and byte order of a packed color.
type Layout uint8

// Supported layouts.
const (
	LayoutRGB  Layout = iota // 24-bit 0xRRGGBB
	LayoutARGB               // 32-bit 0xAARRGGBB
)

var (
	rgbChannels  = []Channel{ChannelRed, ChannelGreen, ChannelBlue}
	argbChannels = []Channel{ChannelAlpha, ChannelRed, ChannelGreen, ChannelBlue}
)

func (l Layout) String() string {
	if l == LayoutARGB {
		return "ARGB"
	}
	return "RGB"
}

// Stride is the number of bytes per pixel.
func (l Layout) Stride() int {
	if l == LayoutARGB {
		return 4
	}
	return 3
}

// Channels returns the channels of the layout, high-order channel first.
func (l Layout) Channels() []Channel {
	if l == LayoutARGB {
		return argbChannels
	}
	return rgbChannels
}

// RGB packs a 24-bit color. Channels are masked to 8 bits.
func RGB(r, g, b int) Color {
	return Color((r&0xff)<<16 | (g&0xff)<<8 | b&0xff)
}

// ARGB packs a 32-bit color with alpha. Channels are masked to 8 bits.
func ARGB(a, r, g, b int) Color {
	return Color(uint32(a&0xff)<<24 | uint32(r&0xff)<<16 | uint32(g&0xff)<<8 | uint32(b&0xff))
}

// Pack packs channel values in the order given by the layout. Missing channels are zero, extra
// channels are ignored.
func Pack(layout Layout, values ...int) Color {
	var c Color
	for i, ch := range layout.Channels() {
		if i < len(values) {
			c |= Color(values[i]&0xff) << ch
		}
	}
	return c
}

// Unpack extracts a single channel.
func Unpack(c Color, ch Channel) uint8 {
	return uint8(c >> ch)
}

// Red channel of c.
func Red(c Color) uint8 { return uint8(c >> 16) }

// Green channel of c.
func Green(c Color) uint8 { return uint8(c >> 8) }

// Blue channel of c.
func Blue(c Color) uint8 { return uint8(c) }

// Alpha channel of c, zero for colors packed as RGB.
func Alpha(c Color) uint8 { return uint8(c >> 24) }
