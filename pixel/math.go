package pixel

// HSV converts hue, saturation and value in [0, 255] to a packed RGB color.
//
// The conversion is the integer "rainbow" algorithm popularized by FastLED: the hue circle is
// split in three sections of 64 steps, each ramping one channel up and another one down.
// Every division truncates; results are bit exact with other implementations of the same table.
func HSV(hue, sat, val int) Color {
	h := hue % 255
	if h < 0 {
		h += 255
	}
	// 0..255 -> 0..191
	h = h * 192 / 255

	var (
		floor     = val * (255 - sat) / 255
		amplitude = val - floor
		section   = h / 0x40
		offset    = h % 0x40
		up        = offset*amplitude*4/255 + floor
		down      = (0x3f-offset)*amplitude*4/255 + floor
	)
	switch section {
	case 0:
		return RGB(down, up, floor)
	case 1:
		return RGB(floor, down, up)
	default:
		return RGB(up, floor, down)
	}
}

// Hue is HSV at full saturation and value.
func Hue(hue int) Color {
	return HSV(hue, 0xff, 0xff)
}

// Fade scales the red, green and blue channels by brightness/256. The alpha byte is kept.
// A brightness of 255 or more returns c unchanged.
func Fade(c Color, brightness int) Color {
	brightness = clamp8(brightness)
	if brightness == 0xff {
		return c
	}
	var (
		r = int(Red(c)) * brightness >> 8
		g = int(Green(c)) * brightness >> 8
		b = int(Blue(c)) * brightness >> 8
	)
	return ARGB(int(Alpha(c)), r, g, b)
}

// Blend linearly interpolates every channel from a to b by alpha/255, where alpha 0 returns a
// and alpha 255 returns b.
func Blend(a Color, alpha int, b Color) Color {
	alpha = clamp8(alpha)
	switch alpha {
	case 0:
		return a
	case 0xff:
		return b
	}
	inv := 0xff - alpha
	mix := func(ch Channel) int {
		return (int(Unpack(a, ch))*inv + int(Unpack(b, ch))*alpha) >> 8
	}
	return ARGB(mix(ChannelAlpha), mix(ChannelRed), mix(ChannelGreen), mix(ChannelBlue))
}

// Gradient returns an RGB buffer of steps colors (at least 2) going from start to end.
//
// The first and last pixels are exactly start and end. Pixel i in between is
// Blend(start, 255*i/steps, end), so the last interpolated pixel stops short of end.
func Gradient(start, end Color, steps int) *ColorBuffer {
	if steps < 2 {
		steps = 2
	}
	b := NewColorBuffer(steps, LayoutRGB)
	b.Set(0, start)
	b.Set(steps-1, end)
	for i := 1; i < steps-1; i++ {
		b.Set(i, Blend(start, 0xff*i/steps, end))
	}
	return b
}

func clamp8(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 0xff:
		return 0xff
	default:
		return v
	}
}
