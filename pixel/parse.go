package pixel

import (
	"strconv"
	"strings"
)

// Named colors.
const (
	ColorBlack  Color = 0x000000
	ColorRed    Color = 0xff0000
	ColorOrange Color = 0xff7f00
	ColorYellow Color = 0xffff00
	ColorGreen  Color = 0x00ff00
	ColorBlue   Color = 0x0000ff
	ColorPurple Color = 0xa033e5
	ColorPink   Color = 0xff007f
	ColorWhite  Color = 0xffffff
)

var namedColors = map[string]Color{
	"black":  ColorBlack,
	"red":    ColorRed,
	"orange": ColorOrange,
	"yellow": ColorYellow,
	"green":  ColorGreen,
	"blue":   ColorBlue,
	"purple": ColorPurple,
	"pink":   ColorPink,
	"white":  ColorWhite,
}

// CreateBuffer returns a buffer holding colors in order.
func CreateBuffer(colors []Color, layout Layout) *ColorBuffer {
	b := NewColorBuffer(len(colors), layout)
	for i, c := range colors {
		b.set(i, c)
	}
	return b
}

// ParseColor returns the named color (case insensitive), or parses s as an integer in Go syntax
// ("255", "0xff00ff"). Anything else yields 0.
func ParseColor(s string) Color {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c
	}
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0
	}
	return Color(v)
}
