package ledstrip

import (
	"fmt"

	"github.com/BeatGlow/ledstrip/pixel"
)

const (
	apa102StartFrameSize = 4
	apa102LEDFrame       = 0xE0 // 3 marker bits followed by 5 bits of brightness
	apa102MaxBrightness  = 0x1F
)

type apa102 struct {
	baseStrip
}

// APA102 drives APA102 (DotStar) and SK9822 strips.
//
// Every LED frame carries a 5-bit brightness: with an ARGB buffer it is the top 5 bits of the
// alpha channel, otherwise full brightness.
func APA102(conn Conn, config *Config) (Strip, error) {
	d := new(apa102)
	if err := d.init(conn, config, OrderBGR); err != nil {
		return nil, err
	}

	n := d.Len()
	d.frame = make([]byte, apa102StartFrameSize+n*4+apa102EndFrameSize(n))
	for i := apa102StartFrameSize + n*4; i < len(d.frame); i++ {
		d.frame[i] = 0xFF
	}
	return d, nil
}

// apa102EndFrameSize clocks at least half a bit per LED so the data reaches the end of the strip.
func apa102EndFrameSize(n int) int {
	return n/16 + 1
}

func (d *apa102) String() string {
	return fmt.Sprintf("APA102 strip of %d LEDs (%s)", d.Len(), d.order)
}

func (d *apa102) Refresh() error {
	argb := d.buf.Layout() == pixel.LayoutARGB
	for i, n := 0, d.Len(); i < n; i++ {
		var (
			c     = d.color(i)
			frame = d.frame[apa102StartFrameSize+i*4:]
			level = byte(apa102MaxBrightness)
		)
		if argb {
			level = pixel.Alpha(c) >> 3
		}
		frame[0] = apa102LEDFrame | level
		d.order.put(frame[1:], c)
	}
	return d.c.Data(d.frame...)
}
