package ledstrip

import (
	"fmt"
)

// ws2812ResetSize is the number of trailing zero bytes, 80µs low at 2.4MHz.
const ws2812ResetSize = 24

// ws2812Bits expands a byte to 24 SPI bits, 0b100 for a zero and 0b110 for a one.
var ws2812Bits [256][3]byte

func init() {
	for v := range ws2812Bits {
		var bits uint32
		for i := 7; i >= 0; i-- {
			if v&(1<<i) != 0 {
				bits = bits<<3 | 0b110
			} else {
				bits = bits<<3 | 0b100
			}
		}
		ws2812Bits[v] = [3]byte{byte(bits >> 16), byte(bits >> 8), byte(bits)}
	}
}

type ws2812 struct {
	baseStrip
	wire [3]byte
}

// WS2812 drives WS2812, WS2812B and SK6812 (NeoPixel) strips by encoding the one wire protocol
// on the SPI MOSI line. The SPI bus must run at [WS2812SPISpeed].
func WS2812(conn Conn, config *Config) (Strip, error) {
	d := new(ws2812)
	if err := d.init(conn, config, OrderGRB); err != nil {
		return nil, err
	}
	d.frame = make([]byte, d.Len()*9+ws2812ResetSize)
	return d, nil
}

func (d *ws2812) String() string {
	return fmt.Sprintf("WS2812 strip of %d LEDs (%s)", d.Len(), d.order)
}

func (d *ws2812) Refresh() error {
	for i, n := 0, d.Len(); i < n; i++ {
		d.order.put(d.wire[:], d.color(i))
		for j, v := range d.wire {
			copy(d.frame[i*9+j*3:], ws2812Bits[v][:])
		}
	}
	return d.c.Data(d.frame...)
}
