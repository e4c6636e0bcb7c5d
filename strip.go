// Package ledstrip contains drivers for addressable LED strips.
package ledstrip

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BeatGlow/ledstrip/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("LEDSTRIP_DEBUG") != ""
}

// Errors
var (
	ErrLength = errors.New("ledstrip: strip length must be positive")
	ErrOrder  = errors.New("ledstrip: invalid channel order")
	ErrWidth  = errors.New("ledstrip: matrix width does not divide the strip length")
)

// Order is the order in which the color channels are sent on the wire.
type Order uint8

// Supported orders. OrderDefault selects the native order of the LED controller.
const (
	OrderDefault Order = iota
	OrderRGB
	OrderRBG
	OrderGRB
	OrderGBR
	OrderBRG
	OrderBGR
)

func (o Order) String() string {
	switch o {
	case OrderRGB:
		return "RGB"
	case OrderRBG:
		return "RBG"
	case OrderGRB:
		return "GRB"
	case OrderGBR:
		return "GBR"
	case OrderBRG:
		return "BRG"
	case OrderBGR:
		return "BGR"
	default:
		return "default"
	}
}

// ParseOrder parses a channel order such as "grb", case insensitive.
func ParseOrder(s string) (Order, error) {
	switch s = strings.ToUpper(s); s {
	case "", "DEFAULT":
		return OrderDefault, nil
	}
	for o := OrderRGB; o <= OrderBGR; o++ {
		if o.String() == s {
			return o, nil
		}
	}
	return OrderDefault, fmt.Errorf("%w %q", ErrOrder, s)
}

// put writes the channels of c to dst in wire order.
func (o Order) put(dst []byte, c pixel.Color) {
	r, g, b := pixel.Red(c), pixel.Green(c), pixel.Blue(c)
	switch o {
	case OrderRBG:
		dst[0], dst[1], dst[2] = r, b, g
	case OrderGRB:
		dst[0], dst[1], dst[2] = g, r, b
	case OrderGBR:
		dst[0], dst[1], dst[2] = g, b, r
	case OrderBRG:
		dst[0], dst[1], dst[2] = b, r, g
	case OrderBGR:
		dst[0], dst[1], dst[2] = b, g, r
	default:
		dst[0], dst[1], dst[2] = r, g, b
	}
}

// Strip is an addressable LED strip.
type Strip interface {
	String() string

	// Close the strip driver and its connection.
	Close() error

	// Len is the number of LEDs.
	Len() int

	// Buffer holds the LED colors, changes are sent on the next Refresh.
	Buffer() *pixel.ColorBuffer

	// Image is a two dimensional view of the buffer, according to the configured width.
	Image() pixel.Image

	// SetBrightness adjusts the global brightness.
	SetBrightness(level uint8)

	// Refresh sends the buffer to the LEDs.
	Refresh() error
}

// Config is the strip configuration.
type Config struct {
	// Length is the number of LEDs.
	Length int

	// Layout of the color buffer. With LayoutARGB, drivers that support per LED brightness use
	// the alpha channel for it.
	Layout pixel.Layout

	// Order of the color channels on the wire.
	Order Order

	// Brightness is the initial global brightness, 0 selects full brightness.
	Brightness uint8

	// Width of the LED matrix, 0 for a single strip.
	Width int

	// Serpentine is set for matrices wired in a zigzag.
	Serpentine bool
}

type baseStrip struct {
	c          Conn
	buf        *pixel.ColorBuffer
	image      *pixel.Matrix
	order      Order
	brightness uint8
	frame      []byte
}

func (d *baseStrip) init(conn Conn, config *Config, order Order) error {
	if config.Length <= 0 {
		return ErrLength
	}
	if config.Order > OrderBGR {
		return ErrOrder
	}
	if config.Width > 0 && config.Length%config.Width != 0 {
		return ErrWidth
	}

	d.c = conn
	d.buf = pixel.NewColorBuffer(config.Length, config.Layout)
	d.order = order
	if config.Order != OrderDefault {
		d.order = config.Order
	}
	d.brightness = config.Brightness
	if d.brightness == 0 {
		d.brightness = 0xff
	}
	if config.Width > 0 {
		d.image = pixel.MatrixOf(d.buf, config.Width)
		d.image.Serpentine = config.Serpentine
	} else {
		d.image = pixel.StripOf(d.buf)
	}
	return nil
}

func (d *baseStrip) Close() error {
	return d.c.Close()
}

func (d *baseStrip) Len() int {
	return d.buf.Len()
}

func (d *baseStrip) Buffer() *pixel.ColorBuffer {
	return d.buf
}

func (d *baseStrip) Image() pixel.Image {
	return d.image
}

func (d *baseStrip) SetBrightness(level uint8) {
	d.brightness = level
}

// color returns the LED color at index with global brightness applied.
func (d *baseStrip) color(index int) pixel.Color {
	c, _ := d.buf.Lookup(index)
	return pixel.Fade(c, int(d.brightness))
}
