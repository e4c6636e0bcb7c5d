// Package draw provides effects for LED strips and text rendering for LED matrices.
package draw

import (
	"image"
	"image/draw"

	"github.com/BeatGlow/ledstrip/pixel"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for image/draw.Op
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = iota

	// Src specifies ``src in mask''.
	Src
)

// Draw calls [image/draw.Draw], for example to show an image on a matrix.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	draw.Draw(dst, r, src, sp, op)
}

// Fill sets n pixels starting at start to c. Pixels outside of the buffer are skipped.
func Fill(dst *pixel.ColorBuffer, start, n int, c pixel.Color) {
	for i := max(start, 0); i < min(start+n, dst.Len()); i++ {
		dst.Set(i, c)
	}
}

// Rainbow spreads hues from startHue to endHue over the buffer.
func Rainbow(dst *pixel.ColorBuffer, startHue, endHue int) {
	n := dst.Len()
	for i := 0; i < n; i++ {
		dst.Set(i, pixel.Hue(startHue+(endHue-startHue)*i/n))
	}
}

// FadeAll applies [pixel.Fade] to every pixel.
func FadeAll(dst *pixel.ColorBuffer, brightness int) {
	if brightness >= 0xff {
		return
	}
	for i, n := 0, dst.Len(); i < n; i++ {
		c, _ := dst.Lookup(i)
		dst.Set(i, pixel.Fade(c, brightness))
	}
}

// Rotate moves all pixels by offset towards the end of the buffer, pixels falling off the end
// come back at the start. Negative offsets rotate towards the start.
func Rotate(dst *pixel.ColorBuffer, offset int) {
	n := dst.Len()
	if n == 0 {
		return
	}
	if offset %= n; offset < 0 {
		offset += n
	}
	if offset == 0 {
		return
	}
	src := dst.Clone()
	dst.Write(offset, src)
	dst.Write(offset-n, src)
}

// Shift moves all pixels by offset towards the end of the buffer, pixels falling off are lost
// and vacated pixels are cleared. Negative offsets shift towards the start.
func Shift(dst *pixel.ColorBuffer, offset int) {
	if offset == 0 {
		return
	}
	src := dst.Clone()
	dst.Clear()
	dst.Write(offset, src)
}

// GradientSegment writes a [pixel.Gradient] of n pixels at start.
func GradientSegment(dst *pixel.ColorBuffer, start, n int, from, to pixel.Color) {
	if n <= 0 {
		return
	}
	if n == 1 {
		dst.Set(start, from)
		return
	}
	dst.Write(start, pixel.Gradient(from, to, n))
}
