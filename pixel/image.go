package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Matrix is a two dimensional view of a ColorBuffer, for LED panels and strips.
//
// Pixels are mapped row by row starting at the top left. Writes through the Matrix go straight
// to the buffer.
type Matrix struct {
	// Buffer holds the pixels.
	Buffer *ColorBuffer

	// Rect is the image bounding box.
	Rect image.Rectangle

	// Serpentine is set for panels wired in a zigzag, where odd rows run right to left.
	Serpentine bool
}

// NewMatrix allocates a w by h matrix.
func NewMatrix(w, h int, layout Layout) *Matrix {
	return &Matrix{
		Buffer: NewColorBuffer(w*h, layout),
		Rect:   image.Rect(0, 0, w, h),
	}
}

// MatrixOf returns a matrix w pixels wide over b, with as many full rows as b holds.
func MatrixOf(b *ColorBuffer, w int) *Matrix {
	var h int
	if w > 0 {
		h = b.Len() / w
	}
	return &Matrix{
		Buffer: b,
		Rect:   image.Rect(0, 0, w, h),
	}
}

// StripOf returns a single row view of b.
func StripOf(b *ColorBuffer) *Matrix {
	return MatrixOf(b, b.Len())
}

func (p *Matrix) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Matrix) ColorModel() color.Model {
	return p.Buffer.layout.Model()
}

// PixIndex is the buffer index of pixel (x, y).
func (p *Matrix) PixIndex(x, y int) int {
	x, y = x-p.Rect.Min.X, y-p.Rect.Min.Y
	w := p.Rect.Dx()
	if p.Serpentine && y&1 == 1 {
		return y*w + w - 1 - x
	}
	return y*w + x
}

func (p *Matrix) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	c, _ := p.Buffer.Lookup(p.PixIndex(x, y))
	return unpackedColor(p.Buffer.layout, c)
}

func (p *Matrix) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Buffer.Set(p.PixIndex(x, y), packedColor(p.Buffer.layout, c))
}

func (p *Matrix) Clear() {
	p.Buffer.Clear()
}

func (p *Matrix) Fill(c color.Color) {
	p.Buffer.Fill(packedColor(p.Buffer.layout, c))
}

// Interface checks.
var (
	_ Image = (*Matrix)(nil)
)
