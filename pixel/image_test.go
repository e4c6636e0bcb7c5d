package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestRGBMatrix(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewMatrix(size.X, size.Y, LayoutRGB)
	}, RGB24Model)
}

func TestARGBMatrix(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewMatrix(size.X, size.Y, LayoutARGB)
	}, ARGB32Model)
}

func TestSerpentineMatrix(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		m := NewMatrix(size.X, size.Y, LayoutRGB)
		m.Serpentine = true
		return m
	}, RGB24Model)
}

func TestStrip(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return StripOf(NewColorBuffer(size.X, LayoutRGB))
	}, RGB24Model, image.Pt(1, 1), image.Pt(8, 1), image.Pt(300, 1))
}

func TestMatrixPixIndex(t *testing.T) {
	m := MatrixOf(NewColorBuffer(13, LayoutRGB), 4)
	if v := m.Bounds().Size(); v != image.Pt(4, 3) {
		t.Fatalf("expected 4x3 matrix, got %s", v)
	}
	m.Serpentine = true
	tests := []struct {
		X, Y, Want int
	}{
		{0, 0, 0},
		{3, 0, 3},
		{0, 1, 7},
		{3, 1, 4},
		{1, 2, 9},
	}
	for _, test := range tests {
		if v := m.PixIndex(test.X, test.Y); v != test.Want {
			t.Errorf("(%d,%d): expected index %d, got %d", test.X, test.Y, test.Want, v)
		}
	}

	m.Set(0, 1, color.White)
	if v := m.Buffer.Get(7); v != int64(ColorWhite) {
		t.Errorf("expected serpentine pixel to land at index 7, got %#06x", v)
	}
}

func testImage(t *testing.T, f func(image.Point) Image, model color.Model, sizes ...image.Point) {
	t.Helper()
	testCases := sizes
	if len(testCases) == 0 {
		testCases = []image.Point{
			{},
			image.Pt(1, 1),
			image.Pt(2, 2),
			image.Pt(16, 16),
			image.Pt(32, 8),
		}
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := f(test)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != model {
				it.Errorf("expected color model %T, got %T", model, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -test.Y; y < test.Y*2; y++ {
					for x := -test.X; x < test.X*2; x++ {
						i.Set(x, y, testRandomColor())
						if x < 0 || y < 0 || x >= test.X || y >= test.Y {
							if v := i.At(x, y); v != color.Transparent {
								itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
								return
							}
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				c := testRandomColor()
				i.Fill(c)
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.ColorModel().Convert(c); i.At(x, y) != v {
						itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
						return
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if r, g, b, _ := i.At(x, y).RGBA(); r|g|b != 0 {
						itt.Fatalf("pixel (%d,%d) is not black", x, y)
					}
				}
			})
		})
	}
}

func testRandomColor() color.Color {
	return color.NRGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: uint8(rand.Intn(255)),
	}
}
