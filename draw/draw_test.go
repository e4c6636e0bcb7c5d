package draw

import (
	"image"
	"image/color"
	"testing"

	"github.com/BeatGlow/ledstrip/pixel"
)

func testBuffer(colors ...pixel.Color) *pixel.ColorBuffer {
	return pixel.CreateBuffer(colors, pixel.LayoutRGB)
}

func testColors(b *pixel.ColorBuffer) []pixel.Color {
	out := make([]pixel.Color, b.Len())
	for i := range out {
		out[i], _ = b.Lookup(i)
	}
	return out
}

func testEqual(t *testing.T, name string, b *pixel.ColorBuffer, want ...pixel.Color) {
	t.Helper()
	got := testColors(b)
	if len(got) != len(want) {
		t.Fatalf("%s: expected %d pixels, got %d", name, len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: expected %x, got %x", name, want, got)
			return
		}
	}
}

func TestFill(t *testing.T) {
	b := pixel.NewColorBuffer(5, pixel.LayoutRGB)
	Fill(b, -1, 3, 1)
	Fill(b, 4, 10, 2)
	testEqual(t, "fill", b, 1, 1, 0, 0, 2)
}

func TestRotate(t *testing.T) {
	tests := []struct {
		Offset int
		Want   []pixel.Color
	}{
		{0, []pixel.Color{1, 2, 3, 4, 5}},
		{1, []pixel.Color{5, 1, 2, 3, 4}},
		{2, []pixel.Color{4, 5, 1, 2, 3}},
		{5, []pixel.Color{1, 2, 3, 4, 5}},
		{-1, []pixel.Color{2, 3, 4, 5, 1}},
		{-7, []pixel.Color{3, 4, 5, 1, 2}},
	}
	for _, test := range tests {
		b := testBuffer(1, 2, 3, 4, 5)
		Rotate(b, test.Offset)
		testEqual(t, "rotate", b, test.Want...)
	}
	Rotate(pixel.NewColorBuffer(0, pixel.LayoutRGB), 3)
}

func TestShift(t *testing.T) {
	tests := []struct {
		Offset int
		Want   []pixel.Color
	}{
		{0, []pixel.Color{1, 2, 3, 4, 5}},
		{2, []pixel.Color{0, 0, 1, 2, 3}},
		{-2, []pixel.Color{3, 4, 5, 0, 0}},
		{9, []pixel.Color{0, 0, 0, 0, 0}},
	}
	for _, test := range tests {
		b := testBuffer(1, 2, 3, 4, 5)
		Shift(b, test.Offset)
		testEqual(t, "shift", b, test.Want...)
	}
}

func TestRainbow(t *testing.T) {
	b := pixel.NewColorBuffer(3, pixel.LayoutRGB)
	Rainbow(b, 0, 255)
	testEqual(t, "rainbow", b, pixel.Hue(0), pixel.Hue(85), pixel.Hue(170))
}

func TestFadeAll(t *testing.T) {
	b := testBuffer(0xff8040, 0x102030)
	FadeAll(b, 128)
	testEqual(t, "fade", b, pixel.Fade(0xff8040, 128), pixel.Fade(0x102030, 128))
	FadeAll(b, 255)
	testEqual(t, "identity", b, pixel.Fade(0xff8040, 128), pixel.Fade(0x102030, 128))
}

func TestGradientSegment(t *testing.T) {
	b := pixel.NewColorBuffer(8, pixel.LayoutRGB)
	GradientSegment(b, 2, 5, pixel.ColorBlack, pixel.ColorWhite)
	g := pixel.Gradient(pixel.ColorBlack, pixel.ColorWhite, 5)
	want := append([]pixel.Color{0, 0}, testColors(g)...)
	testEqual(t, "gradient", b, append(want, 0)...)

	GradientSegment(b, 0, 1, pixel.ColorRed, pixel.ColorBlue)
	if v := b.Get(0); v != int64(pixel.ColorRed) {
		t.Errorf("expected single pixel segment to be red, got %#06x", v)
	}
}

func TestDraw(t *testing.T) {
	m := pixel.NewMatrix(4, 4, pixel.LayoutRGB)
	Draw(m, m.Bounds(), image.NewUniform(color.White), image.Point{}, Src)
	for i := 0; i < 16; i++ {
		if v := m.Buffer.Get(i); v != int64(pixel.ColorWhite) {
			t.Fatalf("pixel %d: expected white, got %#06x", i, v)
		}
	}
}
