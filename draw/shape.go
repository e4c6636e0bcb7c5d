package draw

import (
	"image"
	"image/color"
	"image/draw"
)

// Line draws a line from a to b, both ends included.
func Line(dst Image, a, b image.Point, c color.Color) {
	dx, dy := abs(b.X-a.X), -abs(b.Y-a.Y)
	sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)
	e := dx + dy
	for {
		dst.Set(a.X, a.Y, c)
		if a == b {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			a.X += sx
		}
		if e2 <= dx {
			e += dx
			a.Y += sy
		}
	}
}

// HorizontalLine draws w pixels to the right of (x, y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	for i := 0; i < w; i++ {
		dst.Set(x+i, y, c)
	}
}

// VerticalLine draws h pixels down from (x, y).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	for i := 0; i < h; i++ {
		dst.Set(x, y+i, c)
	}
}

// Rectangle draws the outline of r. Max is exclusive, as with [image.Rectangle].
func Rectangle(dst Image, r image.Rectangle, c color.Color) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	w, h := r.Dx(), r.Dy()
	HorizontalLine(dst, r.Min.X, r.Min.Y, w, c)
	HorizontalLine(dst, r.Min.X, r.Max.Y-1, w, c)
	VerticalLine(dst, r.Min.X, r.Min.Y, h, c)
	VerticalLine(dst, r.Max.X-1, r.Min.Y, h, c)
}

// Box fills r.
func Box(dst Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r.Canon(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Circle draws the outline of a circle with the given radius around center.
func Circle(dst Image, center image.Point, radius int, c color.Color) {
	circle(center, radius, func(x0, x1, y int) {
		dst.Set(x0, y, c)
		dst.Set(x1, y, c)
	})
}

// Disc draws a filled circle with the given radius around center.
func Disc(dst Image, center image.Point, radius int, c color.Color) {
	circle(center, radius, func(x0, x1, y int) {
		HorizontalLine(dst, x0, y, x1-x0+1, c)
	})
}

// circle walks the midpoint circle and calls span with the left and right edge of every row it
// touches. Rows may be visited more than once.
func circle(center image.Point, radius int, span func(x0, x1, y int)) {
	if radius < 0 {
		return
	}
	x, y := radius, 0
	f := 1 - radius
	for x >= y {
		span(center.X-x, center.X+x, center.Y+y)
		span(center.X-x, center.X+x, center.Y-y)
		span(center.X-y, center.X+y, center.Y+x)
		span(center.X-y, center.X+y, center.Y-x)
		y++
		if f < 0 {
			f += 2*y + 1
		} else {
			x--
			f += 2*(y-x) + 1
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
