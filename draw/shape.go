package draw

import (
	"image"
	"image/color"
)

// Line draws a line between two points, both ends included.
func Line(dst Plotter, a, b image.Point, c color.Color) {
	bresenham(dst, a.X, a.Y, b.X, b.Y, c)
}

// HorizontalLine draws w pixels starting at (x,y) going right.
func HorizontalLine(dst Plotter, x, y, w int, c color.Color) {
	for i := 0; i < w; i++ {
		dst.Set(x+i, y, c)
	}
}

// VerticalLine draws h pixels starting at (x,y) going down.
func VerticalLine(dst Plotter, x, y, h int, c color.Color) {
	for i := 0; i < h; i++ {
		dst.Set(x, y+i, c)
	}
}

// Rectangle draws the outline of a rectangle.
func Rectangle(dst Plotter, rect image.Rectangle, c color.Color) {
	var (
		x = rect.Min.X
		y = rect.Min.Y
		w = rect.Dx()
		h = rect.Dy()
	)
	if w <= 0 || h <= 0 {
		return
	}
	HorizontalLine(dst, x, y, w, c)
	HorizontalLine(dst, x, y+h-1, w, c)
	VerticalLine(dst, x, y, h, c)
	VerticalLine(dst, x+w-1, y, h, c)
}

// RoundedRectangle draws a rectangle with radius pixels rounded corners.
func RoundedRectangle(dst Plotter, rect image.Rectangle, radius int, c color.Color) {
	var (
		r = radius
		x = rect.Min.X
		y = rect.Min.Y
		w = rect.Dx()
		h = rect.Dy()
	)
	if w <= 0 || h <= 0 {
		return
	}
	if r < 0 {
		r = 0
	}
	HorizontalLine(dst, x+r, y, w-2*r, c)
	HorizontalLine(dst, x+r, y+h-1, w-2*r, c)
	VerticalLine(dst, x, y+r, h-2*r, c)
	VerticalLine(dst, x+w-1, y+r, h-2*r, c)
	roundedCorner(dst, x+0+r+0, y+0+r+0, r, 1, c)
	roundedCorner(dst, x+w-r-1, y+0+r+0, r, 2, c)
	roundedCorner(dst, x+w-r-1, y+h-r-1, r, 4, c)
	roundedCorner(dst, x+0+r+0, y+h-r-1, r, 8, c)
}

// Box draws a filled rectangle.
func Box(dst Plotter, rect image.Rectangle, c color.Color) {
	var (
		y = rect.Min.Y
		h = rect.Dy()
	)
	for x := rect.Min.X; x < rect.Max.X; x++ {
		VerticalLine(dst, x, y, h, c)
	}
}

// RoundedBox draws a filled rectangle with radius pixels rounded corners.
func RoundedBox(dst Plotter, rect image.Rectangle, radius int, c color.Color) {
	var (
		r = radius
		x = rect.Min.X
		y = rect.Min.Y
		w = rect.Dx()
		h = rect.Dy()
	)
	if w <= 0 || h <= 0 {
		return
	}
	if r < 0 {
		r = 0
	}
	Box(dst, image.Rect(x+r, y, x+w-r, y+h), c)
	filledRoundedCorner(dst, x+w-r-1, y+r, r, 1, h-2*r-1, c)
	filledRoundedCorner(dst, x+r, y+r, r, 2, h-2*r-1, c)
}

// Circle draws the outline of a circle around center. The outermost pixels
// are radius-1 away from the center, so a radius of 1 sets a single pixel.
func Circle(dst Plotter, center image.Point, radius int, c color.Color) {
	if radius <= 0 {
		return
	}
	var (
		cx, cy = center.X, center.Y
		x      = radius - 1
		y      = 0
		dx     = 1
		dy     = 1
		e      = dx - radius<<1
	)
	for x >= y {
		dst.Set(cx+x, cy+y, c)
		dst.Set(cx+y, cy+x, c)
		dst.Set(cx-y, cy+x, c)
		dst.Set(cx-x, cy+y, c)
		dst.Set(cx-x, cy-y, c)
		dst.Set(cx-y, cy-x, c)
		dst.Set(cx+y, cy-x, c)
		dst.Set(cx+x, cy-y, c)

		if e <= 0 {
			y++
			e += dy
			dy += 2
		}
		if e > 0 {
			x--
			dx += 2
			e += dx - radius<<1
		}
	}
}

func roundedCorner(dst Plotter, x0, y0, radius, quadrant int, c color.Color) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		if quadrant&4 != 0 {
			dst.Set(x0+x, y0+y, c)
			dst.Set(x0+y, y0+x, c)
		}
		if quadrant&2 != 0 {
			dst.Set(x0+x, y0-y, c)
			dst.Set(x0+y, y0-x, c)
		}
		if quadrant&8 != 0 {
			dst.Set(x0-y, y0+x, c)
			dst.Set(x0-x, y0+y, c)
		}
		if quadrant&1 != 0 {
			dst.Set(x0-y, y0-x, c)
			dst.Set(x0-x, y0-y, c)
		}
	}
}

func filledRoundedCorner(dst Plotter, x0, y0, radius, quadrant, delta int, c color.Color) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		if quadrant&1 != 0 {
			VerticalLine(dst, x0+x, y0-y, 2*y+1+delta, c)
			VerticalLine(dst, x0+y, y0-x, 2*x+1+delta, c)
		}

		if quadrant&2 != 0 {
			VerticalLine(dst, x0-x, y0-y, 2*y+1+delta, c)
			VerticalLine(dst, x0-y, y0-x, 2*x+1+delta, c)
		}
	}
}

// bresenham walks the major axis from (x0,y0) until it reaches the end
// coordinate, carrying half of the major delta as the initial error.
func bresenham(dst Plotter, x0, y0, x1, y1 int, c color.Color) {
	var (
		dx     = abs(x1 - x0)
		dy     = abs(y1 - y0)
		x, y   = x0, y0
		sx, sy = 1, 1
	)
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	if dx > dy {
		e := dx / 2
		for x != x1 {
			dst.Set(x, y, c)
			e -= dy
			if e < 0 {
				y += sy
				e += dx
			}
			x += sx
		}
	} else {
		e := dy / 2
		for y != y1 {
			dst.Set(x, y, c)
			e -= dx
			if e < 0 {
				x += sx
				e += dy
			}
			y += sy
		}
	}
	dst.Set(x, y, c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
