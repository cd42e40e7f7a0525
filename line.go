package bling

import (
	"image"

	"github.com/BeatGlow/bling/draw"
	"github.com/BeatGlow/bling/pixel"
)

// Line draws a line from (x0,y0) to (x1,y1), both ends included.
func (d *Display) Line(x0, y0, x1, y1 int, c pixel.RGB) {
	draw.Line(canvas{d}, image.Pt(x0, y0), image.Pt(x1, y1), c)
}

// HLine draws w pixels starting at (x,y) going right.
//
// When rows run along the LED chain (no rotation or 180°) the run is written
// as one contiguous span of the buffer.
func (d *Display) HLine(x, y, w int, c pixel.RGB) {
	if w <= 0 {
		return
	}
	switch d.rotation {
	case NoRotation, Rotate180:
		d.hlineAligned(x, y, w, c)
	default:
		d.HLineDirect(x, y, w, c)
	}
}

// VLine draws h pixels starting at (x,y) going down.
//
// When columns run along the LED chain (90° or 270° rotation) the run is
// written as one contiguous span of the buffer.
func (d *Display) VLine(x, y, h int, c pixel.RGB) {
	if h <= 0 {
		return
	}
	switch d.rotation {
	case Rotate90, Rotate270:
		d.vlineAligned(x, y, h, c)
	default:
		d.VLineDirect(x, y, h, c)
	}
}

// HLineDirect is HLine setting one pixel at a time, for any rotation.
func (d *Display) HLineDirect(x, y, w int, c pixel.RGB) {
	if y < 0 || y >= d.Height() {
		return
	}
	width := d.Width()
	for i := 0; i < w; i++ {
		if x+i >= 0 && x+i < width {
			d.SetPixel(x+i, y, c)
		}
	}
}

// VLineDirect is VLine setting one pixel at a time, for any rotation.
func (d *Display) VLineDirect(x, y, h int, c pixel.RGB) {
	if x < 0 || x >= d.Width() {
		return
	}
	height := d.Height()
	for i := 0; i < h; i++ {
		if y+i >= 0 && y+i < height {
			d.SetPixel(x, y+i, c)
		}
	}
}

func (d *Display) hlineAligned(x, y, w int, c pixel.RGB) {
	width := d.Width()
	if x >= width || x+w-1 < 0 {
		return
	}
	i0, ok0 := d.Index(clamp(x, 0, width-1), y)
	i1, ok1 := d.Index(clamp(x+w-1, 0, width-1), y)
	if ok0 && ok1 {
		d.fillSpan(i0, i1, c)
	}
}

func (d *Display) vlineAligned(x, y, h int, c pixel.RGB) {
	height := d.Height()
	if y >= height || y+h-1 < 0 {
		return
	}
	i0, ok0 := d.Index(x, clamp(y, 0, height-1))
	i1, ok1 := d.Index(x, clamp(y+h-1, 0, height-1))
	if ok0 && ok1 {
		d.fillSpan(i0, i1, c)
	}
}

// fillSpan sets the buffer from index i to index j, in either order.
func (d *Display) fillSpan(i, j int, c pixel.RGB) {
	if i > j {
		i, j = j, i
	}
	for k := i; k <= j; k++ {
		d.pix[k] = c
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
