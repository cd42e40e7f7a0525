package bling

import (
	"image"

	"github.com/BeatGlow/bling/draw"
	"github.com/BeatGlow/bling/pixel"
)

// Rect draws a w×h rectangle with its top left corner at (x,y), either as an
// outline or filled.
func (d *Display) Rect(x, y, w, h int, c pixel.RGB, fill bool) {
	if w <= 0 || h <= 0 {
		return
	}
	if fill {
		d.FillRect(x, y, w, h, c)
		return
	}
	d.HLine(x, y, w, c)
	d.HLine(x, y+h-1, w, c)
	d.VLine(x, y, h, c)
	d.VLine(x+w-1, y, h, c)
}

// FillRect draws a filled w×h rectangle with its top left corner at (x,y).
// The rectangle is swept along the LED chain so every line takes the
// contiguous path.
func (d *Display) FillRect(x, y, w, h int, c pixel.RGB) {
	if w <= 0 || h <= 0 {
		return
	}
	switch d.rotation {
	case NoRotation, Rotate180:
		for row := y; row < y+h; row++ {
			d.HLine(x, row, w, c)
		}
	default:
		for col := x; col < x+w; col++ {
			d.VLine(col, y, h, c)
		}
	}
}

// Circle draws the outline of a circle around (cx,cy).
func (d *Display) Circle(cx, cy, radius int, c pixel.RGB) {
	draw.Circle(canvas{d}, image.Pt(cx, cy), radius, c)
}

// RoundRect draws a w×h rectangle with radius pixels rounded corners.
func (d *Display) RoundRect(x, y, w, h, radius int, c pixel.RGB, fill bool) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(x, y, x+w, y+h)
	if fill {
		draw.RoundedBox(canvas{d}, r, radius, c)
	} else {
		draw.RoundedRectangle(canvas{d}, r, radius, c)
	}
}
