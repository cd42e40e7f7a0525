package bling

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"

	"github.com/BeatGlow/bling/draw"
	"github.com/BeatGlow/bling/pixel"
)

// Image returns a view of the display in logical coordinates for use with
// image/draw and font drawers.
func (d *Display) Image() draw.Image {
	return canvas{d}
}

// Displayer returns a view of the display for use with TinyGo drawing
// packages such as tinyfont. Display() on the view shows the display.
func (d *Display) Displayer() drivers.Displayer {
	return displayer{d}
}

type canvas struct {
	d *Display
}

func (v canvas) ColorModel() color.Model {
	return pixel.RGBModel
}

func (v canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.d.Width(), v.d.Height())
}

func (v canvas) At(x, y int) color.Color {
	return v.d.At(x, y)
}

func (v canvas) Set(x, y int, c color.Color) {
	v.d.SetPixel(x, y, pixel.RGBModel.Convert(c).(pixel.RGB))
}

type displayer struct {
	d *Display
}

func (v displayer) Size() (x, y int16) {
	return int16(v.d.Width()), int16(v.d.Height())
}

func (v displayer) SetPixel(x, y int16, c color.RGBA) {
	v.d.SetPixel(int(x), int(y), pixel.RGB{R: c.R, G: c.G, B: c.B})
}

func (v displayer) Display() error {
	return v.d.Show()
}

// Interface checks.
var (
	_ draw.Image        = canvas{}
	_ drivers.Displayer = displayer{}
)
