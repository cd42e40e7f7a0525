package bling

import "github.com/BeatGlow/bling/pixel"

// Bitmap copies img to the display with its top left corner at (x,y).
//
// With a palette, bitmap values are palette indices. Without one they are
// byte swapped 5-6-5 colors.
func (d *Display) Bitmap(img *pixel.Bitmap, pal pixel.Palette, x, y int) {
	d.BitmapTile(img, pal, x, y, 0, 0, img.Width, img.Height)
}

// BitmapTile copies the w×h region of img at (srcX,srcY) to the display with
// its top left corner at (x,y). Only the destination is clipped.
func (d *Display) BitmapTile(img *pixel.Bitmap, pal pixel.Palette, x, y, srcX, srcY, w, h int) {
	width, height := d.Width(), d.Height()
	for y1 := 0; y1 < h; y1++ {
		yn := y + y1
		if yn < 0 || yn >= height {
			continue
		}
		for x1 := 0; x1 < w; x1++ {
			xn := x + x1
			if xn < 0 || xn >= width {
				continue
			}
			v := img.Value(srcX+x1, srcY+y1)
			if pal == nil {
				d.SetPixel(xn, yn, pixel.RGB565Swapped(v))
			} else if c, ok := pal.At(v); ok {
				d.SetPixel(xn, yn, c)
			}
		}
	}
}
