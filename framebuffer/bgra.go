package framebuffer

import (
	"image"
	"image/color"

	"github.com/BeatGlow/bling/pixel"
)

// BGRA is a 32-bits per pixel image with the blue channel in the lowest byte,
// the usual layout of 32-bit Linux framebuffers.
type BGRA struct {
	pixel.Buffer
}

// NewBGRA returns a blank w×h image.
func NewBGRA(w, h int) *BGRA {
	return &BGRA{
		Buffer: pixel.Buffer{
			Rect:   image.Rect(0, 0, w, h),
			Pix:    make([]byte, w*4*h),
			Stride: w * 4,
		},
	}
}

func (p *BGRA) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *BGRA) offset(x, y int) int {
	return (x-p.Rect.Min.X)*4 + (y-p.Rect.Min.Y)*p.Stride
}

func (p *BGRA) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	i := p.offset(x, y)
	return color.RGBA{R: p.Pix[i+2], G: p.Pix[i+1], B: p.Pix[i+0], A: 0xff}
}

func (p *BGRA) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	i := p.offset(x, y)
	r, g, b, _ := c.RGBA()
	p.Pix[i+0] = byte(b >> 8)
	p.Pix[i+1] = byte(g >> 8)
	p.Pix[i+2] = byte(r >> 8)
	p.Pix[i+3] = 0xff
}

func (p *BGRA) Fill(c color.Color) {
	r, g, b, _ := c.RGBA()
	v := []byte{byte(b >> 8), byte(g >> 8), byte(r >> 8), 0xff}
	for i, l := 0, len(p.Pix); i+3 < l; i += 4 {
		copy(p.Pix[i:], v)
	}
}

var _ pixel.Image = (*BGRA)(nil)
