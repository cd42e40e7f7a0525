package pixel

import (
	"encoding/binary"
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

// Buffer holds the pixel values and is a container that is used by most image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// CRGB16Image is a 16-bits per pixel 5-6-5-bit RGB image.
type CRGB16Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewCRGB16Image(w, h int) *CRGB16Image {
	return &CRGB16Image{
		Buffer: Buffer{
			Rect:   image.Rect(0, 0, w, h),
			Pix:    make([]byte, w*2*h),
			Stride: w * 2,
		},
		Order: binary.BigEndian,
	}
}

func (p *CRGB16Image) ColorModel() color.Model {
	return CRGB16Model
}

func (p *CRGB16Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	v := p.Order.Uint16(p.Pix[x*2+y*p.Stride:])
	return CRGB16{v}
}

func (p *CRGB16Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	v := crgb16Model(c).(CRGB16).V
	p.Order.PutUint16(p.Pix[x*2+y*p.Stride:], v)
}

func (p *CRGB16Image) Fill(c color.Color) {
	value := crgb16Model(c).(CRGB16).V
	bytes := make([]byte, 2)
	p.Order.PutUint16(bytes, value)
	for i, l := 0, len(p.Pix); i < l; i += 2 {
		copy(p.Pix[i:], bytes)
	}
}

// Bitmap is a two dimensional grid of 16-bit values. Depending on how it is
// drawn, a value is either an index into a Palette or a packed color.
type Bitmap struct {
	Width, Height int

	// Pix holds the values row by row.
	Pix []uint16
}

// NewBitmap returns an all-zero bitmap of w×h values.
func NewBitmap(w, h int) *Bitmap {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Bitmap{
		Width:  w,
		Height: h,
		Pix:    make([]uint16, w*h),
	}
}

// Bounds returns the bitmap bounding box.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// Value returns the value at (x, y), or 0 outside of the bitmap.
func (b *Bitmap) Value(x, y int) uint16 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	return b.Pix[x+y*b.Width]
}

// SetValue sets the value at (x, y). Values outside of the bitmap are ignored.
func (b *Bitmap) SetValue(x, y int, v uint16) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.Pix[x+y*b.Width] = v
}

// Fill sets every value of the bitmap to v.
func (b *Bitmap) Fill(v uint16) {
	for i := range b.Pix {
		b.Pix[i] = v
	}
}

// Palette maps bitmap values to colors.
type Palette []RGB

// At returns the color for index i.
func (p Palette) At(i uint16) (RGB, bool) {
	if int(i) >= len(p) {
		return Black, false
	}
	return p[i], true
}

// NewPalette converts a standard library palette.
func NewPalette(p color.Palette) Palette {
	out := make(Palette, len(p))
	for i, c := range p {
		out[i] = rgbModel(c).(RGB)
	}
	return out
}

// FromPaletted converts a paletted image, as returned by the GIF and 8-bit
// BMP decoders, into an index bitmap and its palette.
func FromPaletted(img *image.Paletted) (*Bitmap, Palette) {
	r := img.Bounds()
	b := NewBitmap(r.Dx(), r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			b.Pix[(x-r.Min.X)+(y-r.Min.Y)*b.Width] = uint16(img.ColorIndexAt(x, y))
		}
	}
	return b, NewPalette(img.Palette)
}

// FromImage565Swapped converts any image into a bitmap of byte swapped 5-6-5
// colors, to be drawn without a palette.
func FromImage565Swapped(img image.Image) *Bitmap {
	r := img.Bounds()
	b := NewBitmap(r.Dx(), r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := rgbModel(img.At(x, y)).(RGB)
			b.Pix[(x-r.Min.X)+(y-r.Min.Y)*b.Width] = PackRGB565Swapped(c)
		}
	}
	return b
}

// Interface checks.
var (
	_ Image = (*CRGB16Image)(nil)
)
