package pixel

import (
	"fmt"
	"image/color"
)

// Models for the standard color types.
var (
	RGBModel    color.Model = color.ModelFunc(rgbModel)
	CRGB16Model color.Model = color.ModelFunc(crgb16Model)
)

// Commonly used colors.
var (
	Black = RGB{}
	White = RGB{R: 0xff, G: 0xff, B: 0xff}
	Red   = RGB{R: 0xff}
	Green = RGB{G: 0xff}
	Blue  = RGB{B: 0xff}
)

// RGB represents a 24-bit color, one 8-bit intensity per LED channel.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color for a packed 0xRRGGBB value.
func Hex(v uint32) RGB {
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Hex returns the color packed as 0xRRGGBB.
func (c RGB) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("#%06x", c.Hex())
}

func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Scale dims the color by f, which is clamped to [0, 1].
func (c RGB) Scale(f float64) RGB {
	switch {
	case f <= 0:
		return Black
	case f >= 1:
		return c
	}
	return RGB{
		R: uint8(float64(c.R)*f + 0.5),
		G: uint8(float64(c.G)*f + 0.5),
		B: uint8(float64(c.B)*f + 0.5),
	}
}

func rgbModel(c color.Color) color.Color {
	switch c := c.(type) {
	case RGB:
		return c
	case color.RGBA:
		return RGB{R: c.R, G: c.G, B: c.B}
	case color.NRGBA:
		return RGB{R: c.R, G: c.G, B: c.B}
	}
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Wheel returns a fully saturated color from a 256 step color wheel going
// red, green, blue and back to red.
func Wheel(pos uint8) RGB {
	switch {
	case pos < 85:
		return RGB{R: 255 - pos*3, G: pos * 3}
	case pos < 170:
		pos -= 85
		return RGB{G: 255 - pos*3, B: pos * 3}
	default:
		pos -= 170
		return RGB{R: pos * 3, B: 255 - pos*3}
	}
}

// CRGB16 represents a 16-bit 5-6-5 RGB color.
type CRGB16 struct {
	// CRed, 5, CGreen, 6, CBlue, 5
	V uint16
}

func (c CRGB16) RGBA() (r, g, b, a uint32) {
	// Build a 5- or 6-bit value at the top of the low byte of each component.
	red := (c.V & 0xF800) >> 8
	grn := (c.V & 0x07E0) >> 3
	blu := (c.V & 0x001F) << 3
	// Duplicate the high bits in the low bits.
	red |= red >> 5
	grn |= grn >> 6
	blu |= blu >> 5
	// Duplicate the whole value in the high byte.
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return uint32(red), uint32(grn), uint32(blu), 0xffff
}

func crgb16Model(c color.Color) color.Color {
	switch c := c.(type) {
	case CRGB16:
		return c
	case RGB:
		return CRGB16{Pack565(c)}
	default:
		r, g, b, _ := c.RGBA()
		r = (r & 0xF800)
		g = (g & 0xFC00) >> 5
		b = (b & 0xF800) >> 11
		return CRGB16{uint16(r | g | b)}
	}
}

// Pack565 packs c into a 5-6-5 value, dropping the low bits of each channel.
func Pack565(c RGB) uint16 {
	return uint16(c.R&0xF8)<<8 | uint16(c.G&0xFC)<<3 | uint16(c.B)>>3
}

// Unpack565 expands a 5-6-5 value into 8-bit channels by shifting each field
// to the top of its byte. The low bits stay zero.
func Unpack565(v uint16) RGB {
	return RGB{
		R: uint8((v & 0xF800) >> 8),
		G: uint8((v & 0x07E0) >> 3),
		B: uint8((v & 0x001F) << 3),
	}
}

// Swap16 exchanges the two bytes of v.
func Swap16(v uint16) uint16 {
	return v<<8 | v>>8
}

// RGB565Swapped converts a byte swapped 5-6-5 value, as produced by GIF
// decoders targeting little endian displays, into an RGB color.
func RGB565Swapped(v uint16) RGB {
	return Unpack565(Swap16(v))
}

// PackRGB565Swapped is the inverse of RGB565Swapped, up to the precision of
// the 5-6-5 format.
func PackRGB565Swapped(c RGB) uint16 {
	return Swap16(Pack565(c))
}
