package glyph

import (
	"github.com/BeatGlow/bling/pixel"
)

// Target receives rendered pixels in logical coordinates.
type Target interface {
	// Width of the visible area.
	Width() int

	// Height of the visible area.
	Height() int

	// SetPixel sets a single pixel.
	SetPixel(x, y int, c pixel.RGB)
}

// Glyph is a single character bitmap of a structured font.
type Glyph struct {
	// Width and Height of the bitmap.
	Width, Height int

	// DX is the horizontal offset of the bitmap from the cursor.
	DX int

	// DY is the offset of the bottom row of the bitmap from the baseline,
	// positive values are above the baseline.
	DY int

	// ShiftX is the horizontal advance to the next glyph.
	ShiftX int

	// Pix holds Width*Height intensities, row by row starting at the top.
	Pix []uint8
}

// NewGlyph returns an empty glyph with a w×h bitmap.
func NewGlyph(w, h int) *Glyph {
	return &Glyph{
		Width:  w,
		Height: h,
		ShiftX: w,
		Pix:    make([]uint8, w*h),
	}
}

// At returns the intensity at column x and row y, 0 outside of the bitmap.
func (g *Glyph) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return 0
	}
	return g.Pix[x+y*g.Width]
}

// Set the intensity at column x and row y.
func (g *Glyph) Set(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return
	}
	g.Pix[x+y*g.Width] = v
}

// Source is a structured font.
type Source interface {
	// BoundingBox returns the width, height, x offset and y offset of the
	// font. The y offset is the bottom of the box relative to the baseline.
	BoundingBox() (w, h, dx, dy int)

	// LoadGlyphs prepares the glyphs for all characters in s.
	LoadGlyphs(s string)

	// Glyph returns the glyph for r, or nil if the font has none.
	Glyph(r rune) *Glyph
}

// Font is a Source backed by a glyph table. Glyphs that are not in the table
// are requested from Load, when set, and remembered.
type Font struct {
	// Bounding box, see Source.BoundingBox.
	W, H, DX, DY int

	// Glyphs by character.
	Glyphs map[rune]*Glyph

	// Load is called for characters not in Glyphs, it returns nil for
	// characters the font can't render.
	Load func(rune) *Glyph
}

func (f *Font) BoundingBox() (w, h, dx, dy int) {
	return f.W, f.H, f.DX, f.DY
}

func (f *Font) LoadGlyphs(s string) {
	for _, r := range s {
		f.Glyph(r)
	}
}

func (f *Font) Glyph(r rune) *Glyph {
	if g, ok := f.Glyphs[r]; ok {
		return g
	}
	if f.Load == nil {
		return nil
	}
	if f.Glyphs == nil {
		f.Glyphs = make(map[rune]*Glyph)
	}
	g := f.Load(r)
	f.Glyphs[r] = g
	return g
}

// DrawStructured renders s with the top left corner of the text box at (x,y).
//
// The text box is as high as the font bounding box. Each glyph row is placed
// relative to the baseline using the glyph's own height and y offset, rows
// outside of the glyph bitmap only advance the cursor. A nil bg leaves
// unlit pixels untouched.
func DrawStructured(dst Target, src Source, s string, x, y int, fg pixel.RGB, bg *pixel.RGB) {
	viewW, viewH := dst.Width(), dst.Height()
	_, h, _, dy := src.BoundingBox()
	src.LoadGlyphs(s)

	for yg := 0; yg < h; yg++ {
		ym := y + yg
		if ym < 0 || ym >= viewH {
			continue
		}
		xm := x
		for _, r := range s {
			g := src.Glyph(r)
			if g == nil {
				continue
			}

			p := 0
			gy := yg + (g.Height - (h + dy)) + g.DY
			if gy >= 0 && gy < g.Height {
				for i := 0; i < g.Width; i++ {
					if xm >= 0 && xm < viewW {
						if g.At(i, gy) > 0 {
							dst.SetPixel(xm, ym, fg)
						} else if bg != nil {
							dst.SetPixel(xm, ym, *bg)
						}
					}
					xm++
					p++
				}
			}

			for i := p; i < g.ShiftX; i++ {
				if bg != nil && xm >= 0 && xm < viewW {
					dst.SetPixel(xm, ym, *bg)
				}
				xm++
			}
		}
	}
}

// Extent returns the size of the box DrawStructured fills for s.
func Extent(src Source, s string) (w, h int) {
	_, h, _, _ = src.BoundingBox()
	src.LoadGlyphs(s)
	for _, r := range s {
		if g := src.Glyph(r); g != nil {
			if g.ShiftX > g.Width {
				w += g.ShiftX
			} else {
				w += g.Width
			}
		}
	}
	return
}
