package glyph

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// FromTinyfont returns a structured font for a tinyfont font.
//
// The bounding box is derived from the printable ASCII glyphs of the font.
func FromTinyfont(f tinyfont.Fonter) *Font {
	var (
		width  int
		top    int
		bottom int
	)
	for r := rune(0x20); r < 0x7f; r++ {
		info := f.GetGlyph(r).Info()
		if info.Rune != r {
			continue
		}
		if v := int(info.XAdvance); v > width {
			width = v
		}
		if v := -int(info.YOffset); v > top {
			top = v
		}
		if v := -int(info.YOffset) - int(info.Height); v < bottom {
			bottom = v
		}
	}
	if top == bottom {
		top = int(f.GetYAdvance())
	}

	return &Font{
		W:  width,
		H:  top - bottom,
		DY: bottom,
		Load: func(r rune) *Glyph {
			return tinyfontGlyph(f, r)
		},
	}
}

func tinyfontGlyph(f tinyfont.Fonter, r rune) *Glyph {
	glypher := f.GetGlyph(r)
	info := glypher.Info()
	if info.Rune != r {
		return nil
	}

	g := NewGlyph(int(info.Width), int(info.Height))
	g.DX = int(info.XOffset)
	g.DY = -int(info.YOffset) - int(info.Height)
	g.ShiftX = int(info.XAdvance)

	// Glyph pixels land at (x+XOffset+col, y+YOffset+row), shift them so the
	// bitmap starts at the origin.
	glypher.Draw(&glyphRecorder{g: g}, -int16(info.XOffset), -int16(info.YOffset), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	return g
}

// glyphRecorder is a drivers.Displayer that records into a Glyph bitmap.
type glyphRecorder struct {
	g *Glyph
}

func (r *glyphRecorder) Size() (x, y int16) {
	return int16(r.g.Width), int16(r.g.Height)
}

func (r *glyphRecorder) SetPixel(x, y int16, c color.RGBA) {
	if c.R|c.G|c.B == 0 {
		return
	}
	r.g.Set(int(x), int(y), 0xff)
}

func (r *glyphRecorder) Display() error {
	return nil
}

var _ drivers.Displayer = (*glyphRecorder)(nil)
