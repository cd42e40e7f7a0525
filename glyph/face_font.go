package glyph

import (
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultDPI is used for TrueType fonts.
const DefaultDPI = 72

// FromFace returns a structured font for a golang.org/x/image font face.
// Glyph intensities are the mask alpha values.
func FromFace(face font.Face) *Font {
	var (
		metrics = face.Metrics()
		ascent  = metrics.Ascent.Ceil()
		descent = metrics.Descent.Ceil()
		width   int
	)
	if advance, ok := face.GlyphAdvance('M'); ok {
		width = advance.Ceil()
	}
	return &Font{
		W:  width,
		H:  ascent + descent,
		DY: -descent,
		Load: func(r rune) *Glyph {
			return faceGlyph(face, r)
		},
	}
}

func faceGlyph(face font.Face, r rune) *Glyph {
	dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return nil
	}

	g := NewGlyph(dr.Dx(), dr.Dy())
	g.DX = dr.Min.X
	g.DY = -dr.Max.Y
	g.ShiftX = advance.Round()
	if mask == nil {
		return g
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			g.Set(x, y, uint8(a>>8))
		}
	}
	return g
}

// Basic7x13 returns the fixed 7x13 font from golang.org/x/image/font/basicfont.
func Basic7x13() *Font {
	return FromFace(basicfont.Face7x13)
}

// ParseTrueType parses a TrueType font and renders it at size points.
func ParseTrueType(data []byte, size float64) (*Font, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: %w", err)
	}
	return FromFace(truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     DefaultDPI,
		Hinting: font.HintingFull,
	})), nil
}

// Bounds returns the rectangle covered by the glyph when drawn with its
// baseline origin at dot.
func (g *Glyph) Bounds(dot image.Point) image.Rectangle {
	return image.Rect(dot.X+g.DX, dot.Y-g.DY-g.Height, dot.X+g.DX+g.Width, dot.Y-g.DY)
}
