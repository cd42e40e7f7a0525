package glyph

import (
	"errors"
	"fmt"

	"github.com/BeatGlow/bling/pixel"
)

// ErrNoFont is returned when drawing with a Face that holds no font.
var ErrNoFont = errors.New("glyph: face has no font")

// Kind of font held by a Face.
type Kind uint8

const (
	// Structured fonts carry per glyph metrics, see Source.
	Structured Kind = iota

	// Binary fonts are fixed size cell fonts, see BinFont.
	Binary
)

func (k Kind) String() string {
	switch k {
	case Structured:
		return "structured"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Face selects the font and renderer used for text.
type Face struct {
	Kind Kind

	// Source is used for Structured faces.
	Source Source

	// Bin is used for Binary faces.
	Bin *BinFont
}

// StructuredFace returns a Face for a structured font.
func StructuredFace(src Source) Face {
	return Face{Kind: Structured, Source: src}
}

// BinaryFace returns a Face for a binary font.
func BinaryFace(f *BinFont) Face {
	return Face{Kind: Binary, Bin: f}
}

// Draw renders s onto dst using the renderer for the face's Kind.
func (f Face) Draw(dst Target, s string, x, y int, fg pixel.RGB, bg *pixel.RGB) error {
	switch f.Kind {
	case Structured:
		if f.Source == nil {
			return ErrNoFont
		}
		DrawStructured(dst, f.Source, s, x, y, fg, bg)
	case Binary:
		if f.Bin == nil {
			return ErrNoFont
		}
		DrawBinary(dst, f.Bin, s, x, y, fg, bg)
	default:
		return fmt.Errorf("glyph: unknown face kind %s", f.Kind)
	}
	return nil
}

// Size returns the size of the text box s occupies when drawn with this face.
func (f Face) Size(s string) (w, h int) {
	switch f.Kind {
	case Structured:
		if f.Source != nil {
			return Extent(f.Source, s)
		}
	case Binary:
		if f.Bin != nil {
			lines := 1
			for _, r := range s {
				if r == '\n' {
					lines++
				}
			}
			return f.Bin.LineWidth(s), lines * f.Bin.height
		}
	}
	return 0, 0
}
