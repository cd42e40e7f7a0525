package glyph

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BeatGlow/bling/pixel"
)

// ErrBinFont is returned for blobs that are too short to hold a header.
var ErrBinFont = errors.New("glyph: invalid binary font")

// binGap is the number of blank columns between two characters.
const binGap = 1

// BinFont is a fixed size binary font. The blob starts with a two byte
// header holding the glyph width and height, followed by width column bytes
// per character code. Bit n of a column byte is row n of the glyph.
type BinFont struct {
	name          string
	width, height int
	data          []byte
}

// ParseBin parses a binary font blob.
func ParseBin(name string, data []byte) (*BinFont, error) {
	if len(data) < 2 {
		return nil, ErrBinFont
	}
	f := &BinFont{
		name:   name,
		width:  int(data[0]),
		height: int(data[1]),
		data:   data,
	}
	if f.height > 8 {
		return nil, fmt.Errorf("glyph: binary font %s is %d rows high, at most 8 are supported", name, f.height)
	}
	return f, nil
}

// OpenBin loads a binary font file.
func OpenBin(name string) (*BinFont, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("glyph: %w", err)
	}
	return ParseBin(name, data)
}

func (f *BinFont) String() string {
	return fmt.Sprintf("%s (%dx%d)", f.name, f.width, f.height)
}

// Size returns the glyph cell size.
func (f *BinFont) Size() (w, h int) {
	return f.width, f.height
}

// Column returns the byte for column col of the glyph for r. It returns false
// if the blob holds no data for it.
func (f *BinFont) Column(r rune, col int) (byte, bool) {
	if r < 0 || col < 0 || col >= f.width {
		return 0, false
	}
	offset := 2 + int(r)*f.width + col
	if offset < 0 || offset >= len(f.data) {
		return 0, false
	}
	return f.data[offset], true
}

// LineWidth returns the number of pixels the longest line of s occupies,
// including the gap column after each character.
func (f *BinFont) LineWidth(s string) int {
	var w int
	for _, line := range strings.Split(s, "\n") {
		if n := len([]rune(line)) * (f.width + binGap); n > w {
			w = n
		}
	}
	return w
}

// DrawBinary renders s with the top left corner of the first character at
// (x,y). Lines are separated by "\n" and stacked directly below each other.
//
// Characters entirely outside of the target are skipped. Columns the blob
// has no data for are left untouched. A nil bg leaves unlit pixels
// untouched.
func DrawBinary(dst Target, f *BinFont, s string, x, y int, fg pixel.RGB, bg *pixel.RGB) {
	viewW, viewH := dst.Width(), dst.Height()
	for _, line := range strings.Split(s, "\n") {
		for i, r := range []rune(line) {
			tx := x + i*(f.width+binGap)
			if tx+f.width <= 0 || tx >= viewW || y+f.height <= 0 || y >= viewH {
				continue
			}
			for cx := 0; cx < f.width+binGap; cx++ {
				var bits byte
				if cx < f.width {
					var ok bool
					if bits, ok = f.Column(r, cx); !ok {
						continue
					}
				}
				xm := tx + cx
				for cy := 0; cy < f.height; cy++ {
					ym := y + cy
					if xm < 0 || xm >= viewW || ym < 0 || ym >= viewH {
						continue
					}
					if (bits>>cy)&1 != 0 {
						dst.SetPixel(xm, ym, fg)
					} else if bg != nil {
						dst.SetPixel(xm, ym, *bg)
					}
				}
			}
		}
		y += f.height
	}
}
