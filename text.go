package bling

import (
	"github.com/BeatGlow/bling/glyph"
	"github.com/BeatGlow/bling/pixel"
)

// TextOpts are optional text settings.
type TextOpts struct {
	// Background color of the text box, nil leaves unlit pixels untouched.
	Background *pixel.RGB

	// Show the display after drawing the text.
	Show bool
}

// Text draws s with the top left corner of the text box at (x,y).
func (d *Display) Text(s string, face glyph.Face, x, y int, fg pixel.RGB, opts *TextOpts) error {
	if opts == nil {
		opts = new(TextOpts)
	}
	if err := face.Draw(d, s, x, y, fg, opts.Background); err != nil {
		return err
	}
	if opts.Show {
		return d.Show()
	}
	return nil
}

var _ glyph.Target = (*Display)(nil)
