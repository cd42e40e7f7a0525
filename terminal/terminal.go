// Package terminal emulates the LED matrix on a terminal using ANSI 256
// color codes.
//
// Useful while the matrix is not connected, or to preview a demo over SSH.
package terminal

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// ErrLength is returned for frames that are not made of whole RGB pixels.
var ErrLength = errors.New("terminal: invalid RGB stream length")

// Opts represents the options available for this display.
type Opts struct {
	// Width is the number of LEDs per row.
	Width int

	// Palette used to approximate colors, nil selects ansi256.Default.
	Palette *ansi256.Palette

	// W receives the output, nil selects a colorable stdout.
	W io.Writer
}

// Dev is a matrix emulator that outputs to the console. Each frame is drawn
// over the previous one.
type Dev struct {
	w       io.Writer
	width   int
	palette *ansi256.Palette
	rows    int
	buf     bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) (*Dev, error) {
	if opts.Width <= 0 {
		return nil, fmt.Errorf("terminal: invalid width %d", opts.Width)
	}
	d := &Dev{
		w:       opts.W,
		width:   opts.Width,
		palette: opts.Palette,
	}
	if d.w == nil {
		d.w = colorable.NewColorableStdout()
	}
	if d.palette == nil {
		d.palette = ansi256.Default
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("Terminal{%d wide}", d.width)
}

// Halt resets the terminal colors and moves below the last frame.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	d.rows = 0
	return err
}

// Write accepts a stream of raw RGB pixels in chain order and draws it as
// rows of Width blocks.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels)%3 != 0 {
		return 0, ErrLength
	}

	d.buf.Reset()
	if d.rows > 0 {
		// Move back to the top of the previous frame.
		fmt.Fprintf(&d.buf, "\033[%dA", d.rows)
	}
	n := len(pixels) / 3
	rows := 0
	for i := 0; i < n; i += d.width {
		_, _ = d.buf.WriteString("\r\033[0m")
		for j := i; j < i+d.width && j < n; j++ {
			c := color.NRGBA{R: pixels[3*j], G: pixels[3*j+1], B: pixels[3*j+2], A: 0xff}
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
		rows++
	}
	d.rows = rows

	if _, err := d.buf.WriteTo(d.w); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

var _ fmt.Stringer = (*Dev)(nil)
