// Package bling drives the BLING 40x8 RGB LED matrix.
//
// A [Display] owns a flat buffer of colors in the order the LEDs are chained,
// and maps logical (x, y) coordinates onto it using one of four rotations.
// Drawing only changes the buffer, [Display.Show] pushes it to the [Sink].
package bling

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/BeatGlow/bling/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("BLING_DEBUG") != ""
}

// Errors
var (
	ErrRotation = errors.New("bling: invalid rotation")
	ErrSize     = errors.New("bling: invalid display size")
	ErrSink     = errors.New("bling: no output sink")
)

// Physical dimensions of the BLING matrix.
const (
	DefaultWidth  = 40
	DefaultHeight = 8
)

// PixelSize returns the physical size of the BLING matrix.
func PixelSize() (w, h int) {
	return DefaultWidth, DefaultHeight
}

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

// Valid reports if r is one of the supported rotations.
func (r Rotation) Valid() bool {
	return r <= Rotate270
}

// Swapped reports if r swaps the logical width and height.
func (r Rotation) Swapped() bool {
	return r == Rotate90 || r == Rotate270
}

func (r Rotation) String() string {
	switch r {
	case NoRotation:
		return "0°"
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return fmt.Sprintf("Rotation(%d)", uint8(r))
	}
}

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels.
	Width int

	// Height of the display in pixels.
	Height int

	// Rotation of the display.
	Rotation Rotation
}

// DefaultConfig is the BLING matrix mounted with its connector on the right.
var DefaultConfig = Config{
	Width:    DefaultWidth,
	Height:   DefaultHeight,
	Rotation: Rotate180,
}

// Display is a rotatable framebuffer bound to an output sink.
//
// Display is not safe for concurrent use.
type Display struct {
	sink     Sink
	width    int
	height   int
	rotation Rotation
	pix      []pixel.RGB
	frame    []byte
}

// New returns a blank display writing to sink. A nil config selects
// DefaultConfig.
func New(sink Sink, config *Config) (*Display, error) {
	if sink == nil {
		return nil, ErrSink
	}
	if config == nil {
		config = &DefaultConfig
	}
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, config.Width, config.Height)
	}
	if !config.Rotation.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrRotation, config.Rotation)
	}

	n := config.Width * config.Height
	return &Display{
		sink:     sink,
		width:    config.Width,
		height:   config.Height,
		rotation: config.Rotation,
		pix:      make([]pixel.RGB, n),
		frame:    make([]byte, n*3),
	}, nil
}

func (d *Display) String() string {
	return fmt.Sprintf("BLING %dx%d rotated %s", d.width, d.height, d.rotation)
}

// Close the sink, if it can be closed or halted.
func (d *Display) Close() error {
	switch s := d.sink.(type) {
	case io.Closer:
		return s.Close()
	case interface{ Halt() error }:
		return s.Halt()
	default:
		return nil
	}
}

// Rotation returns the current rotation.
func (d *Display) Rotation() Rotation {
	return d.rotation
}

// SetRotation changes the mapping used by subsequent drawing. The buffer
// contents are not changed.
func (d *Display) SetRotation(r Rotation) error {
	if !r.Valid() {
		return fmt.Errorf("%w: %d", ErrRotation, r)
	}
	d.rotation = r
	return nil
}

// Width is the logical width for the current rotation.
func (d *Display) Width() int {
	if d.rotation.Swapped() {
		return d.height
	}
	return d.width
}

// Height is the logical height for the current rotation.
func (d *Display) Height() int {
	if d.rotation.Swapped() {
		return d.width
	}
	return d.height
}

// PhysicalSize returns the unrotated size of the display.
func (d *Display) PhysicalSize() (w, h int) {
	return d.width, d.height
}

// NumPixels is the number of LEDs in the buffer.
func (d *Display) NumPixels() int {
	return len(d.pix)
}

// Pixels returns the buffer in physical order. Changes to the returned slice
// are visible on the next Show.
func (d *Display) Pixels() []pixel.RGB {
	return d.pix
}

// Index maps the logical coordinate (x,y) to a buffer index. The coordinate
// is not checked against the logical size, only the resulting index is
// checked against the buffer.
func (d *Display) Index(x, y int) (int, bool) {
	var (
		w = d.width
		h = d.height
		i int
	)
	switch d.rotation {
	case NoRotation:
		i = x + y*w
	case Rotate90:
		i = (w - 1 - y) + x*w
	case Rotate180:
		i = (w - 1 - x) + (h-1-y)*w
	case Rotate270:
		i = y + (h-1-x)*w
	default:
		return 0, false
	}
	if i < 0 || i >= len(d.pix) {
		return 0, false
	}
	return i, true
}

// in reports if (x,y) is within the logical bounds.
func (d *Display) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < d.Width() && y < d.Height()
}

// At returns the color at (x,y), black outside of the display.
func (d *Display) At(x, y int) pixel.RGB {
	if !d.in(x, y) {
		return pixel.Black
	}
	if i, ok := d.Index(x, y); ok {
		return d.pix[i]
	}
	return pixel.Black
}

// SetPixel sets the color at (x,y). Coordinates outside of the display are
// ignored.
func (d *Display) SetPixel(x, y int, c pixel.RGB) {
	if !d.in(x, y) {
		return
	}
	if i, ok := d.Index(x, y); ok {
		d.pix[i] = c
	}
}

// Fill sets every pixel to c.
func (d *Display) Fill(c pixel.RGB) {
	for i := range d.pix {
		d.pix[i] = c
	}
}

// Clear fills the display with black and shows it.
func (d *Display) Clear() error {
	d.Fill(pixel.Black)
	return d.Show()
}

// Show writes the buffer to the sink. Errors from the sink are returned as is.
func (d *Display) Show() error {
	for i, c := range d.pix {
		d.frame[i*3+0] = c.R
		d.frame[i*3+1] = c.G
		d.frame[i*3+2] = c.B
	}

	var start time.Time
	if debug {
		start = time.Now()
	}
	if _, err := d.sink.Write(d.frame); err != nil {
		return err
	}
	if debug {
		log.Printf("bling: show %d pixels to %T took %s", len(d.pix), d.sink, time.Since(start))
	}
	return nil
}
