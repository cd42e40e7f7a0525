// Package window emulates the LED matrix in a desktop window.
//
// The window must be run from the main goroutine, drawing happens from any
// other goroutine through Write:
//
//	w, _ := window.New(&window.Opts{Width: 40, Height: 8})
//	go runDemo(w)
//	if err := w.Run(); err != nil {
//		log.Fatal(err)
//	}
package window

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Errors
var (
	ErrLength = errors.New("window: invalid RGB stream length")
	ErrSize   = errors.New("window: invalid size")
)

// Opts defines the window options.
type Opts struct {
	// Width and Height of the matrix in LEDs.
	Width, Height int

	// Scale is the window size of one LED in screen pixels.
	Scale int

	// Title of the window.
	Title string
}

// DefaultOpts is the BLING matrix with 16 pixel LEDs.
var DefaultOpts = Opts{
	Width:  40,
	Height: 8,
	Scale:  16,
	Title:  "BLING",
}

// Dev is a matrix emulator drawing in a window. It implements ebiten.Game.
type Dev struct {
	opts Opts

	mu     sync.Mutex
	img    *image.RGBA
	dirty  bool
	closed bool

	screen *ebiten.Image
}

// New returns a window sink, nil opts selects DefaultOpts.
func New(opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, opts.Width, opts.Height)
	}
	o := *opts
	if o.Scale <= 0 {
		o.Scale = DefaultOpts.Scale
	}
	if o.Title == "" {
		o.Title = DefaultOpts.Title
	}
	return &Dev{
		opts: o,
		img:  image.NewRGBA(image.Rect(0, 0, o.Width, o.Height)),
	}, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("Window{%dx%d}", d.opts.Width, d.opts.Height)
}

// Run opens the window and blocks until it is closed by the user or by Halt.
func (d *Dev) Run() error {
	ebiten.SetWindowTitle(d.opts.Title)
	ebiten.SetWindowSize(d.opts.Width*d.opts.Scale, d.opts.Height*d.opts.Scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(d)
}

// Write accepts a stream of raw RGB pixels in chain order. Rows of Width LEDs
// are shown top to bottom.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels)%3 != 0 {
		return 0, ErrLength
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	pix := d.img.Pix
	for i, j := 0, 0; i+2 < len(pixels) && j+3 < len(pix); i, j = i+3, j+4 {
		pix[j+0] = pixels[i+0]
		pix[j+1] = pixels[i+1]
		pix[j+2] = pixels[i+2]
		pix[j+3] = 0xff
	}
	d.dirty = true
	return len(pixels), nil
}

// Halt closes the window on the next update.
func (d *Dev) Halt() error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	return nil
}

// Update implements ebiten.Game.
func (d *Dev) Update() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (d *Dev) Draw(screen *ebiten.Image) {
	if d.screen == nil {
		d.screen = ebiten.NewImage(d.opts.Width, d.opts.Height)
		d.dirty = true
	}

	d.mu.Lock()
	if d.dirty {
		d.screen.WritePixels(d.img.Pix)
		d.dirty = false
	}
	d.mu.Unlock()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(d.opts.Scale), float64(d.opts.Scale))
	screen.DrawImage(d.screen, op)
}

// Layout implements ebiten.Game.
func (d *Dev) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.opts.Width * d.opts.Scale, d.opts.Height * d.opts.Scale
}

var _ ebiten.Game = (*Dev)(nil)
