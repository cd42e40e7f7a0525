package framebuffer

import (
	"errors"
	"fmt"
	"image"
	"io"

	xdraw "golang.org/x/image/draw"

	"github.com/BeatGlow/bling/draw"
)

// Errors
var (
	ErrLength       = errors.New("framebuffer: invalid RGB stream length")
	ErrFormat       = errors.New("framebuffer: unsupported pixel format")
	ErrNotSupported = errors.New("framebuffer: not supported")
)

// Opts defines how the matrix is mapped onto the screen.
type Opts struct {
	// Width is the number of LEDs per row.
	Width int

	// Scale is the size of one LED in screen pixels.
	Scale int
}

// DefaultOpts shows the BLING matrix with 8 pixel LEDs.
var DefaultOpts = Opts{
	Width: 40,
	Scale: 8,
}

// Sink draws frames onto an image.
type Sink struct {
	dst    draw.Image
	closer io.Closer
	opts   Opts
	src    *image.RGBA
}

// NewSink returns a sink drawing onto dst. A nil opts selects DefaultOpts.
func NewSink(dst draw.Image, opts *Opts) (*Sink, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Width <= 0 || opts.Scale <= 0 {
		return nil, fmt.Errorf("framebuffer: invalid width %d or scale %d", opts.Width, opts.Scale)
	}
	return &Sink{
		dst:  dst,
		opts: *opts,
	}, nil
}

func (s *Sink) String() string {
	return fmt.Sprintf("Framebuffer{%s, %d wide, scale %d}", s.dst.Bounds().Size(), s.opts.Width, s.opts.Scale)
}

// Write accepts a stream of raw RGB pixels in chain order and draws it as
// rows of Width blocks.
func (s *Sink) Write(pixels []byte) (int, error) {
	if len(pixels)%3 != 0 {
		return 0, ErrLength
	}

	var (
		n = len(pixels) / 3
		w = s.opts.Width
		h = (n + w - 1) / w
	)
	if s.src == nil || s.src.Rect.Dy() != h {
		s.src = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	for i := 0; i < n; i++ {
		j := s.src.PixOffset(i%w, i/w)
		s.src.Pix[j+0] = pixels[i*3+0]
		s.src.Pix[j+1] = pixels[i*3+1]
		s.src.Pix[j+2] = pixels[i*3+2]
		s.src.Pix[j+3] = 0xff
	}

	origin := s.dst.Bounds().Min
	r := image.Rect(0, 0, w*s.opts.Scale, h*s.opts.Scale).Add(origin)
	xdraw.NearestNeighbor.Scale(s.dst, r, s.src, s.src.Bounds(), draw.Src, nil)
	return len(pixels), nil
}

// Close releases the underlying device, if any.
func (s *Sink) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
