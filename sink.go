package bling

import (
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
)

// Sink receives frames from Show. A frame holds three bytes per LED, red,
// green and blue, in chain order. Sinks must not keep the frame after Write
// returns.
type Sink interface {
	Write(frame []byte) (int, error)
}

// Discard is a Sink that drops every frame.
var Discard Sink = discard{}

type discard struct{}

func (discard) Write(frame []byte) (int, error) {
	return len(frame), nil
}

// DrawerSink shows frames on a periph display.Drawer. The chain is folded
// into rows of Width LEDs, so the Drawer sees the physical LED layout.
type DrawerSink struct {
	Drawer display.Drawer
	Width  int

	img *image.NRGBA
}

// NewDrawerSink returns a sink for the BLING matrix on d.
func NewDrawerSink(d display.Drawer) *DrawerSink {
	return &DrawerSink{
		Drawer: d,
		Width:  DefaultWidth,
	}
}

func (s *DrawerSink) String() string {
	return fmt.Sprintf("DrawerSink{%s}", s.Drawer)
}

func (s *DrawerSink) Write(frame []byte) (int, error) {
	if len(frame)%3 != 0 {
		return 0, fmt.Errorf("bling: frame of %d bytes is not a multiple of 3", len(frame))
	}
	if s.Width <= 0 {
		return 0, ErrSize
	}

	n := len(frame) / 3
	h := (n + s.Width - 1) / s.Width
	if s.img == nil || s.img.Rect.Dx() != s.Width || s.img.Rect.Dy() != h {
		s.img = image.NewNRGBA(image.Rect(0, 0, s.Width, h))
	}
	for i := 0; i < n; i++ {
		s.img.SetNRGBA(i%s.Width, i/s.Width, color.NRGBA{
			R: frame[i*3+0],
			G: frame[i*3+1],
			B: frame[i*3+2],
			A: 0xff,
		})
	}
	if err := s.Drawer.Draw(s.Drawer.Bounds(), s.img, image.Point{}); err != nil {
		return 0, err
	}
	return len(frame), nil
}

// Halt the underlying Drawer.
func (s *DrawerSink) Halt() error {
	return s.Drawer.Halt()
}
