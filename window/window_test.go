package window

import (
	"errors"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestNew(t *testing.T) {
	d, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	if w, h := d.Layout(0, 0); w != 640 || h != 128 {
		t.Errorf("expected 640x128 layout, got %dx%d", w, h)
	}

	if _, err = New(&Opts{Width: 0, Height: 8}); !errors.Is(err, ErrSize) {
		t.Errorf("expected ErrSize, got %v", err)
	}

	d, err = New(&Opts{Width: 4, Height: 2})
	if err != nil {
		t.Fatal(err)
	}
	if d.opts.Scale != DefaultOpts.Scale || d.opts.Title != DefaultOpts.Title {
		t.Errorf("expected defaults to be filled in, got %+v", d.opts)
	}
}

func TestWrite(t *testing.T) {
	d, _ := New(&Opts{Width: 2, Height: 2, Scale: 1})
	frame := []byte{
		0xff, 0, 0, 0, 0xff, 0,
		0, 0, 0xff, 1, 2, 3,
	}
	if n, err := d.Write(frame); err != nil || n != len(frame) {
		t.Fatalf("Write() = %d, %v", n, err)
	}
	if !d.dirty {
		t.Errorf("expected frame to be marked dirty")
	}
	for _, test := range []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, color.RGBA{R: 0xff, A: 0xff}},
		{1, 0, color.RGBA{G: 0xff, A: 0xff}},
		{0, 1, color.RGBA{B: 0xff, A: 0xff}},
		{1, 1, color.RGBA{R: 1, G: 2, B: 3, A: 0xff}},
	} {
		if got := d.img.RGBAAt(test.x, test.y); got != test.want {
			t.Errorf("pixel (%d,%d): expected %v, got %v", test.x, test.y, test.want, got)
		}
	}

	if _, err := d.Write(frame[:4]); !errors.Is(err, ErrLength) {
		t.Errorf("expected ErrLength, got %v", err)
	}
}

func TestHalt(t *testing.T) {
	d, _ := New(nil)
	if err := d.Update(); err != nil {
		t.Fatalf("expected nil update, got %v", err)
	}
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if err := d.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("expected termination, got %v", err)
	}
}
