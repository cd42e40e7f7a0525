package bling

import (
	"image"
	"testing"

	"github.com/BeatGlow/bling/pixel"
	"github.com/google/go-cmp/cmp"
)

func TestRect(t *testing.T) {
	for _, r := range rotations {
		for _, fill := range []bool{false, true} {
			name := r.String() + "/outline"
			if fill {
				name = r.String() + "/fill"
			}
			t.Run(name, func(it *testing.T) {
				d, _ := newTestDisplay(it, r)
				rect := image.Rect(2, 1, 7, 5)
				d.Rect(rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy(), pixel.Red, fill)

				inner := rect.Inset(1)
				for y := 0; y < d.Height(); y++ {
					for x := 0; x < d.Width(); x++ {
						p := image.Pt(x, y)
						want := p.In(rect) && (fill || !p.In(inner))
						if on := d.At(x, y) == pixel.Red; on != want {
							it.Fatalf("pixel %s: expected lit=%t", p, want)
						}
					}
				}
			})
		}
	}
}

func TestRectEmpty(t *testing.T) {
	d, _ := newTestDisplay(t, NoRotation)
	for _, size := range [][2]int{{0, 3}, {3, 0}, {-1, 3}, {3, -5}} {
		d.Rect(1, 1, size[0], size[1], pixel.Red, false)
		d.Rect(1, 1, size[0], size[1], pixel.Red, true)
		d.RoundRect(1, 1, size[0], size[1], 1, pixel.Red, true)
	}
	for i, c := range d.Pixels() {
		if c != pixel.Black {
			t.Fatalf("pixel %d was set by an empty rectangle", i)
		}
	}
}

func TestFillRectClipped(t *testing.T) {
	for _, r := range rotations {
		t.Run(r.String(), func(it *testing.T) {
			d, _ := newTestDisplay(it, r)
			d.FillRect(-5, -5, 100, 100, pixel.Green)
			for i, c := range d.Pixels() {
				if c != pixel.Green {
					it.Fatalf("pixel %d is %s, expected green", i, c)
				}
			}
		})
	}
}

func TestCircle(t *testing.T) {
	d, _ := newTestDisplay(t, Rotate180)
	d.Circle(20, 4, 2, pixel.White)

	var got []image.Point
	for y := 0; y < d.Height(); y++ {
		for x := 0; x < d.Width(); x++ {
			if d.At(x, y) == pixel.White {
				got = append(got, image.Pt(x-20, y-4))
			}
		}
	}
	want := []image.Point{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("circle mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundRect(t *testing.T) {
	d, _ := newTestDisplay(t, NoRotation)
	d.RoundRect(0, 0, 10, 8, 2, pixel.Red, false)
	if d.At(0, 0) == pixel.Red {
		t.Errorf("expected corner to be rounded")
	}
	if d.At(5, 0) != pixel.Red || d.At(0, 4) != pixel.Red {
		t.Errorf("expected straight edges to be drawn")
	}
	if d.At(5, 4) == pixel.Red {
		t.Errorf("expected outline only")
	}

	d.RoundRect(0, 0, 10, 8, 2, pixel.Blue, true)
	if d.At(5, 4) != pixel.Blue {
		t.Errorf("expected filled center")
	}
}
