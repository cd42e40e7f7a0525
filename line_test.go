package bling

import (
	"fmt"
	"testing"

	"github.com/BeatGlow/bling/pixel"
	"github.com/google/go-cmp/cmp"
)

// lineCases cover runs inside, across and entirely outside of both edges of
// the logical display, for every rotation.
func lineCases() [][3]int {
	var cases [][3]int
	for _, pos := range []int{-50, -41, -9, -8, -3, -1, 0, 1, 3, 7, 8, 20, 39, 40, 41, 60} {
		for _, run := range []int{-2, 0, 1, 2, 5, 8, 9, 40, 41, 100} {
			for _, cross := range []int{-1, 0, 3, 7, 8, 39, 40} {
				cases = append(cases, [3]int{pos, cross, run})
			}
		}
	}
	return cases
}

func TestHLineMatchesDirect(t *testing.T) {
	for _, r := range rotations {
		t.Run(r.String(), func(it *testing.T) {
			for _, test := range lineCases() {
				x, y, w := test[0], test[1], test[2]
				fast, _ := newTestDisplay(it, r)
				slow, _ := newTestDisplay(it, r)
				fast.Fill(pixel.Blue)
				slow.Fill(pixel.Blue)

				fast.HLine(x, y, w, pixel.Red)
				slow.HLineDirect(x, y, w, pixel.Red)
				if diff := cmp.Diff(slow.Pixels(), fast.Pixels()); diff != "" {
					it.Fatalf("hline(%d,%d,%d) mismatch (-direct +hline):\n%s", x, y, w, diff)
				}
			}
		})
	}
}

func TestVLineMatchesDirect(t *testing.T) {
	for _, r := range rotations {
		t.Run(r.String(), func(it *testing.T) {
			for _, test := range lineCases() {
				y, x, h := test[0], test[1], test[2]
				fast, _ := newTestDisplay(it, r)
				slow, _ := newTestDisplay(it, r)
				fast.Fill(pixel.Blue)
				slow.Fill(pixel.Blue)

				fast.VLine(x, y, h, pixel.Red)
				slow.VLineDirect(x, y, h, pixel.Red)
				if diff := cmp.Diff(slow.Pixels(), fast.Pixels()); diff != "" {
					it.Fatalf("vline(%d,%d,%d) mismatch (-direct +vline):\n%s", x, y, h, diff)
				}
			}
		})
	}
}

func TestHLineReadBack(t *testing.T) {
	for _, r := range rotations {
		for _, test := range [][3]int{{0, 0, 8}, {-3, 2, 6}, {5, 7, 40}, {2, 1, 1}} {
			x, y, w := test[0], test[1], test[2]
			t.Run(fmt.Sprintf("%s/%d,%d,%d", r, x, y, w), func(it *testing.T) {
				d, _ := newTestDisplay(it, r)
				d.Fill(pixel.Blue)
				d.HLine(x, y, w, pixel.Red)
				for py := 0; py < d.Height(); py++ {
					for px := 0; px < d.Width(); px++ {
						want := pixel.Blue
						if py == y && px >= x && px < x+w {
							want = pixel.Red
						}
						if c := d.At(px, py); c != want {
							it.Fatalf("pixel (%d,%d) is %s, expected %s", px, py, c, want)
						}
					}
				}
			})
		}
	}
}

func TestLineRotated(t *testing.T) {
	d, _ := newTestDisplay(t, Rotate180)
	d.Line(0, 0, 39, 7, pixel.White)

	pix := d.Pixels()
	if pix[319] != pixel.White {
		t.Errorf("expected start point (0,0) at index 319")
	}
	if pix[0] != pixel.White {
		t.Errorf("expected end point (39,7) at index 0")
	}

	runs := [][2]int{{0, 2}, {3, 8}, {9, 13}, {14, 19}, {20, 25}, {26, 30}, {31, 36}, {37, 39}}
	var lit int
	for y := 0; y < d.Height(); y++ {
		for x := 0; x < d.Width(); x++ {
			on := d.At(x, y) == pixel.White
			want := x >= runs[y][0] && x <= runs[y][1]
			if on != want {
				t.Errorf("pixel (%d,%d): expected lit=%t", x, y, want)
			}
			if on {
				lit++
			}
		}
	}
	if lit != 40 {
		t.Errorf("expected 40 lit pixels, got %d", lit)
	}
}

func TestLineClipped(t *testing.T) {
	d, _ := newTestDisplay(t, NoRotation)
	d.Line(-10, 4, 50, 4, pixel.Green)
	for x := 0; x < 40; x++ {
		if c := d.At(x, 4); c != pixel.Green {
			t.Fatalf("pixel (%d,4) is %s, expected green", x, c)
		}
	}
	for _, i := range []int{3 * 40, 5 * 40} {
		if c := d.Pixels()[i]; c != pixel.Black {
			t.Errorf("index %d is %s, expected nothing outside of row 4", i, c)
		}
	}
}
