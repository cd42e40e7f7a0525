package draw

import (
	"image"
	"image/color"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recorder keeps the distinct points that were set, in order of first use.
type recorder struct {
	seen   map[image.Point]bool
	points []image.Point
}

func (r *recorder) Set(x, y int, _ color.Color) {
	if r.seen == nil {
		r.seen = make(map[image.Point]bool)
	}
	p := image.Pt(x, y)
	if !r.seen[p] {
		r.seen[p] = true
		r.points = append(r.points, p)
	}
}

func (r *recorder) sorted() []image.Point {
	out := append([]image.Point(nil), r.points...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

func pts(xy ...int) []image.Point {
	out := make([]image.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, image.Pt(xy[i], xy[i+1]))
	}
	return out
}

func TestLine(t *testing.T) {
	for _, test := range []struct {
		Name string
		A, B image.Point
		Want []image.Point
	}{
		{"point", image.Pt(3, 3), image.Pt(3, 3), pts(3, 3)},
		{"steep", image.Pt(0, 0), image.Pt(3, 5), pts(0, 0, 1, 1, 1, 2, 2, 3, 2, 4, 3, 5)},
		{"backwards", image.Pt(5, 1), image.Pt(0, 3), pts(5, 1, 4, 1, 3, 2, 2, 2, 1, 3, 0, 3)},
		{"horizontal", image.Pt(2, 1), image.Pt(-1, 1), pts(2, 1, 1, 1, 0, 1, -1, 1)},
		{"vertical", image.Pt(0, 0), image.Pt(0, 2), pts(0, 0, 0, 1, 0, 2)},
		{"diagonal", image.Pt(0, 2), image.Pt(2, 0), pts(0, 2, 1, 1, 2, 0)},
	} {
		t.Run(test.Name, func(it *testing.T) {
			var r recorder
			Line(&r, test.A, test.B, color.White)
			if diff := cmp.Diff(test.Want, r.points); diff != "" {
				it.Errorf("points mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLineAcrossMatrix(t *testing.T) {
	var r recorder
	Line(&r, image.Pt(0, 0), image.Pt(39, 7), color.White)

	runs := map[int][2]int{
		0: {0, 2},
		1: {3, 8},
		2: {9, 13},
		3: {14, 19},
		4: {20, 25},
		5: {26, 30},
		6: {31, 36},
		7: {37, 39},
	}
	if len(r.points) != 40 {
		t.Fatalf("expected 40 points, got %d", len(r.points))
	}
	for _, p := range r.points {
		run := runs[p.Y]
		if p.X < run[0] || p.X > run[1] {
			t.Errorf("point %s outside of expected run %d-%d", p, run[0], run[1])
		}
	}
}

func TestCircle(t *testing.T) {
	for _, test := range []struct {
		Radius int
		Want   []image.Point
	}{
		{0, nil},
		{1, pts(0, 0)},
		{2, pts(-1, -1, -1, 0, -1, 1, 0, -1, 0, 1, 1, -1, 1, 0, 1, 1)},
		{3, pts(
			-2, -2, -2, -1, -2, 0, -2, 1, -2, 2,
			-1, -2, -1, 2,
			0, -2, 0, 2,
			1, -2, 1, 2,
			2, -2, 2, -1, 2, 0, 2, 1, 2, 2,
		)},
		{5, pts(
			-4, -3, -4, -2, -4, -1, -4, 0, -4, 1, -4, 2, -4, 3,
			-3, -4, -3, 4,
			-2, -4, -2, 4,
			-1, -4, -1, 4,
			0, -4, 0, 4,
			1, -4, 1, 4,
			2, -4, 2, 4,
			3, -4, 3, 4,
			4, -3, 4, -2, 4, -1, 4, 0, 4, 1, 4, 2, 4, 3,
		)},
	} {
		t.Run("", func(it *testing.T) {
			var r recorder
			Circle(&r, image.Point{}, test.Radius, color.White)
			got := r.sorted()
			if len(test.Want) == 0 && len(got) == 0 {
				return
			}
			if diff := cmp.Diff(test.Want, got); diff != "" {
				it.Errorf("radius %d mismatch (-want +got):\n%s", test.Radius, diff)
			}
		})
	}
}

func TestCircleOffset(t *testing.T) {
	var r recorder
	Circle(&r, image.Pt(20, 4), 2, color.White)
	for _, p := range r.points {
		if d := p.Sub(image.Pt(20, 4)); abs(d.X) > 1 || abs(d.Y) > 1 {
			t.Errorf("point %s too far from center", p)
		}
	}
}

func TestRectangle(t *testing.T) {
	var r recorder
	Rectangle(&r, image.Rect(1, 1, 4, 4), color.White)
	want := pts(1, 1, 1, 2, 1, 3, 2, 1, 2, 3, 3, 1, 3, 2, 3, 3)
	if diff := cmp.Diff(want, r.sorted()); diff != "" {
		t.Errorf("outline mismatch (-want +got):\n%s", diff)
	}

	var empty recorder
	Rectangle(&empty, image.Rect(1, 1, 1, 4), color.White)
	if len(empty.points) != 0 {
		t.Errorf("expected nothing for zero width, got %v", empty.points)
	}
}

func TestBox(t *testing.T) {
	var r recorder
	Box(&r, image.Rect(0, 0, 3, 2), color.White)
	want := pts(0, 0, 0, 1, 1, 0, 1, 1, 2, 0, 2, 1)
	if diff := cmp.Diff(want, r.sorted()); diff != "" {
		t.Errorf("box mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundedZeroRadius(t *testing.T) {
	rect := image.Rect(2, 1, 7, 5)

	var plain, rounded recorder
	Rectangle(&plain, rect, color.White)
	RoundedRectangle(&rounded, rect, 0, color.White)
	if diff := cmp.Diff(plain.sorted(), rounded.sorted()); diff != "" {
		t.Errorf("outline mismatch (-want +got):\n%s", diff)
	}

	var box, roundedBox recorder
	Box(&box, rect, color.White)
	RoundedBox(&roundedBox, rect, 0, color.White)
	if diff := cmp.Diff(box.sorted(), roundedBox.sorted()); diff != "" {
		t.Errorf("box mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundedBoxCorners(t *testing.T) {
	var r recorder
	rect := image.Rect(0, 0, 10, 8)
	RoundedBox(&r, rect, 3, color.White)
	for _, p := range r.points {
		if !p.In(rect) {
			t.Errorf("point %s outside of %s", p, rect)
		}
	}
	if r.seen[image.Pt(0, 0)] || r.seen[image.Pt(9, 0)] {
		t.Errorf("expected top corners to be cut")
	}
	if !r.seen[image.Pt(5, 4)] {
		t.Errorf("expected center to be filled")
	}
}

func TestDraw(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src := image.NewUniform(color.RGBA{R: 0xff, A: 0xff})
	Draw(dst, image.Rect(1, 1, 3, 3), src, image.Point{}, Src)
	if v := dst.RGBAAt(2, 2); v.R != 0xff {
		t.Errorf("expected red at (2,2), got %v", v)
	}
	if v := dst.RGBAAt(0, 0); v.R != 0 {
		t.Errorf("expected black at (0,0), got %v", v)
	}
}
