package main

import (
	"context"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/BeatGlow/bling"
	"github.com/BeatGlow/bling/pixel"
)

func writeFile(t *testing.T, name string, encode func(*os.File) error) {
	t.Helper()
	f, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	if err = encode(f); err != nil {
		t.Fatal(err)
	}
	if err = f.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadBMP(t *testing.T) {
	dir := t.TempDir()

	paletted := image.NewPaletted(image.Rect(0, 0, 2, 1), color.Palette{color.Black, color.RGBA{R: 0xff, A: 0xff}})
	paletted.SetColorIndex(1, 0, 1)
	writeFile(t, filepath.Join(dir, "paletted.bmp"), func(f *os.File) error { return bmp.Encode(f, paletted) })

	img, pal, err := loadBMP(filepath.Join(dir, "paletted.bmp"))
	if err != nil {
		t.Fatal(err)
	}
	if pal == nil {
		t.Fatal("expected a palette for a paletted BMP")
	}
	if c, _ := pal.At(img.Value(1, 0)); c != pixel.Red {
		t.Errorf("expected red, got %s", c)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, 2, 1))
	rgba.Set(0, 0, color.RGBA{G: 0xfc, A: 0xff})
	writeFile(t, filepath.Join(dir, "rgba.bmp"), func(f *os.File) error { return bmp.Encode(f, rgba) })

	img, pal, err = loadBMP(filepath.Join(dir, "rgba.bmp"))
	if err != nil {
		t.Fatal(err)
	}
	if pal != nil {
		t.Fatal("expected no palette for a true color BMP")
	}
	if c := pixel.RGB565Swapped(img.Value(0, 0)); c != (pixel.RGB{G: 0xfc}) {
		t.Errorf("expected green, got %s", c)
	}

	if _, _, err = loadBMP(filepath.Join(dir, "missing.bmp")); skip("missing.bmp", err) != nil {
		t.Errorf("expected missing asset to be skipped, got %v", err)
	}
}

func TestLoadGIF(t *testing.T) {
	var (
		name    = filepath.Join(t.TempDir(), "anim.gif")
		palette = color.Palette{color.Black, color.RGBA{B: 0xff, A: 0xff}}
		first   = image.NewPaletted(image.Rect(0, 0, 2, 2), palette)
		second  = image.NewPaletted(image.Rect(1, 1, 2, 2), palette)
	)
	first.SetColorIndex(0, 0, 1)
	second.SetColorIndex(1, 1, 1)
	writeFile(t, name, func(f *os.File) error {
		return gif.EncodeAll(f, &gif.GIF{
			Image:    []*image.Paletted{first, second},
			Delay:    []int{5, 10},
			Disposal: []byte{gif.DisposalNone, gif.DisposalNone},
			Config:   image.Config{ColorModel: palette, Width: 2, Height: 2},
		})
	})

	frames, err := loadGIF(name)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if d := frames[1].delay.Milliseconds(); d != 100 {
		t.Errorf("expected 100ms delay, got %dms", d)
	}
	// The second frame only covers (1,1), the first frame stays visible.
	img := frames[1].img
	for _, p := range []image.Point{{0, 0}, {1, 1}} {
		if c := pixel.RGB565Swapped(img.Value(p.X, p.Y)); c != (pixel.RGB{B: 0xf8}) {
			t.Errorf("pixel %s: expected blue, got %s", p, c)
		}
	}
}

func TestDemos(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	d, err := bling.New(bling.Discard, nil)
	if err != nil {
		t.Fatal(err)
	}
	m, err := newDemo(ctx, d, t.TempDir(), 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"intro", "gif", "images", "fill"} {
		if err = demoFuncs[name](m); err != nil {
			t.Errorf("demo %s: %v", name, err)
		}
	}

	cancel()
	if err = m.intro(); err != context.Canceled {
		t.Errorf("expected interrupted demo, got %v", err)
	}
}
