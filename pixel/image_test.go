package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestCRGB16Image(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewCRGB16Image(size.X, size.Y)
	}, CRGB16Model)
}

func testImage(t *testing.T, f func(image.Point) Image, model color.Model) {
	t.Helper()
	testCases := []image.Point{
		image.Point{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(256, 32),
		image.Pt(256, 64),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := f(test)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != model {
				it.Errorf("expected color model %T, got %T", model, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("in-bounds-matching-model", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := model.Convert(testRandomColor())
						i.Set(x, y, c)
						if i.At(x, y) != c {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, i.At(x, y), c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -test.Y; y < test.Y*2; y++ {
					for x := -test.X; x < test.X*2; x++ {
						i.Set(x, y, testRandomColor())
						if x < 0 || y < 0 {
							if v := i.At(x, y); v != color.Transparent {
								itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
								return
							}
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				c := testRandomColor()
				i.Fill(c)
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.ColorModel().Convert(c); i.At(x, y) != v {
						itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
						return
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := rgbModel(i.At(x, y)); v != Black {
						itt.Fatalf("pixel (%d,%d) is not black", x, y)
					}
				}
			})
		})
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}

func TestBitmap(t *testing.T) {
	b := NewBitmap(3, 2)
	if v := b.Bounds().Size(); !v.Eq(image.Pt(3, 2)) {
		t.Fatalf("expected size (3,2), got %s", v)
	}
	b.SetValue(2, 1, 7)
	b.SetValue(3, 0, 9)
	b.SetValue(-1, 0, 9)
	if v := b.Value(2, 1); v != 7 {
		t.Errorf("expected value 7 at (2,1), got %d", v)
	}
	if v := b.Pix[5]; v != 7 {
		t.Errorf("expected row major storage, got %v", b.Pix)
	}
	if v := b.Value(3, 0); v != 0 {
		t.Errorf("expected 0 outside of the bitmap, got %d", v)
	}
	for _, v := range b.Pix[:5] {
		if v != 0 {
			t.Fatalf("out of bounds write leaked into %v", b.Pix)
		}
	}
	b.Fill(3)
	if v := b.Value(0, 0); v != 3 {
		t.Errorf("expected fill value 3, got %d", v)
	}
	if b := NewBitmap(-1, 4); len(b.Pix) != 0 {
		t.Errorf("expected empty bitmap, got %d values", len(b.Pix))
	}
}

func TestPalette(t *testing.T) {
	p := NewPalette(color.Palette{color.Black, color.RGBA{R: 0xff, A: 0xff}})
	if c, ok := p.At(1); !ok || c != Red {
		t.Errorf("expected red, got %s (%t)", c, ok)
	}
	if _, ok := p.At(2); ok {
		t.Errorf("expected index 2 to be out of range")
	}
}

func TestFromPaletted(t *testing.T) {
	img := image.NewPaletted(image.Rect(10, 10, 12, 11), color.Palette{
		color.Black,
		color.RGBA{B: 0xff, A: 0xff},
	})
	img.SetColorIndex(11, 10, 1)

	b, p := FromPaletted(img)
	if b.Width != 2 || b.Height != 1 {
		t.Fatalf("expected 2x1 bitmap, got %dx%d", b.Width, b.Height)
	}
	if v := b.Value(1, 0); v != 1 {
		t.Fatalf("expected index 1, got %d", v)
	}
	if c, _ := p.At(b.Value(1, 0)); c != Blue {
		t.Fatalf("expected blue, got %s", c)
	}
}

func TestFromImage565Swapped(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 0xf8, A: 0xff})
	img.Set(1, 0, color.RGBA{G: 0xfc, A: 0xff})

	b := FromImage565Swapped(img)
	if v := b.Value(0, 0); v != 0x00f8 {
		t.Errorf("expected %#04x, got %#04x", 0x00f8, v)
	}
	if v := RGB565Swapped(b.Value(1, 0)); v != (RGB{G: 0xfc}) {
		t.Errorf("expected pure green, got %s", v)
	}
}
