package main

import (
	"errors"
	"image"
	"image/gif"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"

	"github.com/BeatGlow/bling/draw"
	"github.com/BeatGlow/bling/glyph"
	"github.com/BeatGlow/bling/pixel"
)

func loadTrueType(name string, size float64) (*glyph.Font, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return glyph.ParseTrueType(data, size)
}

// loadBMP reads a BMP image. Paletted images keep their palette, others are
// converted to swapped 5-6-5 values and have no palette.
func loadBMP(name string) (*pixel.Bitmap, pixel.Palette, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, nil, err
	}
	if p, ok := img.(*image.Paletted); ok {
		b, palette := pixel.FromPaletted(p)
		return b, palette, nil
	}
	return pixel.FromImage565Swapped(img), nil, nil
}

// gifFrame is a fully composed animation frame.
type gifFrame struct {
	img   *pixel.Bitmap
	delay time.Duration
}

// loadGIF decodes all frames of an animated GIF, composed onto the previous
// frames as the disposal methods require.
func loadGIF(name string) ([]gifFrame, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return nil, err
	}

	var (
		canvas = image.NewRGBA(image.Rect(0, 0, g.Config.Width, g.Config.Height))
		frames = make([]gifFrame, 0, len(g.Image))
	)
	for i, frame := range g.Image {
		var previous *image.RGBA
		if g.Disposal != nil && g.Disposal[i] == gif.DisposalPrevious {
			previous = image.NewRGBA(canvas.Rect)
			copy(previous.Pix, canvas.Pix)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		frames = append(frames, gifFrame{
			img:   pixel.FromImage565Swapped(canvas),
			delay: time.Duration(g.Delay[i]) * 10 * time.Millisecond,
		})

		if g.Disposal != nil {
			switch g.Disposal[i] {
			case gif.DisposalBackground:
				draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
			case gif.DisposalPrevious:
				canvas = previous
			}
		}
	}
	return frames, nil
}

// skip logs and ignores missing assets.
func skip(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("skipping missing asset %s", name)
		return nil
	}
	return err
}

// gifs plays every GIF in the gifs directory, panning up and down over the
// top 22 rows.
func (m *demo) gifs() error {
	m.d.Fill(pixel.Black)
	if err := m.show(); err != nil {
		return err
	}

	names, _ := filepath.Glob(filepath.Join(m.assets, "gifs", "*.gif"))
	if len(names) == 0 {
		log.Printf("no GIFs in %s", filepath.Join(m.assets, "gifs"))
	}
	for _, name := range names {
		log.Printf("GIF %s", filepath.Base(name))
		frames, err := loadGIF(name)
		if err != nil {
			log.Printf("skipping GIF %s: %v", name, err)
			continue
		}

		p, dir := 0, 1
		for f := 0; f <= len(frames)*m.rounds; f++ {
			start := time.Now()
			frame := frames[f%len(frames)]
			m.d.Fill(pixel.Black)
			m.d.BitmapTile(frame.img, nil, 0, -p, 0, 0, 40, 22)
			if err = m.show(); err != nil {
				return err
			}

			p += dir
			if p == 11 || p == 0 {
				dir = -dir
			}
			if err = m.sleep(frame.delay - time.Since(start)); err != nil {
				return err
			}
		}
	}
	return nil
}

// images shows static and tiled BMP images.
func (m *demo) images() error {
	bmps := filepath.Join(m.assets, "bmps")

	log.Println("sparkles from tile")
	if img, pal, err := loadBMP(filepath.Join(bmps, "wow.bmp")); err != nil {
		if err = skip("wow.bmp", err); err != nil {
			return err
		}
	} else {
		for q := 0; q < 5; q++ {
			for f := 0; f < 8; f++ {
				m.d.Fill(pixel.Black)
				m.d.BitmapTile(img, pal, 0, -f, 20*f, 0, 40, 32)
				if err = m.showAndSleep(50 * time.Millisecond); err != nil {
					return err
				}
			}
		}
	}

	log.Println("logo")
	if img, pal, err := loadBMP(filepath.Join(bmps, "twitchlogo.bmp")); err != nil {
		if err = skip("twitchlogo.bmp", err); err != nil {
			return err
		}
	} else {
		r := float64(img.Height) * 2 / 3
		for i := 0; i < m.rounds; i++ {
			if err = orbit(r, func(x, y int) error {
				m.d.Fill(pixel.Black)
				m.d.Bitmap(img, pal, x+10, y)
				return m.show()
			}); err != nil {
				return err
			}
		}
	}

	log.Println("catJAM from tiled bmp")
	if img, pal, err := loadBMP(filepath.Join(bmps, "catjamtiles.bmp")); err != nil {
		if err = skip("catjamtiles.bmp", err); err != nil {
			return err
		}
	} else {
		for d := 0; d < 60; d += 2 {
			m.d.Fill(pixel.Black)
			m.d.BitmapTile(img, pal, 60-d, 0, 0, 0, 15, 15)
			if err = m.showAndSleep(10 * time.Millisecond); err != nil {
				return err
			}
		}
		for q := 0; q < 5; q++ {
			for f := 0; f < 13; f++ {
				m.d.Fill(pixel.Black)
				m.d.BitmapTile(img, pal, 0, 0, 16*f, 0, 16, 8)
				if err = m.showAndSleep(50 * time.Millisecond); err != nil {
					return err
				}
			}
		}
	}

	for _, anim := range []struct {
		name         string
		y, w, frames int
	}{
		{"Montage5b.bmp", -3, 43, 255},
		{"YAM.bmp", -9, 32, 211},
	} {
		log.Printf("animation from %s", anim.name)
		img, pal, err := loadBMP(filepath.Join(bmps, anim.name))
		if err != nil {
			if err = skip(anim.name, err); err != nil {
				return err
			}
			continue
		}
		start := time.Now()
		frames := min(anim.frames, img.Width/anim.w)
		for f := 0; f < frames; f++ {
			m.d.Fill(pixel.Black)
			m.d.BitmapTile(img, pal, 0, anim.y, anim.w*f, 0, anim.w, 32)
			if err = m.show(); err != nil {
				return err
			}
		}
		log.Printf("animation %s took %s", anim.name, time.Since(start))
	}
	return nil
}
