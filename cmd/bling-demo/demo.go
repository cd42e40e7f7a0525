package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"math"
	"math/rand"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/image/font/gofont/goregular"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/BeatGlow/bling"
	"github.com/BeatGlow/bling/glyph"
	"github.com/BeatGlow/bling/pixel"
)

// Colors used by the font demos.
var (
	foreground = pixel.RGB{G: 225}
	background = pixel.RGB{G: 30, B: 30}
)

var defaultDemos = []string{"intro", "shapes", "gif", "images", "fonts"}

// demoFuncs are the demos by name. fill, timing and fontspeed show fill rates
// and may hurt your head if you are sensitive to flashing lights.
var demoFuncs = map[string]func(*demo) error{
	"intro":     (*demo).intro,
	"shapes":    (*demo).shapes,
	"gif":       (*demo).gifs,
	"images":    (*demo).images,
	"fonts":     (*demo).fonts,
	"fill":      (*demo).fill,
	"timing":    (*demo).timing,
	"fontspeed": (*demo).fontSpeed,
}

func allDemos() []string {
	names := make([]string, 0, len(demoFuncs))
	for name := range demoFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type demo struct {
	ctx    context.Context
	d      *bling.Display
	assets string
	rounds int
	rand   *rand.Rand

	// small is the structured font for scrolling text, bin the binary 5x8 font.
	small glyph.Face
	bin   glyph.Face
	fonts []namedFace
}

type namedFace struct {
	name string
	face glyph.Face
}

func newDemo(ctx context.Context, d *bling.Display, assets string, rounds int) (*demo, error) {
	m := &demo{
		ctx:    ctx,
		d:      d,
		assets: assets,
		rounds: rounds,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		small:  glyph.StructuredFace(glyph.FromTinyfont(&proggy.TinySZ8pt7b)),
		bin:    glyph.BinaryFace(glyph.Font5x8),
	}

	if f, err := glyph.OpenBin(filepath.Join(assets, "fonts", "font5x8.bin")); err == nil {
		m.bin = glyph.BinaryFace(f)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	goRegular, err := glyph.ParseTrueType(goregular.TTF, 8)
	if err != nil {
		return nil, err
	}
	m.fonts = []namedFace{
		{"proggy TinySZ 8pt", m.small},
		{"basic 7x13", glyph.StructuredFace(glyph.Basic7x13())},
		{"Go regular 8pt", glyph.StructuredFace(goRegular)},
	}

	// Any TrueType fonts in the assets are rendered at 8 points.
	names, _ := filepath.Glob(filepath.Join(assets, "fonts", "*.ttf"))
	for _, name := range names {
		f, err := loadTrueType(name, 8)
		if err != nil {
			log.Printf("skipping font %s: %v", name, err)
			continue
		}
		m.fonts = append(m.fonts, namedFace{filepath.Base(name), glyph.StructuredFace(f)})
	}
	return m, nil
}

// show flushes the display, unless the demo was interrupted.
func (m *demo) show() error {
	if err := m.ctx.Err(); err != nil {
		return err
	}
	return m.d.Show()
}

func (m *demo) sleep(d time.Duration) error {
	if d <= 0 {
		return m.ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-m.ctx.Done():
		return m.ctx.Err()
	case <-t.C:
		return nil
	}
}

func (m *demo) showAndSleep(d time.Duration) error {
	if err := m.show(); err != nil {
		return err
	}
	return m.sleep(d)
}

// orbit calls draw with positions on a circle of radius r, every 5 degrees.
func orbit(r float64, draw func(x, y int) error) error {
	for deg := 0; deg < 360; deg += 5 {
		rad := float64(deg) * math.Pi / 180
		if err := draw(int(r*math.Sin(rad)), int(r*math.Cos(rad))); err != nil {
			return err
		}
	}
	return nil
}

// intro is the title screen, every demo needs one.
func (m *demo) intro() error {
	const message = "Bling Demo"
	maxW := 8 * len(message)
	for i := 0; i < 2*maxW; i++ {
		m.d.Fill(pixel.Wheel(uint8(i * 5)))
		if err := m.d.Text(message, m.bin, maxW-i, 0, pixel.Black, nil); err != nil {
			return err
		}
		if err := m.show(); err != nil {
			return err
		}
	}

	// Turn off individual pixels.
	for i, u := 0, 0; i < m.d.NumPixels()*2; i++ {
		m.d.SetPixel(m.rand.Intn(m.d.Width()), m.rand.Intn(m.d.Height()), pixel.Black)
		if u > 5 {
			u = 0
			if err := m.show(); err != nil {
				return err
			}
		}
		u++
	}
	return nil
}

func (m *demo) shapes() error {
	var (
		w = m.d.Width() - 1
		h = m.d.Height() - 1
	)
	m.d.Fill(pixel.Black)
	for _, l := range []struct {
		x0, y0, x1, y1 int
		c              pixel.RGB
	}{
		{0, 0, w, h, pixel.Red},
		{0, 0, w, 0, pixel.Green},
		{w, 0, w, h, pixel.Blue},
		{w, h, 0, h, pixel.Hex(0xff00ff)},
		{0, h, 0, 0, pixel.Hex(0x00ffff)},
		{0, h, w, 0, pixel.White},
	} {
		m.d.Line(l.x0, l.y0, l.x1, l.y1, l.c)
		if err := m.showAndSleep(500 * time.Millisecond); err != nil {
			return err
		}
	}

	for j := 0; j < 3; j++ {
		if err := m.d.Clear(); err != nil {
			return err
		}
		for i := 0; i < 5; i++ {
			m.d.Line(m.rand.Intn(w+1), m.rand.Intn(h+1), m.rand.Intn(w+1), m.rand.Intn(h+1), pixel.Wheel(uint8(m.rand.Intn(256))))
			if err := m.showAndSleep(200 * time.Millisecond); err != nil {
				return err
			}
		}
	}

	if err := m.scrollShapes(func(x, y, i, _ int) {
		m.d.Circle(x, y, i, pixel.Wheel(uint8(i*35)))
	}); err != nil {
		return err
	}
	if err := m.scrollShapes(func(x, y, i, j int) {
		m.d.Rect(x-i/2, y-i/2, i, i, pixel.Wheel(uint8(j*35)), false)
	}); err != nil {
		return err
	}
	return m.scrollShapes(func(x, y, i, j int) {
		m.d.Rect(x-i/2, y-i/2, i, i, pixel.Wheel(uint8(j*35)), true)
	})
}

// scrollShapes draws growing shapes at random positions while a message
// scrolls over them, until the message has left the display.
func (m *demo) scrollShapes(shape func(x, y, i, j int)) error {
	const message = "Bling!"
	if err := m.d.Clear(); err != nil {
		return err
	}

	w, _ := m.small.Size(message)
	xt := -w
	for j, done := 0, false; !done; {
		x, y := m.rand.Intn(m.d.Width()), m.rand.Intn(m.d.Height())
		for i := 1; i < 15; i++ {
			m.d.Fill(pixel.Black)
			shape(x, y, i, j)
			if j > 3 {
				if err := m.d.Text(message, m.small, xt, 0, pixel.Green, nil); err != nil {
					return err
				}
				xt++
				done = xt > m.d.Width()
			}
			if err := m.showAndSleep(10 * time.Millisecond); err != nil {
				return err
			}
			j++
		}
	}
	return nil
}

func (m *demo) fonts() error {
	for _, f := range m.fonts {
		_, height := f.face.Size("Bling")
		if err := m.orbitText(f.name, f.face, float64(height)*2/3); err != nil {
			return err
		}
	}
	return m.orbitText("font5x8.bin", m.bin, 16*2/3.0)
}

// orbitText shows "Bling" in place, then moving on a circle.
func (m *demo) orbitText(name string, face glyph.Face, r float64) error {
	log.Printf("font %s", name)
	m.d.Fill(pixel.Black)
	if err := m.d.Text("Bling", face, 0, 0, foreground, &bling.TextOpts{Background: &background}); err != nil {
		return err
	}
	if err := m.showAndSleep(time.Second); err != nil {
		return err
	}

	start := time.Now()
	for i := 0; i < m.rounds; i++ {
		if err := orbit(r, func(x, y int) error {
			m.d.Fill(pixel.Black)
			if err := m.d.Text("Bling", face, x, y, foreground, &bling.TextOpts{Background: &background}); err != nil {
				return err
			}
			return m.show()
		}); err != nil {
			return err
		}
	}
	log.Printf("text circle %s took %s", name, time.Since(start))
	return nil
}

// fill measures fill rates, directly and through a bitmap.
func (m *demo) fill() error {
	colors := []pixel.RGB{pixel.Black, pixel.Red, pixel.Green, pixel.Blue}
	rounds := m.rounds * 10

	start := time.Now()
	for i := 0; i < rounds; i++ {
		for _, c := range colors {
			m.d.Fill(c)
			if err := m.show(); err != nil {
				return err
			}
		}
	}
	log.Printf("color fill (%d rounds) took %s", rounds, time.Since(start))

	var (
		img     = pixel.NewBitmap(m.d.Width(), m.d.Height())
		palette = pixel.Palette(colors)
	)
	start = time.Now()
	for i := 0; i < rounds; i++ {
		for j := range colors {
			img.Fill(uint16(j))
			m.d.Bitmap(img, palette, 0, 0)
			if err := m.show(); err != nil {
				return err
			}
		}
	}
	log.Printf("color fill through bitmap (%d rounds) took %s", rounds, time.Since(start))
	return nil
}

// fontSpeed measures text rendering with both font kinds.
func (m *demo) fontSpeed() error {
	rounds := m.rounds * 50
	for _, f := range []namedFace{{"structured", m.small}, {"binary", m.bin}} {
		start := time.Now()
		for i := 0; i < rounds; i++ {
			m.d.Fill(pixel.Black)
			if err := m.show(); err != nil {
				return err
			}
			if err := m.d.Text("Bling", f.face, 0, 0, foreground, &bling.TextOpts{Background: &background, Show: true}); err != nil {
				return err
			}
		}
		log.Printf("%s font (%d rounds) took %s", f.name, rounds, time.Since(start))
	}
	return m.d.Clear()
}

// timing compares the line fast paths with per pixel drawing for every
// rotation. The top left pixel is red.
func (m *demo) timing() error {
	initial := m.d.Rotation()
	defer func() {
		_ = m.d.SetRotation(initial)
	}()

	const rounds = 50
	for _, r := range []bling.Rotation{bling.NoRotation, bling.Rotate90, bling.Rotate180, bling.Rotate270} {
		if err := m.d.SetRotation(r); err != nil {
			return err
		}

		w, h := m.d.Width(), m.d.Height()
		log.Printf("horizontal lines, rotation %s", r)
		points := make([][3]int, rounds)
		for i := range points {
			points[i] = [3]int{m.rand.Intn(w), m.rand.Intn(h), 1 + m.rand.Intn(w-1)}
		}
		if err := m.timeLines(points, m.d.HLine, m.d.HLineDirect); err != nil {
			return err
		}

		log.Printf("vertical lines, rotation %s", r)
		for i := range points {
			points[i] = [3]int{m.rand.Intn(w), m.rand.Intn(h), 1 + m.rand.Intn(h-1)}
		}
		if err := m.timeLines(points, m.d.VLine, m.d.VLineDirect); err != nil {
			return err
		}
	}
	return nil
}

func (m *demo) timeLines(points [][3]int, fast, direct func(x, y, n int, c pixel.RGB)) error {
	if err := m.d.Clear(); err != nil {
		return err
	}
	start := time.Now()
	for _, p := range points {
		m.d.Fill(pixel.Black)
		direct(p[0], p[1], p[2], pixel.Green)
		m.d.SetPixel(0, 0, pixel.Red)
		if err := m.show(); err != nil {
			return err
		}
		fast(p[0], p[1], p[2], pixel.Blue)
		m.d.SetPixel(0, 0, pixel.Red)
		if err := m.show(); err != nil {
			return err
		}
	}
	log.Printf("lines with show (%d rounds) took %s", len(points), time.Since(start))

	if err := m.d.Clear(); err != nil {
		return err
	}
	start = time.Now()
	for _, p := range points {
		fast(p[0], p[1], p[2], pixel.Green)
	}
	log.Printf("lines (%d rounds) took %s", len(points), time.Since(start))

	start = time.Now()
	for _, p := range points {
		direct(p[0], p[1], p[2], pixel.Green)
	}
	log.Printf("lines direct (%d rounds) took %s", len(points), time.Since(start))
	return nil
}
