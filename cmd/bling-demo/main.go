// Command bling-demo shows off the BLING drawing functions: shapes, fonts,
// images and animated GIFs.
//
// THIS DEMO HAS LOTS OF FLASHING LIGHTS. If you are affected by such things
// use caution.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/bling"
	"github.com/BeatGlow/bling/conn"
	"github.com/BeatGlow/bling/framebuffer"
	"github.com/BeatGlow/bling/terminal"
	"github.com/BeatGlow/bling/window"
	"github.com/BeatGlow/bling/ws2812"
)

func main() {
	sinkFlag := flag.String("sink", "term", "Output sink: term, window, fb, spi or spidev")
	rotateFlag := flag.String("rotate", "180", "Display rotation")
	brightnessFlag := flag.Float64("brightness", 0.08, "LED brightness, BLING is very bright")
	spiFlag := flag.String("spi", "", "SPI port for the spi sink (default: first available)")
	spiBusFlag := flag.Int("spi-bus", 0, "SPI bus for the spidev sink")
	spiDeviceFlag := flag.Int("spi-dev", 0, "SPI device for the spidev sink")
	powerFlag := flag.String("power", "", "Matrix power enable GPIO pin")
	fbFlag := flag.String("fb", "/dev/fb0", "Framebuffer device for the fb sink")
	assetsFlag := flag.String("assets", "assets", "Directory holding the fonts, bmps and gifs directories")
	demoFlag := flag.String("demo", strings.Join(defaultDemos, ","), "Comma separated list of demos, one of "+strings.Join(allDemos(), ", "))
	roundsFlag := flag.Int("rounds", 2, "Number of rounds for repeating demos")
	loopFlag := flag.Bool("loop", false, "Repeat the demos until interrupted")
	flag.Parse()

	var rotation bling.Rotation
	switch *rotateFlag {
	case "", "no", "0":
		rotation = bling.NoRotation
	case "90", "right", "cw":
		rotation = bling.Rotate90
	case "180", "flip":
		rotation = bling.Rotate180
	case "270", "left", "ccw":
		rotation = bling.Rotate270
	default:
		fatal(fmt.Errorf("invalid rotation %q specified", *rotateFlag))
	}
	log.Printf("using rotation: %s", rotation)

	demos := strings.Split(*demoFlag, ",")
	for _, name := range demos {
		if _, ok := demoFuncs[name]; !ok {
			fatal(fmt.Errorf("unknown demo %q", name))
		}
	}

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	var power gpio.PinOut
	if *powerFlag != "" {
		if power = gpioreg.ByName(*powerFlag); power == nil {
			fatal(fmt.Errorf("unknown power pin %q", *powerFlag))
		}
	}
	opts := &ws2812.Opts{
		NumPixels:  bling.DefaultWidth * bling.DefaultHeight,
		Brightness: *brightnessFlag,
		Power:      power,
	}

	var (
		sink    bling.Sink
		win     *window.Dev
		cleanup = func() error { return nil }
		err     error
	)
	switch *sinkFlag {
	case "term":
		sink, err = terminal.New(&terminal.Opts{Width: bling.DefaultWidth})
	case "window":
		win, err = window.New(nil)
		sink = win
	case "fb":
		sink, err = framebuffer.Open(*fbFlag, nil)
	case "spi":
		var port spi.PortCloser
		if port, err = spireg.Open(*spiFlag); err == nil {
			cleanup = port.Close
			if sink, err = ws2812.NewSPI(port, opts); err != nil {
				_ = port.Close()
			}
		}
	case "spidev":
		var c *conn.SPI
		if c, err = conn.Open(&conn.SPIConfig{
			Bus:     *spiBusFlag,
			Device:  *spiDeviceFlag,
			Mode:    conn.SPIMode0,
			SpeedHz: uint32(ws2812.Speed / physic.Hertz),
		}); err == nil {
			cleanup = c.Close
			if sink, err = ws2812.New(c, opts); err != nil {
				_ = c.Close()
			}
		}
	default:
		err = fmt.Errorf("unsupported sink %q", *sinkFlag)
	}
	if err != nil {
		fatal(err)
	}
	log.Printf("using sink: %s", sink)

	d, err := bling.New(sink, &bling.Config{
		Width:    bling.DefaultWidth,
		Height:   bling.DefaultHeight,
		Rotation: rotation,
	})
	if err != nil {
		fatal(err)
	}
	log.Printf("using display: %s", d)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	m, err := newDemo(ctx, d, *assetsFlag, *roundsFlag)
	if err != nil {
		fatal(err)
	}
	run := func() error {
		for {
			for _, name := range demos {
				log.Printf("demo %s", name)
				if err := demoFuncs[name](m); err != nil {
					return err
				}
			}
			if !*loopFlag {
				return nil
			}
		}
	}

	log.Println("hit control-c to stop...")
	if win != nil {
		// The window has to run on the main goroutine.
		errs := make(chan error, 1)
		go func() {
			errs <- run()
			_ = win.Halt()
		}()
		if err = win.Run(); err != nil {
			fatal(err)
		}
		cancel()
		err = <-errs
	} else {
		err = run()
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fatal(err)
	}

	if err = d.Clear(); err != nil {
		log.Printf("clear failed: %v", err)
	}
	if err = d.Close(); err != nil {
		log.Printf("close failed: %v", err)
	}
	if err = cleanup(); err != nil {
		log.Printf("cleanup failed: %v", err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
	os.Exit(1)
}
