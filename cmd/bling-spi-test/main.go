// Command bling-spi-test lights a WS2812 test pattern on a SPI bus.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	blingconn "github.com/BeatGlow/bling/conn"
	"github.com/BeatGlow/bling/pixel"
	"github.com/BeatGlow/bling/ws2812"
)

func main() {
	portFlag := flag.String("port", "", "SPI port name (default: first available)")
	spidevFlag := flag.Bool("spidev", false, "Use the spidev bus directly instead of periph")
	busFlag := flag.Int("bus", 0, "SPI bus, with -spidev")
	deviceFlag := flag.Int("device", 0, "SPI device, with -spidev")
	pixelsFlag := flag.Int("pixels", ws2812.DefaultOpts.NumPixels, "Number of LEDs")
	brightnessFlag := flag.Float64("brightness", 0.08, "LED brightness")
	holdFlag := flag.Duration("hold", 2*time.Second, "Time to show each pattern")
	flag.Parse()

	var (
		c        conn.Conn
		closeBus func() error
	)
	if *spidevFlag {
		bus, err := blingconn.Open(&blingconn.SPIConfig{
			Bus:     *busFlag,
			Device:  *deviceFlag,
			Mode:    blingconn.SPIMode0,
			SpeedHz: uint32(ws2812.Speed / physic.Hertz),
		})
		if err != nil {
			log.Fatalln("open failed:", err)
		}
		c, closeBus = bus, bus.Close
	} else {
		if _, err := host.Init(); err != nil {
			log.Fatalln("host init failed:", err)
		}
		port, err := spireg.Open(*portFlag)
		if err != nil {
			log.Fatalln("open failed:", err)
		}
		if c, err = port.Connect(ws2812.Speed, spi.Mode0, 8); err != nil {
			_ = port.Close()
			log.Fatalln("connect failed:", err)
		}
		closeBus = port.Close
	}
	fmt.Println("connected using", c)

	d, err := ws2812.New(c, &ws2812.Opts{
		NumPixels:  *pixelsFlag,
		Brightness: *brightnessFlag,
	})
	if err != nil {
		log.Fatalln("ws2812 failed:", err)
	}

	frame := make([]byte, *pixelsFlag*3)
	for _, col := range []pixel.RGB{pixel.Red, pixel.Green, pixel.Blue, pixel.White} {
		fmt.Println("showing", col)
		for i := 0; i < *pixelsFlag; i++ {
			frame[i*3+0], frame[i*3+1], frame[i*3+2] = col.R, col.G, col.B
		}
		if _, err = d.Write(frame); err != nil {
			log.Fatalln("write failed:", err)
		}
		time.Sleep(*holdFlag)
	}

	fmt.Println("showing color wheel")
	for i := 0; i < *pixelsFlag; i++ {
		col := pixel.Wheel(uint8(i * 256 / *pixelsFlag))
		frame[i*3+0], frame[i*3+1], frame[i*3+2] = col.R, col.G, col.B
	}
	if _, err = d.Write(frame); err != nil {
		log.Fatalln("write failed:", err)
	}
	time.Sleep(*holdFlag)

	if err = d.Halt(); err != nil {
		log.Fatalln("halt failed:", err)
	}
	if err = closeBus(); err != nil {
		log.Fatalln("close failed:", err)
	}
}
