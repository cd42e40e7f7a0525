// Package ws2812 drives a chain of WS2812 (NeoPixel) LEDs over a SPI bus.
//
// Only MOSI is used. Each data bit is sent as three SPI bits, 110 for a one
// and 100 for a zero, so the bus must run at three times the 800kHz LED data
// rate.
package ws2812

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Speed is the SPI clock needed for the NRZ encoding.
const Speed = 2400 * physic.KiloHertz

// Number of zero bytes sent after the pixel data, low for 80µs at Speed so
// the LEDs latch the frame.
const latchBytes = 24

// Errors
var (
	ErrLength = errors.New("ws2812: invalid RGB stream length")
	ErrPixels = errors.New("ws2812: invalid number of pixels")
)

// Opts defines the options for the device.
type Opts struct {
	// NumPixels is the number of LEDs in the chain.
	NumPixels int

	// Brightness scales every channel, in the range [0, 1].
	Brightness float64

	// Power is an optional pin that switches the LED supply. It is driven
	// high by New and low by Halt.
	Power gpio.PinOut
}

// DefaultOpts is a 40x8 BLING matrix at full brightness.
var DefaultOpts = Opts{
	NumPixels:  320,
	Brightness: 1,
}

// Dev is a handle to the LED chain.
type Dev struct {
	c     conn.Conn
	opts  Opts
	level [256]byte
	buf   []byte
}

// NewSPI returns a Dev connected over SPI. Only the MOSI line is used.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	c, err := p.Connect(Speed, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ws2812: %v", err)
	}
	return New(c, opts)
}

// New returns a Dev writing to c, which must be clocked at Speed. A nil opts
// selects DefaultOpts.
func New(c conn.Conn, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.NumPixels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrPixels, opts.NumPixels)
	}

	d := &Dev{
		c:    c,
		opts: *opts,
		buf:  make([]byte, opts.NumPixels*3*3+latchBytes),
	}
	d.SetBrightness(opts.Brightness)

	if d.opts.Power != nil && d.opts.Power != gpio.INVALID {
		if err := d.opts.Power.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("ws2812: power on: %w", err)
		}
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("WS2812{%d pixels, %s}", d.opts.NumPixels, d.c)
}

// NumPixels is the length of the chain.
func (d *Dev) NumPixels() int {
	return d.opts.NumPixels
}

// Brightness returns the current brightness.
func (d *Dev) Brightness() float64 {
	return d.opts.Brightness
}

// SetBrightness changes the scaling applied by subsequent writes. Values are
// clamped to [0, 1].
func (d *Dev) SetBrightness(v float64) {
	switch {
	case v < 0:
		v = 0
	case v > 1:
		v = 1
	}
	d.opts.Brightness = v
	for i := range d.level {
		d.level[i] = byte(float64(i)*v + 0.5)
	}
}

// Write accepts a stream of raw RGB pixels and sends it as a NRZ encoded
// stream. Pixels past NumPixels are ignored, missing pixels are sent black.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels)%3 != 0 {
		return 0, ErrLength
	}
	n := len(pixels)
	if limit := d.opts.NumPixels * 3; n > limit {
		n = limit
	}
	d.raster(pixels[:n])
	if err := d.c.Tx(d.buf, nil); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Halt turns all the LEDs off and switches the supply off.
func (d *Dev) Halt() error {
	if _, err := d.Write(nil); err != nil {
		return err
	}
	if d.opts.Power != nil && d.opts.Power != gpio.INVALID {
		if err := d.opts.Power.Out(gpio.Low); err != nil {
			return fmt.Errorf("ws2812: power off: %w", err)
		}
	}
	return nil
}

// raster converts RGB input into the GRB NRZ stream, scaled by brightness.
// The latch bytes at the end of buf are never written.
func (d *Dev) raster(in []byte) {
	out := d.buf[:d.opts.NumPixels*9]
	for i := 0; i < len(out)/9; i++ {
		var r, g, b byte
		if i*3+2 < len(in) {
			r, g, b = in[i*3], in[i*3+1], in[i*3+2]
		}
		put(out[i*9+0:], expandNRZ(d.level[g]))
		put(out[i*9+3:], expandNRZ(d.level[r]))
		put(out[i*9+6:], expandNRZ(d.level[b]))
	}
}

func put(out []byte, v uint32) {
	out[0] = byte(v >> 16)
	out[1] = byte(v >> 8)
	out[2] = byte(v)
}

// expandNRZ converts a 8 bit channel intensity into the encoded 24 bits.
func expandNRZ(b byte) uint32 {
	// The stream is 1x01x01x01x01x01x01x01x0 with the x bits being the bits
	// from b, most significant first.
	out := uint32(0x924924)
	out |= uint32(b&0x80) << (3*7 + 1 - 7)
	out |= uint32(b&0x40) << (3*6 + 1 - 6)
	out |= uint32(b&0x20) << (3*5 + 1 - 5)
	out |= uint32(b&0x10) << (3*4 + 1 - 4)
	out |= uint32(b&0x08) << (3*3 + 1 - 3)
	out |= uint32(b&0x04) << (3*2 + 1 - 2)
	out |= uint32(b&0x02) << (3*1 + 1 - 1)
	out |= uint32(b&0x01) << (3*0 + 1 - 0)
	return out
}

var _ conn.Resource = (*Dev)(nil)
