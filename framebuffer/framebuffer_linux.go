package framebuffer

import (
	"encoding/binary"
	"fmt"
	"image"
	"os"
	"syscall"

	"github.com/BeatGlow/bling/internal/ioctl"
	"github.com/BeatGlow/bling/pixel"
)

const (
	// From <linux/fb.h>
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

type linuxFrameBuffer struct {
	f          *os.File
	fd         uintptr
	pix        []byte
	info       linuxFrameBufferInfo
	screenInfo linuxVarScreenInfo
}

// Open a Linux FrameBuffer device (fbdev) by name, typically /dev/fb[0..x].
// A nil opts selects DefaultOpts.
func Open(name string, opts *Opts) (*Sink, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	fb := &linuxFrameBuffer{
		f:  f,
		fd: f.Fd(),
	}
	if err = ioctl.Do(fb.fd, fbioGetFScreenInfo, &fb.info); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = ioctl.Do(fb.fd, fbioGetVScreenInfo, &fb.screenInfo); err != nil {
		_ = f.Close()
		return nil, err
	}

	// Map pixel buffer.
	if fb.pix, err = syscall.Mmap(int(fb.fd), 0, int(fb.info.SmemLen), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED); err != nil {
		_ = f.Close()
		return nil, err
	}

	img, err := fb.image()
	if err != nil {
		_ = fb.Close()
		return nil, err
	}

	s, err := NewSink(img, opts)
	if err != nil {
		_ = fb.Close()
		return nil, err
	}
	s.closer = fb
	return s, nil
}

// image wraps the mapped memory in an image matching the pixel format.
func (fb *linuxFrameBuffer) image() (pixel.Image, error) {
	var (
		info   = &fb.screenInfo
		buffer = pixel.Buffer{
			Rect:   image.Rect(0, 0, int(info.Xres), int(info.Yres)),
			Pix:    fb.pix[int(info.Yoffset)*int(fb.info.LineLength):],
			Stride: int(fb.info.LineLength),
		}
	)

	switch {
	case info.BitsPerPixel == 16 &&
		info.Red.Offset == 11 && info.Red.Length == 5 &&
		info.Green.Offset == 5 && info.Green.Length == 6 &&
		info.Blue.Offset == 0 && info.Blue.Length == 5:
		return &pixel.CRGB16Image{
			Buffer: buffer,
			Order:  binary.LittleEndian,
		}, nil

	case info.BitsPerPixel == 32 &&
		info.Red.Offset == 16 && info.Red.Length == 8 &&
		info.Green.Offset == 8 && info.Green.Length == 8 &&
		info.Blue.Offset == 0 && info.Blue.Length == 8:
		return &BGRA{Buffer: buffer}, nil
	}

	return nil, fmt.Errorf("%w: %d bits per pixel, red at %d", ErrFormat, info.BitsPerPixel, info.Red.Offset)
}

// Close the framebuffer device
func (fb *linuxFrameBuffer) Close() error {
	if err := syscall.Munmap(fb.pix); err != nil {
		return err
	}
	return fb.f.Close()
}

type linuxFrameBufferInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

// linuxBitField for the color
type linuxBitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// linuxVarScreenInfo contains device independent changeable information about a frame buffer device and a specific video mode.
type linuxVarScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha linuxBitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}
