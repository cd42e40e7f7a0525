// Package conn implements a Linux spidev bus.
package conn

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"
	"unsafe"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/bling/internal/ioctl"
)

const spiDevPath = "/dev/spidev"

// Definitions from <spi/spidev.h>
const (
	spiCPHA = 0x01
	spiCPOL = 0x02
)

type SPIMode uint8

const (
	SPIMode0 SPIMode = (0 | 0)             //nolint:staticcheck
	SPIMode1 SPIMode = (0 | spiCPHA)       //nolint:staticcheck
	SPIMode2 SPIMode = (spiCPOL | 0)       //nolint:staticcheck
	SPIMode3 SPIMode = (spiCPOL | spiCPHA) //nolint:staticcheck
)

const (
	spiIOCMagic       = 0x6b // 'k'
	spiIOCMessage     = 0x6b00
	spiIOCMode        = 0x6b01
	spiIOCLSBFirst    = 0x6b02
	spiIOCBitsPerWord = 0x6b03
	spiIOCMaxSpeedHz  = 0x6b04
	spiIOCMode32      = 0x6b05
)

// spiIOCTransfer is struct spi_ioc_transfer.
type spiIOCTransfer struct {
	txBuf          uint64
	rxBuf          uint64
	length         uint32
	speedHz        uint32
	delayUsecs     uint16
	bitsPerWord    uint8
	csChange       uint8
	txNbits        uint8
	rxNbits        uint8
	wordDelayUsecs uint8
	pad            uint8
}

// ErrTxSize is returned if the read buffer doesn't match the write buffer.
var ErrTxSize = errors.New("conn: SPI read and write buffers differ in size")

// SPI implements the spidev interface.
type SPI struct {
	f           *os.File
	fd          uintptr
	name        string
	mode        SPIMode
	bitsPerWord uint8
	maxSpeedHz  uint32
	batchSize   int
}

// OpenSPI opens the numbered spi bus with the numbered device. The device often corresponds to the CS pin for that bus.
func OpenSPI(bus, device int) (*SPI, error) {
	spidev := fmt.Sprintf("%s%d.%d", spiDevPath, bus, device)
	f, err := os.OpenFile(spidev, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	c := &SPI{
		f:         f,
		fd:        f.Fd(),
		name:      spidev,
		batchSize: DefaultSPIConfig.BatchSize,
	}
	if err = ioctl.Do(c.fd, ioctl.Pointer(ioctl.Read, &c.mode, spiIOCMode), &c.mode); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = ioctl.Do(c.fd, ioctl.Pointer(ioctl.Read, &c.bitsPerWord, spiIOCBitsPerWord), &c.bitsPerWord); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = ioctl.Do(c.fd, ioctl.Pointer(ioctl.Read, &c.maxSpeedHz, spiIOCMaxSpeedHz), &c.maxSpeedHz); err != nil {
		_ = f.Close()
		return nil, err
	}

	return c, nil
}

func (c *SPI) Close() error {
	return c.f.Close()
}

func (c *SPI) String() string {
	return fmt.Sprintf("%s mode=%d bits per word=%d max speed=%dHz", c.name, c.mode, c.bitsPerWord, c.maxSpeedHz)
}

func (c *SPI) Mode() SPIMode {
	return c.mode
}

func (c *SPI) SetMode(mode SPIMode) error {
	mode &= 0x0f

	if err := ioctl.Do(c.fd, ioctl.Pointer(ioctl.Write, &mode, spiIOCMode), &mode); err != nil {
		return err
	}

	var test SPIMode
	if err := ioctl.Do(c.fd, ioctl.Pointer(ioctl.Read, &test, spiIOCMode), &test); err != nil {
		return err
	}

	if test != mode {
		return fmt.Errorf("conn: SPI attempted to set mode %#02x, but mode %#02x is in use", mode, test)
	}

	c.mode = mode
	return nil
}

func (c *SPI) BitsPerWord() uint8 {
	return c.bitsPerWord
}

func (c *SPI) SetBitsPerWord(bits uint8) error {
	if bits < 8 || bits > 32 {
		return fmt.Errorf("conn: SPI bits per word need to be 8 or more and 32 or less, got %d", bits)
	}

	if c.bitsPerWord != bits {
		if err := ioctl.Do(c.fd, ioctl.Pointer(ioctl.Write, &bits, spiIOCBitsPerWord), &bits); err != nil {
			return err
		}
		c.bitsPerWord = bits
	}

	return nil
}

func (c *SPI) MaxSpeed() physic.Frequency {
	return physic.Frequency(c.maxSpeedHz) * physic.Hertz
}

func (c *SPI) SetMaxSpeed(v int) error {
	if v <= 0 {
		return nil
	}

	u := uint32(v)
	if c.maxSpeedHz != u {
		if err := ioctl.Do(c.fd, ioctl.Pointer(ioctl.Write, &u, spiIOCMaxSpeedHz), &u); err != nil {
			return err
		}
		c.maxSpeedHz = u
	}

	return nil
}

// SetBatchSize limits the number of bytes sent per transfer. The spidev
// driver rejects transfers larger than its bufsiz module parameter.
func (c *SPI) SetBatchSize(n int) {
	if n > 0 {
		c.batchSize = n
	}
}

func (c *SPI) Read(b []byte) (n int, err error) {
	return c.f.Read(b)
}

// Write sends b, split in batches.
func (c *SPI) Write(b []byte) (n int, err error) {
	if len(b) > c.batchSize && debug {
		log.Printf("conn: write %d bytes of data in %d chunks", len(b), (len(b)+c.batchSize-1)/c.batchSize)
	}
	for len(b) > 0 {
		chunk := b
		if len(chunk) > c.batchSize {
			chunk = chunk[:c.batchSize]
		}
		var m int
		if m, err = c.f.Write(chunk); err != nil {
			return n + m, err
		}
		n += m
		b = b[len(chunk):]
	}
	return n, nil
}

// Tx does a full duplex transfer. r may be nil, otherwise it must be as long
// as w.
func (c *SPI) Tx(w, r []byte) error {
	if len(r) != 0 && len(r) != len(w) {
		return ErrTxSize
	}
	cmd := ioctl.Encode(ioctl.Write, uint16(unsafe.Sizeof(spiIOCTransfer{})), spiIOCMessage)
	for off := 0; off < len(w); off += c.batchSize {
		end := off + c.batchSize
		if end > len(w) {
			end = len(w)
		}
		t := spiIOCTransfer{
			txBuf:       uint64(uintptr(unsafe.Pointer(&w[off]))),
			length:      uint32(end - off),
			speedHz:     c.maxSpeedHz,
			bitsPerWord: c.bitsPerWord,
		}
		if len(r) > 0 {
			t.rxBuf = uint64(uintptr(unsafe.Pointer(&r[off])))
		}
		err := ioctl.Do(c.fd, cmd, &t)
		runtime.KeepAlive(w)
		runtime.KeepAlive(r)
		if err != nil {
			return fmt.Errorf("conn: SPI transfer: %w", err)
		}
	}
	return nil
}

// Duplex implements conn.Conn.
func (c *SPI) Duplex() conn.Duplex {
	return conn.Full
}

var _ conn.Conn = (*SPI)(nil)
