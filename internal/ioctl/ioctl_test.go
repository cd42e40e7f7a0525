package ioctl

import (
	"errors"
	"syscall"
	"testing"
)

func TestEncode(t *testing.T) {
	for _, test := range []struct {
		Name string
		Got  Command
		Want Command
	}{
		// SPI_IOC_RD_MODE, _IOR('k', 1, __u8)
		{"spi read mode", Pointer(Read, new(uint8), 0x6b01), 0x80016b01},
		// SPI_IOC_WR_MAX_SPEED_HZ, _IOW('k', 4, __u32)
		{"spi write speed", Pointer(Write, new(uint32), 0x6b04), 0x40046b04},
		// SPI_IOC_MESSAGE(1), _IOW('k', 0, char[32])
		{"spi message", Encode(Write, 32, 0x6b00), 0x40206b00},
		{"plain", Encode(None, 0, 0x4600), 0x4600},
	} {
		if test.Got != test.Want {
			t.Errorf("%s: expected %#08x, got %#08x", test.Name, uintptr(test.Want), uintptr(test.Got))
		}
	}
}

func TestCommandString(t *testing.T) {
	if v, want := Command(0x80016b01).String(), "ioctl read (1 bytes) 0x6b01"; v != want {
		t.Errorf("expected %q, got %q", want, v)
	}
}

func TestError(t *testing.T) {
	err := error(&Error{Command: 0x4600, Errno: syscall.ENOTTY})
	if !errors.Is(err, syscall.ENOTTY) {
		t.Errorf("expected error to unwrap to ENOTTY")
	}
}
