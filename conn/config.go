package conn

import (
	"fmt"
	"os"
)

var debug = os.Getenv("BLING_DEBUG") != ""

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	Bus       int
	Device    int
	Mode      SPIMode
	SpeedHz   uint32
	BatchSize int
}

// DefaultSPIConfig are the default configuration values. The speed gives
// WS2812 LEDs three SPI bits per data bit.
var DefaultSPIConfig = SPIConfig{
	Bus:       0,
	Device:    0,
	Mode:      SPIMode0,
	SpeedHz:   2_400_000,
	BatchSize: 4096,
}

// ValidSPISpeeds are common valid SPI bus speeds.
var ValidSPISpeeds = []uint32{
	500_000,
	1_000_000,
	2_000_000,
	2_400_000,
	3_200_000,
	4_000_000,
	8_000_000,
	16_000_000,
	20_000_000,
	24_000_000,
	32_000_000,
}

// Open a spidev bus using config, nil selects DefaultSPIConfig.
func Open(config *SPIConfig) (*SPI, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}
	if config.SpeedHz == 0 {
		config.SpeedHz = DefaultSPIConfig.SpeedHz
	}
	if config.BatchSize == 0 {
		config.BatchSize = DefaultSPIConfig.BatchSize
	}
	if !ValidSPISpeed(config.SpeedHz) {
		return nil, fmt.Errorf("conn: invalid SPI speed %dHz", config.SpeedHz)
	}

	c, err := OpenSPI(config.Bus, config.Device)
	if err != nil {
		return nil, err
	}
	c.SetBatchSize(config.BatchSize)

	if err = c.SetMode(config.Mode); err != nil {
		_ = c.Close()
		return nil, err
	}
	if err = c.SetBitsPerWord(8); err != nil {
		_ = c.Close()
		return nil, err
	}
	if err = c.SetMaxSpeed(int(config.SpeedHz)); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

// ValidSPISpeed reports if hz is one of ValidSPISpeeds.
func ValidSPISpeed(hz uint32) bool {
	for _, speed := range ValidSPISpeeds {
		if speed == hz {
			return true
		}
	}
	return false
}
