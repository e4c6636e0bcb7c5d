package ledstrip

import (
	"fmt"
	"io"
	"log"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/ledstrip/conn"
)

// Conn is the connection interface for communicating with hardware.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Data sends data bytes.
	Data(...byte) error
}

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	// Bus number, use -1 to use the first available bus.
	Bus int

	// Device is the chip select number on the bus.
	Device int

	Mode      conn.SPIMode
	SpeedHz   uint32
	BatchSize uint

	// CE is an optional chip enable pin, for strips sharing a bus with other devices.
	CE gpio.PinOut
}

// DefaultSPIConfig are the default configuration values.
var DefaultSPIConfig = SPIConfig{
	Bus:       0,
	Device:    0,
	Mode:      conn.SPIMode0,
	SpeedHz:   4_000_000,
	BatchSize: 4096,
}

// WS2812SPISpeed is the SPI speed at which three SPI bits make up one WS2812 bit.
const WS2812SPISpeed = 2_400_000

type spiBus interface {
	io.Writer
	String() string
	Close() error
}

type spiConn struct {
	bus       spiBus
	cs        gpio.PinOut
	batchSize uint
}

func OpenSPI(config *SPIConfig) (Conn, error) {
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

	c, err := conn.OpenSPI(config.Bus, config.Device, config.Mode, config.SpeedHz)
	if err != nil {
		return nil, fmt.Errorf("ledstrip: open SPI bus %d device %d: %w", config.Bus, config.Device, err)
	}

	batchSize := config.BatchSize
	if limit := c.MaxTxSize(); limit > 0 && uint(limit) < batchSize {
		batchSize = uint(limit)
	}

	return newSPIConn(c, config.CE, batchSize), nil
}

func newSPIConn(bus spiBus, cs gpio.PinOut, batchSize uint) *spiConn {
	if cs == gpio.INVALID {
		cs = nil
	}
	return &spiConn{
		bus:       bus,
		cs:        cs,
		batchSize: batchSize,
	}
}

func (c *spiConn) String() string {
	return fmt.Sprintf("SPI bus %s", c.bus)
}

func (c *spiConn) Close() error {
	return c.bus.Close()
}

func (c *spiConn) updateCS(level gpio.Level) error {
	if c.cs == nil {
		return nil
	}
	return c.cs.Out(level)
}

func (c *spiConn) Data(data ...byte) (err error) {
	if len(data) == 0 {
		return
	}
	if err = c.updateCS(gpio.Low); err != nil {
		return
	}
	if err = c.writeChunked(data); err != nil {
		_ = c.updateCS(gpio.High)
		return
	}
	return c.updateCS(gpio.High)
}

func (c *spiConn) writeChunked(data []byte) (err error) {
	if c.batchSize == 0 || len(data) <= int(c.batchSize) {
		_, err = c.bus.Write(data)
		return
	}

	if debug {
		log.Printf("ledstrip: write %d bytes of data in %d chunks", len(data), (len(data)+int(c.batchSize)-1)/int(c.batchSize))
	}
	for buffer := data; len(buffer) > 0; {
		n := min(len(buffer), int(c.batchSize))
		if _, err = c.bus.Write(buffer[:n]); err != nil {
			return
		}
		buffer = buffer[n:]
	}
	return
}
