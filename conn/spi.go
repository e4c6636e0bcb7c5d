// Package conn opens the hardware buses LED strips are connected to.
package conn

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

type SPIMode uint8

// Clock polarity and phase.
const (
	SPIMode0 = SPIMode(spi.Mode0)
	SPIMode1 = SPIMode(spi.Mode1)
	SPIMode2 = SPIMode(spi.Mode2)
	SPIMode3 = SPIMode(spi.Mode3)
)

// SPI is a connected SPI port, the host drivers must have been initialized.
type SPI struct {
	port       spi.PortCloser
	conn       spi.Conn
	mode       SPIMode
	maxSpeedHz uint32
}

// OpenSPI opens the numbered spi bus with the numbered device and connects with the requested
// mode and speed. A negative bus selects the first available port.
func OpenSPI(bus, device int, mode SPIMode, speedHz uint32) (*SPI, error) {
	var name string
	if bus >= 0 {
		name = fmt.Sprintf("SPI%d.%d", bus, device)
	}
	port, err := spireg.Open(name)
	if err != nil {
		return nil, err
	}

	c, err := port.Connect(physic.Frequency(speedHz)*physic.Hertz, spi.Mode(mode), 8)
	if err != nil {
		_ = port.Close()
		return nil, err
	}

	return &SPI{
		port:       port,
		conn:       c,
		mode:       mode,
		maxSpeedHz: speedHz,
	}, nil
}

func (c *SPI) Close() error {
	return c.port.Close()
}

func (c *SPI) String() string {
	return fmt.Sprintf("%s mode=%d max speed=%dHz", c.port, c.mode, c.maxSpeedHz)
}

func (c *SPI) Mode() SPIMode {
	return c.mode
}

func (c *SPI) MaxSpeed() int {
	return int(c.maxSpeedHz)
}

// MaxTxSize is the largest transfer the driver accepts, 0 if unknown.
func (c *SPI) MaxTxSize() int {
	if l, ok := c.conn.(conn.Limits); ok {
		return l.MaxTxSize()
	}
	return 0
}

func (c *SPI) Write(b []byte) (n int, err error) {
	if err = c.conn.Tx(b, nil); err != nil {
		return 0, err
	}
	return len(b), nil
}
