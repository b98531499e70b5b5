package oled

import (
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Start bytes identifying what follows on the wire.
const (
	tagCommand byte = 0xf8 // R/W = 0, D/C = 0
	tagData    byte = 0xfa // R/W = 0, D/C = 1
)

// frame holds the 24 bits of one transaction in wire order, most significant
// bit of each byte first.
type frame [3]byte

// encodeFrame builds the frame for a single command or data byte: the start
// byte, then the low nibble LSB first padded with four zeros, then the high
// nibble LSB first padded with four zeros.
func encodeFrame(v byte, command bool) frame {
	tag := tagData
	if command {
		tag = tagCommand
	}
	return frame{tag, reverse4(v&0x0f) << 4, reverse4(v>>4) << 4}
}

// reverse4 mirrors the low four bits of n.
func reverse4(n byte) byte {
	return (n&0b0001)<<3 | (n&0b0010)<<1 | (n&0b0100)>>1 | (n&0b1000)>>3
}

// link carries frames to the controller. There is no read path.
type link interface {
	send(f frame) error
}

// gpioLink bit-bangs frames over three output lines. The controller latches
// SDI on the rising edge of SCLK.
type gpioLink struct {
	sclk, sdi, cs gpio.PinOut // cs is optional
	err           error
}

func (l *gpioLink) out(p gpio.PinOut, lvl gpio.Level) {
	if l.err != nil {
		return
	}
	l.err = p.Out(lvl)
}

// idle drives the clock and data lines to their resting level. Chip select
// is left deasserted.
func (l *gpioLink) idle() error {
	l.err = nil
	l.out(l.sclk, gpio.High)
	l.out(l.sdi, gpio.High)
	if l.cs != nil {
		l.out(l.cs, gpio.High)
	}
	return l.err
}

// send asserts chip select and shifts out all 24 bits. Chip select stays
// asserted afterwards; it is never released between frames.
// TODO: confirm on hardware whether /CS should be raised after each frame.
func (l *gpioLink) send(f frame) error {
	l.err = nil
	if l.cs != nil {
		l.out(l.cs, gpio.Low)
	}
	for _, b := range f {
		for i := 0; i < 8; i++ {
			l.out(l.sclk, gpio.Low)
			l.out(l.sdi, b&0x80 != 0)
			b <<= 1
			l.out(l.sclk, gpio.High)
		}
	}
	return l.err
}

// spiFreq is well under the 1µs minimum SCLK cycle time.
const spiFreq = 500 * physic.KiloHertz

// spiLink sends frames through a hardware SPI port. SCLK idles high and data
// is latched on the rising edge, which is mode 3. The port owns chip select
// and releases it after every frame.
type spiLink struct {
	c conn.Conn
}

func newSPILink(p spi.Port) (*spiLink, error) {
	c, err := p.Connect(spiFreq, spi.Mode3, 8)
	if err != nil {
		return nil, err
	}
	return &spiLink{c: c}, nil
}

func (l *spiLink) send(f frame) error {
	return l.c.Tx(f[:], nil)
}
