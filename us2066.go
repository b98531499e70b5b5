// Package oled is a library for Newhaven slim character OLED modules (US2066
// controller) driven over GPIO pins using periph.io.
//
// The modules are wired for their serial interface: the controller receives
// 24-bit frames on SCLK/SDI with an optional /CS, and nothing is ever read
// back. Any three output pins will do; no SPI hardware is needed, although
// NewSPI can use a hardware port instead.
//
// Character code 0x00 selects the first custom glyph slot on the display. It
// is sent like any other byte, so keep it out of text unless that glyph is
// wanted.
package oled // import "github.com/DrJosh9000/oled"

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// Geometry limits of the controller.
const (
	MaxRows = 4
	MaxCols = 20
)

// Opts configures a Dev. A nil *Opts, or zero Rows and Cols, means a
// 2 row by 16 column module.
type Opts struct {
	Rows, Cols int

	// Saturate makes out-of-range rows and columns clamp to the last valid
	// one, and truncates text that is too long for a line, instead of
	// returning an error.
	Saturate bool
}

// Dev is a handle to one display. It is not safe for concurrent use; the
// pins and the controller's command mode are shared state.
type Dev struct {
	link     link
	rows     int
	cols     int
	saturate bool

	// last display control bits sent
	on, cursor, blink bool

	sleep func(time.Duration)
}

// New configures the three pins, waits for them to settle, and runs the
// controller initialization sequence. cs may be nil if the module's /CS is
// tied low.
func New(sclk, sdi, cs gpio.PinOut, opts *Opts) (*Dev, error) {
	return open(&gpioLink{sclk: sclk, sdi: sdi, cs: cs}, opts, nil)
}

// NewSPI is like New but sends frames through a hardware SPI port.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	l, err := newSPILink(p)
	if err != nil {
		return nil, wrap(err)
	}
	return open(l, opts, nil)
}

func open(l link, opts *Opts, sleep func(time.Duration)) (*Dev, error) {
	d, err := newDev(l, opts)
	if err != nil {
		return nil, err
	}
	d.sleep = sleep
	if g, ok := l.(*gpioLink); ok {
		if err := g.idle(); err != nil {
			return nil, wrap(err)
		}
	}
	d.delay(30 * time.Millisecond)
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

func newDev(l link, opts *Opts) (*Dev, error) {
	o := Opts{Rows: 2, Cols: 16}
	if opts != nil {
		o.Saturate = opts.Saturate
		if opts.Rows != 0 || opts.Cols != 0 {
			o.Rows, o.Cols = opts.Rows, opts.Cols
		}
	}
	d := &Dev{link: l, saturate: o.Saturate}
	if err := d.SetSize(o.Rows, o.Cols); err != nil {
		return nil, err
	}
	return d, nil
}

// SetSize tells the driver the module's geometry. It does not reconfigure the
// controller; call Init afterwards if the row count changed.
func (d *Dev) SetSize(rows, cols int) error {
	if rows < 1 || rows > MaxRows || cols < 1 || cols > MaxCols {
		return fmt.Errorf("%w: %d rows, %d columns", ErrGeometry, rows, cols)
	}
	d.rows, d.cols = rows, cols
	return nil
}

// Rows returns the number of rows the display has.
func (d *Dev) Rows() int {
	return d.rows
}

// Cols returns the number of columns the display has.
func (d *Dev) Cols() int {
	return d.cols
}

// String returns a description of the display.
func (d *Dev) String() string {
	return fmt.Sprintf("oled.Dev{%dx%d}", d.cols, d.rows)
}

// SendCommand sends one command byte.
func (d *Dev) SendCommand(c byte) error {
	return wrap(d.link.send(encodeFrame(c, true)))
}

// SendData sends one data byte. Outside of a parameter sequence this writes a
// character at the cursor and advances it.
func (d *Dev) SendData(b byte) error {
	return wrap(d.link.send(encodeFrame(b, false)))
}

// sendCommand is for the controller interface.
func (d *Dev) sendCommand(c byte) error {
	return d.SendCommand(c)
}

func (d *Dev) sendData(b byte) error {
	return d.SendData(b)
}

func (d *Dev) delay(t time.Duration) {
	if d.sleep != nil {
		d.sleep(t)
		return
	}
	time.Sleep(t)
}

// DisplayControl turns the whole display, the cursor, and cursor blinking on
// or off.
func (d *Dev) DisplayControl(display, cursor, blink bool) error {
	a := uint8(0b00001000)
	if display {
		a += 0b00000100
	}
	if cursor {
		a += 0b00000010
	}
	if blink {
		a += 0b00000001
	}
	if err := d.SendCommand(a); err != nil {
		return err
	}
	d.on, d.cursor, d.blink = display, cursor, blink
	return nil
}

// DisplayOn switches the display on with the cursor and blinking off.
func (d *Dev) DisplayOn() error {
	return d.commandWait(0b00001100, d.setControl(true, false, false))
}

// DisplayOff switches the display off.
func (d *Dev) DisplayOff() error {
	return d.commandWait(0b00001000, d.setControl(false, false, false))
}

// Clear blanks the display and moves the cursor home.
func (d *Dev) Clear() error {
	return d.commandWait(0b00000001, nil)
}

// Home moves the cursor to the first column of the first row without changing
// the text, and undoes any display shift.
func (d *Dev) Home() error {
	return d.commandWait(0b00000010, nil)
}

// Shift moves the cursor, or the whole display when display is set, one
// position right or left.
func (d *Dev) Shift(display, right bool) error {
	a := uint8(0b00010000)
	if display {
		a += 0b00001000
	}
	if right {
		a += 0b00000100
	}
	return d.SendCommand(a)
}

// commandWait sends c, runs after on success, and gives the controller 10ms.
func (d *Dev) commandWait(c byte, after func()) error {
	if err := d.SendCommand(c); err != nil {
		return err
	}
	if after != nil {
		after()
	}
	d.delay(10 * time.Millisecond)
	return nil
}

func (d *Dev) setControl(on, cursor, blink bool) func() {
	return func() { d.on, d.cursor, d.blink = on, cursor, blink }
}
