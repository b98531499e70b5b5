// Package sim emulates the controller end of a slim OLED module's serial link
// and shows the result on a terminal using ANSI color codes.
//
// Hand the three lines of a Dev to oled.New in place of real pins. Useful for
// trying out layouts and animations without hardware, and for checking what
// actually reached the display.
package sim // import "github.com/DrJosh9000/oled/sim"

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// Opts represents the options available for the emulator.
type Opts struct {
	Rows, Cols int // default 2 by 16, at most 4 by 20

	W       io.Writer        // default colorable stdout
	Palette *ansi256.Palette // default ansi256.Default
	Bezel   color.Color      // frame colour, default amber

	_ struct{}
}

// Frame is one decoded transaction.
type Frame struct {
	Command bool
	Value   byte
}

// Dev is an emulated display. Its lines may be driven from one goroutine
// while another calls Refresh.
type Dev struct {
	Clock, Data, Select *Line

	mu      sync.Mutex
	rows    int
	cols    int
	w       io.Writer
	palette ansi256.Palette
	bezel   color.NRGBA
	buf     bytes.Buffer
	drawn   bool

	// wire state
	clk, sdi, cs gpio.Level
	bits         uint32
	nbits        int
	frames       []Frame
	framingErrs  int

	// controller state
	re, sd     bool
	dataParam  byte // RE=1 command waiting for its data byte
	cmdParam   byte // SD=1 command waiting for its value
	ddram      [128]byte
	ac         byte
	cg         bool
	offset     int
	on, cursor bool
	blink      bool
	twoLine    bool
	fourLine   bool
	contrast   byte
	regulator  byte
	rom        byte
}

// New returns an emulated display. The clock idles high and select starts
// low, so a module with /CS tied to ground can leave Select undriven.
func New(opts *Opts) *Dev {
	var o Opts
	if opts != nil {
		o = *opts
	}
	o.Rows = limit(o.Rows, 2, maxRows)
	o.Cols = limit(o.Cols, 16, maxCols)
	p := o.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := o.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	bezel := color.NRGBA{0xff, 0xb0, 0x00, 0xff}
	if o.Bezel != nil {
		bezel = color.NRGBAModel.Convert(o.Bezel).(color.NRGBA)
	}
	d := &Dev{
		rows:    o.Rows,
		cols:    o.Cols,
		w:       w,
		palette: *p,
		bezel:   bezel,
		clk:     gpio.High,
		sdi:     gpio.High,
		cs:      gpio.Low,
	}
	d.Clock = &Line{dev: d, name: "SCLK", number: 0}
	d.Data = &Line{dev: d, name: "SDI", number: 1}
	d.Select = &Line{dev: d, name: "CS", number: 2}
	d.reset()
	return d
}

// Largest geometry the controller can address.
const (
	maxRows = 4
	maxCols = 20
)

// limit returns def for an unset n, and otherwise n clamped to [1, hi].
func limit(n, def, hi int) int {
	switch {
	case n == 0:
		return def
	case n < 1:
		return 1
	case n > hi:
		return hi
	}
	return n
}

func (d *Dev) String() string {
	return fmt.Sprintf("sim.Dev{%dx%d}", d.cols, d.rows)
}

// reset puts the controller in its power-on state.
func (d *Dev) reset() {
	for i := range d.ddram {
		d.ddram[i] = ' '
	}
	d.ac, d.offset = 0, 0
	d.re, d.sd, d.cg = false, false, false
	d.dataParam, d.cmdParam = 0, 0
	d.on, d.cursor, d.blink = false, false, false
}

// Halt implements conn.Resource.
//
// It restores the terminal colours.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// out is called with the lock held whenever a line is driven.
func (d *Dev) out(l *Line, lvl gpio.Level) {
	switch l {
	case d.Clock:
		rising := !d.clk && lvl
		d.clk = lvl
		if rising && d.cs == gpio.Low {
			d.shiftIn(d.sdi)
		}
	case d.Data:
		d.sdi = lvl
	case d.Select:
		d.cs = lvl
		if lvl == gpio.High {
			// A deselect abandons a partial frame.
			d.bits, d.nbits = 0, 0
		}
	}
}

func (d *Dev) shiftIn(bit gpio.Level) {
	d.bits <<= 1
	if bit {
		d.bits |= 1
	}
	d.nbits++
	if d.nbits < 24 {
		return
	}
	tag, lo, hi := byte(d.bits>>16), byte(d.bits>>8), byte(d.bits)
	d.bits, d.nbits = 0, 0
	if (tag != 0xf8 && tag != 0xfa) || lo&0x0f != 0 || hi&0x0f != 0 {
		d.framingErrs++
		return
	}
	f := Frame{Command: tag == 0xf8, Value: reverse4(lo>>4) | reverse4(hi>>4)<<4}
	d.frames = append(d.frames, f)
	if f.Command {
		d.command(f.Value)
	} else {
		d.data(f.Value)
	}
}

func reverse4(n byte) byte {
	return (n&0b0001)<<3 | (n&0b0010)<<1 | (n&0b0100)>>1 | (n&0b1000)>>3
}

// Frames returns every frame decoded so far.
func (d *Dev) Frames() []Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Frame(nil), d.frames...)
}

// ResetFrames forgets the decoded frames. Display contents are kept.
func (d *Dev) ResetFrames() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frames = nil
}

// FramingErrors returns how many frames had a bad start byte or padding.
func (d *Dev) FramingErrors() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.framingErrs
}

// Line is one emulated input of the module. It implements gpio.PinOut.
type Line struct {
	dev    *Dev
	name   string
	number int
}

// Out drives the line.
func (l *Line) Out(lvl gpio.Level) error {
	l.dev.mu.Lock()
	defer l.dev.mu.Unlock()
	l.dev.out(l, lvl)
	return nil
}

// PWM is not supported.
func (l *Line) PWM(duty gpio.Duty, f physic.Frequency) error {
	return fmt.Errorf("sim: %s: PWM not supported", l.name)
}

// Halt implements conn.Resource.
func (l *Line) Halt() error {
	return nil
}

// Name returns the module pin name.
func (l *Line) Name() string {
	return l.name
}

// Number returns the line's index.
func (l *Line) Number() int {
	return l.number
}

// Deprecated: returns "Out"
func (l *Line) Function() string {
	return "Out"
}

func (l *Line) String() string {
	return l.name
}

var _ gpio.PinOut = &Line{}
