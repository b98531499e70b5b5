package oled

import "time"

// controller is the subset of Dev the initialization sequence needs.
type controller interface {
	sendCommand(byte) error
	sendData(byte) error
}

// Function set commands switch between instruction tables.
const (
	fundamentalSet byte = 0x28 // RE = 0
	extendedSet    byte = 0x2a // RE = 1
	oledSetOn      byte = 0x79 // SD = 1, needs RE = 1
	oledSetOff     byte = 0x78 // SD = 0
)

// Extended (RE = 1) commands, each followed by one data byte.
const (
	functionSelectA byte = 0x71 // internal Vdd regulator
	functionSelectB byte = 0x72 // CGROM/CGRAM selection
)

// OLED (SD = 1) commands, each followed by one command byte.
const (
	clockDivide   byte = 0xd5
	segHardware   byte = 0xda
	functionSelC  byte = 0xdc // VSL and GPIO
	contrast      byte = 0x81
	phaseLength   byte = 0xd9
	vcomhDeselect byte = 0xdb
)

// errSeq stops a command sequence at the first failure.
type errSeq struct {
	c   controller
	err error
}

func (s *errSeq) cmd(cs ...byte) {
	for _, c := range cs {
		if s.err != nil {
			return
		}
		s.err = s.c.sendCommand(c)
	}
}

func (s *errSeq) data(b byte) {
	if s.err != nil {
		return
	}
	s.err = s.c.sendData(b)
}

// initSequence brings the controller from reset to a cleared, switched-on
// display. The order matters: every command is interpreted according to the
// RE/SD flags set by the ones before it.
func initSequence(c controller, rows int) error {
	s := &errSeq{c: c}

	// Internal regulator on.
	s.cmd(extendedSet, functionSelectA)
	s.data(0x5c)

	// Display off.
	s.cmd(fundamentalSet, 0x08)

	// Clock divide ratio and oscillator frequency.
	s.cmd(extendedSet, oledSetOn, clockDivide, 0x70, oledSetOff)

	// Line count: 1-2 or 3-4 line mode, then which of the pair.
	s.cmd(fundamentalSet)
	if rows < 3 {
		s.cmd(0x08)
		if rows == 1 {
			s.cmd(0x20)
		} else {
			s.cmd(0x28)
		}
	} else {
		s.cmd(0x09)
		if rows == 3 {
			s.cmd(0x20)
		} else {
			s.cmd(0x28)
		}
	}

	// CGROM A, 240 ROM + 8 RAM characters.
	s.cmd(extendedSet, functionSelectB)
	s.data(0x00)

	// COM incrementing, SEG decrementing; normal display order.
	s.cmd(0x06, 0x20)

	// Segment hardware, VSL/GPIO, contrast, phase length, VCOMH.
	s.cmd(oledSetOn)
	s.cmd(segHardware, 0x10) // some modules want 0x00
	s.cmd(functionSelC, 0x00)
	s.cmd(contrast, 0x7f)
	s.cmd(phaseLength, 0xf1)
	s.cmd(vcomhDeselect, 0x40)
	s.cmd(oledSetOff)

	// Clear, home, display on.
	s.cmd(fundamentalSet, 0x01, 0x80, 0x0c)
	return s.err
}

// Init runs the controller initialization sequence for the current geometry
// and waits for the display to settle. New calls it; call it again after
// changing the row count with SetSize.
func (d *Dev) Init() error {
	if err := initSequence(d, d.rows); err != nil {
		return err
	}
	d.on, d.cursor, d.blink = true, false, false
	d.delay(100 * time.Millisecond)
	return nil
}
