package sim

// OLED command set (SD = 1) commands that take the next command byte as a
// value.
var sdValue = map[byte]bool{
	0xd5: true, // clock divide
	0xda: true, // SEG pins hardware configuration
	0xdc: true, // VSL and GPIO
	0x81: true, // contrast
	0xd9: true, // phase length
	0xdb: true, // VCOMH deselect level
}

func (d *Dev) command(c byte) {
	if d.sd {
		d.oledCommand(c)
		return
	}
	d.dataParam = 0
	if c&0xe0 == 0x20 {
		// Function set is the same in both instruction tables.
		d.re = c&0x02 != 0
		if !d.re {
			d.twoLine = c&0x08 != 0
		}
		return
	}
	if d.re {
		d.extendedCommand(c)
		return
	}
	switch {
	case c&0x80 != 0:
		d.ac = c & 0x7f
		d.cg = false
	case c&0x40 != 0:
		d.cg = true
	case c&0x10 != 0:
		d.shift(c&0x08 != 0, c&0x04 != 0)
	case c&0x08 != 0:
		d.on, d.cursor, d.blink = c&0x04 != 0, c&0x02 != 0, c&0x01 != 0
	case c&0x04 != 0:
		// entry mode; only increment without shift is modelled
	case c&0x02 != 0:
		d.ac, d.offset, d.cg = 0, 0, false
	case c == 0x01:
		for i := range d.ddram {
			d.ddram[i] = ' '
		}
		d.ac, d.offset, d.cg = 0, 0, false
	}
}

func (d *Dev) extendedCommand(c byte) {
	switch {
	case c == 0x71, c == 0x72:
		d.dataParam = c
	case c == 0x79:
		d.sd = true
	case c == 0x78:
		d.sd = false
	case c&0xf8 == 0x08:
		d.fourLine = c&0x01 != 0
	}
}

func (d *Dev) oledCommand(c byte) {
	if d.cmdParam != 0 {
		if d.cmdParam == 0x81 {
			d.contrast = c
		}
		d.cmdParam = 0
		return
	}
	switch {
	case c == 0x78:
		d.sd = false
	case c == 0x79:
	case sdValue[c]:
		d.cmdParam = c
	}
}

func (d *Dev) data(b byte) {
	switch d.dataParam {
	case 0x71:
		d.regulator = b
		d.dataParam = 0
		return
	case 0x72:
		d.rom = b
		d.dataParam = 0
		return
	}
	if d.cg {
		return
	}
	d.ddram[d.ac] = b
	d.ac = (d.ac + 1) & 0x7f
}

func (d *Dev) shift(display, right bool) {
	if display {
		if right {
			d.offset--
		} else {
			d.offset++
		}
		return
	}
	if right {
		d.ac = (d.ac + 1) & 0x7f
	} else {
		d.ac = (d.ac - 1) & 0x7f
	}
}

// rowText returns the visible characters of row r. Called with the lock held.
func (d *Dev) rowText(r int) []byte {
	base := r * 0x20
	out := make([]byte, d.cols)
	for c := range out {
		i := ((d.offset+c)%0x20 + 0x20) % 0x20
		out[c] = d.ddram[base+i]
	}
	return out
}

// Row returns what row r (zero-based) shows, whether or not the display is
// switched on.
func (d *Dev) Row(r int) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if r < 0 || r >= d.rows {
		return ""
	}
	return string(d.rowText(r))
}

// Address returns the DDRAM address counter.
func (d *Dev) Address() byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ac
}

// On reports whether the display is switched on.
func (d *Dev) On() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.on
}

// CursorMode reports whether the underline cursor and blinking are enabled.
func (d *Dev) CursorMode() (cursor, blink bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cursor, d.blink
}

// Contrast returns the last contrast value set.
func (d *Dev) Contrast() byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.contrast
}

// Lines returns the line mode the controller was configured for: 1 or 2 in
// 1-2 line mode, 3 or 4 in 3-4 line mode.
func (d *Dev) Lines() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 1
	if d.twoLine {
		n = 2
	}
	if d.fourLine {
		n += 2
	}
	return n
}

// Modes reports the RE and SD instruction table flags.
func (d *Dev) Modes() (re, sd bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.re, d.sd
}
