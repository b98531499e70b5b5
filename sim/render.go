package sim

import (
	"fmt"
	"io"
)

// Refresh draws the display on the writer, overwriting the previous drawing.
// A switched off display shows as blank.
func (d *Dev) Refresh() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	if d.drawn {
		fmt.Fprintf(&d.buf, "\033[%dA", d.rows)
	}
	edge := d.palette.Block(d.bezel)
	for r := 0; r < d.rows; r++ {
		_, _ = d.buf.WriteString("\r\033[0m")
		_, _ = io.WriteString(&d.buf, edge)
		_, _ = d.buf.WriteString("\033[0m")
		for _, c := range d.rowText(r) {
			if !d.on {
				c = ' '
			}
			_ = d.buf.WriteByte(glyph(c))
		}
		_, _ = io.WriteString(&d.buf, edge)
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	d.drawn = true
	_, err := d.buf.WriteTo(d.w)
	return err
}

// glyph maps a character code to something a terminal can show. CGROM A
// matches ASCII for printable characters; custom glyphs show as '#'.
func glyph(c byte) byte {
	switch {
	case c < 0x08:
		return '#'
	case c < 0x20, c > 0x7e:
		return '?'
	}
	return c
}
