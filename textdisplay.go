package oled

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
)

// The methods in this file make Dev a periph.io display.TextDisplay. As with
// the other periph.io text displays, rows and columns here are 1-based.

// AutoScroll is not supported. Returns ErrNotSupported.
func (d *Dev) AutoScroll(enabled bool) error {
	return ErrNotSupported
}

// Cursor sets the cursor mode. Modes combine, for example
// Cursor(display.CursorUnderline, display.CursorBlink).
func (d *Dev) Cursor(modes ...display.CursorMode) error {
	cursor, blink := d.cursor, d.blink
	for _, mode := range modes {
		switch mode {
		case display.CursorOff:
			cursor, blink = false, false
		case display.CursorUnderline:
			cursor = true
		case display.CursorBlink, display.CursorBlock:
			blink = true
		default:
			return fmt.Errorf("%s: unexpected cursor mode %d", packageName, mode)
		}
	}
	return d.DisplayControl(d.on, cursor, blink)
}

// Display turns the display on or off, keeping the cursor mode.
func (d *Dev) Display(on bool) error {
	return d.DisplayControl(on, d.cursor, d.blink)
}

// MinCol returns the first column number, 1.
func (d *Dev) MinCol() int {
	return 1
}

// MinRow returns the first row number, 1.
func (d *Dev) MinRow() int {
	return 1
}

// Move shifts the cursor one position forward or backward. Up and down are
// not supported.
func (d *Dev) Move(dir display.CursorDirection) error {
	switch dir {
	case display.Forward:
		return d.Shift(false, true)
	case display.Backward:
		return d.Shift(false, false)
	default:
		return ErrNotSupported
	}
}

// MoveTo moves the cursor to a 1-based row and column. Positions outside the
// display are an error even when the Dev saturates.
func (d *Dev) MoveTo(row, col int) error {
	if row < d.MinRow() || row > d.rows {
		return fmt.Errorf("%w: MoveTo(%d, %d)", ErrRowRange, row, col)
	}
	if col < d.MinCol() || col > d.cols {
		return fmt.Errorf("%w: MoveTo(%d, %d)", ErrColumnRange, row, col)
	}
	return d.CursorPos(row-1, col-1)
}

// Write writes p at the cursor as character codes.
func (d *Dev) Write(p []byte) (int, error) {
	for i, b := range p {
		if err := d.SendData(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// WriteString writes s at the cursor.
func (d *Dev) WriteString(s string) (int, error) {
	return d.Write([]byte(s))
}

// Halt clears the display and turns it off.
func (d *Dev) Halt() error {
	if err := d.Clear(); err != nil {
		return err
	}
	return d.DisplayOff()
}

var _ display.TextDisplay = &Dev{}
var _ conn.Resource = &Dev{}
