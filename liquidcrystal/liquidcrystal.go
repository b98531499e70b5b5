// Package liquidcrystal puts the method names of the Arduino LiquidCrystal
// library on an oled.Dev, to make porting sketch-style code easier.
//
// The controller has nothing matching autoscroll, text direction, or the way
// LiquidCrystal uploads custom characters. Those methods return
// oled.ErrNotSupported rather than doing nothing.
package liquidcrystal // import "github.com/DrJosh9000/oled/liquidcrystal"

import "github.com/DrJosh9000/oled"

// LCD forwards LiquidCrystal calls to an oled.Dev.
type LCD struct {
	Dev *oled.Dev
}

// New wraps d.
func New(d *oled.Dev) *LCD {
	return &LCD{Dev: d}
}

// Clear blanks the display and moves the cursor home.
func (l *LCD) Clear() error {
	return l.Dev.Clear()
}

// Home moves the cursor home.
func (l *LCD) Home() error {
	return l.Dev.Home()
}

// SetCursor moves the cursor. Note the column comes first.
func (l *LCD) SetCursor(col, row int) error {
	return l.Dev.CursorPos(row, col)
}

// Write writes one character at the cursor.
func (l *LCD) Write(b byte) error {
	return l.Dev.PrintByte(b)
}

// Print writes s at the cursor.
func (l *LCD) Print(s string) error {
	return l.Dev.Print(s)
}

// Cursor shows the underline cursor.
func (l *LCD) Cursor() error {
	return l.Dev.DisplayControl(true, true, false)
}

// NoCursor hides the cursor.
func (l *LCD) NoCursor() error {
	return l.Dev.DisplayControl(true, false, false)
}

// Blink shows the cursor and makes it blink.
func (l *LCD) Blink() error {
	return l.Dev.DisplayControl(true, true, true)
}

// NoBlink stops the cursor blinking. The underline cursor stays visible.
func (l *LCD) NoBlink() error {
	return l.Dev.DisplayControl(true, true, false)
}

// Display switches the display on.
func (l *LCD) Display() error {
	return l.Dev.DisplayOn()
}

// NoDisplay switches the display off.
func (l *LCD) NoDisplay() error {
	return l.Dev.DisplayOff()
}

// ScrollDisplayLeft shifts the whole display one position left.
func (l *LCD) ScrollDisplayLeft() error {
	return l.Dev.Shift(true, false)
}

// ScrollDisplayRight shifts the whole display one position right.
func (l *LCD) ScrollDisplayRight() error {
	return l.Dev.Shift(true, true)
}

// Autoscroll is not supported.
func (l *LCD) Autoscroll() error {
	return oled.ErrNotSupported
}

// NoAutoscroll is not supported.
func (l *LCD) NoAutoscroll() error {
	return oled.ErrNotSupported
}

// LeftToRight is not supported.
func (l *LCD) LeftToRight() error {
	return oled.ErrNotSupported
}

// RightToLeft is not supported.
func (l *LCD) RightToLeft() error {
	return oled.ErrNotSupported
}

// CreateChar is not supported.
func (l *LCD) CreateChar(num byte, data []byte) error {
	return oled.ErrNotSupported
}
