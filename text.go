package oled

import "fmt"

// Print writes text at the cursor, one data byte per byte of s. The driver
// does not know where the cursor is, so the length is not checked; text past
// the end of a row carries on into DDRAM that may not be visible.
func (d *Dev) Print(s string) error {
	for i := 0; i < len(s); i++ {
		if err := d.SendData(s[i]); err != nil {
			return err
		}
	}
	return nil
}

// PrintByte writes one character at the cursor.
func (d *Dev) PrintByte(c byte) error {
	return d.SendData(c)
}

// PrintAt moves the cursor to row, col and writes s there.
func (d *Dev) PrintAt(row, col int, s string) error {
	row, err := d.checkRow(row)
	if err != nil {
		return err
	}
	col, err = d.checkCol(col)
	if err != nil {
		return err
	}
	if !d.saturate && col+len(s) > d.cols {
		return fmt.Errorf("%w: %d bytes at column %d of %d", ErrTooLong, len(s), col, d.cols)
	}
	if err := d.CursorPos(row, col); err != nil {
		return err
	}
	return d.Print(s)
}

// PrintByteAt moves the cursor to row, col and writes c there.
func (d *Dev) PrintByteAt(row, col int, c byte) error {
	if err := d.CursorPos(row, col); err != nil {
		return err
	}
	return d.SendData(c)
}

// ClearRow overwrites a whole row with spaces.
func (d *Dev) ClearRow(row int) error {
	if err := d.MoveToRow(row); err != nil {
		return err
	}
	return d.Print(string(d.blankLine()))
}

// PrintCentered clears row and writes s centred on it. Odd leftover space
// goes on the right.
func (d *Dev) PrintCentered(s string, row int) error {
	line, err := d.layout(s, center)
	if err != nil {
		return err
	}
	return d.printLine(row, line)
}

// PrintRightJustified clears row and writes s against its right edge.
func (d *Dev) PrintRightJustified(s string, row int) error {
	line, err := d.layout(s, right)
	if err != nil {
		return err
	}
	return d.printLine(row, line)
}

type align int

const (
	center align = iota
	right
)

func (d *Dev) blankLine() []byte {
	b := make([]byte, d.cols)
	for i := range b {
		b[i] = ' '
	}
	return b
}

// layout returns a full-width line of spaces with s copied in at the
// alignment's offset.
func (d *Dev) layout(s string, a align) ([]byte, error) {
	if len(s) > d.cols {
		if !d.saturate {
			return nil, fmt.Errorf("%w: %d bytes, %d columns", ErrTooLong, len(s), d.cols)
		}
		s = s[:d.cols]
	}
	off := d.cols - len(s)
	if a == center {
		off /= 2
	}
	line := d.blankLine()
	copy(line[off:], s)
	return line, nil
}

// printLine clears row, then writes the full-width line over it, so nothing
// of a previous longer text survives.
func (d *Dev) printLine(row int, line []byte) error {
	if err := d.ClearRow(row); err != nil {
		return err
	}
	if err := d.MoveToRow(row); err != nil {
		return err
	}
	return d.Print(string(line))
}
