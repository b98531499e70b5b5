package oled

import "fmt"

// rowAddress is the DDRAM address of the first column of each row. The stride
// does not depend on the number of columns.
var rowAddress = [MaxRows]byte{0x00, 0x20, 0x40, 0x60}

// setDDAddress is the command to set the DDRAM address (0 <= a < 128).
const setDDAddress byte = 0b10000000

func (d *Dev) checkRow(row int) (int, error) {
	if row >= 0 && row < d.rows {
		return row, nil
	}
	if !d.saturate {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrRowRange, row, d.rows)
	}
	if row < 0 {
		return 0, nil
	}
	return d.rows - 1, nil
}

func (d *Dev) checkCol(col int) (int, error) {
	if col >= 0 && col < d.cols {
		return col, nil
	}
	if !d.saturate {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrColumnRange, col, d.cols)
	}
	if col < 0 {
		return 0, nil
	}
	return d.cols - 1, nil
}

// CursorPos moves the cursor to the given zero-based row and column.
func (d *Dev) CursorPos(row, col int) error {
	row, err := d.checkRow(row)
	if err != nil {
		return err
	}
	col, err = d.checkCol(col)
	if err != nil {
		return err
	}
	return d.SendCommand(setDDAddress + rowAddress[row] + byte(col))
}

// MoveToRow moves the cursor to the start of the given zero-based row.
func (d *Dev) MoveToRow(row int) error {
	row, err := d.checkRow(row)
	if err != nil {
		return err
	}
	return d.commandWait(setDDAddress+rowAddress[row], nil)
}
