package oled

import "fmt"

// Table is a fixed set of messages, such as menu entries or status lines,
// kept out of the way of the code that displays them. An entry ends at the
// first 0x00 byte, if any.
type Table []string

// entry copies entry i into a buffer one byte wider than a display line and
// returns the bytes before the terminator, at most one line's worth.
func (d *Dev) entry(t Table, i int) (string, error) {
	if i < 0 || i >= len(t) {
		return "", fmt.Errorf("%w: %d of %d", ErrNoEntry, i, len(t))
	}
	buf := make([]byte, d.cols+1)
	copy(buf[:d.cols], t[i])
	n := 0
	for n < d.cols && buf[n] != 0 {
		n++
	}
	return string(buf[:n]), nil
}

// PrintEntry writes entry i of t at the cursor. Entries longer than a display
// line are cut to fit.
func (d *Dev) PrintEntry(t Table, i int) error {
	s, err := d.entry(t, i)
	if err != nil {
		return err
	}
	return d.Print(s)
}

// PrintEntryCentered clears row and writes entry i of t centred on it.
func (d *Dev) PrintEntryCentered(t Table, i, row int) error {
	s, err := d.entry(t, i)
	if err != nil {
		return err
	}
	return d.PrintCentered(s, row)
}
