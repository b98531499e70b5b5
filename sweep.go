package oled

import (
	"context"
	"time"
)

// Sweep animates s onto row. Two markers start at the outer columns and close
// in on the centre, then pass through each other and move back out, leaving
// the centred text between them. It ends with exactly what PrintCentered
// would have left on the row.
//
// left is the marker that starts on the left, right the one that starts on
// the right. delay is the pause after each frame. If ctx is done the
// remaining frames are skipped, the final text is still written, and ctx's
// error is returned.
func (d *Dev) Sweep(ctx context.Context, s string, row int, left, right byte, delay time.Duration) error {
	line, err := d.layout(s, center)
	if err != nil {
		return err
	}
	if err := d.ClearRow(row); err != nil {
		return err
	}

	half := d.cols / 2
	buf := make([]byte, d.cols)
	var ctxErr error

	// Closing in.
	for i := 0; i < half && ctxErr == nil; i++ {
		d.closingFrame(buf, i, left, right)
		if err := d.printFrame(row, buf); err != nil {
			return err
		}
		ctxErr = d.pause(ctx, delay)
	}

	// Opening out, revealing the text.
	for i := half - 1; i >= 0 && ctxErr == nil; i-- {
		d.openingFrame(buf, line, i, left, right)
		if err := d.printFrame(row, buf); err != nil {
			return err
		}
		ctxErr = d.pause(ctx, delay)
	}

	if err := d.printFrame(row, line); err != nil {
		return err
	}
	return ctxErr
}

// closingFrame is i spaces, left, spaces, right, i spaces.
func (d *Dev) closingFrame(buf []byte, i int, left, right byte) {
	for j := range buf {
		buf[j] = ' '
	}
	buf[i] = left
	buf[len(buf)-1-i] = right
}

// openingFrame is i spaces, right, the middle of line, left, i spaces.
func (d *Dev) openingFrame(buf, line []byte, i int, left, right byte) {
	for j := range buf {
		buf[j] = ' '
	}
	end := len(buf) - 1 - i
	buf[i] = right
	copy(buf[i+1:end], line[i+1:end])
	buf[end] = left
}

func (d *Dev) printFrame(row int, buf []byte) error {
	if err := d.MoveToRow(row); err != nil {
		return err
	}
	return d.Print(string(buf))
}

// pause waits for t or until ctx is done.
func (d *Dev) pause(ctx context.Context, t time.Duration) error {
	if d.sleep != nil {
		d.sleep(t)
		return ctx.Err()
	}
	timer := time.NewTimer(t)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
