package oled

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// rowWrites splits a log into the lines written after each row address
// command, dropping the delays.
func rowWrites(log []record) []string {
	var lines []string
	var cur *strings.Builder
	for _, r := range log {
		switch {
		case r.delay != 0:
		case r.cmd:
			if cur != nil {
				lines = append(lines, cur.String())
			}
			cur = &strings.Builder{}
		case cur != nil:
			cur.WriteByte(r.v)
		}
	}
	if cur != nil {
		lines = append(lines, cur.String())
	}
	return lines
}

func TestSweepFrames(t *testing.T) {
	d, l := getDev(t, &Opts{Rows: 2, Cols: 8})
	if err := d.Sweep(context.Background(), "AB", 1, '>', '<', time.Millisecond); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"        ",
		">      <",
		" >    < ",
		"  >  <  ",
		"   ><   ",
		"   <>   ",
		"  <AB>  ",
		" < AB > ",
		"<  AB  >",
		"   AB   ",
	}
	got := rowWrites(l.log)
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Sweep() frames:\n%q\nwant:\n%q", got, want)
	}
	for _, r := range l.log {
		if r.cmd && r.v != 0xa0 {
			t.Errorf("Sweep() sent command %#02x, want only row 1 addresses", r.v)
		}
	}
}

func TestSweepDelays(t *testing.T) {
	d, l := getDev(t, nil)
	delay := 50 * time.Millisecond
	if err := d.Sweep(context.Background(), "HELLO", 0, '*', '*', delay); err != nil {
		t.Fatal(err)
	}
	pauses := 0
	for _, r := range l.log {
		if r.delay == delay {
			pauses++
		}
	}
	if pauses != 16 {
		t.Errorf("Sweep() paused %d times, want one per animation frame (16)", pauses)
	}
}

func TestSweepOddWidth(t *testing.T) {
	d, l := getDev(t, &Opts{Rows: 1, Cols: 5})
	if err := d.Sweep(context.Background(), "X", 0, '(', ')', time.Microsecond); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"     ",
		"(   )",
		" ( ) ",
		" )X( ",
		") X (",
		"  X  ",
	}
	got := rowWrites(l.log)
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Sweep() frames:\n%q\nwant:\n%q", got, want)
	}
}

func TestSweepSingleColumn(t *testing.T) {
	d, l := getDev(t, &Opts{Rows: 1, Cols: 1})
	if err := d.Sweep(context.Background(), "Q", 0, '<', '>', time.Microsecond); err != nil {
		t.Fatal(err)
	}
	if got := rowWrites(l.log); strings.Join(got, "|") != " |Q" {
		t.Errorf("Sweep() frames = %q, want blank then final", got)
	}
}

func TestSweepCancelled(t *testing.T) {
	d, l := getDev(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := d.Sweep(ctx, "HI", 0, '>', '<', time.Second)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Sweep() error = %v, want %v", err, context.Canceled)
	}
	got := rowWrites(l.log)
	if n := len(got); n == 0 || got[n-1] != "       HI       " {
		t.Errorf("Sweep() frames = %q, want to end with the centred text", got)
	}
	if len(got) > 3 {
		t.Errorf("Sweep() wrote %d lines after cancellation", len(got))
	}
}

func TestSweepCancelledWhileWaiting(t *testing.T) {
	d, s := getSimDev(t, nil)
	d.sleep = nil
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	start := time.Now()
	err := d.Sweep(ctx, "HI", 0, '>', '<', time.Hour)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Sweep() error = %v, want %v", err, context.DeadlineExceeded)
	}
	if time.Since(start) > time.Minute {
		t.Error("Sweep() waited out the delay")
	}
	if got, want := s.Row(0), "       HI       "; got != want {
		t.Errorf("Row(0) = %q, want %q", got, want)
	}
}

func TestSweepTooLong(t *testing.T) {
	d, l := getDev(t, nil)
	err := d.Sweep(context.Background(), strings.Repeat("x", 17), 0, '>', '<', 0)
	if !errors.Is(err, ErrTooLong) {
		t.Errorf("Sweep() error = %v, want %v", err, ErrTooLong)
	}
	if len(l.log) != 0 {
		t.Errorf("Sweep() sent %v", l.log)
	}
}

func TestSweepMatchesPrintCentered(t *testing.T) {
	for _, s := range []string{"", "A", "HI", "ODD", "HELLO WORLD", "0123456789abcdef"} {
		d, sim := getSimDev(t, nil)
		if err := d.Sweep(context.Background(), s, 1, '>', '<', 0); err != nil {
			t.Fatal(err)
		}
		swept := sim.Row(1)
		if err := d.PrintCentered(s, 1); err != nil {
			t.Fatal(err)
		}
		if centered := sim.Row(1); swept != centered {
			t.Errorf("Sweep(%q) left %q, PrintCentered leaves %q", s, swept, centered)
		}
		if got := sim.Row(0); got != strings.Repeat(" ", 16) {
			t.Errorf("Sweep(%q) touched row 0: %q", s, got)
		}
	}
}
