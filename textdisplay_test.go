package oled

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/display/displaytest"
)

func TestCursorModes(t *testing.T) {
	for _, tc := range []struct {
		name  string
		modes []display.CursorMode
		want  []record
	}{
		{"none keeps state", nil, cmds(0x0c)},
		{"off", []display.CursorMode{display.CursorOff}, cmds(0x0c)},
		{"underline", []display.CursorMode{display.CursorUnderline}, cmds(0x0e)},
		{"blink", []display.CursorMode{display.CursorBlink}, cmds(0x0d)},
		{"block", []display.CursorMode{display.CursorBlock}, cmds(0x0d)},
		{"both", []display.CursorMode{display.CursorUnderline, display.CursorBlink}, cmds(0x0f)},
		{"off then underline", []display.CursorMode{display.CursorOff, display.CursorUnderline}, cmds(0x0e)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, l := getDev(t, nil)
			if err := d.Cursor(tc.modes...); err != nil {
				t.Fatal(err)
			}
			if diff := diffRecords(l.log, tc.want); diff != "" {
				t.Errorf("Cursor() difference (-got +want):\n%s", diff)
			}
		})
	}
}

func TestCursorBadMode(t *testing.T) {
	d, l := getDev(t, nil)
	if err := d.Cursor(display.CursorMode(42)); err == nil {
		t.Error("Cursor(42) succeeded")
	}
	if len(l.log) != 0 {
		t.Errorf("Cursor(42) sent %v", l.log)
	}
}

func TestDisplayKeepsCursor(t *testing.T) {
	d, s := getSimDev(t, nil)
	if err := d.Cursor(display.CursorUnderline, display.CursorBlink); err != nil {
		t.Fatal(err)
	}
	if err := d.Display(false); err != nil {
		t.Fatal(err)
	}
	if s.On() {
		t.Error("display still on")
	}
	if err := d.Display(true); err != nil {
		t.Fatal(err)
	}
	if !s.On() {
		t.Error("display still off")
	}
	if cursor, blink := s.CursorMode(); !cursor || !blink {
		t.Errorf("CursorMode() = %t, %t, want both on", cursor, blink)
	}
}

func TestMove(t *testing.T) {
	d, l := getDev(t, nil)
	if err := d.Move(display.Forward); err != nil {
		t.Fatal(err)
	}
	if err := d.Move(display.Backward); err != nil {
		t.Fatal(err)
	}
	if diff := diffRecords(l.log, cmds(0x14, 0x10)); diff != "" {
		t.Errorf("Move() difference (-got +want):\n%s", diff)
	}
	for _, dir := range []display.CursorDirection{display.Up, display.Down} {
		if err := d.Move(dir); !errors.Is(err, display.ErrNotImplemented) {
			t.Errorf("Move(%d) error = %v, want %v", dir, err, display.ErrNotImplemented)
		}
	}
}

func TestMoveTo(t *testing.T) {
	for _, tc := range []struct {
		name     string
		opts     *Opts
		row, col int
		want     []record
		err      error
	}{
		{"top left", nil, 1, 1, cmds(0x80), nil},
		{"bottom right", nil, 2, 16, cmds(0xaf), nil},
		{"row zero", nil, 0, 1, nil, ErrRowRange},
		{"row past end", nil, 3, 1, nil, ErrRowRange},
		{"column zero", nil, 1, 0, nil, ErrColumnRange},
		{"column past end", nil, 1, 17, nil, ErrColumnRange},
		{"no saturation", &Opts{Saturate: true}, 3, 1, nil, ErrRowRange},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, l := getDev(t, tc.opts)
			err := d.MoveTo(tc.row, tc.col)
			if !errors.Is(err, tc.err) {
				t.Fatalf("MoveTo(%d, %d) error = %v, want %v", tc.row, tc.col, err, tc.err)
			}
			if diff := diffRecords(l.log, tc.want); diff != "" {
				t.Errorf("MoveTo(%d, %d) difference (-got +want):\n%s", tc.row, tc.col, diff)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	d, l := getDev(t, nil)
	n, err := d.WriteString("hello")
	if err != nil || n != 5 {
		t.Fatalf("WriteString() = %d, %v", n, err)
	}
	if diff := diffRecords(l.log, text("hello")); diff != "" {
		t.Errorf("WriteString() difference (-got +want):\n%s", diff)
	}

	l.log = nil
	l.err = errors.New("bus gone")
	n, err = d.Write([]byte("abc"))
	if n != 0 || !errors.Is(err, l.err) {
		t.Errorf("Write() = %d, %v, want 0, %v", n, err, l.err)
	}
}

func TestGeometryAccessors(t *testing.T) {
	d, _ := getDev(t, &Opts{Rows: 4, Cols: 20})
	if d.MinRow() != 1 || d.MinCol() != 1 {
		t.Errorf("MinRow, MinCol = %d, %d, want 1, 1", d.MinRow(), d.MinCol())
	}
	if d.Rows() != 4 || d.Cols() != 20 {
		t.Errorf("Rows, Cols = %d, %d, want 4, 20", d.Rows(), d.Cols())
	}
}

func TestAutoScroll(t *testing.T) {
	d, l := getDev(t, nil)
	for _, enabled := range []bool{true, false} {
		if err := d.AutoScroll(enabled); !errors.Is(err, ErrNotSupported) {
			t.Errorf("AutoScroll(%t) error = %v, want %v", enabled, err, ErrNotSupported)
		}
	}
	if len(l.log) != 0 {
		t.Errorf("AutoScroll sent %v", l.log)
	}
}

func TestHalt(t *testing.T) {
	d, l := getDev(t, nil)
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	want := join(cmds(0x01), ms10, cmds(0x08), ms10)
	if diff := diffRecords(l.log, want); diff != "" {
		t.Errorf("Halt() difference (-got +want):\n%s", diff)
	}
}

func TestTextDisplayOnSim(t *testing.T) {
	d, s := getSimDev(t, nil)
	if err := d.MoveTo(2, 5); err != nil {
		t.Fatal(err)
	}
	if _, err := d.WriteString("abc"); err != nil {
		t.Fatal(err)
	}
	if got, want := s.Row(1), "    abc         "; got != want {
		t.Errorf("Row(1) = %q, want %q", got, want)
	}
	if err := d.Move(display.Backward); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Write([]byte{'C'}); err != nil {
		t.Fatal(err)
	}
	if got, want := s.Row(1), "    abC         "; got != want {
		t.Errorf("Row(1) = %q, want %q", got, want)
	}
}

func TestInterface(t *testing.T) {
	for _, opts := range []*Opts{nil, {Rows: 4, Cols: 20}} {
		d, s := getSimDev(t, opts)
		for _, err := range displaytest.TestTextDisplay(d, false) {
			if !errors.Is(err, display.ErrNotImplemented) {
				t.Error(err)
			}
		}
		if s.FramingErrors() != 0 {
			t.Errorf("%d framing errors", s.FramingErrors())
		}
	}
}
