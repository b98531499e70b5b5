package oled

import (
	"errors"
	"fmt"
	"strings"

	"periph.io/x/conn/v3/display"
)

const packageName = "oled"

var (
	// ErrGeometry is returned for a row or column count the controller
	// cannot address.
	ErrGeometry = errors.New("oled: unsupported geometry")

	// ErrRowRange is returned when a row is outside the configured geometry.
	ErrRowRange = errors.New("oled: row out of range")

	// ErrColumnRange is returned when a column is outside the configured
	// geometry.
	ErrColumnRange = errors.New("oled: column out of range")

	// ErrTooLong is returned when text does not fit on the display line.
	ErrTooLong = errors.New("oled: text longer than display line")

	// ErrNoEntry is returned when a Table has no entry at the given index.
	ErrNoEntry = errors.New("oled: no such table entry")

	// ErrNotSupported is returned by operations the controller has no
	// equivalent for. It matches display.ErrNotImplemented with errors.Is.
	ErrNotSupported = fmt.Errorf("%s: %w", packageName, display.ErrNotImplemented)
)

func wrap(err error) error {
	if err == nil || strings.HasPrefix(err.Error(), packageName) {
		return err
	}
	return fmt.Errorf("%s: %w", packageName, err)
}
