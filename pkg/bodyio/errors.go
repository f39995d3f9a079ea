// Package bodyio reads and writes the whitespace-delimited body text format:
// one record per body, fields "x y z vx vy vz mass radius" in that order,
// single-space separated.
package bodyio

import (
	"errors"
	"fmt"
)

// ErrInputMalformed indicates a record could not be parsed: the token count
// was not a multiple of eight, or a field was not a valid float64.
// Usage: if errors.Is(err, ErrInputMalformed) { /* reject the input file */ }.
var ErrInputMalformed = errors.New("bodyio: malformed input")

// ErrIoFailure indicates the underlying reader/writer or file could not be
// read from or written to.
// Usage: if errors.Is(err, ErrIoFailure) { /* retry or surface the I/O error */ }.
var ErrIoFailure = errors.New("bodyio: io failure")

// wrapf prefixes a formatted message onto sentinel, preserving it for
// errors.Is.
func wrapf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
