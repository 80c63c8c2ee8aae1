package tsconv

import (
	"errors"
	"fmt"
)

// MalformedInputError is returned when the text to be converted is not a
// valid UTC timestamp in the expected format.
type MalformedInputError struct {
	Input string
	Err   error
}

// Error returns the error message
func (e *MalformedInputError) Error() string {
	msg := fmt.Sprintf("bad UTC timestamp: %q is not in the format %q",
		e.Input, InFormatDesc)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the underlying cause
func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// IsMalformedInput returns true if err is, or wraps, a MalformedInputError
func IsMalformedInput(err error) bool {
	var mie *MalformedInputError

	return errors.As(err, &mie)
}
