package tsconv

import (
	"errors"
	"fmt"
	"time"
)

const (
	// InFormat is the layout of the timestamp to be converted
	InFormat = "2006-01-02 15:04:05"
	// InFormatDesc describes InFormat in the terms a user would expect
	InFormatDesc = "yyyy-mm-dd HH:MM:SS"
	// OutFormat is the default layout of the converted time
	OutFormat = "02/01/2006 03:04:05PM"

	// Prompt is the text shown to an interactive user before the
	// timestamp is read
	Prompt = "Enter UTC time in the format of " + InFormatDesc
)

// checkShape checks that the string has exactly the shape of the InFormat
// layout: a digit wherever the layout has a digit and the same separator
// wherever the layout has a separator. The time package is more lenient
// than this; it accepts a single-digit hour and trailing fractional
// seconds.
func checkShape(s string) error {
	runes := []rune(s)
	if len(runes) != len(InFormat) {
		return fmt.Errorf("the timestamp has %d characters, it should have %d",
			len(runes), len(InFormat))
	}

	for i, r := range runes {
		lc := rune(InFormat[i])

		if isDigit(lc) {
			if !isDigit(r) {
				return fmt.Errorf("character %d (%q) should be a digit",
					i+1, r)
			}

			continue
		}

		if r != lc {
			return fmt.Errorf("character %d (%q) should be %q", i+1, r, lc)
		}
	}

	return nil
}

// isDigit returns true if the rune is an ASCII digit
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Parse interprets the string as a UTC timestamp. The fields are taken
// exactly as given and labelled as UTC; no offset is applied. Any problem
// is reported as a MalformedInputError.
func Parse(s string) (time.Time, error) {
	if err := checkShape(s); err != nil {
		return time.Time{}, &MalformedInputError{Input: s, Err: err}
	}

	t, err := time.ParseInLocation(InFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, &MalformedInputError{Input: s, Err: err}
	}

	return t, nil
}

// Converter holds the details needed to convert and format a time
type Converter struct {
	loc       *time.Location
	outFormat string
}

// OptFunc is the type of a function that can be passed to New to
// configure the Converter
type OptFunc func(c *Converter) error

// SetLocation returns an OptFunc that sets the location in which the
// converted time is presented
func SetLocation(loc *time.Location) OptFunc {
	return func(c *Converter) error {
		if loc == nil {
			return errors.New("the location must not be nil")
		}

		c.loc = loc

		return nil
	}
}

// SetFormat returns an OptFunc that sets the layout used to format the
// converted time
func SetFormat(f string) OptFunc {
	return func(c *Converter) error {
		if f == "" {
			return errors.New("the output format must not be empty")
		}

		c.outFormat = f

		return nil
	}
}

// New returns a Converter presenting times in the local timezone in the
// default output format, as modified by the options.
func New(opts ...OptFunc) (*Converter, error) {
	c := &Converter{
		loc:       time.Local,
		outFormat: OutFormat,
	}

	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Location returns the location in which converted times are presented
func (c *Converter) Location() *time.Location {
	return c.loc
}

// Convert returns the same instant as t expressed in the Converter's
// location
func (c *Converter) Convert(t time.Time) time.Time {
	return t.In(c.loc)
}

// Format returns t formatted with the Converter's output format
func (c *Converter) Format(t time.Time) string {
	return t.Format(c.outFormat)
}

// ConvertString parses s as a UTC timestamp and returns it converted and
// formatted.
func (c *Converter) ConvertString(s string) (string, error) {
	t, err := Parse(s)
	if err != nil {
		return "", err
	}

	return c.Format(c.Convert(t)), nil
}
