/*
Package tsconv converts a UTC timestamp, given as text, into the
equivalent time in some other location (by default the local timezone of
the host) and formats it for display.

The input must be in the form:

	YYYY-MM-DD HH:MM:SS

with every field zero-padded and the hour given on a 24-hour clock. The
default output form is:

	DD/MM/YYYY hh:mm:ssAM

with a 12-hour clock and the AM/PM indicator immediately following the
seconds.
*/
package tsconv
