package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nickwells/english.mod/english"
	"github.com/nickwells/tempus.mod/tempus"
	"github.com/nickwells/twrap.mod/twrap"
	"github.com/nickwells/utctolocal/internal/tsconv"
	"github.com/nickwells/verbose.mod/verbose"
	"golang.org/x/term"
)

const (
	tsStdin = iota
	tsDateTimeStr
)

const (
	promptAuto   = "auto"
	promptAlways = "always"
	promptNever  = "never"
)

const (
	exitStatusOK = iota
	exitStatusBadInput
)

// prog holds program parameters and status
type prog struct {
	toZone *time.Location

	outFormat string
	showZone  bool

	dtStr      string
	timeSource int
	promptMode string

	tzNames     []string
	listTZNames bool
}

// newProg returns a new prog instance with the default values set
func newProg() *prog {
	return &prog{
		toZone:     time.Local,
		outFormat:  tsconv.OutFormat,
		timeSource: tsStdin,
		promptMode: promptAuto,
		tzNames:    tempus.TimezoneNames(),
	}
}

// listTimezoneNames displays the Timezone names
func (prog *prog) listTimezoneNames() {
	verbose.Println(strconv.Itoa(len(prog.tzNames)) + " " +
		english.Plural("timezone name", len(prog.tzNames)))

	for _, n := range prog.tzNames {
		fmt.Println(n)
	}
}

// showPrompt returns true if the prompt should be shown before the
// timestamp is read from standard input
func (prog *prog) showPrompt() bool {
	switch prog.promptMode {
	case promptAlways:
		return true
	case promptNever:
		return false
	}

	return term.IsTerminal(int(os.Stdin.Fd())) //nolint:gosec
}

// readLine reads a single line from the reader and returns it with the
// line terminator removed. Reaching the end of the input is not an error,
// the text read so far (possibly empty) is returned.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}

// getTimestamp returns the text of the timestamp to be converted according
// to the parameters given
func (prog *prog) getTimestamp() (string, error) {
	if prog.timeSource == tsDateTimeStr {
		return prog.dtStr, nil
	}

	if prog.showPrompt() {
		fmt.Println(tsconv.Prompt)
	}

	return readLine(os.Stdin)
}

// reportBadTimestamp reports the parsing error and explains the required
// format
func reportBadTimestamp(err error) {
	fmt.Fprintln(os.Stderr, err)

	twc := twrap.NewTWConfOrPanic(twrap.SetWriter(os.Stderr))
	twc.Wrap("The UTC time must be given as the year"+
		" (including the century), the month number and the day of the"+
		" month separated by '-', then a single space, then the hour"+
		" (24-hour clock), minutes and seconds separated by ':'."+
		" Every part must have leading zeros,"+
		" for instance: '2024-06-15 09:05:00'",
		4)
}

// run converts the timestamp and prints the result. It returns the exit
// status of the program.
func (prog *prog) run() int {
	if prog.listTZNames {
		prog.listTimezoneNames()
		return exitStatusOK
	}

	c, err := tsconv.New(
		tsconv.SetLocation(prog.toZone),
		tsconv.SetFormat(prog.outFormat))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Cannot create the time converter:", err)
		return exitStatusBadInput
	}

	ts, err := prog.getTimestamp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Cannot read the UTC time:", err)
		return exitStatusBadInput
	}

	tIn, err := tsconv.Parse(ts)
	if err != nil {
		reportBadTimestamp(err)
		return exitStatusBadInput
	}

	verbose.Println("UTC time: " + tIn.Format(time.RFC3339))
	verbose.Println("location: " + c.Location().String())

	tOut := c.Convert(tIn)
	fmt.Println(c.Format(tOut))

	if prog.showZone {
		zone, _ := tOut.Zone()
		fmt.Printf("zone: %s (UTC%s)\n", zone, tOut.Format("-07:00"))
	}

	return exitStatusOK
}
