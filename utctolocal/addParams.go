package main

import (
	"errors"
	"fmt"

	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/location.mod/location"
	"github.com/nickwells/param.mod/v6/paction"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
	"github.com/nickwells/tempus.mod/tempus"
)

const (
	paramNameDateTime          = "date-time"
	paramNamePrompt            = "prompt"
	paramNameToZone            = "to-zone"
	paramNameListTimezoneNames = "list-timezone-names"
	paramNameFormat            = "format"

	groupNameInput      = param.DfltGroupName + "-input"
	groupNameTimezone   = param.DfltGroupName + "-timezone"
	groupNameFormatting = param.DfltGroupName + "-formatting"
)

// setFormat returns an action func that will set the output format
func setFormat(prog *prog, fmt string) param.ActionFunc {
	return func(_ location.L, _ *param.ByName, _ []string) error {
		prog.outFormat = fmt

		return nil
	}
}

// addParams adds the parameters for this program
func addParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		if err := addInputParams(prog, ps); err != nil {
			return err
		}

		if err := addTimezoneParams(prog, ps); err != nil {
			return err
		}

		addFormattingParams(prog, ps)

		return nil
	}
}

// addInputParams adds the parameters controlling where the UTC time comes
// from
func addInputParams(prog *prog, ps *param.PSet) error {
	ps.AddGroup(groupNameInput, "input parameters\n\n"+
		"These control how the UTC time to be converted is obtained."+
		" The default is to read a single line from standard input.")

	dtParam := ps.Add(paramNameDateTime,
		psetter.String[string]{Value: &prog.dtStr},
		"the UTC date and time to be converted."+
			" If this is given then standard input is not read."+
			"\n\n"+
			"The date must be given as the year (including the century),"+
			" the month number and the day of the month, with leading"+
			" zeros and separated by '-'."+
			"\n\n"+
			"The time is separated from the date by a single space and"+
			" is in 24-hour form with leading zeros and a colon (':')"+
			" between the hours, minutes and seconds."+
			"\n\n"+
			"For instance: '2024-06-15 15:10:30'",
		param.AltNames("dt"),
		param.GroupName(groupNameInput),
		param.PostAction(paction.SetVal(&prog.timeSource, tsDateTimeStr)),
	)

	var promptCounter paction.Counter

	promptCounterAF := (&promptCounter).MakeActionFunc()

	ps.Add(paramNamePrompt,
		psetter.Enum[string]{
			Value: &prog.promptMode,
			AllowedVals: psetter.AllowedVals[string]{
				promptAuto: "show the prompt only if standard input" +
					" is a terminal",
				promptAlways: "always show the prompt",
				promptNever:  "never show the prompt",
			},
		},
		"when to show the prompt before reading the UTC time"+
			" from standard input",
		param.GroupName(groupNameInput),
		param.PostAction(promptCounterAF),
	)

	ps.Add("no-prompt", psetter.Nil{},
		"don't show the prompt before reading the UTC time",
		param.PostAction(paction.SetVal(&prog.promptMode, promptNever)),
		param.PostAction(promptCounterAF),
		param.GroupName(groupNameInput),
		param.SeeAlso(paramNamePrompt),
	)

	ps.AddFinalCheck(func() error {
		if dtParam.HasBeenSet() && promptCounter.Count() > 0 {
			return fmt.Errorf(
				"you have given %q so nothing is read and there is no prompt"+
					" but you have also set the prompt: %s",
				dtParam.Name(), promptCounter.SetBy())
		}

		return nil
	})

	return nil
}

// addTimezoneParams adds the parameters controlling the timezone in which
// the converted time is shown
func addTimezoneParams(prog *prog, ps *param.PSet) error {
	ps.AddGroup(groupNameTimezone, "time-zone parameters")

	toZoneParam := ps.Add(paramNameToZone,
		psetter.TimeLocation{Value: &prog.toZone, Locations: prog.tzNames},
		"the timezone in which to present the converted time."+
			" By default this is the local timezone.",
		param.AltNames("to-timezone", "to-tz"),
		param.GroupName(groupNameTimezone))

	ps.Add("show-zone", psetter.Bool{Value: &prog.showZone},
		"after the converted time, show the timezone and offset used",
		param.AltNames("show-tz", "show-timezone"),
		param.GroupName(groupNameTimezone))

	if len(prog.tzNames) > 0 {
		ps.Add(paramNameListTimezoneNames,
			psetter.Bool{Value: &prog.listTZNames},
			`list all the available timezones`,
			param.Attrs(param.CommandLineOnly|param.DontShowInStdUsage),
			param.AltNames("list-tz-names", "list-timezones"),
			param.GroupName(groupNameTimezone))

		err := param.SeeAlso(paramNameListTimezoneNames)(toZoneParam)
		if err != nil {
			return err
		}
	}

	return nil
}

// addFormattingParams adds the parameters controlling how the converted
// time is shown
func addFormattingParams(prog *prog, ps *param.PSet) {
	var fmtCounter paction.Counter

	fmtCounterAF := (&fmtCounter).MakeActionFunc()

	ps.AddGroup(groupNameFormatting, "formatting parameters\n\n"+
		"These are used to control how the converted time is shown."+
		" The default format is "+
		"'DD/MM/YYYY hh:mm:ssAM' (a 12-hour clock)")

	ps.Add(paramNameFormat,
		psetter.String[string]{
			Value: &prog.outFormat,
			Checks: []check.String{
				check.StringLength[string](check.ValGT(0)),
			},
		},
		"the format in which to display the converted time."+
			" Note that this format uses the Go programming language"+
			" time formatting specification.\n\n"+
			"for the year use '06' (or '2006' for the century as well)\n"+
			"for the month use '1', '01', 'Jan' or 'January'\n"+
			"for the day of the month use '2' or '02'\n"+
			"for the hour use '03' (or '15' for a 24-hour clock)\n"+
			"for the minute and second use '04' and '05'\n"+
			"to show AM or PM use 'PM'\n"+
			"to show the timezone use 'MST'",
		param.AltNames("fmt"),
		param.GroupName(groupNameFormatting),
		param.PostAction(fmtCounterAF),
	)

	ps.Add("format-timestamp",
		psetter.Nil{},
		"set the output format to one suitable for use as a timestamp:"+
			"\n\n"+
			tempus.FormatTimestamp,
		param.AltNames("fmt-ts"),
		param.GroupName(groupNameFormatting),
		param.PostAction(fmtCounterAF),
		param.PostAction(setFormat(prog, tempus.FormatTimestamp)),
	)

	ps.Add("format-iso8601",
		psetter.Nil{},
		"set the output format to that given by ISO 8601:"+
			"\n\n"+
			tempus.FormatISO8601,
		param.AltNames("fmt-iso"),
		param.GroupName(groupNameFormatting),
		param.PostAction(fmtCounterAF),
		param.PostAction(setFormat(prog, tempus.FormatISO8601)),
	)

	ps.AddFinalCheck(func() error {
		if fmtCounter.Count() > 1 {
			return errors.New(
				"the output format has been set multiple times: " +
					fmtCounter.SetBy())
		}

		return nil
	})
}
