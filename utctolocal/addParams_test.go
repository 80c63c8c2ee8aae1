package main

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/paramset"
	"github.com/nickwells/param.mod/v6/paramtest"
	"github.com/nickwells/tempus.mod/tempus"
	"github.com/nickwells/testhelper.mod/v2/testhelper"
)

// cmpProgStruct compares the value with the expected value and returns
// an error if they differ
func cmpProgStruct(iVal, iExpVal any) error {
	val, ok := iVal.(*prog)
	if !ok {
		return errors.New("Bad value: not a pointer to a prog struct")
	}

	expVal, ok := iExpVal.(*prog)
	if !ok {
		return errors.New("Bad expected value: not a pointer to a prog struct")
	}

	if val.toZone.String() != expVal.toZone.String() {
		return fmt.Errorf("the toZone differs: %q != %q",
			val.toZone, expVal.toZone)
	}

	type cmpVals struct {
		outFormat   string
		showZone    bool
		dtStr       string
		timeSource  int
		promptMode  string
		listTZNames bool
	}

	return testhelper.DiffVals(
		cmpVals{
			outFormat:   val.outFormat,
			showZone:    val.showZone,
			dtStr:       val.dtStr,
			timeSource:  val.timeSource,
			promptMode:  val.promptMode,
			listTZNames: val.listTZNames,
		},
		cmpVals{
			outFormat:   expVal.outFormat,
			showZone:    expVal.showZone,
			dtStr:       expVal.dtStr,
			timeSource:  expVal.timeSource,
			promptMode:  expVal.promptMode,
			listTZNames: expVal.listTZNames,
		})
}

// makePSet returns a param set with the program params set up
func makePSet(prog *prog) *param.PSet {
	return paramset.NewNoHelpNoExitNoErrRptOrPanic(paramOptFuncs(prog)...)
}

// mkTestProg makes a new prog and calls the progSetters on it which are
// expected to set various fields as required.
func mkTestProg(progSetter ...func(prog *prog)) *prog {
	prog := newProg()
	for _, ps := range progSetter {
		ps(prog)
	}

	return prog
}

// mkTestParser populates and returns a paramtest.Parser ready to be added to
// the testcases.
func mkTestParser(
	id testhelper.ID, ps func(prog *prog), args ...string,
) paramtest.Parser {
	actVal := mkTestProg()
	expVal := mkTestProg(ps)

	return paramtest.Parser{
		ID:        id,
		Val:       actVal,
		Ps:        makePSet(actVal),
		ExpVal:    expVal,
		Args:      args,
		CheckFunc: cmpProgStruct,
	}
}

func TestParseParams(t *testing.T) {
	testCases := []paramtest.Parser{
		mkTestParser(testhelper.MkID("no params, no change"),
			func(_ *prog) {}),
		mkTestParser(testhelper.MkID("date-time"),
			func(prog *prog) {
				prog.dtStr = "2024-06-15 10:30:00"
				prog.timeSource = tsDateTimeStr
			},
			"-dt", "2024-06-15 10:30:00"),
		mkTestParser(testhelper.MkID("prompt always"),
			func(prog *prog) {
				prog.promptMode = promptAlways
			},
			"-prompt", promptAlways),
		mkTestParser(testhelper.MkID("no-prompt"),
			func(prog *prog) {
				prog.promptMode = promptNever
			},
			"-no-prompt"),
		mkTestParser(testhelper.MkID("to-zone UTC"),
			func(prog *prog) {
				prog.toZone = time.UTC
			},
			"-to-zone", "UTC"),
		mkTestParser(testhelper.MkID("show-zone"),
			func(prog *prog) {
				prog.showZone = true
			},
			"-show-tz"),
		mkTestParser(testhelper.MkID("format"),
			func(prog *prog) {
				prog.outFormat = "15:04"
			},
			"-fmt", "15:04"),
		mkTestParser(testhelper.MkID("format-timestamp"),
			func(prog *prog) {
				prog.outFormat = tempus.FormatTimestamp
			},
			"-fmt-ts"),
		mkTestParser(testhelper.MkID("format-iso8601"),
			func(prog *prog) {
				prog.outFormat = tempus.FormatISO8601
			},
			"-format-iso8601"),
	}

	for _, tc := range testCases {
		_ = tc.Test(t)
	}
}

func TestParseParamsBad(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		args []string
	}{
		{
			ID:   testhelper.MkID("format set twice"),
			args: []string{"-fmt-ts", "-fmt-iso"},
		},
		{
			ID:   testhelper.MkID("format and named format"),
			args: []string{"-fmt", "15:04", "-fmt-iso"},
		},
		{
			ID:   testhelper.MkID("empty format"),
			args: []string{"-fmt", ""},
		},
		{
			ID:   testhelper.MkID("date-time and prompt"),
			args: []string{"-dt", "2024-06-15 10:30:00", "-no-prompt"},
		},
		{
			ID:   testhelper.MkID("bad prompt value"),
			args: []string{"-prompt", "sometimes"},
		},
		{
			ID:   testhelper.MkID("bad timezone"),
			args: []string{"-to-zone", "Nowhere/Special"},
		},
	}

	for _, tc := range testCases {
		prog := newProg()
		ps := makePSet(prog)

		errs := ps.Parse(tc.args)
		if len(errs) == 0 {
			t.Log(tc.IDStr())
			t.Log("\t: args:", tc.args)
			t.Errorf("\t: parsing should have failed\n")
		}
	}
}
