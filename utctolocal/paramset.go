package main

import (
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/paramset"
	"github.com/nickwells/verbose.mod/verbose"
	"github.com/nickwells/versionparams.mod/versionparams"
)

// paramOptFuncs returns the functions which populate the param set, apart
// from those adding the config files
func paramOptFuncs(prog *prog) []param.PSetOptFunc {
	return []param.PSetOptFunc{
		verbose.AddParams,
		versionparams.AddParams,

		addParams(prog),

		addExamples,

		param.SetProgramDescription(
			"this will read a date and time in UTC and show the" +
				" equivalent time in the local timezone." +
				"\n\n" +
				"The UTC time is read as a single line from standard" +
				" input unless it is given as a parameter. If standard" +
				" input is a terminal a prompt is shown first." +
				"\n\n" +
				"If the UTC time cannot be parsed the program reports" +
				" the problem and exits with a non-zero status."),
	}
}

// makeParamSet generates the param set ready for parsing
func makeParamSet(prog *prog) *param.PSet {
	return paramset.NewOrPanic(
		append(paramOptFuncs(prog),
			SetGlobalConfigFile,
			SetConfigFile)...)
}
