package main

import (
	"os"
	_ "time/tzdata"
)

// Created: Mon Oct 19 10:12:07 2026

func main() {
	prog := newProg()
	ps := makeParamSet(prog)
	ps.Parse()

	os.Exit(prog.run())
}
