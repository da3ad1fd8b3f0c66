package main

import (
	"flag"
	"fmt"
	"io"
)

// runConfig is resolved once from the argument vector and never mutated
// afterward ("resolve options once into an immutable value"), holding
// one boolean pair and a file list.
//
// strictExit has no corresponding flag; it exists so a caller other than
// main (a test, say) can ask for the diagnosed-error exit code instead
// of the default unconditional success.
type runConfig struct {
	quick      bool
	verbose    bool
	strictExit bool
	files      []string
}

func parseConfig(args []string, stderr io.Writer) (runConfig, error) {
	fs := flag.NewFlagSet("dtc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	quick := fs.Bool("q", false, "accept the first feasible decision tree instead of the minimum-depth one")
	verbose := fs.Bool("v", false, "print Names/Inferences/Independent-values summary diagnostics")

	if err := fs.Parse(args); err != nil {
		return runConfig{}, err
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "dtc: no input files")
		return runConfig{}, flag.ErrHelp
	}

	return runConfig{quick: *quick, verbose: *verbose, files: fs.Args()}, nil
}

func (cfg runConfig) exitCode() int {
	if cfg.strictExit {
		return exitDiagnosed
	}
	return exitOK
}
