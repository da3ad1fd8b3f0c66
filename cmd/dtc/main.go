// Command dtc reads one or more decision-table CSV files and emits a
// minimum-worst-case-depth decision tree for them as a line-oriented
// pseudocode listing on stdout.
package main

import "os"

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(exitDiagnosed)
	}
	os.Exit(run(cfg, os.Stdout, os.Stderr))
}
