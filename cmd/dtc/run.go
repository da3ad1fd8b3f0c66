package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/decisiontable/dtc/analysis"
	"github.com/decisiontable/dtc/cellsrc"
	"github.com/decisiontable/dtc/emit"
	"github.com/decisiontable/dtc/intern"
	"github.com/decisiontable/dtc/loader"
	"github.com/decisiontable/dtc/tree"
)

const (
	exitOK = iota
	exitDiagnosed
)

func newLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.Out = w
	logger.Formatter = &logrus.TextFormatter{DisableColors: true, FullTimestamp: false}
	return logger
}

// run loads cfg.files through one shared Loader, synthesizes a decision
// tree over the result and writes its pseudocode listing to stdout.
// Every diagnosable error is logged to stderr and stops the run; the
// original always exits 0 regardless, so by default run does too —
// cfg.strictExit is the only way to get exitDiagnosed back out.
func run(cfg runConfig, stdout, stderr io.Writer) int {
	logger := newLogger(stderr)
	reg := intern.NewRegistry()
	ld := loader.New(reg)

	for _, path := range cfg.files {
		if err := loadFile(ld, path); err != nil {
			logDiagnostic(logger, path, err)
			return cfg.exitCode()
		}
	}
	if err := ld.Finish(); err != nil {
		logDiagnostic(logger, "", err)
		return cfg.exitCode()
	}

	if cfg.verbose {
		logger.WithFields(logrus.Fields{
			"names":      reg.Names.Len(),
			"inferences": reg.Inferences.Len(),
		}).Info("loaded")
	}

	independent, err := analysis.Compute(reg)
	if err != nil {
		logDiagnostic(logger, "", err)
		return cfg.exitCode()
	}
	if cfg.verbose {
		logger.WithFields(logrus.Fields{"independent": independent.Len()}).Info("analyzed")
	}

	root := tree.NewBuilder(cfg.quick).Build(independent, reg.Inferences)
	if err := emit.Check(root); err != nil {
		logDiagnostic(logger, "", err)
		return cfg.exitCode()
	}
	if err := emit.Emit(stdout, independent, reg.Inferences, root); err != nil {
		logDiagnostic(logger, "", err)
		return cfg.exitCode()
	}
	return exitOK
}

func loadFile(ld *loader.Loader, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := cellsrc.NewReader(f)
	for {
		row, err := r.ReadRow()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := ld.LoadRow(path, row); err != nil {
			return err
		}
	}
}

func logDiagnostic(logger *logrus.Logger, file string, err error) {
	logger.WithFields(logrus.Fields{"file": file}).Error(err)
}
