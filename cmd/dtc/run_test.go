package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunEmitsProgramForValidTable(t *testing.T) {
	dir := t.TempDir()
	path := writeTable(t, dir, "t.csv", "@B,A\nx,1\ny,2\n")

	var stdout, stderr bytes.Buffer
	code := run(runConfig{files: []string{path}}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Empty(t, stderr.String())
	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "D,"))
	assert.Contains(t, out, "I,A,1")
	assert.Contains(t, out, "O,B,x")
}

func TestRunDefaultsToExitOKOnDiagnosedError(t *testing.T) {
	dir := t.TempDir()
	path := writeTable(t, dir, "t.csv", "@A\nx\n") // single Name, no conditions

	var stdout, stderr bytes.Buffer
	code := run(runConfig{files: []string{path}}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.NotEmpty(t, stderr.String())
	assert.Empty(t, stdout.String())
}

func TestRunStrictExitReturnsDiagnosedCode(t *testing.T) {
	dir := t.TempDir()
	path := writeTable(t, dir, "t.csv", "@A\nx\n")

	var stdout, stderr bytes.Buffer
	code := run(runConfig{files: []string{path}, strictExit: true}, &stdout, &stderr)

	assert.Equal(t, exitDiagnosed, code)
}

func TestRunRejectsMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(runConfig{files: []string{"/no/such/file.csv"}, strictExit: true}, &stdout, &stderr)

	assert.Equal(t, exitDiagnosed, code)
	assert.NotEmpty(t, stderr.String())
}

func TestParseConfigRequiresAtLeastOneFile(t *testing.T) {
	var stderr bytes.Buffer
	_, err := parseConfig(nil, &stderr)
	require.Error(t, err)
}

func TestParseConfigParsesQuickAndVerboseFlags(t *testing.T) {
	var stderr bytes.Buffer
	cfg, err := parseConfig([]string{"-q", "-v", "a.csv", "b.csv"}, &stderr)

	require.NoError(t, err)
	assert.True(t, cfg.quick)
	assert.True(t, cfg.verbose)
	assert.Equal(t, []string{"a.csv", "b.csv"}, cfg.files)
}
