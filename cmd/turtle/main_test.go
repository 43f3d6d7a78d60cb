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

type runResult struct {
	code   int
	stdout string
	stderr string
	log    string
}

func runFile(t *testing.T, content string, flags ...string) runResult {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "commands.txt")
	logPath := filepath.Join(dir, "graphics.log")
	require.NoError(t, os.WriteFile(input, []byte(content), 0o644))

	var stdout, stderr bytes.Buffer
	args := append([]string{"--log", logPath}, flags...)
	code := run(append(args, input), &stdout, &stderr)

	data, err := os.ReadFile(logPath)
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("reading log: %v", err)
	}
	return runResult{code, stdout.String(), stderr.String(), string(data)}
}

func TestRunDraws(t *testing.T) {
	res := runFile(t, "MOVE 1\nPATTERN #\nDRAW 3\n")

	assert.Equal(t, 0, res.code)
	assert.Empty(t, res.stderr)
	assert.Equal(t, "---\n"+
		"MOVE (  0.000,   0.000)-(  1.000,   0.000)\n"+
		"DRAW (  1.000,   0.000)-(  4.000,   0.000)\n", res.log)
	assert.Contains(t, res.stdout, "\033[1;2H#\033[1;3H#\033[1;4H#")
	assert.NotContains(t, res.stdout, "\033[38;5;", "no color on a non-terminal")
}

func TestRunValidationExitCodes(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    int
		message string
	}{
		{"empty", " \n\n", 4, "The input file is empty."},
		{"arity", "MOVE 5 6\n", 5, `incorrect number of parameters`},
		{"unknown", "JUMP 5\n", 6, `The "JUMP" command does not exist.`},
		{"type", "MOVE abc\n", 7, `not "abc"`},
		{"range", "FG 99\n", 8, "between 0 and 15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runFile(t, tt.content)
			assert.Equal(t, tt.code, res.code)
			assert.Contains(t, res.stderr, tt.message)
			assert.Contains(t, res.stderr, "The input file is invalid.")
			assert.Empty(t, res.log, "nothing runs when validation fails")
			assert.Empty(t, res.stdout)
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "missing.txt")}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "could not be opened")
}

func TestRunUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"a.txt", "b.txt"}} {
		var stdout, stderr bytes.Buffer
		code := run(args, &stdout, &stderr)
		assert.Equal(t, exitUsage, code, "args %v", args)
		assert.Contains(t, stderr.String(), "Usage: turtle <fileName>")
	}
}

func TestRunBoundaryStopIsSuccess(t *testing.T) {
	res := runFile(t, "ROTATE 90\nMOVE 5\nFG 3\nDRAW 5\n")

	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stderr, "ERROR: Invalid drawing. Cursor position is not valid.")
	assert.Contains(t, res.stderr, "2 of 4 commands were not executed.")
	assert.Equal(t, 2, strings.Count(res.log, "\n"), "separator and the MOVE only")
}

func TestRunEchoLog(t *testing.T) {
	res := runFile(t, "MOVE 2\n", "--echo-log")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stderr, "MOVE (  0.000,   0.000)-(  2.000,   0.000)")
}

func TestRunLogAppends(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "commands.txt")
	logPath := filepath.Join(dir, "graphics.log")
	require.NoError(t, os.WriteFile(input, []byte("MOVE 1\n"), 0o644))

	for i := 0; i < 2; i++ {
		var stdout, stderr bytes.Buffer
		require.Equal(t, 0, run([]string{"--log", logPath, input}, &stdout, &stderr))
	}
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "---\n"))
}

func TestRunUnwritableLog(t *testing.T) {
	res := runFile(t, "MOVE 1\n", "--log", filepath.Join(t.TempDir(), "no", "such", "graphics.log"))
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "log file could not be opened")
}
