// Copyright (c) 2025 The basics Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "basics/cli/internal/errors"
	"basics/cli/internal/render"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var variablesOutput = `The value of x is: 5
The value of y is: 10
The new value of y is: 15
The value of z is: 30
The maximum points are: 100000
The value of a is: 30
The value of b is: 3.14
The value of c is: 42
String variable: Hello, Rust!
String slice variable: Hello, World!
Is Rust fun? true
Character variable: R
Array variable: [1, 2, 3, 4, 5]
Tuple variable: (42, 3.14, 'R')
`

var functionsOutput = `Hello, Rust world!
Hello, Alice!
Sum: 5
Area: 8.75
Quotient: 3, Remainder: 1
Is 5 even? false
This function returns unit
Result: 5
Double: 10
Triple: 15
`

type countingWaiter struct{ calls int }

func (w *countingWaiter) Wait() error { w.calls++; return nil }

// execute runs the command tree with an isolated config directory.
func execute(t *testing.T, a *app, args ...string) (string, string, error) {
	t.Helper()
	return executeIn(t, t.TempDir(), a, args...)
}

// executeIn runs the command tree with XDG_CONFIG_HOME set to base.
func executeIn(t *testing.T, base string, a *app, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", base)
	t.Setenv("BASICS_FORMAT", "")
	t.Setenv("BASICS_LOG_LEVEL", "")
	t.Setenv("BASICS_PAUSE", "")

	if a == nil {
		a = newApp()
		a.interactive = func() bool { return false }
	}
	root := newRootCmd(a)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestLessonCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"variables"}, want: variablesOutput},
		{args: []string{"functions"}, want: functionsOutput},
		{args: []string{"run"}, want: variablesOutput + functionsOutput},
		{args: []string{"run", "functions", "variables"}, want: functionsOutput + variablesOutput},
		{args: []string{"variables", "--format", "text"}, want: variablesOutput},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := execute(t, nil, tt.args...)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, out); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnknownLesson(t *testing.T) {
	out, _, err := execute(t, nil, "run", "loops")
	require.Error(t, err)
	assert.Equal(t, apperrors.UnknownLesson, apperrors.KindOf(err))
	assert.Empty(t, out)
}

func TestUnknownFormat(t *testing.T) {
	_, _, err := execute(t, nil, "variables", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, apperrors.UnknownFormat, apperrors.KindOf(err))
}

func TestLessonCommandRejectsArgs(t *testing.T) {
	_, _, err := execute(t, nil, "functions", "extra")
	assert.Error(t, err)
}

func TestJSONOutput(t *testing.T) {
	out, _, err := execute(t, nil, "run", "--format", "json")
	require.NoError(t, err)

	var doc render.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Lessons, 2)
	assert.Equal(t, "variables", doc.Lessons[0].Name)
	assert.Equal(t, "functions", doc.Lessons[1].Name)
	assert.Equal(t, "Double: 10", doc.Lessons[1].Steps[8].Line)
	assert.Equal(t, "Closure", doc.Lessons[1].Steps[8].Topic)
}

func TestFormatFromConfigFile(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "basics")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"format":"json"}`), 0o600))

	a := newApp()
	a.interactive = func() bool { return false }
	root := newRootCmd(a)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"functions"})
	t.Setenv("XDG_CONFIG_HOME", base)
	t.Setenv("BASICS_FORMAT", "")
	require.NoError(t, root.Execute())
	assert.True(t, json.Valid(out.Bytes()), "expected json output, got %q", out.String())
}

func TestPause(t *testing.T) {
	t.Run("waits between lessons when interactive", func(t *testing.T) {
		w := &countingWaiter{}
		a := newApp()
		a.pauser = w
		a.interactive = func() bool { return true }

		out, _, err := execute(t, a, "run", "--pause")
		require.NoError(t, err)
		assert.Equal(t, 1, w.calls)
		assert.Equal(t, variablesOutput+functionsOutput, out)
	})

	t.Run("skipped when not interactive", func(t *testing.T) {
		w := &countingWaiter{}
		a := newApp()
		a.pauser = w
		a.interactive = func() bool { return false }

		_, _, err := execute(t, a, "run", "--pause")
		require.NoError(t, err)
		assert.Zero(t, w.calls)
	})

	t.Run("skipped for json", func(t *testing.T) {
		w := &countingWaiter{}
		a := newApp()
		a.pauser = w
		a.interactive = func() bool { return true }

		_, _, err := execute(t, a, "run", "--pause", "--format", "json")
		require.NoError(t, err)
		assert.Zero(t, w.calls)
	})
}

func TestList(t *testing.T) {
	out, _, err := execute(t, nil, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "variables "))
	assert.True(t, strings.HasPrefix(lines[1], "functions "))
}

func TestListJSON(t *testing.T) {
	out, _, err := execute(t, nil, "list", "--format", "json")
	require.NoError(t, err)

	var entries []listEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "functions", entries[1].Name)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, nil, "version")
	require.NoError(t, err)
	assert.Equal(t, "basics "+Version+"\n", out)

	out, _, err = execute(t, nil, "--version")
	require.NoError(t, err)
	assert.Equal(t, "basics "+Version+"\n", out)
}

// writeConfig stores raw config file contents under base.
func writeConfig(t *testing.T, base, contents string) {
	t.Helper()
	dir := filepath.Join(base, "basics")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(contents), 0o600))
}

func TestBrokenConfigIsReported(t *testing.T) {
	base := t.TempDir()
	writeConfig(t, base, `{`)

	out, errOut, err := executeIn(t, base, nil, "functions")
	require.NoError(t, err)
	assert.Equal(t, functionsOutput, out)
	assert.Contains(t, errOut, "config ignored")
}

func TestBrokenConfigKeepsEnvFormat(t *testing.T) {
	base := t.TempDir()
	writeConfig(t, base, `{`)

	a := newApp()
	a.interactive = func() bool { return false }
	root := newRootCmd(a)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"functions"})
	t.Setenv("XDG_CONFIG_HOME", base)
	t.Setenv("BASICS_FORMAT", "json")
	t.Setenv("BASICS_LOG_LEVEL", "")
	t.Setenv("BASICS_PAUSE", "")

	require.NoError(t, root.Execute())
	assert.True(t, json.Valid(out.Bytes()), "expected json output, got %q", out.String())
	assert.Contains(t, errOut.String(), "config ignored")
}

func TestPlainRunCreatesNothing(t *testing.T) {
	base := t.TempDir()

	_, errOut, err := executeIn(t, base, nil, "variables")
	require.NoError(t, err)
	assert.Empty(t, errOut)

	_, err = os.Stat(filepath.Join(base, "basics"))
	assert.True(t, os.IsNotExist(err), "running a lesson created the config directory")
}

func TestConfigHomeIsAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	out, errOut, err := executeIn(t, file, nil, "variables")
	require.NoError(t, err)
	assert.Equal(t, variablesOutput, out)
	assert.Empty(t, errOut)
}

func TestInvalidLogLevelFallsBack(t *testing.T) {
	base := t.TempDir()
	writeConfig(t, base, `{"log_level":"loud"}`)

	out, errOut, err := executeIn(t, base, nil, "functions")
	require.NoError(t, err)
	assert.Equal(t, functionsOutput, out)
	assert.Contains(t, errOut, "log level ignored")
	assert.Contains(t, errOut, `"loud"`)
}

func TestConfigSetShowPath(t *testing.T) {
	base := t.TempDir()

	out, _, err := executeIn(t, base, nil, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "basics", "config.json")+"\n", out)
	_, err = os.Stat(filepath.Join(base, "basics"))
	assert.True(t, os.IsNotExist(err), "config path created the directory")

	out, _, err = executeIn(t, base, nil, "config", "set", "format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved format to ")

	_, _, err = executeIn(t, base, nil, "config", "set", "pause", "true")
	require.NoError(t, err)

	out, _, err = executeIn(t, base, nil, "config", "show")
	require.NoError(t, err)
	assert.JSONEq(t, `{"log_level":"info","format":"json","pause":true}`, out)

	// the saved format now drives lesson output
	out, _, err = executeIn(t, base, nil, "functions")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), "expected json output, got %q", out)
}

func TestConfigSetRejectsBadValues(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantKind apperrors.Kind
	}{
		{name: "unknown key", args: []string{"config", "set", "colour", "red"}, wantKind: apperrors.ConfigInvalid},
		{name: "bad pause", args: []string{"config", "set", "pause", "soon"}, wantKind: apperrors.ConfigInvalid},
		{name: "bad format", args: []string{"config", "set", "format", "xml"}, wantKind: apperrors.UnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := t.TempDir()
			_, _, err := executeIn(t, base, nil, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperrors.KindOf(err))

			_, err = os.Stat(filepath.Join(base, "basics", "config.json"))
			assert.True(t, os.IsNotExist(err), "rejected value was saved")
		})
	}

	t.Run("bad log level", func(t *testing.T) {
		_, _, err := execute(t, nil, "config", "set", "log_level", "loud")
		assert.Error(t, err)
	})
}
