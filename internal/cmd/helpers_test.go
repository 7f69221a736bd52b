package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/newcomp/internal/errors"
	"github.com/opmodel/newcomp/internal/output"
	"github.com/opmodel/newcomp/internal/prompt"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// isolate points HOME and the working directory at fresh temp dirs and
// clears NEWCOMP_* overrides. It returns the working directory.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NEWCOMP_CONFIG", "")
	work := t.TempDir()
	t.Chdir(work)

	prev := isInteractive
	isInteractive = func() bool { return false }
	t.Cleanup(func() { isInteractive = prev })

	return work
}

func execute(t *testing.T, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	output.SetOutput(&stdout)
	errOut = &stderr
	t.Cleanup(func() {
		output.SetOutput(nil)
		errOut = os.Stderr
	})

	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()

	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func requireExitCode(t *testing.T, err error, code int) *oerrors.ExitError {
	t.Helper()
	var exitErr *oerrors.ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %v", err)
	assert.Equal(t, code, exitErr.Code, "error: %v", err)
	return exitErr
}

func readFile(t *testing.T, path ...string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(path...))
	require.NoError(t, err)
	return string(data)
}

func writeFile(t *testing.T, content string, path ...string) string {
	t.Helper()
	p := filepath.Join(path...)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// scriptedDriver answers prompts from fixed queues.
type scriptedDriver struct {
	inputs   []string
	selects  []int
	confirms []bool
	err      error
}

func (s *scriptedDriver) Input(context.Context, prompt.InputConfig) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if len(s.inputs) == 0 {
		return "", errors.New("no input scripted")
	}
	v := s.inputs[0]
	s.inputs = s.inputs[1:]
	return v, nil
}

func (s *scriptedDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	if len(s.confirms) == 0 {
		return false, errors.New("no confirm scripted")
	}
	v := s.confirms[0]
	s.confirms = s.confirms[1:]
	return v, nil
}

func (s *scriptedDriver) Select(context.Context, prompt.SelectConfig) (int, error) {
	if len(s.selects) == 0 {
		return 0, errors.New("no select scripted")
	}
	v := s.selects[0]
	s.selects = s.selects[1:]
	return v, nil
}

func useDriver(t *testing.T, d prompt.Driver) {
	t.Helper()
	prev := newPromptDriver
	newPromptDriver = func() prompt.Driver { return d }
	t.Cleanup(func() { newPromptDriver = prev })
}
