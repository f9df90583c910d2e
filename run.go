package zenity

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"
)

// Exit codes zenity is known to produce. Some builds report 256 instead of 1
// for a negative response; both mean the same thing.
const (
	exitAffirmed  = 0
	exitRejected  = 1
	exitRejected2 = 256
)

// rawResult is what one finished zenity process left behind.
type rawResult struct {
	stdout   []byte
	stderr   []byte
	exitCode int
}

// runner is the seam between outcome classification and process spawning.
// Tests substitute canned results.
type runner interface {
	run(command string, args []string) (rawResult, error)
}

type execRunner struct{}

func (execRunner) run(command string, args []string) (rawResult, error) {
	cmd := exec.Command(command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		// A non-zero exit is a normal zenity answer, not a spawn failure.
	case errors.Is(err, exec.ErrNotFound):
		return rawResult{}, fmt.Errorf("%w: %v", ErrNotInstalled, err)
	default:
		return rawResult{}, fmt.Errorf("run %s: %w", command, err)
	}

	code := cmd.ProcessState.ExitCode()
	if code < 0 {
		// Terminated by a signal; there is no exit code to classify.
		return rawResult{}, ErrMissingExitCode
	}

	return rawResult{
		stdout:   stdout.Bytes(),
		stderr:   stderr.Bytes(),
		exitCode: code,
	}, nil
}

// Show invokes zenity with the dialog's argument vector, blocks until the
// process exits and classifies the result:
//
//	exit 0, empty stdout      ResponseAffirmed, no content
//	exit 0, stdout            ResponseAffirmed, content = kind.Parse(stdout)
//	exit 1 or 256, empty      ResponseRejected, no content
//	exit 1 or 256, stdout     ResponseRejected, raw stdout
//	anything else             ResponseUnknown with the full raw result
//
// Spawn failures, non-UTF-8 output, a missing exit code and kind parser
// failures are returned as errors; an unrecognized exit code is not.
func (d Dialog[T]) Show() (Outcome[T], error) {
	run := d.run
	if run == nil {
		run = execRunner{}
	}
	command := d.command
	if command == "" {
		command = DefaultCommand
	}

	raw, err := run.run(command, d.argv())
	if err != nil {
		return Outcome[T]{}, err
	}
	return classify(d.kind, raw)
}

// classify maps a raw process result to an Outcome. Pure: identical inputs
// always produce identical outcomes.
func classify[T any](kind Kind[T], raw rawResult) (Outcome[T], error) {
	if !utf8.Valid(raw.stdout) {
		return Outcome[T]{}, ErrInvalidOutput
	}
	stdout := strings.TrimSpace(string(raw.stdout))

	switch raw.exitCode {
	case exitAffirmed:
		if stdout == "" {
			return Outcome[T]{Response: ResponseAffirmed}, nil
		}
		content, err := kind.Parse(stdout)
		if err != nil {
			return Outcome[T]{}, &ParseError{Raw: stdout, Err: err}
		}
		return Outcome[T]{Response: ResponseAffirmed, Content: &content}, nil

	case exitRejected, exitRejected2:
		if stdout == "" {
			return Outcome[T]{Response: ResponseRejected}, nil
		}
		return Outcome[T]{Response: ResponseRejected, Raw: &stdout}, nil

	default:
		return Outcome[T]{
			Response: ResponseUnknown,
			ExitCode: raw.exitCode,
			Stdout:   stdout,
			Stderr:   string(raw.stderr),
		}, nil
	}
}
