package zenity

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Show. Match with errors.Is.
var (
	// ErrNotInstalled reports that the zenity executable could not be found
	// on PATH. Distinguished from other spawn failures so callers can detect
	// a missing installation.
	ErrNotInstalled = errors.New("zenity is not installed")

	// ErrMissingExitCode reports that the process terminated without an exit
	// status, e.g. it was killed by a signal.
	ErrMissingExitCode = errors.New("zenity did not return an exit code")

	// ErrInvalidOutput reports that captured stdout was not valid UTF-8.
	ErrInvalidOutput = errors.New("zenity stdout is not valid utf-8")
)

// ParseError reports that a kind-specific parser rejected zenity's output.
type ParseError struct {
	// Raw is the trimmed stdout that failed to parse.
	Raw string
	// Err is the underlying parser error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse zenity output %q: %v", e.Raw, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
