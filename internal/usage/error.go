// Package usage defines user-facing errors and their exit codes.
package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingArgument
	ErrUnknownCommand
	ErrZenityNotInstalled
	ErrInvalidConfigKey
	ErrInvalidDialogFile
	ErrDialogFailed
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - zenity not installed
//	  - Invalid config key
//	  - Dialog spawn or parse failure
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Missing argument
//	  - Invalid dialog definition file
var exitCodes = map[ErrorKind]int{
	ErrUnknown:            1,
	ErrInvalidFlag:        2,
	ErrMissingArgument:    2,
	ErrUnknownCommand:     1,
	ErrZenityNotInstalled: 1,
	ErrInvalidConfigKey:   1,
	ErrInvalidDialogFile:  2,
	ErrDialogFailed:       1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // overrides the Kind-derived code when non-zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

var _ error = (*Error)(nil)
