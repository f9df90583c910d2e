package usage

import (
	"fmt"
	"strings"
)

func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("zd: '%s' is not a zd command. See 'zd --help'.", command)

	if len(suggestions) > 0 {
		msg += "\n\nThe most similar commands are:\n"
		for _, s := range suggestions {
			msg += "\t" + s + "\n"
		}
		msg = strings.TrimSuffix(msg, "\n")
	}

	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}

func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("zd: unknown flag '%s'. See 'zd --help'.", flag),
	}
}

func MissingArgument(name string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("zd: missing required argument <%s>.", name),
	}
}
