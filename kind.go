package zenity

import "strings"

// Kind describes one category of zenity dialog. A Kind renders its own
// argument tokens and parses the tool's stdout into a kind-specific value.
type Kind[T any] interface {
	// Args returns the kind flag followed by one token per option that has
	// been set, in a fixed per-kind order. Unset options contribute nothing.
	Args() []string

	// Parse converts trimmed stdout into the kind's content type. For most
	// kinds this is the identity on the string.
	Parse(stdout string) (T, error)
}

// DefaultSeparator is what zenity uses to join multiple values on one line
// unless a dialog overrides it.
const DefaultSeparator = "|"

// splitOutput splits joined output on the configured separator, falling back
// to DefaultSeparator.
func splitOutput(stdout string, separator *string) []string {
	sep := DefaultSeparator
	if separator != nil {
		sep = *separator
	}
	return strings.Split(stdout, sep)
}
