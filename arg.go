package zenity

import "strings"

// Arg is a single command-line token passed to zenity: a bare --flag or a
// --flag=value pair. It backs Dialog.WithArg, which covers options that have
// no dedicated setter yet.
type Arg struct {
	name  string
	value *string
}

// NewFlag creates a valueless argument, e.g. --no-wrap.
func NewFlag(name string) Arg {
	return Arg{name: name}
}

// NewArg creates a name=value argument, e.g. --separator=:.
func NewArg(name, value string) Arg {
	return Arg{name: name, value: &value}
}

// String renders the token. A leading "--" already present in the name is
// stripped before the prefix is added, so the result never carries a doubled
// prefix.
func (a Arg) String() string {
	name := strings.TrimPrefix(a.name, "--")
	if a.value == nil {
		return "--" + name
	}
	return "--" + name + "=" + *a.value
}
