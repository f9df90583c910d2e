package zenity

// FileSelection configures a file chooser. Selected paths come back as a
// slice; when SetMultiple is on, zenity joins them with the separator and
// Parse splits them again.
type FileSelection struct {
	filename  *string
	multiple  bool
	directory bool
	save      bool
	separator *string
	filters   []string
}

// NewFileSelection returns an empty FileSelection configuration.
func NewFileSelection() FileSelection {
	return FileSelection{}
}

// WithFilename preselects a file or directory.
func (f FileSelection) WithFilename(path string) FileSelection {
	f.filename = &path
	return f
}

// SetMultiple allows selecting more than one file.
func (f FileSelection) SetMultiple() FileSelection {
	f.multiple = true
	return f
}

// SetDirectory restricts the chooser to directories.
func (f FileSelection) SetDirectory() FileSelection {
	f.directory = true
	return f
}

// SetSave turns the chooser into a save dialog.
func (f FileSelection) SetSave() FileSelection {
	f.save = true
	return f
}

// WithSeparator overrides the string zenity uses to join multiple paths.
func (f FileSelection) WithSeparator(sep string) FileSelection {
	f.separator = &sep
	return f
}

// WithFilter restricts the chooser to files matching the pattern, e.g.
// "*.png *.jpg". Repeatable; each call adds one filter.
func (f FileSelection) WithFilter(pattern string) FileSelection {
	filters := make([]string, len(f.filters), len(f.filters)+1)
	copy(filters, f.filters)
	f.filters = append(filters, pattern)
	return f
}

func (f FileSelection) Args() []string {
	args := []string{"--file-selection"}
	if f.filename != nil {
		args = append(args, "--filename="+*f.filename)
	}
	if f.multiple {
		args = append(args, "--multiple")
	}
	if f.directory {
		args = append(args, "--directory")
	}
	if f.save {
		args = append(args, "--save")
	}
	if f.separator != nil {
		args = append(args, "--separator="+*f.separator)
	}
	for _, filter := range f.filters {
		args = append(args, "--file-filter="+filter)
	}
	return args
}

// Parse splits the joined paths on the configured separator.
func (f FileSelection) Parse(stdout string) ([]string, error) {
	return splitOutput(stdout, f.separator), nil
}

// Dialog wraps the configuration in a Dialog.
func (f FileSelection) Dialog() Dialog[[]string] {
	return New[[]string](f)
}
