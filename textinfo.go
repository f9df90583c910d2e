package zenity

// TextInfo configures a dialog that displays the contents of a file. With
// SetEditable the (possibly modified) text is printed on close.
type TextInfo struct {
	filename *string
	editable bool
	checkbox *string
}

// NewTextInfo returns an empty TextInfo configuration.
func NewTextInfo() TextInfo {
	return TextInfo{}
}

// WithFilename sets the file to display.
func (t TextInfo) WithFilename(path string) TextInfo {
	t.filename = &path
	return t
}

// SetEditable lets the user modify the text; the result is printed to
// stdout when the dialog closes.
func (t TextInfo) SetEditable() TextInfo {
	t.editable = true
	return t
}

// WithCheckbox adds a confirmation checkbox with the given label; the OK
// button stays disabled until it is ticked.
func (t TextInfo) WithCheckbox(label string) TextInfo {
	t.checkbox = &label
	return t
}

func (t TextInfo) Args() []string {
	args := []string{"--text-info"}
	if t.filename != nil {
		args = append(args, "--filename="+*t.filename)
	}
	if t.editable {
		args = append(args, "--editable")
	}
	if t.checkbox != nil {
		args = append(args, "--checkbox="+*t.checkbox)
	}
	return args
}

// Parse returns stdout unchanged.
func (t TextInfo) Parse(stdout string) (string, error) {
	return stdout, nil
}

// Dialog wraps the configuration in a Dialog.
func (t TextInfo) Dialog() Dialog[string] {
	return New[string](t)
}
