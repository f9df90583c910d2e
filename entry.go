package zenity

// Entry configures a single-line text input dialog. The entered text is the
// affirmative content.
type Entry struct {
	text      *string
	entryText *string
	hideText  bool
}

// NewEntry returns an empty Entry configuration.
func NewEntry() Entry {
	return Entry{}
}

// WithText sets the label shown above the input.
func (e Entry) WithText(text string) Entry {
	e.text = &text
	return e
}

// WithEntryText prefills the input with the given text.
func (e Entry) WithEntryText(text string) Entry {
	e.entryText = &text
	return e
}

// SetHideText masks the input, as for a password field.
func (e Entry) SetHideText() Entry {
	e.hideText = true
	return e
}

func (e Entry) Args() []string {
	args := []string{"--entry"}
	if e.text != nil {
		args = append(args, "--text="+*e.text)
	}
	if e.entryText != nil {
		args = append(args, "--entry-text="+*e.entryText)
	}
	if e.hideText {
		args = append(args, "--hide-text")
	}
	return args
}

// Parse returns stdout unchanged.
func (e Entry) Parse(stdout string) (string, error) {
	return stdout, nil
}

// Dialog wraps the configuration in a Dialog.
func (e Entry) Dialog() Dialog[string] {
	return New[string](e)
}
