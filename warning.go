package zenity

// Warning configures a dialog that warns the user about something less fatal
// than an error.
type Warning struct {
	text     *string
	noWrap   bool
	noMarkup bool
}

// NewWarning returns an empty Warning configuration.
func NewWarning() Warning {
	return Warning{}
}

// WithText sets the body text.
func (w Warning) WithText(text string) Warning {
	w.text = &text
	return w
}

// SetNoWrap disables word wrapping of the body text.
func (w Warning) SetNoWrap() Warning {
	w.noWrap = true
	return w
}

// SetNoMarkup disables Pango markup interpretation in the body text.
func (w Warning) SetNoMarkup() Warning {
	w.noMarkup = true
	return w
}

func (w Warning) Args() []string {
	args := []string{"--warning"}
	if w.text != nil {
		args = append(args, "--text="+*w.text)
	}
	if w.noWrap {
		args = append(args, "--no-wrap")
	}
	if w.noMarkup {
		args = append(args, "--no-markup")
	}
	return args
}

// Parse returns stdout unchanged.
func (w Warning) Parse(stdout string) (string, error) {
	return stdout, nil
}

// Dialog wraps the configuration in a Dialog.
func (w Warning) Dialog() Dialog[string] {
	return New[string](w)
}
