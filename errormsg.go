package zenity

// ErrorMsg configures a dialog that warns the user of an error.
type ErrorMsg struct {
	text     *string
	noWrap   bool
	noMarkup bool
}

// NewErrorMsg returns an empty ErrorMsg configuration.
func NewErrorMsg() ErrorMsg {
	return ErrorMsg{}
}

// WithText sets the body text.
func (e ErrorMsg) WithText(text string) ErrorMsg {
	e.text = &text
	return e
}

// SetNoWrap disables word wrapping of the body text.
func (e ErrorMsg) SetNoWrap() ErrorMsg {
	e.noWrap = true
	return e
}

// SetNoMarkup disables Pango markup interpretation in the body text.
func (e ErrorMsg) SetNoMarkup() ErrorMsg {
	e.noMarkup = true
	return e
}

func (e ErrorMsg) Args() []string {
	args := []string{"--error"}
	if e.text != nil {
		args = append(args, "--text="+*e.text)
	}
	if e.noWrap {
		args = append(args, "--no-wrap")
	}
	if e.noMarkup {
		args = append(args, "--no-markup")
	}
	return args
}

// Parse returns stdout unchanged.
func (e ErrorMsg) Parse(stdout string) (string, error) {
	return stdout, nil
}

// Dialog wraps the configuration in a Dialog.
func (e ErrorMsg) Dialog() Dialog[string] {
	return New[string](e)
}
