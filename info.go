package zenity

// Info configures a plain informational dialog with a single OK button.
type Info struct {
	text      *string
	okLabel   *string
	noWrap    bool
	noMarkup  bool
	ellipsize bool
}

// NewInfo returns an empty Info configuration.
func NewInfo() Info {
	return Info{}
}

// WithText sets the body text.
func (i Info) WithText(text string) Info {
	i.text = &text
	return i
}

// WithOKLabel overrides the label on the OK button.
func (i Info) WithOKLabel(label string) Info {
	i.okLabel = &label
	return i
}

// SetNoWrap disables word wrapping of the body text.
func (i Info) SetNoWrap() Info {
	i.noWrap = true
	return i
}

// SetNoMarkup disables Pango markup interpretation in the body text.
func (i Info) SetNoMarkup() Info {
	i.noMarkup = true
	return i
}

// SetEllipsize shortens text that is too long to display.
func (i Info) SetEllipsize() Info {
	i.ellipsize = true
	return i
}

func (i Info) Args() []string {
	args := []string{"--info"}
	if i.text != nil {
		args = append(args, "--text="+*i.text)
	}
	if i.okLabel != nil {
		args = append(args, "--ok-label="+*i.okLabel)
	}
	if i.noWrap {
		args = append(args, "--no-wrap")
	}
	if i.noMarkup {
		args = append(args, "--no-markup")
	}
	if i.ellipsize {
		args = append(args, "--ellipsize")
	}
	return args
}

// Parse returns stdout unchanged.
func (i Info) Parse(stdout string) (string, error) {
	return stdout, nil
}

// Dialog wraps the configuration in a Dialog.
func (i Info) Dialog() Dialog[string] {
	return New[string](i)
}
