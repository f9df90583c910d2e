package zenity

// Question configures a yes/no dialog. The affirmative and negative button
// labels can be customized; a customized negative label comes back as the
// Raw content of a rejection.
type Question struct {
	text          *string
	okLabel       *string
	cancelLabel   *string
	defaultCancel bool
	noWrap        bool
	noMarkup      bool
	ellipsize     bool
}

// NewQuestion returns an empty Question configuration.
func NewQuestion() Question {
	return Question{}
}

// WithText sets the body text.
func (q Question) WithText(text string) Question {
	q.text = &text
	return q
}

// WithOKLabel overrides the label on the affirmative button.
func (q Question) WithOKLabel(label string) Question {
	q.okLabel = &label
	return q
}

// WithCancelLabel overrides the label on the negative button.
func (q Question) WithCancelLabel(label string) Question {
	q.cancelLabel = &label
	return q
}

// SetDefaultCancel gives the negative button initial focus.
func (q Question) SetDefaultCancel() Question {
	q.defaultCancel = true
	return q
}

// SetNoWrap disables word wrapping of the body text.
func (q Question) SetNoWrap() Question {
	q.noWrap = true
	return q
}

// SetNoMarkup disables Pango markup interpretation in the body text.
func (q Question) SetNoMarkup() Question {
	q.noMarkup = true
	return q
}

// SetEllipsize shortens text that is too long to display.
func (q Question) SetEllipsize() Question {
	q.ellipsize = true
	return q
}

func (q Question) Args() []string {
	args := []string{"--question"}
	if q.text != nil {
		args = append(args, "--text="+*q.text)
	}
	if q.okLabel != nil {
		args = append(args, "--ok-label="+*q.okLabel)
	}
	if q.cancelLabel != nil {
		args = append(args, "--cancel-label="+*q.cancelLabel)
	}
	if q.defaultCancel {
		args = append(args, "--default-cancel")
	}
	if q.noWrap {
		args = append(args, "--no-wrap")
	}
	if q.noMarkup {
		args = append(args, "--no-markup")
	}
	if q.ellipsize {
		args = append(args, "--ellipsize")
	}
	return args
}

// Parse returns stdout unchanged.
func (q Question) Parse(stdout string) (string, error) {
	return stdout, nil
}

// Dialog wraps the configuration in a Dialog.
func (q Question) Dialog() Dialog[string] {
	return New[string](q)
}
