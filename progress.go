package zenity

import "fmt"

// Progress configures a progress dialog. Show blocks until the dialog
// closes, so a static percentage, SetPulsate or a timeout is the usual
// companion; feeding live percentages over stdin is not supported.
type Progress struct {
	text       *string
	percentage *int
	pulsate    bool
	autoClose  bool
	noCancel   bool
}

// NewProgress returns an empty Progress configuration.
func NewProgress() Progress {
	return Progress{}
}

// WithText sets the body text.
func (p Progress) WithText(text string) Progress {
	p.text = &text
	return p
}

// WithPercentage sets the initial percentage (0-100).
func (p Progress) WithPercentage(percentage int) Progress {
	p.percentage = &percentage
	return p
}

// SetPulsate animates the bar instead of filling it.
func (p Progress) SetPulsate() Progress {
	p.pulsate = true
	return p
}

// SetAutoClose closes the dialog when it reaches 100%.
func (p Progress) SetAutoClose() Progress {
	p.autoClose = true
	return p
}

// SetNoCancel hides the cancel button.
func (p Progress) SetNoCancel() Progress {
	p.noCancel = true
	return p
}

func (p Progress) Args() []string {
	args := []string{"--progress"}
	if p.text != nil {
		args = append(args, "--text="+*p.text)
	}
	if p.percentage != nil {
		args = append(args, fmt.Sprintf("--percentage=%d", *p.percentage))
	}
	if p.pulsate {
		args = append(args, "--pulsate")
	}
	if p.autoClose {
		args = append(args, "--auto-close")
	}
	if p.noCancel {
		args = append(args, "--no-cancel")
	}
	return args
}

// Parse returns stdout unchanged.
func (p Progress) Parse(stdout string) (string, error) {
	return stdout, nil
}

// Dialog wraps the configuration in a Dialog.
func (p Progress) Dialog() Dialog[string] {
	return New[string](p)
}
