package zenity

// Notification configures a desktop notification rather than a window. It
// produces no output; the outcome only reports whether zenity succeeded.
type Notification struct {
	text *string
}

// NewNotification returns an empty Notification configuration.
func NewNotification() Notification {
	return Notification{}
}

// WithText sets the notification text.
func (n Notification) WithText(text string) Notification {
	n.text = &text
	return n
}

func (n Notification) Args() []string {
	args := []string{"--notification"}
	if n.text != nil {
		args = append(args, "--text="+*n.text)
	}
	return args
}

// Parse returns stdout unchanged.
func (n Notification) Parse(stdout string) (string, error) {
	return stdout, nil
}

// Dialog wraps the configuration in a Dialog.
func (n Notification) Dialog() Dialog[string] {
	return New[string](n)
}
