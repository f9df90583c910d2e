package zenity

import "time"

// ExtraDialog is a Dialog carrying an extra button. It behaves exactly like
// the Dialog it wraps except that its Show can additionally report
// ResponseExtraButton. Obtained via Dialog.WithExtraButton.
type ExtraDialog[T any] struct {
	inner Dialog[T]
	label string
}

// WithTitle sets the text displayed at the top of the dialog window.
func (d ExtraDialog[T]) WithTitle(title string) ExtraDialog[T] {
	d.inner = d.inner.WithTitle(title)
	return d
}

// WithIcon overrides the default icon for the dialog kind.
func (d ExtraDialog[T]) WithIcon(icon Icon) ExtraDialog[T] {
	d.inner = d.inner.WithIcon(icon)
	return d
}

// WithWidth sets a specific window width in pixels.
func (d ExtraDialog[T]) WithWidth(width int) ExtraDialog[T] {
	d.inner = d.inner.WithWidth(width)
	return d
}

// WithHeight sets a specific window height in pixels.
func (d ExtraDialog[T]) WithHeight(height int) ExtraDialog[T] {
	d.inner = d.inner.WithHeight(height)
	return d
}

// WithTimeout makes zenity close the dialog after the duration has passed.
func (d ExtraDialog[T]) WithTimeout(timeout time.Duration) ExtraDialog[T] {
	d.inner = d.inner.WithTimeout(timeout)
	return d
}

// WithModalHint attaches a modal hint for the window manager.
func (d ExtraDialog[T]) WithModalHint(hint string) ExtraDialog[T] {
	d.inner = d.inner.WithModalHint(hint)
	return d
}

// WithArg appends a free-form argument.
func (d ExtraDialog[T]) WithArg(arg Arg) ExtraDialog[T] {
	d.inner = d.inner.WithArg(arg)
	return d
}

// WithArgs appends several free-form arguments in order.
func (d ExtraDialog[T]) WithArgs(args ...Arg) ExtraDialog[T] {
	d.inner = d.inner.WithArgs(args...)
	return d
}

// WithCommand overrides the executable Show invokes.
func (d ExtraDialog[T]) WithCommand(command string) ExtraDialog[T] {
	d.inner = d.inner.WithCommand(command)
	return d
}

// withRunner substitutes the process spawner. Test seam.
func (d ExtraDialog[T]) withRunner(r runner) ExtraDialog[T] {
	d.inner = d.inner.withRunner(r)
	return d
}

// Show renders the dialog with --extra-button=<label> appended and blocks
// until the user answers. zenity reports the extra button as a rejection
// whose stdout equals the label, so that exact shape is remapped to
// ResponseExtraButton; every other outcome passes through unchanged.
func (d ExtraDialog[T]) Show() (Outcome[T], error) {
	out, err := d.inner.WithArg(NewArg("extra-button", d.label)).Show()
	if err != nil {
		return Outcome[T]{}, err
	}
	if out.Response == ResponseRejected && out.Raw != nil && *out.Raw == d.label {
		return Outcome[T]{Response: ResponseExtraButton, Label: d.label}, nil
	}
	return out, nil
}
