package zenity

import (
	"fmt"
	"time"
)

// DefaultCommand is the executable Show looks up on PATH unless overridden
// with WithCommand.
const DefaultCommand = "zenity"

// Dialog is the full configuration for one zenity invocation: a dialog kind
// plus the options every kind shares. Setters return updated copies, so a
// Dialog is built up in a chain and a partially built value can be reused.
type Dialog[T any] struct {
	kind      Kind[T]
	title     *string
	icon      *Icon
	width     *int
	height    *int
	timeout   *time.Duration
	modalHint *string
	extraArgs []string
	command   string
	run       runner
}

// New wraps a dialog kind in a Dialog. The kinds defined in this package also
// offer a Dialog() shorthand that pins the type parameter.
func New[T any](kind Kind[T]) Dialog[T] {
	return Dialog[T]{kind: kind, command: DefaultCommand, run: execRunner{}}
}

// WithTitle sets the text displayed at the top of the dialog window.
func (d Dialog[T]) WithTitle(title string) Dialog[T] {
	d.title = &title
	return d
}

// WithIcon overrides the default icon for the dialog kind.
func (d Dialog[T]) WithIcon(icon Icon) Dialog[T] {
	d.icon = &icon
	return d
}

// WithWidth sets a specific window width in pixels.
func (d Dialog[T]) WithWidth(width int) Dialog[T] {
	d.width = &width
	return d
}

// WithHeight sets a specific window height in pixels.
func (d Dialog[T]) WithHeight(height int) Dialog[T] {
	d.height = &height
	return d
}

// WithTimeout makes zenity close the dialog automatically after the duration
// has passed. Emitted as whole seconds; zenity enforces it, this package does
// not bound the blocking Show call itself.
func (d Dialog[T]) WithTimeout(timeout time.Duration) Dialog[T] {
	d.timeout = &timeout
	return d
}

// WithModalHint attaches a modal hint for the window manager.
func (d Dialog[T]) WithModalHint(hint string) Dialog[T] {
	d.modalHint = &hint
	return d
}

// WithArg appends a free-form argument after all statically supported
// tokens. Values are handed to the process verbatim; no escaping happens
// beyond what argv semantics already give.
func (d Dialog[T]) WithArg(arg Arg) Dialog[T] {
	args := make([]string, len(d.extraArgs), len(d.extraArgs)+1)
	copy(args, d.extraArgs)
	d.extraArgs = append(args, arg.String())
	return d
}

// WithArgs appends several free-form arguments in order.
func (d Dialog[T]) WithArgs(args ...Arg) Dialog[T] {
	for _, arg := range args {
		d = d.WithArg(arg)
	}
	return d
}

// WithCommand overrides the executable Show invokes. Useful when zenity
// lives outside PATH or ships under a different name.
func (d Dialog[T]) WithCommand(command string) Dialog[T] {
	d.command = command
	return d
}

// WithExtraButton adds a third button with the given label. The returned
// ExtraDialog can report ResponseExtraButton from Show.
func (d Dialog[T]) WithExtraButton(label string) ExtraDialog[T] {
	return ExtraDialog[T]{inner: d, label: label}
}

// withRunner substitutes the process spawner. Test seam.
func (d Dialog[T]) withRunner(r runner) Dialog[T] {
	d.run = r
	return d
}

// argv flattens the dialog into the final argument vector: kind tokens
// first, then the shared options that are set, then free-form extras in
// call order.
func (d Dialog[T]) argv() []string {
	args := d.kind.Args()
	if d.title != nil {
		args = append(args, "--title="+*d.title)
	}
	if d.icon != nil {
		args = append(args, "--icon-name="+d.icon.String())
	}
	if d.width != nil {
		args = append(args, fmt.Sprintf("--width=%d", *d.width))
	}
	if d.height != nil {
		args = append(args, fmt.Sprintf("--height=%d", *d.height))
	}
	if d.timeout != nil {
		args = append(args, fmt.Sprintf("--timeout=%d", int(d.timeout.Seconds())))
	}
	if d.modalHint != nil {
		args = append(args, "--modal="+*d.modalHint)
	}
	return append(args, d.extraArgs...)
}
