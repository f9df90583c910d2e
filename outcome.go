package zenity

// Response tags an Outcome with how the user answered the dialog.
type Response int

const (
	// ResponseAffirmed reports the OK / affirmative button (exit code 0).
	ResponseAffirmed Response = iota
	// ResponseRejected reports the cancel / negative button. zenity returns
	// exit code 1 for this on some builds and 256 on others; both map here.
	ResponseRejected
	// ResponseExtraButton reports the extra button. Only dialogs built with
	// WithExtraButton can produce it.
	ResponseExtraButton
	// ResponseUnknown reports an exit code this package does not recognize.
	// The process completed, so this is a normal result rather than an
	// error; inspect ExitCode, Stdout and Stderr to decide what to do.
	ResponseUnknown
)

func (r Response) String() string {
	switch r {
	case ResponseAffirmed:
		return "affirmed"
	case ResponseRejected:
		return "rejected"
	case ResponseExtraButton:
		return "extra-button"
	case ResponseUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Outcome is the result of one dialog invocation. Response selects the
// variant and the remaining fields are populated per variant:
//
//	ResponseAffirmed     Content (nil when zenity printed nothing)
//	ResponseRejected     Raw (nil when zenity printed nothing)
//	ResponseExtraButton  Label
//	ResponseUnknown      ExitCode, Stdout, Stderr
type Outcome[T any] struct {
	Response Response

	// Content is the kind-parsed stdout for an affirmative answer with
	// output, e.g. the entered text or the picked date.
	Content *T

	// Raw is the trimmed stdout accompanying a rejection, typically a custom
	// cancel-button label.
	Raw *string

	// Label is the configured extra-button label when that button was
	// clicked.
	Label string

	// ExitCode, Stdout and Stderr describe an unrecognized result verbatim.
	ExitCode int
	Stdout   string
	Stderr   string
}
