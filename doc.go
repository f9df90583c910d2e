// Package zenity builds and runs zenity dialogs.
//
// A dialog is described by a kind-specific configuration (Info, Question,
// Calendar, ...) wrapped in a Dialog carrying the options shared by every
// kind. Show spawns the zenity executable found on PATH, blocks until the
// user answers and reports the result as an Outcome:
//
//	out, err := zenity.NewQuestion().
//		WithText("Apply the update now?").
//		Dialog().
//		WithTitle("Updater").
//		WithTimeout(30 * time.Second).
//		Show()
//	if err != nil {
//		// zenity missing, killed by a signal, bad output, ...
//	}
//	if out.Response == zenity.ResponseAffirmed {
//		// user said yes
//	}
//
// The package performs no validation or escaping of option values; they are
// handed to the process verbatim as argv elements. Rendering is owned
// entirely by zenity itself.
package zenity
