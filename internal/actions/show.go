package actions

import (
	"fmt"

	"github.com/dialog-tools/zenity/internal/dialogfile"
	"github.com/dialog-tools/zenity/internal/dispatchers"
	"github.com/dialog-tools/zenity/internal/usage"
)

func Show(args []string, flags *dispatchers.ParsedFlags) error {
	return show(args, flags, defaultDeps())
}

// show runs a dialog declared in a definition file, through the same path
// the per-kind commands use.
func show(args []string, flags *dispatchers.ParsedFlags, deps Dependencies) error {
	path := flags.String("--file", flags.String("-f", ""))
	if path == "" && len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return &usage.Error{
			Kind:    usage.ErrMissingArgument,
			Message: "zd: show needs a definition file: zd show --file=<path>",
		}
	}

	def, err := dialogfile.Load(path)
	if err != nil {
		return &usage.Error{
			Kind:    usage.ErrInvalidDialogFile,
			Message: fmt.Sprintf("zd: %s: %v", path, err),
		}
	}

	defArgs, defFlags := def.Tokens()
	return RunDialog(deps, def.Kind, defArgs, dispatchers.NewParsedFlags(defFlags))
}
