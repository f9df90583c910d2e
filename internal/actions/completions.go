package actions

import (
	"fmt"

	"github.com/dialog-tools/zenity/internal/completions"
	"github.com/dialog-tools/zenity/internal/dispatchers"
	"github.com/dialog-tools/zenity/internal/ui/style"
	"github.com/dialog-tools/zenity/internal/usage"
)

func Completions(args []string, flags *dispatchers.ParsedFlags) error {
	return completionsAction(args, flags, defaultDeps())
}

// completionsAction prints the completion script for a shell, or installs it
// into the shell's auto-load directory with --install.
func completionsAction(args []string, flags *dispatchers.ParsedFlags, deps Dependencies) error {
	shell, err := completions.ParseShell(args[0])
	if err != nil {
		return &usage.Error{
			Kind:    usage.ErrInvalidFlag,
			Message: fmt.Sprintf("zd: %v", err),
		}
	}

	if flags.Has("--install") {
		path, err := completions.Install(shell)
		if err != nil {
			_, _ = deps.Writer.Printf("%s %v\n", style.Warning("cannot auto-install:"), err)
			_, _ = deps.Writer.Printf("add this line to %s instead:\n", completions.RcFile(shell))
			_, _ = deps.Writer.Printf("  %s\n", completions.SourceInstructions(shell))
			return nil
		}
		_, _ = deps.Writer.Printf("%s %s\n", style.Success("installed"), path)
		return nil
	}

	return completions.PrintScript(deps.Writer, shell)
}
