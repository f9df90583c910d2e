package actions

import "github.com/dialog-tools/zenity/internal/dispatchers"

func ShowVersion(args []string, flags *dispatchers.ParsedFlags) error {
	return showVersion(args, flags, defaultDeps())
}

func showVersion(_ []string, _ *dispatchers.ParsedFlags, deps Dependencies) error {
	_, _ = deps.Writer.Printf("zd version %v\n", deps.Version())
	return nil
}
