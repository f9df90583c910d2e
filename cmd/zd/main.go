package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/dialog-tools/zenity/internal/app"
	"github.com/dialog-tools/zenity/internal/cli"
	"github.com/dialog-tools/zenity/internal/config"
	"github.com/dialog-tools/zenity/internal/dispatchers"
	"github.com/dialog-tools/zenity/internal/log"
	"github.com/dialog-tools/zenity/internal/paths"
	"github.com/dialog-tools/zenity/internal/ui/style"
	"github.com/dialog-tools/zenity/internal/usage"
)

func main() {
	args := os.Args[1:]

	rawFlags := extractFlags(args)
	commands := extractCommands(args)
	flags := dispatchers.NewParsedFlags(rawFlags)

	if flags.Has("--version") || flags.Has("-v") {
		fmt.Printf("zd version %s\n", app.Version)
		return
	}

	initLogging()
	defer log.Close()

	initStyling(flags)

	root := cli.BuildTree()

	res, err := dispatchers.Dispatch(root, commands, flags)
	if err != nil {
		exitWithError(err)
	}

	if err := res.Execute(res.Args, res.Flags); err != nil {
		exitWithError(err)
	}

	if res.ExitCode != 0 {
		os.Exit(res.ExitCode)
	}
}

func initLogging() {
	enabled, _ := config.Get("enable_log")
	if enabled != "true" {
		return
	}

	level, _ := config.Get("log_level")
	if err := log.Init(paths.LogFilePath(), log.ParseLevel(level)); err != nil {
		fmt.Fprintf(os.Stderr, "zd: could not open log file: %v\n", err)
	}
}

func initStyling(flags *dispatchers.ParsedFlags) {
	enableColor := term.IsTerminal(int(os.Stdout.Fd())) && !flags.Has("--no-color")

	cfg, err := config.GetAll()
	if err != nil {
		cfg = nil
	}

	style.Init(enableColor, cfg)
}

// exitWithError prints the error and exits with its code. Usage errors with
// an empty message carry only an exit code; dialog responses use that to
// mirror zenity's own exit convention.
func exitWithError(err error) {
	var ue *usage.Error
	if errors.As(err, &ue) {
		if ue.Message != "" {
			fmt.Fprintln(os.Stderr, ue.Error())
		}
		os.Exit(ue.GetExitCode())
	}

	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}

func extractFlags(args []string) []string {
	var flags []string
	for _, a := range args {
		if len(a) > 0 && a[0] == '-' {
			flags = append(flags, a)
		}
	}
	return flags
}

func extractCommands(args []string) []string {
	var cmds []string
	for _, a := range args {
		if len(a) > 0 && a[0] != '-' {
			cmds = append(cmds, a)
		}
	}
	return cmds
}
