// Package cli declares the zd command tree.
package cli

import (
	"github.com/dialog-tools/zenity/internal/actions"
	"github.com/dialog-tools/zenity/internal/completions"
	"github.com/dialog-tools/zenity/internal/dispatchers"
)

// dialogCommand describes one per-kind dialog command.
type dialogCommand struct {
	kind    string
	summary string
	usage   string
	flags   []dispatchers.FlagDescriptor
	args    []dispatchers.ArgSpec
}

var dialogCommands = []dialogCommand{
	{
		kind:    "info",
		summary: "Show an informational dialog",
		usage:   "zd info <text> [flags]",
		flags:   InfoFlags,
		args:    TextArg,
	},
	{
		kind:    "error",
		summary: "Show an error dialog",
		usage:   "zd error <text> [flags]",
		flags:   MessageFlags,
		args:    TextArg,
	},
	{
		kind:    "warning",
		summary: "Show a warning dialog",
		usage:   "zd warning <text> [flags]",
		flags:   MessageFlags,
		args:    TextArg,
	},
	{
		kind:    "question",
		summary: "Ask a yes/no question",
		usage:   "zd question <text> [flags]",
		flags:   QuestionFlags,
		args:    TextArg,
	},
	{
		kind:    "entry",
		summary: "Ask for a line of text",
		usage:   "zd entry <text> [flags]",
		flags:   EntryFlags,
		args:    TextArg,
	},
	{
		kind:    "password",
		summary: "Ask for a password",
		usage:   "zd password [flags]",
		flags:   PasswordFlags,
	},
	{
		kind:    "calendar",
		summary: "Pick a date",
		usage:   "zd calendar [text] [flags]",
		flags:   CalendarFlags,
		args:    OptionalTextArg,
	},
	{
		kind:    "file-selection",
		summary: "Pick files or directories",
		usage:   "zd file-selection [flags]",
		flags:   FileSelectionFlags,
	},
	{
		kind:    "list",
		summary: "Pick from a list of values",
		usage:   "zd list <text> [cell...] [flags]",
		flags:   ListFlags,
		args:    append(append([]dispatchers.ArgSpec{}, TextArg...), ListArgs...),
	},
	{
		kind:    "notification",
		summary: "Show a desktop notification",
		usage:   "zd notification <text> [flags]",
		args:    TextArg,
	},
	{
		kind:    "progress",
		summary: "Show a progress dialog",
		usage:   "zd progress [text] [flags]",
		flags:   ProgressFlags,
		args:    OptionalTextArg,
	},
	{
		kind:    "scale",
		summary: "Pick a number with a slider",
		usage:   "zd scale [text] [flags]",
		flags:   ScaleFlags,
		args:    OptionalTextArg,
	},
	{
		kind:    "text-info",
		summary: "Display a text file",
		usage:   "zd text-info [flags]",
		flags:   TextInfoFlags,
	},
	{
		kind:    "color-selection",
		summary: "Pick a color",
		usage:   "zd color-selection [flags]",
		flags:   ColorSelectionFlags,
	},
	{
		kind:    "forms",
		summary: "Show a multi-field form",
		usage:   "zd forms [text] [flags]",
		flags:   FormsFlags,
		args:    OptionalTextArg,
	},
}

// BuildTree constructs the full zd command tree.
func BuildTree() *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "zd",
		Summary: "Desktop dialogs from the command line",
		Usage:   "zd <command> [flags]",
		Flags:   RootFlags,
	})

	for _, cmd := range dialogCommands {
		dispatchers.Command(dispatchers.CommandSpec{
			Name:    cmd.kind,
			Parent:  root,
			Summary: cmd.summary,
			Usage:   cmd.usage,
			Flags:   append(append([]dispatchers.FlagDescriptor{}, DialogFlags...), cmd.flags...),
			Args:    cmd.args,
			Action:  actions.DialogAction(cmd.kind),
		})
	}

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "show",
		Parent:  root,
		Summary: "Show a dialog declared in a TOML file",
		Usage:   "zd show --file=<path>",
		Description: "Runs a dialog from a definition file. The file names the kind and\n" +
			"its options, so the same dialog can be shown from scripts without\n" +
			"repeating flags.",
		Flags:  append(append([]dispatchers.FlagDescriptor{}, DialogFlags...), ShowFlags...),
		Action: actions.Show,
	})

	history := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "history",
		Parent:  root,
		Summary: "Inspect recorded invocations",
		Usage:   "zd history <command>",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "list",
		Parent:  history,
		Summary: "List recorded invocations",
		Usage:   "zd history list [flags]",
		Flags:   HistoryListFlags,
		Action:  actions.HistoryList,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "show",
		Parent:  history,
		Summary: "Show one recorded invocation in full",
		Usage:   "zd history show <id>",
		Args:    HistoryIDArg,
		Action:  actions.HistoryShow,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "browse",
		Parent:  history,
		Summary: "Browse invocations interactively",
		Usage:   "zd history browse [flags]",
		Flags:   HistoryListFlags,
		Action:  actions.HistoryBrowse,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "clear",
		Parent:  history,
		Summary: "Delete all recorded invocations",
		Usage:   "zd history clear",
		Action:  actions.HistoryClear,
	})

	config := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "config",
		Parent:  root,
		Summary: "Manage configuration",
		Usage:   "zd config <command>",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "get",
		Parent:  config,
		Summary: "Get a config value",
		Usage:   "zd config get <key>",
		Args:    ConfigKeyArg,
		Action:  actions.ConfigGet,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "set",
		Parent:  config,
		Summary: "Set a config value",
		Usage:   "zd config set <key> <value>",
		Args:    ConfigKeyValueArgs,
		Action:  actions.ConfigSet,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "unset",
		Parent:  config,
		Summary: "Remove a config value",
		Usage:   "zd config unset <key>",
		Args:    ConfigKeyArg,
		Action:  actions.ConfigUnset,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "list",
		Parent:  config,
		Summary: "List all config values",
		Usage:   "zd config list",
		Action:  actions.ConfigList,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "completions",
		Parent:  root,
		Summary: "Generate shell completions",
		Usage:   "zd completions <shell> [flags]",
		Description: "Prints a completion script for bash, zsh or fish. Load it with\n" +
			"eval \"$(zd completions bash)\", or pass --install to write it to the\n" +
			"shell's completion directory.",
		Flags:  CompletionsFlags,
		Args:   ShellArg,
		Action: actions.Completions,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "version",
		Parent:  root,
		Summary: "Show the zd version",
		Usage:   "zd version",
		Action:  actions.ShowVersion,
	})

	dispatchers.Group(dispatchers.GroupSpec{
		Name:    "help",
		Parent:  root,
		Summary: "Show help for a command",
		Usage:   "zd help [command]",
	})

	completions.RegisterCommandTree(root)

	return root
}
