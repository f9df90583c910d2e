package cli

import "github.com/dialog-tools/zenity/internal/dispatchers"

var (
	RootFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--help", "-h"},
			Description: "Show help",
		},
		{
			Names:       []string{"--version", "-v"},
			Description: "Show version",
		},
		{
			Names:       []string{"--no-color"},
			Description: "Disable colored output",
		},
		{
			Names:       []string{"--no-pager"},
			Description: "Do not use pager for output",
		},
	}

	// DialogFlags apply to every dialog command.
	DialogFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--title"},
			ValueHint:   "<text>",
			Description: "Window title",
		},
		{
			Names:       []string{"--dialog-icon"},
			ValueHint:   "<name|path>",
			Description: "Window icon: error, info, question, warning or a file path",
		},
		{
			Names:       []string{"--width"},
			ValueHint:   "<px>",
			Description: "Window width in pixels",
		},
		{
			Names:       []string{"--height"},
			ValueHint:   "<px>",
			Description: "Window height in pixels",
		},
		{
			Names:       []string{"--timeout"},
			ValueHint:   "<sec>",
			Description: "Close the dialog automatically after this many seconds",
		},
		{
			Names:       []string{"--extra-button"},
			ValueHint:   "<label>",
			Description: "Add a third button with this label",
		},
		{
			Names:       []string{"--dialog-command"},
			ValueHint:   "<cmd>",
			Description: "Executable to invoke instead of zenity",
		},
		{
			Names:       []string{"--no-history"},
			Description: "Do not record this invocation",
		},
	}

	MessageFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--no-wrap"},
			Description: "Do not wrap the dialog text",
		},
		{
			Names:       []string{"--no-markup"},
			Description: "Do not interpret Pango markup in the text",
		},
	}

	InfoFlags = append([]dispatchers.FlagDescriptor{
		{
			Names:       []string{"--ok-label"},
			ValueHint:   "<label>",
			Description: "Label for the OK button",
		},
		{
			Names:       []string{"--ellipsize"},
			Description: "Ellipsize the text if it is too long",
		},
	}, MessageFlags...)

	QuestionFlags = append([]dispatchers.FlagDescriptor{
		{
			Names:       []string{"--ok-label"},
			ValueHint:   "<label>",
			Description: "Label for the affirmative button",
		},
		{
			Names:       []string{"--cancel-label"},
			ValueHint:   "<label>",
			Description: "Label for the negative button",
		},
		{
			Names:       []string{"--default-cancel"},
			Description: "Give the negative button initial focus",
		},
		{
			Names:       []string{"--ellipsize"},
			Description: "Ellipsize the text if it is too long",
		},
	}, MessageFlags...)

	EntryFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--entry-text"},
			ValueHint:   "<text>",
			Description: "Prefill the input with this text",
		},
		{
			Names:       []string{"--hide-text"},
			Description: "Mask the entered text",
		},
	}

	PasswordFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--username"},
			Description: "Ask for a username as well",
		},
	}

	CalendarFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--day"},
			ValueHint:   "<n>",
			Description: "Preselect a day of the month",
		},
		{
			Names:       []string{"--month"},
			ValueHint:   "<1-12>",
			Description: "Preselect a month",
		},
		{
			Names:       []string{"--year"},
			ValueHint:   "<n>",
			Description: "Preselect a year",
		},
		{
			Names:       []string{"--date-format"},
			ValueHint:   "<pattern>",
			Description: "Return the date as text in this strftime pattern",
		},
	}

	FileSelectionFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--filename"},
			ValueHint:   "<path>",
			Description: "Preselect a file or directory",
		},
		{
			Names:       []string{"--multiple"},
			Description: "Allow selecting more than one file",
		},
		{
			Names:       []string{"--directory"},
			Description: "Select directories instead of files",
		},
		{
			Names:       []string{"--save"},
			Description: "Open a save dialog",
		},
		{
			Names:       []string{"--separator"},
			ValueHint:   "<s>",
			Description: "Separator between selected paths",
		},
		{
			Names:       []string{"--file-filter"},
			ValueHint:   "<pattern>",
			Description: "Restrict to files matching the pattern (repeatable)",
		},
	}

	ListFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--column"},
			ValueHint:   "<header>",
			Description: "Declare a column (repeatable, in order)",
		},
		{
			Names:       []string{"--checklist"},
			Description: "Render the first column as checkboxes",
		},
		{
			Names:       []string{"--radiolist"},
			Description: "Render the first column as radio buttons",
		},
		{
			Names:       []string{"--editable"},
			Description: "Allow editing the cells",
		},
		{
			Names:       []string{"--multiple"},
			Description: "Allow selecting more than one row",
		},
		{
			Names:       []string{"--hide-header"},
			Description: "Hide the column headers",
		},
		{
			Names:       []string{"--print-column"},
			ValueHint:   "<n|ALL>",
			Description: "Column to print for the selected row",
		},
		{
			Names:       []string{"--separator"},
			ValueHint:   "<s>",
			Description: "Separator between selected values",
		},
	}

	ProgressFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--percentage"},
			ValueHint:   "<0-100>",
			Description: "Initial percentage",
		},
		{
			Names:       []string{"--pulsate"},
			Description: "Animate the bar instead of filling it",
		},
		{
			Names:       []string{"--auto-close"},
			Description: "Close the dialog when it reaches 100%",
		},
		{
			Names:       []string{"--no-cancel"},
			Description: "Hide the cancel button",
		},
	}

	ScaleFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--value"},
			ValueHint:   "<n>",
			Description: "Initial slider position",
		},
		{
			Names:       []string{"--min-value"},
			ValueHint:   "<n>",
			Description: "Lower bound (default 0)",
		},
		{
			Names:       []string{"--max-value"},
			ValueHint:   "<n>",
			Description: "Upper bound (default 100)",
		},
		{
			Names:       []string{"--step"},
			ValueHint:   "<n>",
			Description: "Slider increment",
		},
		{
			Names:       []string{"--hide-value"},
			Description: "Hide the numeric value next to the slider",
		},
	}

	TextInfoFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--filename"},
			ValueHint:   "<path>",
			Description: "File to display",
		},
		{
			Names:       []string{"--editable"},
			Description: "Allow editing; the result is printed on close",
		},
		{
			Names:       []string{"--checkbox"},
			ValueHint:   "<label>",
			Description: "Require ticking a confirmation checkbox",
		},
	}

	ColorSelectionFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--color"},
			ValueHint:   "<color>",
			Description: "Preselect a color",
		},
		{
			Names:       []string{"--show-palette"},
			Description: "Show the palette instead of the color wheel",
		},
	}

	FormsFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--add-entry"},
			ValueHint:   "<label>",
			Description: "Add a text field (repeatable, in order)",
		},
		{
			Names:       []string{"--add-password"},
			ValueHint:   "<label>",
			Description: "Add a masked field (repeatable, in order)",
		},
		{
			Names:       []string{"--add-calendar"},
			ValueHint:   "<label>",
			Description: "Add a date field (repeatable, in order)",
		},
		{
			Names:       []string{"--separator"},
			ValueHint:   "<s>",
			Description: "Separator between field values",
		},
		{
			Names:       []string{"--forms-date-format"},
			ValueHint:   "<pattern>",
			Description: "strftime pattern for calendar fields",
		},
	}

	ShowFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--file", "-f"},
			ValueHint:   "<path>",
			Description: "Dialog definition file (TOML)",
		},
	}

	CompletionsFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--install"},
			Description: "Write the script to the shell's completion directory",
		},
	}

	HistoryListFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--kind"},
			ValueHint:   "<kind>",
			Description: "Filter by dialog kind",
		},
		{
			Names:       []string{"--response"},
			ValueHint:   "<response>",
			Description: "Filter by response (affirmed, rejected, extra-button, unknown)",
		},
		{
			Names:       []string{"--since"},
			ValueHint:   "<date>",
			Description: "Show invocations after date (YYYY-MM-DD)",
		},
		{
			Names:       []string{"--limit"},
			ValueHint:   "<n>",
			Description: "Limit number of results",
		},
	}
)
