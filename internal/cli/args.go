package cli

import "github.com/dialog-tools/zenity/internal/dispatchers"

var (
	TextArg = []dispatchers.ArgSpec{
		{
			Name:        "text",
			Description: "Dialog text",
			Required:    true,
		},
	}

	OptionalTextArg = []dispatchers.ArgSpec{
		{
			Name:        "text",
			Description: "Dialog text",
			Required:    false,
		},
	}

	ListArgs = []dispatchers.ArgSpec{
		{
			Name:        "cell",
			Description: "Row cells in column order, one value per argument",
			Required:    false,
		},
	}

	HistoryIDArg = []dispatchers.ArgSpec{
		{
			Name:        "id",
			Description: "Invocation id from 'zd history list'",
			Required:    true,
		},
	}

	ConfigKeyArg = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
	}

	ShellArg = []dispatchers.ArgSpec{
		{
			Name:        "shell",
			Description: "Shell to generate completions for: bash, zsh or fish",
			Required:    true,
		},
	}

	ConfigKeyValueArgs = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
		{
			Name:        "value",
			Description: "Value to assign",
			Required:    true,
		},
	}
)
