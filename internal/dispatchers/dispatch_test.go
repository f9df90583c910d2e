package dispatchers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dialog-tools/zenity/internal/usage"
)

func mockAction(args []string, flags *ParsedFlags) error {
	return nil
}

func createTestTree() *DispatchNode {
	root := Root(RootSpec{
		Name:    "zd",
		Summary: "Test CLI",
		Usage:   "zd <command> [flags]",
		Flags: []FlagDescriptor{
			{Names: []string{"--help", "-h"}, Description: "Show help"},
			{Names: []string{"--no-color"}, Description: "Disable colors"},
		},
	})

	Command(CommandSpec{
		Name:    "version",
		Parent:  root,
		Summary: "Show version",
		Usage:   "zd version",
		Action:  mockAction,
	})

	Command(CommandSpec{
		Name:    "info",
		Parent:  root,
		Summary: "Show an info dialog",
		Usage:   "zd info <text>",
		Args: []ArgSpec{
			{Name: "text", Description: "Dialog text", Required: true},
		},
		Flags: []FlagDescriptor{
			{Names: []string{"--title"}, ValueHint: "text", Description: "Window title"},
		},
		Action: mockAction,
	})

	config := Group(GroupSpec{
		Name:    "config",
		Parent:  root,
		Summary: "Manage configuration",
		Usage:   "zd config <command>",
	})

	Command(CommandSpec{
		Name:    "set",
		Parent:  config,
		Summary: "Set config value",
		Usage:   "zd config set <key> <value>",
		Args: []ArgSpec{
			{Name: "key", Description: "Config key", Required: true},
			{Name: "value", Description: "Config value", Required: true},
		},
		Action: mockAction,
	})

	Command(CommandSpec{
		Name:    "get",
		Parent:  config,
		Summary: "Get config value",
		Usage:   "zd config get <key>",
		Args: []ArgSpec{
			{Name: "key", Description: "Config key", Required: true},
		},
		Action: mockAction,
	})

	return root
}

func TestDispatch_SimpleCommand(t *testing.T) {
	root := createTestTree()
	flags := NewParsedFlags([]string{})

	res, err := Dispatch(root, []string{"version"}, flags)
	require.NoError(t, err)
	require.Equal(t, "version", res.Node.Name)
	require.NotNil(t, res.Execute)
	require.Empty(t, res.Args)
}

func TestDispatch_CommandWithArgs(t *testing.T) {
	root := createTestTree()
	flags := NewParsedFlags([]string{})

	res, err := Dispatch(root, []string{"info", "hello there"}, flags)
	require.NoError(t, err)
	require.Equal(t, "info", res.Node.Name)
	require.Equal(t, []string{"hello there"}, res.Args)
}

func TestDispatch_NestedCommand(t *testing.T) {
	root := createTestTree()
	flags := NewParsedFlags([]string{})

	res, err := Dispatch(root, []string{"config", "set", "command", "qarma"}, flags)
	require.NoError(t, err)
	require.Equal(t, []string{"config", "set"}, res.Node.Path[1:])
	require.Equal(t, []string{"command", "qarma"}, res.Args)
}

func TestDispatch_UnknownCommand(t *testing.T) {
	root := createTestTree()
	flags := NewParsedFlags([]string{})

	_, err := Dispatch(root, []string{"versoin"}, flags)
	require.Error(t, err)

	var usageErr *usage.Error
	require.True(t, errors.As(err, &usageErr))
	require.Contains(t, usageErr.Message, "versoin")
	require.Contains(t, usageErr.Message, "version")
}

func TestDispatch_UnknownSubcommandOfGroup(t *testing.T) {
	root := createTestTree()
	flags := NewParsedFlags([]string{})

	_, err := Dispatch(root, []string{"config", "sett", "x", "y"}, flags)
	require.Error(t, err)

	var usageErr *usage.Error
	require.True(t, errors.As(err, &usageErr))
	require.Contains(t, usageErr.Message, "config sett")
}

func TestDispatch_MissingRequiredArg(t *testing.T) {
	root := createTestTree()
	flags := NewParsedFlags([]string{})

	_, err := Dispatch(root, []string{"config", "set", "command"}, flags)
	require.Error(t, err)

	var usageErr *usage.Error
	require.True(t, errors.As(err, &usageErr))
	require.Equal(t, 2, usageErr.GetExitCode())
	require.Contains(t, usageErr.Message, "value")
}

func TestDispatch_InvalidFlag(t *testing.T) {
	root := createTestTree()
	flags := NewParsedFlags([]string{"--bogus"})

	_, err := Dispatch(root, []string{"version"}, flags)
	require.Error(t, err)

	var usageErr *usage.Error
	require.True(t, errors.As(err, &usageErr))
	require.Equal(t, 2, usageErr.GetExitCode())
}

func TestDispatch_LocalFlagAccepted(t *testing.T) {
	root := createTestTree()
	flags := NewParsedFlags([]string{"--title=Greetings"})

	res, err := Dispatch(root, []string{"info", "hi"}, flags)
	require.NoError(t, err)
	require.Equal(t, "Greetings", res.Flags.String("--title", ""))
}

func TestDispatch_GlobalFlagAcceptedEverywhere(t *testing.T) {
	root := createTestTree()
	flags := NewParsedFlags([]string{"--no-color"})

	_, err := Dispatch(root, []string{"version"}, flags)
	require.NoError(t, err)
}

func TestDispatch_RootWithNoTokensShowsHelpWithExitCode(t *testing.T) {
	root := createTestTree()
	flags := NewParsedFlags([]string{})

	res, err := Dispatch(root, []string{}, flags)
	require.NoError(t, err)
	require.Equal(t, 1, res.ExitCode)
	require.NotNil(t, res.Execute)
}

func TestDispatch_GroupWithNoSubcommandShowsHelp(t *testing.T) {
	root := createTestTree()
	flags := NewParsedFlags([]string{})

	res, err := Dispatch(root, []string{"config"}, flags)
	require.NoError(t, err)
	require.Zero(t, res.ExitCode)
	require.NotNil(t, res.Execute)
}

func TestDispatch_HelpFlag(t *testing.T) {
	root := createTestTree()
	flags := NewParsedFlags([]string{"--help"})

	res, err := Dispatch(root, []string{"info"}, flags)
	require.NoError(t, err)
	require.Equal(t, "info", res.Node.Name)
	require.NotNil(t, res.Execute)
	require.Empty(t, res.Args)
}

func TestDispatch_HelpCommand(t *testing.T) {
	root := createTestTree()
	flags := NewParsedFlags([]string{})

	res, err := Dispatch(root, []string{"help", "info"}, flags)
	require.NoError(t, err)
	require.Equal(t, "info", res.Node.Name)
}

func TestDispatch_HelpUnknownTarget(t *testing.T) {
	root := createTestTree()
	flags := NewParsedFlags([]string{})

	_, err := Dispatch(root, []string{"help", "nonsense"}, flags)
	require.Error(t, err)
}
