package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	zenity "github.com/dialog-tools/zenity"
	"github.com/dialog-tools/zenity/internal/dispatchers"
	"github.com/dialog-tools/zenity/internal/history"
	"github.com/dialog-tools/zenity/internal/usage"
)

func parsed(flags ...string) *dispatchers.ParsedFlags {
	return dispatchers.NewParsedFlags(flags)
}

func TestBuildInfo(t *testing.T) {
	d := buildInfo("hello", parsed("--ok-label=Got it", "--no-wrap"))
	require.Equal(t, []string{"--info", "--text=hello", "--ok-label=Got it", "--no-wrap"}, d.Args())
}

func TestBuildQuestion(t *testing.T) {
	d := buildQuestion("sure?", parsed("--cancel-label=No way", "--default-cancel"))
	require.Equal(t, []string{"--question", "--text=sure?", "--cancel-label=No way", "--default-cancel"}, d.Args())
}

func TestBuildEntry(t *testing.T) {
	d := buildEntry("name?", parsed("--entry-text=anon", "--hide-text"))
	require.Equal(t, []string{"--entry", "--text=name?", "--entry-text=anon", "--hide-text"}, d.Args())
}

func TestBuildList(t *testing.T) {
	args := []string{"pick one", "1", "alpha", "2", "beta"}
	d := buildList(args[0], args, parsed("--column=ID", "--column=Name", "--checklist"))

	require.Equal(t, []string{
		"--list", "--text=pick one",
		"--column=ID", "--column=Name",
		"--checklist",
		"1", "alpha", "2", "beta",
	}, d.Args())
}

func TestBuildForms_FieldOrder(t *testing.T) {
	d := buildForms("sign up", parsed(
		"--add-entry=Username",
		"--add-entry=Email",
		"--add-password=Password",
		"--add-calendar=Birthday",
		"--separator=|",
	))

	require.Equal(t, []string{
		"--forms", "--text=sign up",
		"--add-entry=Username", "--add-entry=Email",
		"--add-password=Password",
		"--add-calendar=Birthday",
		"--separator=|",
	}, d.Args())
}

func TestBuildCalendar(t *testing.T) {
	d := buildCalendar("when?", parsed("--day=15", "--month=6", "--year=2026"))
	require.Equal(t, []string{"--calendar", "--text=when?", "--day=15", "--month=6", "--year=2026"}, d.Args())
}

func TestBuildCalendar_IgnoresInvalidMonth(t *testing.T) {
	d := buildCalendar("", parsed("--month=13"))
	require.Equal(t, []string{"--calendar"}, d.Args())
}

func TestBuildFileSelection_RepeatableFilters(t *testing.T) {
	d := buildFileSelection(parsed("--multiple", "--file-filter=*.png", "--file-filter=*.jpg"))
	require.Equal(t, []string{
		"--file-selection", "--multiple",
		"--file-filter=*.png", "--file-filter=*.jpg",
	}, d.Args())
}

func TestParseIcon(t *testing.T) {
	tests := []struct {
		name string
		want zenity.Icon
	}{
		{name: "error", want: zenity.IconError},
		{name: "info", want: zenity.IconInfo},
		{name: "question", want: zenity.IconQuestion},
		{name: "warning", want: zenity.IconWarning},
		{name: "/tmp/logo.png", want: zenity.IconPath("/tmp/logo.png")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, parseIcon(tt.name))
		})
	}
}

func TestApplyCommonOptions_FlagsOverConfig(t *testing.T) {
	cfg := map[string]string{
		"title":   "Config Title",
		"command": "qarma",
	}
	cfgGet := func(key string) (string, bool) {
		v, ok := cfg[key]
		return v, ok
	}

	_, title, command := applyCommonOptions(zenity.NewInfo().Dialog(), parsed("--title=Flag Title"), cfgGet)
	require.Equal(t, "Flag Title", title)
	require.Equal(t, "qarma", command)
}

func TestApplyCommonOptions_Defaults(t *testing.T) {
	_, title, command := applyCommonOptions(zenity.NewInfo().Dialog(), parsed(), nil)
	require.Empty(t, title)
	require.Equal(t, zenity.DefaultCommand, command)
}

func TestResponseExitCode(t *testing.T) {
	require.Equal(t, 0, responseExitCode(zenity.ResponseAffirmed, 0))
	require.Equal(t, 1, responseExitCode(zenity.ResponseRejected, 0))
	require.Equal(t, 1, responseExitCode(zenity.ResponseExtraButton, 0))
	require.Equal(t, 256, responseExitCode(zenity.ResponseUnknown, 256))
	require.Equal(t, 1, responseExitCode(zenity.ResponseUnknown, 0))
}

func TestResponseError(t *testing.T) {
	require.NoError(t, responseError(zenity.ResponseAffirmed, 0))

	err := responseError(zenity.ResponseRejected, 0)
	require.Error(t, err)

	ue, ok := err.(*usage.Error)
	require.True(t, ok)
	require.Empty(t, ue.Message)
	require.Equal(t, 1, ue.GetExitCode())
}

func TestShouldRecord(t *testing.T) {
	openHistory := func() (*history.Store, error) { return nil, nil }

	deps := Dependencies{
		ConfigGet:   func(string) (string, bool) { return "", false },
		OpenHistory: openHistory,
	}
	require.True(t, shouldRecord(deps, parsed()))
	require.False(t, shouldRecord(deps, parsed("--no-history")))

	deps.ConfigGet = func(key string) (string, bool) {
		if key == "history" {
			return "false", true
		}
		return "", false
	}
	require.False(t, shouldRecord(deps, parsed()))

	deps.ConfigGet = nil
	deps.OpenHistory = nil
	require.False(t, shouldRecord(deps, parsed()))
}

func TestHistoryLimit(t *testing.T) {
	deps := Dependencies{ConfigGet: func(key string) (string, bool) {
		if key == "history_limit" {
			return "250", true
		}
		return "", false
	}}
	require.Equal(t, 250, historyLimit(deps))

	deps.ConfigGet = func(string) (string, bool) { return "not-a-number", true }
	require.Equal(t, 0, historyLimit(deps))

	require.Equal(t, 0, historyLimit(Dependencies{}))
}

func TestRunDialog_UnknownKind(t *testing.T) {
	err := RunDialog(Dependencies{}, "hologram", nil, parsed())
	require.Error(t, err)

	ue, ok := err.(*usage.Error)
	require.True(t, ok)
	require.Contains(t, ue.Message, "unknown dialog kind")
}
