package actions

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dialog-tools/zenity/internal/completions"
	"github.com/dialog-tools/zenity/internal/dispatchers"
	"github.com/dialog-tools/zenity/internal/history"
	"github.com/dialog-tools/zenity/internal/testutil"
	"github.com/dialog-tools/zenity/internal/ui"
	"github.com/dialog-tools/zenity/internal/usage"
)

// testDeps returns Dependencies writing to a buffer, backed by an in-memory
// history database.
func testDeps(t *testing.T) (Dependencies, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	db := testutil.NewTestDB(t)

	deps := Dependencies{
		Writer:    ui.NewWriterTo(&out),
		ConfigGet: func(string) (string, bool) { return "", false },
		OpenHistory: func() (*history.Store, error) {
			return history.NewWithDB(db), nil
		},
		Version: func() string { return "1.2.3" },
	}
	return deps, &out
}

func TestShowVersion(t *testing.T) {
	deps, out := testDeps(t)

	require.NoError(t, showVersion(nil, parsed(), deps))
	require.Equal(t, "zd version 1.2.3\n", out.String())
}

func TestConfigGet_InvalidKey(t *testing.T) {
	deps, _ := testDeps(t)

	err := configGet([]string{"bogus_key"}, parsed(), deps)
	require.Error(t, err)

	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ErrInvalidConfigKey, ue.Kind)
	require.Contains(t, ue.Message, "bogus_key")
}

func TestConfigGet(t *testing.T) {
	deps, out := testDeps(t)
	deps.ConfigGet = func(key string) (string, bool) {
		if key == "title" {
			return "My Title", true
		}
		return "", false
	}

	require.NoError(t, configGet([]string{"title"}, parsed(), deps))
	require.Equal(t, "My Title\n", out.String())
}

func TestConfigGet_Unset(t *testing.T) {
	deps, out := testDeps(t)

	require.NoError(t, configGet([]string{"title"}, parsed(), deps))
	require.Contains(t, out.String(), "(not set)")
}

func TestConfigSet_InvalidKey(t *testing.T) {
	deps, _ := testDeps(t)

	err := configSet([]string{"bogus_key", "value"}, parsed(), deps)
	require.Error(t, err)

	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ErrInvalidConfigKey, ue.Kind)
}

func TestHistoryList(t *testing.T) {
	deps, out := testDeps(t)

	store, err := deps.OpenHistory()
	require.NoError(t, err)
	content := "picked"
	require.NoError(t, store.Insert(history.NewRecord("question", "t", "zenity", "affirmed", &content, 0)))

	require.NoError(t, historyList(nil, parsed(), deps))
	require.Contains(t, out.String(), "question")
	require.Contains(t, out.String(), "picked")
}

func TestHistoryList_Empty(t *testing.T) {
	deps, out := testDeps(t)

	require.NoError(t, historyList(nil, parsed(), deps))
	require.Contains(t, out.String(), "no recorded invocations")
}

func TestHistoryClear(t *testing.T) {
	deps, out := testDeps(t)

	store, err := deps.OpenHistory()
	require.NoError(t, err)
	require.NoError(t, store.Insert(history.NewRecord("info", "", "zenity", "affirmed", nil, 0)))
	require.NoError(t, store.Insert(history.NewRecord("entry", "", "zenity", "rejected", nil, 1)))

	// The action closes its store, and with it the shared connection, so the
	// reported count is the assertion here.
	require.NoError(t, historyClear(nil, parsed(), deps))
	require.Contains(t, out.String(), "removed")
	require.Contains(t, out.String(), "2 invocation(s)")
}

func TestHistoryShow(t *testing.T) {
	deps, out := testDeps(t)

	store, err := deps.OpenHistory()
	require.NoError(t, err)
	content := "2026-08-28"
	record := history.NewRecord("calendar", "Pick a date", "zenity", "affirmed", &content, 0)
	require.NoError(t, store.Insert(record))

	require.NoError(t, historyShow([]string{record.ID.String()}, parsed(), deps))
	require.Contains(t, out.String(), record.ID.String())
	require.Contains(t, out.String(), "calendar")
	require.Contains(t, out.String(), "Pick a date")
	require.Contains(t, out.String(), "2026-08-28")
}

func TestHistoryShow_InvalidID(t *testing.T) {
	deps, _ := testDeps(t)

	err := historyShow([]string{"not-a-uuid"}, parsed(), deps)
	require.Error(t, err)

	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Contains(t, ue.Message, "not a valid invocation id")
}

func TestHistoryShow_NotFound(t *testing.T) {
	deps, _ := testDeps(t)

	err := historyShow([]string{"00000000-0000-0000-0000-000000000000"}, parsed(), deps)
	require.Error(t, err)

	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Contains(t, ue.Message, "no invocation with id")
}

func TestHistoryFilter(t *testing.T) {
	f := historyFilter(parsed("--kind=question", "--response=affirmed", "--since=2026-08-01", "--limit=10"))

	require.Equal(t, "question", f.Kind)
	require.Equal(t, "affirmed", f.Response)
	require.NotNil(t, f.Since)
	require.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), *f.Since)
	require.Equal(t, 10, f.Limit)
}

func TestShow_MissingFile(t *testing.T) {
	deps, _ := testDeps(t)

	err := show(nil, parsed(), deps)
	require.Error(t, err)

	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ErrMissingArgument, ue.Kind)
}

func TestShow_UnreadableFile(t *testing.T) {
	deps, _ := testDeps(t)

	err := show(nil, parsed("--file=/nonexistent/dialog.toml"), deps)
	require.Error(t, err)

	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ErrInvalidDialogFile, ue.Kind)
}

func TestCompletionsAction(t *testing.T) {
	root := dispatchers.Root(dispatchers.RootSpec{Name: "zd", Summary: "Desktop dialogs"})
	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "question",
		Parent:  root,
		Summary: "Ask a yes/no question",
	})
	completions.RegisterCommandTree(root)

	deps, out := testDeps(t)
	require.NoError(t, completionsAction([]string{"bash"}, parsed(), deps))
	require.Contains(t, out.String(), "question")
	require.Contains(t, out.String(), "complete -F")
}

func TestCompletionsAction_UnsupportedShell(t *testing.T) {
	deps, _ := testDeps(t)

	err := completionsAction([]string{"powershell"}, parsed(), deps)
	require.Error(t, err)

	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Contains(t, ue.Message, "unsupported shell")
}
