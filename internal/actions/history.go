package actions

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dialog-tools/zenity/internal/dispatchers"
	"github.com/dialog-tools/zenity/internal/history"
	"github.com/dialog-tools/zenity/internal/ui"
	"github.com/dialog-tools/zenity/internal/ui/style"
	"github.com/dialog-tools/zenity/internal/usage"
)

func HistoryList(args []string, flags *dispatchers.ParsedFlags) error {
	return historyList(args, flags, defaultDeps())
}

func historyList(_ []string, flags *dispatchers.ParsedFlags, deps Dependencies) error {
	store, err := deps.OpenHistory()
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() { _ = store.Close() }()

	records, err := store.List(historyFilter(flags))
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	deps.Writer.Pager(ui.FormatRecords(records))
	return nil
}

func HistoryShow(args []string, flags *dispatchers.ParsedFlags) error {
	return historyShow(args, flags, defaultDeps())
}

func historyShow(args []string, _ *dispatchers.ParsedFlags, deps Dependencies) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return &usage.Error{
			Kind:    usage.ErrMissingArgument,
			Message: fmt.Sprintf("zd: '%s' is not a valid invocation id", args[0]),
		}
	}

	store, err := deps.OpenHistory()
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() { _ = store.Close() }()

	record, err := store.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &usage.Error{
				Kind:    usage.ErrUnknown,
				Message: fmt.Sprintf("zd: no invocation with id %s", id),
			}
		}
		return fmt.Errorf("get invocation: %w", err)
	}

	_, _ = deps.Writer.Write([]byte(ui.FormatRecord(record)))
	return nil
}

func HistoryBrowse(args []string, flags *dispatchers.ParsedFlags) error {
	return historyBrowse(args, flags, defaultDeps())
}

func historyBrowse(_ []string, flags *dispatchers.ParsedFlags, deps Dependencies) error {
	store, err := deps.OpenHistory()
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() { _ = store.Close() }()

	records, err := store.List(historyFilter(flags))
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	return ui.RunBrowser(records)
}

func HistoryClear(args []string, flags *dispatchers.ParsedFlags) error {
	return historyClear(args, flags, defaultDeps())
}

func historyClear(_ []string, _ *dispatchers.ParsedFlags, deps Dependencies) error {
	store, err := deps.OpenHistory()
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() { _ = store.Close() }()

	removed, err := store.Clear()
	if err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	_, _ = deps.Writer.Printf("%s %d invocation(s)\n", style.Success("removed"), removed)
	return nil
}

func historyFilter(flags *dispatchers.ParsedFlags) history.Filter {
	return history.Filter{
		Kind:     flags.String("--kind", ""),
		Response: flags.String("--response", ""),
		Since:    flags.Date("--since"),
		Limit:    flags.Int("--limit", 0),
	}
}
