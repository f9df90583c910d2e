package actions

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	zenity "github.com/dialog-tools/zenity"
	"github.com/dialog-tools/zenity/internal/dispatchers"
	"github.com/dialog-tools/zenity/internal/history"
	"github.com/dialog-tools/zenity/internal/log"
	"github.com/dialog-tools/zenity/internal/ui"
	"github.com/dialog-tools/zenity/internal/usage"
)

// DialogAction returns the command action for one dialog kind.
func DialogAction(kind string) dispatchers.CommandFunc {
	return func(args []string, flags *dispatchers.ParsedFlags) error {
		return RunDialog(defaultDeps(), kind, args, flags)
	}
}

// RunDialog builds the dialog for kind from args and flags, shows it,
// prints the outcome and records it in the history.
func RunDialog(deps Dependencies, kind string, args []string, flags *dispatchers.ParsedFlags) error {
	text := ""
	if len(args) > 0 {
		text = args[0]
	}

	switch kind {
	case "info":
		return showDialog(deps, kind, buildInfo(text, flags).Dialog(), flags)
	case "error":
		return showDialog(deps, kind, buildErrorMsg(text, flags).Dialog(), flags)
	case "warning":
		return showDialog(deps, kind, buildWarning(text, flags).Dialog(), flags)
	case "question":
		return showDialog(deps, kind, buildQuestion(text, flags).Dialog(), flags)
	case "entry":
		return showDialog(deps, kind, buildEntry(text, flags).Dialog(), flags)
	case "password":
		return showDialog(deps, kind, buildPassword(flags).Dialog(), flags)
	case "calendar":
		// A custom text format keeps the raw string output; otherwise the
		// selection is parsed into a date.
		if format := flags.String("--date-format", ""); format != "" {
			return showDialog(deps, kind, buildCalendar(text, flags).WithFormat(format).Dialog(), flags)
		}
		return showDialog(deps, kind, buildCalendar(text, flags).ParseDates().Dialog(), flags)
	case "file-selection":
		return showDialog(deps, kind, buildFileSelection(flags).Dialog(), flags)
	case "list":
		return showDialog(deps, kind, buildList(text, args, flags).Dialog(), flags)
	case "notification":
		return showDialog(deps, kind, zenity.NewNotification().WithText(text).Dialog(), flags)
	case "progress":
		return showDialog(deps, kind, buildProgress(text, flags).Dialog(), flags)
	case "scale":
		return showDialog(deps, kind, buildScale(text, flags).Dialog(), flags)
	case "text-info":
		return showDialog(deps, kind, buildTextInfo(flags).Dialog(), flags)
	case "color-selection":
		return showDialog(deps, kind, buildColorSelection(flags).Dialog(), flags)
	case "forms":
		return showDialog(deps, kind, buildForms(text, flags).Dialog(), flags)
	}

	return &usage.Error{Kind: usage.ErrUnknown, Message: fmt.Sprintf("zd: unknown dialog kind '%s'", kind)}
}

func buildInfo(text string, flags *dispatchers.ParsedFlags) zenity.Info {
	d := zenity.NewInfo().WithText(text)
	if label := flags.String("--ok-label", ""); label != "" {
		d = d.WithOKLabel(label)
	}
	if flags.Has("--no-wrap") {
		d = d.SetNoWrap()
	}
	if flags.Has("--no-markup") {
		d = d.SetNoMarkup()
	}
	if flags.Has("--ellipsize") {
		d = d.SetEllipsize()
	}
	return d
}

func buildErrorMsg(text string, flags *dispatchers.ParsedFlags) zenity.ErrorMsg {
	d := zenity.NewErrorMsg().WithText(text)
	if flags.Has("--no-wrap") {
		d = d.SetNoWrap()
	}
	if flags.Has("--no-markup") {
		d = d.SetNoMarkup()
	}
	return d
}

func buildWarning(text string, flags *dispatchers.ParsedFlags) zenity.Warning {
	d := zenity.NewWarning().WithText(text)
	if flags.Has("--no-wrap") {
		d = d.SetNoWrap()
	}
	if flags.Has("--no-markup") {
		d = d.SetNoMarkup()
	}
	return d
}

func buildQuestion(text string, flags *dispatchers.ParsedFlags) zenity.Question {
	d := zenity.NewQuestion().WithText(text)
	if label := flags.String("--ok-label", ""); label != "" {
		d = d.WithOKLabel(label)
	}
	if label := flags.String("--cancel-label", ""); label != "" {
		d = d.WithCancelLabel(label)
	}
	if flags.Has("--default-cancel") {
		d = d.SetDefaultCancel()
	}
	if flags.Has("--no-wrap") {
		d = d.SetNoWrap()
	}
	if flags.Has("--no-markup") {
		d = d.SetNoMarkup()
	}
	if flags.Has("--ellipsize") {
		d = d.SetEllipsize()
	}
	return d
}

func buildEntry(text string, flags *dispatchers.ParsedFlags) zenity.Entry {
	d := zenity.NewEntry().WithText(text)
	if prefill := flags.String("--entry-text", ""); prefill != "" {
		d = d.WithEntryText(prefill)
	}
	if flags.Has("--hide-text") {
		d = d.SetHideText()
	}
	return d
}

func buildPassword(flags *dispatchers.ParsedFlags) zenity.Password {
	d := zenity.NewPassword()
	if flags.Has("--username") {
		d = d.SetUsername()
	}
	return d
}

func buildCalendar(text string, flags *dispatchers.ParsedFlags) zenity.Calendar {
	d := zenity.NewCalendar()
	if text != "" {
		d = d.WithText(text)
	}
	if day := flags.Int("--day", 0); day > 0 {
		d = d.WithDay(day)
	}
	if month := flags.Int("--month", 0); month >= 1 && month <= 12 {
		d = d.WithMonth(time.Month(month))
	}
	if year := flags.Int("--year", 0); year > 0 {
		d = d.WithYear(year)
	}
	return d
}

func buildFileSelection(flags *dispatchers.ParsedFlags) zenity.FileSelection {
	d := zenity.NewFileSelection()
	if path := flags.String("--filename", ""); path != "" {
		d = d.WithFilename(path)
	}
	if flags.Has("--multiple") {
		d = d.SetMultiple()
	}
	if flags.Has("--directory") {
		d = d.SetDirectory()
	}
	if flags.Has("--save") {
		d = d.SetSave()
	}
	if sep := flags.String("--separator", ""); sep != "" {
		d = d.WithSeparator(sep)
	}
	for _, pattern := range flags.Strings("--file-filter") {
		d = d.WithFilter(pattern)
	}
	return d
}

func buildList(text string, args []string, flags *dispatchers.ParsedFlags) zenity.List {
	d := zenity.NewList()
	if text != "" {
		d = d.WithText(text)
	}
	for _, header := range flags.Strings("--column") {
		d = d.WithColumn(header)
	}
	if flags.Has("--checklist") {
		d = d.SetChecklist()
	}
	if flags.Has("--radiolist") {
		d = d.SetRadiolist()
	}
	if flags.Has("--editable") {
		d = d.SetEditable()
	}
	if flags.Has("--multiple") {
		d = d.SetMultiple()
	}
	if flags.Has("--hide-header") {
		d = d.SetHideHeader()
	}
	if col := flags.String("--print-column", ""); col != "" {
		d = d.WithPrintColumn(col)
	}
	if sep := flags.String("--separator", ""); sep != "" {
		d = d.WithSeparator(sep)
	}
	// Arguments after the text are row cells in column order.
	if len(args) > 1 {
		d = d.AddRow(args[1:]...)
	}
	return d
}

func buildProgress(text string, flags *dispatchers.ParsedFlags) zenity.Progress {
	d := zenity.NewProgress()
	if text != "" {
		d = d.WithText(text)
	}
	if pct := flags.String("--percentage", ""); pct != "" {
		if n, err := strconv.Atoi(pct); err == nil {
			d = d.WithPercentage(n)
		}
	}
	if flags.Has("--pulsate") {
		d = d.SetPulsate()
	}
	if flags.Has("--auto-close") {
		d = d.SetAutoClose()
	}
	if flags.Has("--no-cancel") {
		d = d.SetNoCancel()
	}
	return d
}

func buildScale(text string, flags *dispatchers.ParsedFlags) zenity.Scale {
	d := zenity.NewScale()
	if text != "" {
		d = d.WithText(text)
	}
	if v := flags.String("--value", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			d = d.WithValue(n)
		}
	}
	if v := flags.String("--min-value", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			d = d.WithMinValue(n)
		}
	}
	if v := flags.String("--max-value", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			d = d.WithMaxValue(n)
		}
	}
	if v := flags.String("--step", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			d = d.WithStep(n)
		}
	}
	if flags.Has("--hide-value") {
		d = d.SetHideValue()
	}
	return d
}

func buildTextInfo(flags *dispatchers.ParsedFlags) zenity.TextInfo {
	d := zenity.NewTextInfo()
	if path := flags.String("--filename", ""); path != "" {
		d = d.WithFilename(path)
	}
	if flags.Has("--editable") {
		d = d.SetEditable()
	}
	if label := flags.String("--checkbox", ""); label != "" {
		d = d.WithCheckbox(label)
	}
	return d
}

func buildColorSelection(flags *dispatchers.ParsedFlags) zenity.ColorSelection {
	d := zenity.NewColorSelection()
	if color := flags.String("--color", ""); color != "" {
		d = d.WithColor(color)
	}
	if flags.Has("--show-palette") {
		d = d.SetShowPalette()
	}
	return d
}

func buildForms(text string, flags *dispatchers.ParsedFlags) zenity.Forms {
	d := zenity.NewForms()
	if text != "" {
		d = d.WithText(text)
	}
	// Field flags are repeatable; within each type the declaration order is
	// preserved, entries first, then passwords, then calendars.
	for _, label := range flags.Strings("--add-entry") {
		d = d.AddEntry(label)
	}
	for _, label := range flags.Strings("--add-password") {
		d = d.AddPassword(label)
	}
	for _, label := range flags.Strings("--add-calendar") {
		d = d.AddCalendar(label)
	}
	if sep := flags.String("--separator", ""); sep != "" {
		d = d.WithSeparator(sep)
	}
	if format := flags.String("--forms-date-format", ""); format != "" {
		d = d.WithDateFormat(format)
	}
	return d
}

// showDialog applies the shared options, runs the dialog and handles the
// outcome: print, record, translate the response into an exit code.
func showDialog[T any](deps Dependencies, kind string, d zenity.Dialog[T], flags *dispatchers.ParsedFlags) error {
	d, title, command := applyCommonOptions(d, flags, deps.ConfigGet)

	var (
		outcome zenity.Outcome[T]
		err     error
	)

	if label := flags.String("--extra-button", ""); label != "" {
		outcome, err = d.WithExtraButton(label).Show()
	} else {
		outcome, err = d.Show()
	}

	if err != nil {
		if errors.Is(err, zenity.ErrNotInstalled) {
			return &usage.Error{
				Kind:    usage.ErrZenityNotInstalled,
				Message: fmt.Sprintf("zd: '%s' is not installed or not on PATH", command),
			}
		}
		return &usage.Error{
			Kind:    usage.ErrDialogFailed,
			Message: fmt.Sprintf("zd: %s dialog failed: %v", kind, err),
		}
	}

	ui.PrintOutcome(deps.Writer, outcome)

	if shouldRecord(deps, flags) {
		recordOutcome(deps, kind, title, command, outcome)
	}

	return responseError(outcome.Response, outcome.ExitCode)
}

// applyCommonOptions layers flag values over config defaults for the options
// every dialog shares. It returns the effective title and command alongside
// the updated dialog.
func applyCommonOptions[T any](d zenity.Dialog[T], flags *dispatchers.ParsedFlags, cfgGet func(string) (string, bool)) (zenity.Dialog[T], string, string) {
	get := func(flagName, cfgKey string) string {
		if v := flags.String(flagName, ""); v != "" {
			return v
		}
		if cfgGet != nil {
			if v, ok := cfgGet(cfgKey); ok && v != "" {
				return v
			}
		}
		return ""
	}

	title := get("--title", "title")
	if title != "" {
		d = d.WithTitle(title)
	}

	if icon := get("--dialog-icon", "icon"); icon != "" {
		d = d.WithIcon(parseIcon(icon))
	}

	if v := get("--width", "width"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			d = d.WithWidth(n)
		}
	}

	if v := get("--height", "height"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			d = d.WithHeight(n)
		}
	}

	if v := get("--timeout", "timeout_sec"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			d = d.WithTimeout(time.Duration(n) * time.Second)
		}
	}

	command := get("--dialog-command", "command")
	if command != "" {
		d = d.WithCommand(command)
	} else {
		command = zenity.DefaultCommand
	}

	return d, title, command
}

// parseIcon maps the stock icon names to their Icon values and treats
// anything else as a file path.
func parseIcon(name string) zenity.Icon {
	switch name {
	case "error":
		return zenity.IconError
	case "info":
		return zenity.IconInfo
	case "question":
		return zenity.IconQuestion
	case "warning":
		return zenity.IconWarning
	default:
		return zenity.IconPath(name)
	}
}

func shouldRecord(deps Dependencies, flags *dispatchers.ParsedFlags) bool {
	if flags.Has("--no-history") {
		return false
	}
	if deps.ConfigGet != nil {
		if v, _ := deps.ConfigGet("history"); v == "false" {
			return false
		}
	}
	return deps.OpenHistory != nil
}

// recordOutcome stores the invocation. History failures are logged, never
// surfaced; a broken database must not break dialogs.
func recordOutcome[T any](deps Dependencies, kind, title, command string, outcome zenity.Outcome[T]) {
	store, err := deps.OpenHistory()
	if err != nil {
		log.Warn("history: could not open store: %v", err)
		return
	}
	defer func() { _ = store.Close() }()

	var content *string
	switch outcome.Response {
	case zenity.ResponseAffirmed:
		if outcome.Content != nil {
			formatted := ui.FormatContent(*outcome.Content)
			content = &formatted
		}
	case zenity.ResponseRejected:
		content = outcome.Raw
	}

	record := history.NewRecord(kind, title, command, outcome.Response.String(), content, responseExitCode(outcome.Response, outcome.ExitCode))

	if err := store.Insert(record); err != nil {
		log.Warn("history: could not record invocation: %v", err)
		return
	}

	if limit := historyLimit(deps); limit > 0 {
		if _, err := store.Prune(limit); err != nil {
			log.Warn("history: could not prune: %v", err)
		}
	}
}

func historyLimit(deps Dependencies) int {
	if deps.ConfigGet == nil {
		return 0
	}
	v, _ := deps.ConfigGet("history_limit")
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// responseExitCode maps a response to the exit code zd reports, mirroring
// zenity's own convention.
func responseExitCode(response zenity.Response, unknownCode int) int {
	switch response {
	case zenity.ResponseAffirmed:
		return 0
	case zenity.ResponseRejected, zenity.ResponseExtraButton:
		return 1
	default:
		if unknownCode != 0 {
			return unknownCode
		}
		return 1
	}
}

// responseError translates a non-affirmative response into a silent exit
// code, so scripts can branch on zd like they would on zenity itself.
func responseError(response zenity.Response, unknownCode int) error {
	code := responseExitCode(response, unknownCode)
	if code == 0 {
		return nil
	}
	return &usage.Error{Kind: usage.ErrUnknown, Message: "", ExitCode: code}
}
