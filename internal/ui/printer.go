package ui

import (
	"fmt"
	"strings"
	"time"

	zenity "github.com/dialog-tools/zenity"
	"github.com/dialog-tools/zenity/internal/format"
	"github.com/dialog-tools/zenity/internal/history"
	"github.com/dialog-tools/zenity/internal/ui/style"
)

// PrintOutcome renders a dialog outcome: the response on one styled line,
// followed by the parsed content when there is any.
func PrintOutcome[T any](w *Writer, outcome zenity.Outcome[T]) {
	switch outcome.Response {
	case zenity.ResponseAffirmed:
		w.Println(style.Success(outcome.Response.String()))
	case zenity.ResponseRejected:
		w.Println(style.Warning(outcome.Response.String()))
	case zenity.ResponseExtraButton:
		w.Printf("%s %s\n", style.Info(outcome.Response.String()), outcome.Label)
	default:
		w.Printf("%s (exit code %d)\n", style.Error(outcome.Response.String()), outcome.ExitCode)
	}

	if outcome.Content != nil {
		w.Println(FormatContent(*outcome.Content))
	}
}

// FormatContent renders parsed dialog content for display.
func FormatContent(content any) string {
	switch v := content.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	case time.Time:
		return v.Format("2006-01-02")
	default:
		return fmt.Sprint(v)
	}
}

// FormatRecords renders history records as an aligned listing, newest
// first, suitable for the pager.
func FormatRecords(records []history.Record) string {
	if len(records) == 0 {
		return style.Muted("no recorded invocations") + "\n"
	}

	var b strings.Builder

	b.WriteString(style.Header(fmt.Sprintf("%-36s  %-19s  %-14s  %-12s  %s", "ID", "WHEN", "KIND", "RESPONSE", "CONTENT")))
	b.WriteString("\n")

	for _, r := range records {
		content := ""
		if r.Content != nil {
			content = firstLine(*r.Content)
		}

		response := r.Response
		switch response {
		case "affirmed":
			response = style.Success(response)
		case "rejected":
			response = style.Warning(response)
		case "extra-button":
			response = style.Info(response)
		default:
			response = style.Error(response)
		}

		b.WriteString(fmt.Sprintf(
			"%s  %s  %-14s  %-12s  %s\n",
			style.Muted(r.ID.String()),
			fmt.Sprintf("%-19s", format.Full(r.CreatedAt.Local())),
			r.Kind,
			response,
			content,
		))
	}

	return b.String()
}

// FormatRecord renders one history record in full, one field per line.
func FormatRecord(r history.Record) string {
	var b strings.Builder

	writeField := func(name, value string) {
		fmt.Fprintf(&b, "%s %s\n", style.Muted(name+":"), value)
	}

	writeField("id", r.ID.String())
	writeField("when", format.Full(r.CreatedAt.Local()))
	writeField("kind", r.Kind)
	if r.Title != "" {
		writeField("title", r.Title)
	}
	writeField("command", r.Command)
	writeField("response", r.Response)
	writeField("exit code", fmt.Sprintf("%d", r.ExitCode))
	if r.Content != nil {
		writeField("content", *r.Content)
	}

	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}
