package ui

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	zenity "github.com/dialog-tools/zenity"
	"github.com/dialog-tools/zenity/internal/history"
)

func ptr[T any](v T) *T { return &v }

func TestPrintOutcome(t *testing.T) {
	tests := []struct {
		name    string
		outcome zenity.Outcome[string]
		want    []string
	}{
		{
			name:    "affirmed with content",
			outcome: zenity.Outcome[string]{Response: zenity.ResponseAffirmed, Content: ptr("hello")},
			want:    []string{"affirmed", "hello"},
		},
		{
			name:    "rejected",
			outcome: zenity.Outcome[string]{Response: zenity.ResponseRejected},
			want:    []string{"rejected"},
		},
		{
			name:    "extra button",
			outcome: zenity.Outcome[string]{Response: zenity.ResponseExtraButton, Label: "Later"},
			want:    []string{"extra-button", "Later"},
		},
		{
			name:    "unknown includes exit code",
			outcome: zenity.Outcome[string]{Response: zenity.ResponseUnknown, ExitCode: 42},
			want:    []string{"unknown", "42"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriterTo(&buf, WithPagerDisabled())

			PrintOutcome(w, tt.outcome)

			for _, want := range tt.want {
				require.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestFormatContent(t *testing.T) {
	require.Equal(t, "abc", FormatContent("abc"))
	require.Equal(t, "a\nb", FormatContent([]string{"a", "b"}))
	require.Equal(t, "42", FormatContent(42))

	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "2026-08-28", FormatContent(date))
}

func TestFormatRecords(t *testing.T) {
	records := []history.Record{
		{
			ID:        uuid.New(),
			Kind:      "entry",
			Title:     "Name",
			Command:   "zenity",
			Response:  "affirmed",
			Content:   ptr("Ada"),
			CreatedAt: time.Now(),
		},
	}

	out := FormatRecords(records)
	require.Contains(t, out, "entry")
	require.Contains(t, out, "affirmed")
	require.Contains(t, out, "Ada")
	require.Contains(t, out, records[0].ID.String())
}

func TestFormatRecords_Empty(t *testing.T) {
	require.Contains(t, FormatRecords(nil), "no recorded invocations")
}

func TestFormatRecords_MultilineContentTruncated(t *testing.T) {
	records := []history.Record{
		{
			ID:        uuid.New(),
			Kind:      "textinfo",
			Response:  "affirmed",
			Content:   ptr("first\nsecond"),
			CreatedAt: time.Now(),
		},
	}

	out := FormatRecords(records)
	require.Contains(t, out, "first ...")
	require.NotContains(t, out, "second")
}

func TestWriterPagerDisabled(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf, WithPagerDisabled())

	w.Pager("content here")
	require.Equal(t, "content here", buf.String())
}
