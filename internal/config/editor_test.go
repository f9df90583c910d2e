package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		key         string
		value       string
		want        []string
		wantUpdated bool
	}{
		{
			name:        "updates existing key",
			lines:       []string{"command=zenity"},
			key:         "command",
			value:       "qarma",
			want:        []string{"command=qarma"},
			wantUpdated: true,
		},
		{
			name:        "appends missing key",
			lines:       []string{"command=zenity"},
			key:         "log_level",
			value:       "debug",
			want:        []string{"command=zenity", "log_level=debug"},
			wantUpdated: false,
		},
		{
			name:        "preserves inline comment",
			lines:       []string{"history_limit=500 # keep it small"},
			key:         "history_limit",
			value:       "100",
			want:        []string{"history_limit=100 # keep it small"},
			wantUpdated: true,
		},
		{
			name:        "leaves comments and blanks untouched",
			lines:       []string{"# header", "", "command=zenity"},
			key:         "command",
			value:       "qarma",
			want:        []string{"# header", "", "command=qarma"},
			wantUpdated: true,
		},
		{
			name:        "commented-out key is not a match",
			lines:       []string{"# title="},
			key:         "title",
			value:       "Hello",
			want:        []string{"# title=", "title=Hello"},
			wantUpdated: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, updated := Set(tt.lines, tt.key, tt.value)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantUpdated, updated)
		})
	}
}

func TestUnset(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		key         string
		want        []string
		wantRemoved bool
	}{
		{
			name:        "removes existing key",
			lines:       []string{"command=zenity", "log_level=debug"},
			key:         "command",
			want:        []string{"log_level=debug"},
			wantRemoved: true,
		},
		{
			name:        "missing key removes nothing",
			lines:       []string{"command=zenity"},
			key:         "title",
			want:        []string{"command=zenity"},
			wantRemoved: false,
		},
		{
			name:        "keeps comments and blanks",
			lines:       []string{"# header", "", "title=Hi"},
			key:         "title",
			want:        []string{"# header", ""},
			wantRemoved: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, removed := Unset(tt.lines, tt.key)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantRemoved, removed)
		})
	}
}
