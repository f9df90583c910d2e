package dispatchers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParsedFlags_Has(t *testing.T) {
	flags := NewParsedFlags([]string{"--multiple", "-h"})

	require.True(t, flags.Has("--multiple"))
	require.True(t, flags.Has("-h"))
	require.False(t, flags.Has("--title"))
}

func TestParsedFlags_String(t *testing.T) {
	flags := NewParsedFlags([]string{"--title=My Dialog", "--icon=warning"})

	require.Equal(t, "My Dialog", flags.String("--title", ""))
	require.Equal(t, "warning", flags.String("--icon", ""))
	require.Equal(t, "fallback", flags.String("--missing", "fallback"))
}

func TestParsedFlags_String_EmptyValue(t *testing.T) {
	flags := NewParsedFlags([]string{"--title="})

	require.Equal(t, "", flags.String("--title", "fallback"))
}

func TestParsedFlags_Strings(t *testing.T) {
	flags := NewParsedFlags([]string{"--column=Name", "--checklist", "--column=Age"})

	require.Equal(t, []string{"Name", "Age"}, flags.Strings("--column"))
	require.Nil(t, flags.Strings("--row"))
}

func TestParsedFlags_Int(t *testing.T) {
	flags := NewParsedFlags([]string{"--width=400", "--height=abc"})

	require.Equal(t, 400, flags.Int("--width", 0))
	require.Equal(t, 99, flags.Int("--height", 99))
	require.Equal(t, 7, flags.Int("--missing", 7))
}

func TestParsedFlags_Date(t *testing.T) {
	flags := NewParsedFlags([]string{"--since=2026-08-01", "--until=bogus"})

	since := flags.Date("--since")
	require.NotNil(t, since)
	require.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), *since)

	require.Nil(t, flags.Date("--until"))
	require.Nil(t, flags.Date("--missing"))
}
