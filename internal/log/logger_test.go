package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, minLevel Level) (*Logger, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "zd.log")
	logger, err := New(path, minLevel)
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Close() })

	return logger, path
}

func readLog(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"Warn", LevelWarn},
		{"error", LevelError},
		{"verbose", LevelWarn},
		{"", LevelWarn},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ParseLevel(tt.input), "input %q", tt.input)
	}
}

func TestLoggerWritesFormattedLines(t *testing.T) {
	logger, path := newTestLogger(t, LevelDebug)

	logger.Info("showing %s dialog", "question")

	content := readLog(t, path)
	require.Contains(t, content, "INFO: showing question dialog")
}

func TestLoggerRespectsMinLevel(t *testing.T) {
	logger, path := newTestLogger(t, LevelWarn)

	logger.Debug("hidden")
	logger.Info("also hidden")
	logger.Warn("visible")
	logger.Error("also visible")

	content := readLog(t, path)
	require.NotContains(t, content, "hidden")
	require.Contains(t, content, "WARN: visible")
	require.Contains(t, content, "ERROR: also visible")
}

func TestLoggerSetEnabled(t *testing.T) {
	logger, path := newTestLogger(t, LevelDebug)

	logger.SetEnabled(false)
	logger.Info("dropped")
	logger.SetEnabled(true)
	logger.Info("kept")

	content := readLog(t, path)
	require.NotContains(t, content, "dropped")
	require.Contains(t, content, "kept")
}

func TestLoggerCreatesFileWithRestrictivePermissions(t *testing.T) {
	_, path := newTestLogger(t, LevelDebug)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoggerWriter(t *testing.T) {
	logger, path := newTestLogger(t, LevelDebug)

	w := logger.Writer(LevelInfo)
	_, err := w.Write([]byte("from a writer\n"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(readLog(t, path)), "\n")
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], "INFO: from a writer")
}

func TestNilLoggerIsSafe(t *testing.T) {
	var logger *Logger
	logger.Debug("no panic")
	logger.SetEnabled(true)
	require.NoError(t, logger.Close())
}
