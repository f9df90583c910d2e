package paths

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppDataDir_ReturnsNonEmpty(t *testing.T) {
	dir := AppDataDir()
	require.NotEmpty(t, dir)
	require.NotEqual(t, ".", dir)
}

func TestAppDataDir_ContainsAppName(t *testing.T) {
	dir := AppDataDir()
	require.True(t, strings.HasSuffix(dir, appDirName),
		"AppDataDir should end with %q: %s", appDirName, dir)
}

func TestConfigFilePath(t *testing.T) {
	path, err := ConfigFilePath()
	require.NoError(t, err)
	require.Equal(t, ".zdrc", filepath.Base(path))
}

func TestLogFilePath_LivesInAppDataDir(t *testing.T) {
	path := LogFilePath()
	require.Equal(t, "zd.log", filepath.Base(path))
	require.Equal(t, AppDataDir(), filepath.Dir(path))
}

func TestHistoryDBPath_LivesInAppDataDir(t *testing.T) {
	path := HistoryDBPath()
	require.Equal(t, "history.db", filepath.Base(path))
	require.Equal(t, AppDataDir(), filepath.Dir(path))
}
