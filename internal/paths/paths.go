package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "zdialog"

// AppDataDir returns the application data directory for the log file and
// history database. Uses os.UserConfigDir():
//   - macOS: ~/Library/Application Support/zdialog
//   - Linux: $XDG_CONFIG_HOME/zdialog or ~/.config/zdialog
//   - Windows: %AppData%\zdialog
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Restrictive permissions; the history can contain entered text.
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns the path to the user's rc file.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".zdrc"), nil
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "zd.log")
}

// HistoryDBPath returns the path to the invocation history database.
func HistoryDBPath() string {
	return filepath.Join(AppDataDir(), "history.db")
}
