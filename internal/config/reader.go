package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/dialog-tools/zenity/internal/log"
	"github.com/dialog-tools/zenity/internal/paths"
)

// ReadLines reads the rc file, creating and seeding it with defaults on
// first use.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(configPath)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()
		line = strings.TrimSuffix(line, "\r") // Windows CRLF
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = initializeDefaults()
		if err := WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

// initializeDefaults produces the contents of a fresh rc file.
func initializeDefaults() []string {
	lines := []string{
		"# zd configuration",
		"# Edit values below or use: zd config set <key> <value>",
		"",
	}

	for _, key := range Keys {
		if key.HideIfEmpty {
			// Optional overrides stay commented out.
			lines = append(lines, "# "+key.Name+"=")
			continue
		}
		lines = append(lines, key.Name+"="+key.Default)
	}

	return lines
}
