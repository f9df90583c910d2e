package config

import (
	"fmt"
	"strings"
)

// Parse converts rc-file lines into a key/value map. Blank lines and
// comments are skipped; keys and values are trimmed; later duplicates win.
// A non-comment line without '=' or with an empty key is an error.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		parts := strings.SplitN(trimmed, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("config: line %d: missing '=': %q", i+1, trimmed)
		}

		key := strings.TrimSpace(parts[0])
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		cfg[key] = strings.TrimSpace(parts[1])
	}

	return cfg, nil
}
