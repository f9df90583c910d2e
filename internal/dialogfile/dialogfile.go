// Package dialogfile loads dialog definitions from TOML files, so a dialog
// can be declared once and shown with 'zd show --file'.
package dialogfile

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// KnownKinds lists the dialog kinds a definition may declare.
var KnownKinds = []string{
	"info",
	"error",
	"warning",
	"question",
	"entry",
	"password",
	"calendar",
	"file-selection",
	"list",
	"notification",
	"progress",
	"scale",
	"text-info",
	"color-selection",
	"forms",
}

// Definition is one declared dialog. The common fields mirror the shared
// dialog flags; Options carries kind-specific settings keyed by flag name
// without the leading dashes.
type Definition struct {
	Kind        string         `toml:"kind"`
	Text        string         `toml:"text"`
	Title       string         `toml:"title"`
	Icon        string         `toml:"icon"`
	Width       int            `toml:"width"`
	Height      int            `toml:"height"`
	TimeoutSec  int            `toml:"timeout_sec"`
	ExtraButton string         `toml:"extra_button"`
	Command     string         `toml:"command"`
	NoHistory   bool           `toml:"no_history"`
	Rows        [][]string     `toml:"rows"`
	Options     map[string]any `toml:"options"`
}

// Load reads and validates a definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}

	var def Definition
	if err := toml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	if def.Kind == "" {
		return nil, fmt.Errorf("definition is missing 'kind'")
	}
	if !isKnownKind(def.Kind) {
		return nil, fmt.Errorf("unknown dialog kind '%s'", def.Kind)
	}

	return &def, nil
}

func isKnownKind(kind string) bool {
	for _, k := range KnownKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Tokens converts the definition into the positional arguments and flag
// strings the dialog commands accept, so declared and flag-built dialogs
// share one code path.
func (d *Definition) Tokens() (args []string, flags []string) {
	if d.Text != "" || len(d.Rows) > 0 {
		args = append(args, d.Text)
	}
	for _, row := range d.Rows {
		args = append(args, row...)
	}

	if d.Title != "" {
		flags = append(flags, "--title="+d.Title)
	}
	if d.Icon != "" {
		flags = append(flags, "--dialog-icon="+d.Icon)
	}
	if d.Width > 0 {
		flags = append(flags, fmt.Sprintf("--width=%d", d.Width))
	}
	if d.Height > 0 {
		flags = append(flags, fmt.Sprintf("--height=%d", d.Height))
	}
	if d.TimeoutSec > 0 {
		flags = append(flags, fmt.Sprintf("--timeout=%d", d.TimeoutSec))
	}
	if d.ExtraButton != "" {
		flags = append(flags, "--extra-button="+d.ExtraButton)
	}
	if d.Command != "" {
		flags = append(flags, "--dialog-command="+d.Command)
	}
	if d.NoHistory {
		flags = append(flags, "--no-history")
	}

	// Stable flag order regardless of map iteration.
	keys := make([]string, 0, len(d.Options))
	for k := range d.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		flags = append(flags, optionTokens(k, d.Options[k])...)
	}

	return args, flags
}

// optionTokens renders one kind-specific option as flag strings. Booleans
// become bare flags, arrays repeat the flag per element.
func optionTokens(key string, value any) []string {
	name := "--" + key

	switch v := value.(type) {
	case bool:
		if v {
			return []string{name}
		}
		return nil
	case string:
		return []string{name + "=" + v}
	case int64:
		return []string{fmt.Sprintf("%s=%d", name, v)}
	case float64:
		return []string{fmt.Sprintf("%s=%g", name, v)}
	case []any:
		var out []string
		for _, item := range v {
			out = append(out, optionTokens(key, item)...)
		}
		return out
	default:
		return []string{fmt.Sprintf("%s=%v", name, v)}
	}
}
