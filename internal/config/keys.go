package config

// Key describes one recognized configuration key.
type Key struct {
	Name        string
	Default     string
	Description string
	// HideIfEmpty keys are written commented-out when the rc file is
	// initialized; they are optional overrides.
	HideIfEmpty bool
}

// Keys is the registry of configuration keys zd recognizes, in the order
// they appear in a freshly initialized rc file.
var Keys = []Key{
	{Name: "command", Default: "zenity", Description: "executable invoked to render dialogs"},
	{Name: "title", Default: "", Description: "default window title", HideIfEmpty: true},
	{Name: "icon", Default: "", Description: "default icon: error, info, question, warning or a path", HideIfEmpty: true},
	{Name: "width", Default: "", Description: "default window width in pixels", HideIfEmpty: true},
	{Name: "height", Default: "", Description: "default window height in pixels", HideIfEmpty: true},
	{Name: "timeout_sec", Default: "", Description: "default dialog timeout in seconds", HideIfEmpty: true},
	{Name: "history", Default: "true", Description: "record invocations in the history database"},
	{Name: "history_limit", Default: "500", Description: "invocations kept before pruning"},
	{Name: "enable_log", Default: "true", Description: "write the zd log file"},
	{Name: "log_level", Default: "warn", Description: "log level: debug, info, warn, error"},
	{Name: "display_date", Default: "", Description: "history date display: yyyy-mm-dd, dd/mm/yyyy, mm/dd/yyyy or a Go layout", HideIfEmpty: true},
	{Name: "display_time", Default: "", Description: "history time display: 24h or 12h", HideIfEmpty: true},
	{Name: "color_success", Default: "", Description: "override success color (ANSI 0-255)", HideIfEmpty: true},
	{Name: "color_warning", Default: "", Description: "override warning color (ANSI 0-255)", HideIfEmpty: true},
	{Name: "color_error", Default: "", Description: "override error color (ANSI 0-255)", HideIfEmpty: true},
	{Name: "color_muted", Default: "", Description: "override muted color (ANSI 0-255)", HideIfEmpty: true},
	{Name: "color_header", Default: "", Description: "override header color (ANSI 0-255)", HideIfEmpty: true},
}

// IsValidKey reports whether name is a recognized configuration key.
func IsValidKey(name string) bool {
	for _, key := range Keys {
		if key.Name == name {
			return true
		}
	}
	return false
}
