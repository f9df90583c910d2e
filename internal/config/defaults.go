package config

// Defaults holds the in-code default values. They are not persisted; the rc
// file only stores user overrides plus whatever initialization wrote.
var Defaults = func() map[string]string {
	m := make(map[string]string, len(Keys))
	for _, key := range Keys {
		m[key.Name] = key.Default
	}
	return m
}()

// Get returns the value for a config key, checking the rc file first and
// falling back to the in-code default. The second result reports whether the
// key is known at all.
func Get(key string) (string, bool) {
	defaultValue, known := Defaults[key]

	lines, err := ReadLines()
	if err != nil {
		return defaultValue, known
	}

	cfg, err := Parse(lines)
	if err != nil {
		return defaultValue, known
	}

	if value, exists := cfg[key]; exists {
		return value, true
	}

	return defaultValue, known
}

// GetAll returns all config values: user overrides merged over defaults.
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(Defaults))
	for key, value := range Defaults {
		result[key] = value
	}

	lines, err := ReadLines()
	if err != nil {
		return result, nil
	}

	cfg, err := Parse(lines)
	if err != nil {
		return result, nil
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}
