package actions

import (
	"fmt"
	"sort"

	"github.com/dialog-tools/zenity/internal/config"
	"github.com/dialog-tools/zenity/internal/dispatchers"
	"github.com/dialog-tools/zenity/internal/ui/style"
	"github.com/dialog-tools/zenity/internal/usage"
)

func ConfigGet(args []string, flags *dispatchers.ParsedFlags) error {
	return configGet(args, flags, defaultDeps())
}

func configGet(args []string, _ *dispatchers.ParsedFlags, deps Dependencies) error {
	key := args[0]

	if !config.IsValidKey(key) {
		return invalidConfigKey(key)
	}

	value, _ := deps.ConfigGet(key)
	if value == "" {
		_, _ = deps.Writer.Printf("%s\n", style.Muted("(not set)"))
		return nil
	}

	_, _ = deps.Writer.Println(value)
	return nil
}

func ConfigSet(args []string, flags *dispatchers.ParsedFlags) error {
	return configSet(args, flags, defaultDeps())
}

func configSet(args []string, _ *dispatchers.ParsedFlags, deps Dependencies) error {
	key, value := args[0], args[1]

	if !config.IsValidKey(key) {
		return invalidConfigKey(key)
	}

	if err := deps.Config.Set(key, value); err != nil {
		return fmt.Errorf("set config: %w", err)
	}

	_, _ = deps.Writer.Printf("%s %s=%s\n", style.Success("set"), key, value)
	return nil
}

func ConfigUnset(args []string, flags *dispatchers.ParsedFlags) error {
	return configUnset(args, flags, defaultDeps())
}

func configUnset(args []string, _ *dispatchers.ParsedFlags, deps Dependencies) error {
	key := args[0]

	if !config.IsValidKey(key) {
		return invalidConfigKey(key)
	}

	if err := deps.Config.Unset(key); err != nil {
		return fmt.Errorf("unset config: %w", err)
	}

	_, _ = deps.Writer.Printf("%s %s\n", style.Success("unset"), key)
	return nil
}

func ConfigList(args []string, flags *dispatchers.ParsedFlags) error {
	return configList(args, flags, defaultDeps())
}

func configList(_ []string, _ *dispatchers.ParsedFlags, deps Dependencies) error {
	values, err := deps.Config.GetAll()
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := values[key]
		if value == "" {
			_, _ = deps.Writer.Printf("%s=%s\n", key, style.Muted("(not set)"))
			continue
		}
		_, _ = deps.Writer.Printf("%s=%s\n", key, value)
	}

	return nil
}

func invalidConfigKey(key string) error {
	return &usage.Error{
		Kind:    usage.ErrInvalidConfigKey,
		Message: fmt.Sprintf("zd: '%s' is not a valid config key. See 'zd config list'.", key),
	}
}
