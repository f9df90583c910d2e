package completions

import (
	"fmt"
	"os"
	"path/filepath"
)

// SourceInstructions returns a shell line that loads completions on startup.
func SourceInstructions(shell Shell) string {
	bin := GetBinaryPath()
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s completions %s)"`, bin, shell)
	case ShellFish:
		return fmt.Sprintf(`%s completions fish | source`, bin)
	default:
		return ""
	}
}

// RcFile returns the startup file for the given shell.
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}

// AutoInstallPath returns the path a completion script is auto-loaded from.
// Empty when the shell has no such directory.
func AutoInstallPath(shell Shell) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	bin := GetBinaryName()

	switch shell {
	case ShellFish:
		return filepath.Join(home, ".config", "fish", "completions", bin+".fish")
	case ShellBash:
		if isBashCompletionInstalled(home) {
			return filepath.Join(home, ".local", "share", "bash-completion", "completions", bin)
		}
		return ""
	default:
		return ""
	}
}

// isBashCompletionInstalled checks for the bash-completion package's user
// completion directory.
func isBashCompletionInstalled(home string) bool {
	candidates := []string{
		filepath.Join(home, ".local", "share", "bash-completion"),
		"/usr/share/bash-completion",
		"/etc/bash_completion.d",
	}
	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}
