package completions

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// PrintScript writes the completion script for the given shell to w.
func PrintScript(w io.Writer, shell Shell) error {
	root := GetCommandTree()
	if root == nil {
		return fmt.Errorf("command tree not registered")
	}

	commands := ExtractCommands(root)
	script := generateScript(shell, commands)
	if script == "" {
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	_, err := fmt.Fprint(w, script)
	return err
}

// Install writes the completion script to the shell's auto-load path.
// Returns the path written to, or an error when the shell has no such path.
func Install(shell Shell) (string, error) {
	root := GetCommandTree()
	if root == nil {
		return "", fmt.Errorf("command tree not registered")
	}

	path := AutoInstallPath(shell)
	if path == "" {
		return "", fmt.Errorf("no auto-load completion directory for %s", shell)
	}

	commands := ExtractCommands(root)
	script := generateScript(shell, commands)
	if script == "" {
		return "", fmt.Errorf("unsupported shell: %s", shell)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create completion directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(script), 0644); err != nil {
		return "", fmt.Errorf("write completion script: %w", err)
	}

	return path, nil
}

func generateScript(shell Shell, commands []CommandInfo) string {
	switch shell {
	case ShellBash:
		return GenerateBash(commands)
	case ShellZsh:
		return GenerateZsh(commands)
	case ShellFish:
		return GenerateFish(commands)
	default:
		return ""
	}
}
