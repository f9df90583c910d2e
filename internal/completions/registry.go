package completions

import (
	"os"
	"path/filepath"

	"github.com/dialog-tools/zenity/internal/dispatchers"
)

var commandTree *dispatchers.DispatchNode
var binaryPath string
var binaryName string

// RegisterCommandTree stores the command tree for the completion generators.
// Called once after the tree is built, before any action runs.
func RegisterCommandTree(root *dispatchers.DispatchNode) {
	commandTree = root

	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			binaryPath = resolved
		} else {
			binaryPath = exe
		}
		binaryName = filepath.Base(binaryPath)
	} else if len(os.Args) > 0 {
		binaryPath = os.Args[0]
		binaryName = filepath.Base(os.Args[0])
	}

	if binaryName == "" {
		binaryName = "zd"
		binaryPath = "zd"
	}
}

// GetCommandTree returns the registered command tree.
func GetCommandTree() *dispatchers.DispatchNode {
	return commandTree
}

// GetBinaryName returns the name of the installed binary.
func GetBinaryName() string {
	if binaryName == "" {
		return "zd"
	}
	return binaryName
}

// GetBinaryPath returns the full path to the installed binary.
func GetBinaryPath() string {
	if binaryPath == "" {
		return "zd"
	}
	return binaryPath
}
