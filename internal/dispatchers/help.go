package dispatchers

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/dialog-tools/zenity/internal/ui"
	"github.com/dialog-tools/zenity/internal/ui/style"
)

// commandDisplayOrder defines explicit ordering in help listings. Commands
// not listed appear alphabetically after listed ones.
var commandDisplayOrder = map[string]int{
	"show":        1,
	"completions": 2,
	"version":     3,
	// history commands
	"history list":   1,
	"history show":   2,
	"history browse": 3,
	"history clear":  4,
	// config commands
	"config get":   1,
	"config set":   2,
	"config unset": 3,
	"config list":  4,
}

// formatUsage styles the usage line with the command in Info color and the
// rest muted.
func formatUsage(usage string) string {
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return style.Info(cmd)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}

func collectLeafCommands(node *DispatchNode, out *[]*DispatchNode) {
	if node.Action != nil {
		*out = append(*out, node)
		return
	}

	for _, child := range node.Children {
		collectLeafCommands(child, out)
	}
}

func sortByDisplayOrder(nodes []*DispatchNode) {
	sort.Slice(nodes, func(i, j int) bool {
		nameI := strings.Join(nodes[i].Path[1:], " ")
		nameJ := strings.Join(nodes[j].Path[1:], " ")
		orderI, hasI := commandDisplayOrder[nameI]
		orderJ, hasJ := commandDisplayOrder[nameJ]
		if hasI && hasJ {
			return orderI < orderJ
		}
		if hasI {
			return true
		}
		if hasJ {
			return false
		}
		return nameI < nameJ
	})
}

// HelpAction generates help output for a command node.
func HelpAction(node *DispatchNode, root *DispatchNode) CommandFunc {
	return func(args []string, flags *ParsedFlags) error {
		var out bytes.Buffer

		if node == root {
			out.WriteString("zd - ")
			out.WriteString(node.Summary)
			out.WriteString("\n\n")

			out.WriteString("USAGE\n   ")
			out.WriteString(formatUsage(node.Usage))
			out.WriteString("\n\n")

			var leaves []*DispatchNode
			for _, child := range root.Children {
				collectLeafCommands(child, &leaves)
			}
			sortByDisplayOrder(leaves)

			out.WriteString("COMMANDS\n")
			for _, cmd := range leaves {
				displayName := strings.Join(cmd.Path[1:], " ")
				fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-18s", displayName)), cmd.Summary)
			}
			out.WriteString("\n")

			out.WriteString("See 'zd help <command>' for detailed help on a specific command.\n")
		} else {
			out.WriteString(strings.Join(node.Path, " "))
			if node.Summary != "" {
				out.WriteString(" - ")
				out.WriteString(node.Summary)
			}
			out.WriteString("\n\n")

			out.WriteString("USAGE\n   ")
			out.WriteString(formatUsage(node.Usage))
			out.WriteString("\n\n")

			if node.Description != "" {
				out.WriteString(node.Description)
				out.WriteString("\n\n")
			}

			if len(node.Children) > 0 {
				out.WriteString("COMMANDS\n")

				children := make([]*DispatchNode, 0, len(node.Children))
				for _, child := range node.Children {
					children = append(children, child)
				}
				sortByDisplayOrder(children)

				for _, child := range children {
					fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", child.Name)), child.Summary)
				}
				out.WriteString("\n")
			}

			if len(node.Flags) > 0 {
				out.WriteString("FLAGS\n")
				for _, f := range node.Flags {
					name := strings.Join(f.Names, ", ")
					if f.ValueHint != "" {
						name = name + " " + f.ValueHint
					}
					fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", name)), f.Description)
				}
				out.WriteString("\n")
			}

			out.WriteString("See 'zd help <command>' to read about a specific command.\n")
		}

		ui.NewWriter().Pager(out.String())
		return nil
	}
}
