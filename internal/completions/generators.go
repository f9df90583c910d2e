package completions

import (
	"fmt"
	"sort"
	"strings"
)

// rootName returns the binary name the scripts complete for, taken from the
// root of the extracted tree.
func rootName(commands []CommandInfo) string {
	for _, cmd := range commands {
		if len(cmd.Path) == 1 {
			return cmd.Path[0]
		}
	}
	return "zd"
}

// GenerateBash renders a bash completion script for the extracted commands.
func GenerateBash(commands []CommandInfo) string {
	bin := rootName(commands)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s bash completion script\n", bin)
	fmt.Fprintf(&b, "_%s_completions() {\n", bin)
	b.WriteString("    local cur\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n\n")
	b.WriteString("    local i path\n")
	fmt.Fprintf(&b, "    path=%q\n", bin)
	b.WriteString("    for ((i = 1; i < COMP_CWORD; i++)); do\n")
	b.WriteString("        case \"${COMP_WORDS[i]}\" in\n")
	b.WriteString("        -*) ;;\n")
	b.WriteString("        *) path=\"$path ${COMP_WORDS[i]}\" ;;\n")
	b.WriteString("        esac\n")
	b.WriteString("    done\n\n")
	b.WriteString("    case \"$path\" in\n")

	for _, cmd := range sortedByPath(commands) {
		words := completionWords(cmd)
		if len(words) == 0 {
			continue
		}
		fmt.Fprintf(&b, "    %q)\n", strings.Join(cmd.Path, " "))
		fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(words, " "))
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n")
	fmt.Fprintf(&b, "complete -F _%s_completions %s\n", bin, bin)
	return b.String()
}

// GenerateZsh renders a zsh completion script for the extracted commands.
func GenerateZsh(commands []CommandInfo) string {
	bin := rootName(commands)
	root := FindCommand(commands, []string{bin})

	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", bin)

	fmt.Fprintf(&b, "_%s_commands() {\n", bin)
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	if root != nil {
		for _, name := range sortedNames(root.Subcommands) {
			child := FindCommand(commands, []string{bin, name})
			summary := ""
			if child != nil {
				summary = child.Summary
			}
			fmt.Fprintf(&b, "        '%s:%s'\n", name, zshEscape(summary))
		}
	}
	b.WriteString("    )\n")
	b.WriteString("    _describe 'command' commands\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "_%s() {\n", bin)
	b.WriteString("    local curcontext=\"$curcontext\" state line\n")
	fmt.Fprintf(&b, "    _arguments '1: :_%s_commands' '*::arg:->args'\n\n", bin)
	b.WriteString("    case $state in\n")
	b.WriteString("    args)\n")
	b.WriteString("        case $line[1] in\n")

	if root != nil {
		for _, name := range sortedNames(root.Subcommands) {
			group := FindCommand(commands, []string{bin, name})
			if group == nil || len(group.Subcommands) == 0 {
				continue
			}
			fmt.Fprintf(&b, "        %s)\n", name)
			b.WriteString("            local -a subcommands\n")
			b.WriteString("            subcommands=(\n")
			for _, sub := range sortedNames(group.Subcommands) {
				child := FindCommand(commands, []string{bin, name, sub})
				summary := ""
				if child != nil {
					summary = child.Summary
				}
				fmt.Fprintf(&b, "                '%s:%s'\n", sub, zshEscape(summary))
			}
			b.WriteString("            )\n")
			b.WriteString("            _describe 'subcommand' subcommands\n")
			b.WriteString("            ;;\n")
		}
	}

	b.WriteString("        esac\n")
	b.WriteString("        ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "_%s \"$@\"\n", bin)
	return b.String()
}

// GenerateFish renders a fish completion script for the extracted commands.
func GenerateFish(commands []CommandInfo) string {
	bin := rootName(commands)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s fish completion script\n", bin)
	fmt.Fprintf(&b, "complete -c %s -f\n\n", bin)

	for _, cmd := range sortedByPath(commands) {
		switch len(cmd.Path) {
		case 1:
			for _, flag := range cmd.Flags {
				b.WriteString(fishFlag(bin, "", flag))
			}
		case 2:
			fmt.Fprintf(&b, "complete -c %s -n __fish_use_subcommand -a %s -d '%s'\n",
				bin, cmd.Name, fishEscape(cmd.Summary))
			condition := fmt.Sprintf("__fish_seen_subcommand_from %s", cmd.Name)
			for _, flag := range cmd.Flags {
				b.WriteString(fishFlag(bin, condition, flag))
			}
		case 3:
			parent := cmd.Path[1]
			fmt.Fprintf(&b, "complete -c %s -n \"__fish_seen_subcommand_from %s\" -a %s -d '%s'\n",
				bin, parent, cmd.Name, fishEscape(cmd.Summary))
		}
	}

	return b.String()
}

func fishFlag(bin, condition string, flag FlagInfo) string {
	var parts []string
	parts = append(parts, "complete", "-c", bin)
	if condition != "" {
		parts = append(parts, "-n", fmt.Sprintf("%q", condition))
	}
	for _, name := range flag.Names {
		switch {
		case strings.HasPrefix(name, "--"):
			parts = append(parts, "-l", strings.TrimPrefix(name, "--"))
		case strings.HasPrefix(name, "-"):
			parts = append(parts, "-s", strings.TrimPrefix(name, "-"))
		}
	}
	if flag.HasValue {
		parts = append(parts, "-r")
	}
	if flag.Description != "" {
		parts = append(parts, "-d", fmt.Sprintf("'%s'", fishEscape(flag.Description)))
	}
	return strings.Join(parts, " ") + "\n"
}

// completionWords returns the words offered after a command: its subcommands
// and its flags.
func completionWords(cmd CommandInfo) []string {
	var words []string
	words = append(words, sortedNames(cmd.Subcommands)...)
	for _, flag := range cmd.Flags {
		words = append(words, flag.Names...)
	}
	return words
}

func sortedByPath(commands []CommandInfo) []CommandInfo {
	out := make([]CommandInfo, len(commands))
	copy(out, commands)
	sort.Slice(out, func(i, j int) bool {
		return strings.Join(out[i].Path, " ") < strings.Join(out[j].Path, " ")
	})
	return out
}

func sortedNames(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}

func zshEscape(s string) string {
	return strings.ReplaceAll(s, "'", "'\\''")
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
