package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

// WriteUsage lists commands in name order. Aliases are listed with the
// command they refer to.
func (p *Executor) WriteUsage(w io.Writer) {
	writeCommands(w, p.commands, 0)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || slices.Contains(command.Aliases, name) {
			continue
		}
		names := append([]string{name}, command.Aliases...)
		line := indent + strings.Join(names, ", ")
		for _, t := range command.ArgTypes() {
			line += fmt.Sprintf(" <%v>", t)
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)
		if len(command.Subs) > 0 {
			writeCommands(w, command.Subs, depth+1)
		}
	}
}
