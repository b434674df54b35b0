package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args against the global executor. On error it prints the
// usage and exits.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		PrintUsage()
		os.Exit(2)
	}
}

func PrintUsage() {
	GlobalExecutor.PrintUsage()
}
