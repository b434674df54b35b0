package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/ragaraja/cmds"
	"github.com/reusee/ragaraja/ragavm"
)

func init() {
	cmds.Define("opcodes", cmds.Sub(map[string]*cmds.Command{
		"version": cmds.Func(func(version string) {
			ce(printOpcodes(os.Stdout, version))
			os.Exit(0)
		}).Desc("list the active opcodes of a version"),
		"lookup": cmds.Func(func(mnemonic string) {
			ce(lookupOpcode(os.Stdout, mnemonic))
			os.Exit(0)
		}).Desc("print the codon of a mnemonic"),
	}).
		Desc("inspect the opcode table").
		Alias("ops"))
}

func printOpcodes(w io.Writer, version string) error {
	set, err := ragavm.Activate(version)
	if err != nil {
		return err
	}
	for _, op := range set.Active() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", op.Codon(), op); err != nil {
			return err
		}
	}
	return nil
}

func lookupOpcode(w io.Writer, mnemonic string) error {
	op, ok := ragavm.Lookup(strings.ToUpper(mnemonic))
	if !ok {
		return fmt.Errorf("unknown mnemonic: %s", mnemonic)
	}
	_, err := fmt.Fprintln(w, op.Codon())
	return err
}
