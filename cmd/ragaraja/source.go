package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/reusee/ragaraja/cmds"
	"github.com/reusee/ragaraja/lcbf"
	"github.com/reusee/ragaraja/nbf"
	"github.com/reusee/ragaraja/ragavm"
)

var (
	sourceArg = cmds.Var[string]("-source", "genome source")
	fileArg   = cmds.Var[string]("-file", "read genome source from file")
	lcbfArg   = cmds.Switch("-lcbf", "run as circular-tape brainfuck")
	nbfArg    = cmds.Switch("-nbf", "translate from NucleotideBF")
	pairsArg  = cmds.Switch("-pairs", "decode dinucleotide codons")
)

var errNoSource = errors.New("no source, use -source or -file")

func readSource() (string, error) {
	if *sourceArg != "" {
		return *sourceArg, nil
	}
	if *fileArg != "" {
		content, err := os.ReadFile(*fileArg)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(content)), nil
	}
	return "", errNoSource
}

// run executes source with the front-end chosen by flags.
func run(
	ctx context.Context,
	version string,
	source string,
	state ragavm.State,
	limits ragavm.Limits,
) (ragavm.Result, error) {
	switch {

	case *lcbfArg:
		state.Source = source
		return lcbf.Instructions().Run(ctx, state, limits)

	case *nbfArg:
		return nbf.Run(ctx, source, state, limits)

	case *pairsArg:
		return nbf.RunPairs(ctx, source, state, limits)

	}

	instructions, err := ragavm.Activate(version)
	if err != nil {
		return ragavm.Result{}, err
	}
	state.Source = source
	return instructions.Run(ctx, state, limits)
}
