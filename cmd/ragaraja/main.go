package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/reusee/dscope"
	"github.com/reusee/ragaraja/cmds"
	"github.com/reusee/ragaraja/configs"
	"github.com/reusee/ragaraja/debugs"
	"github.com/reusee/ragaraja/logs"
	"github.com/reusee/ragaraja/modes"
	"github.com/reusee/ragaraja/phenotypes"
	"github.com/reusee/ragaraja/ragaconfigs"
	"github.com/reusee/ragaraja/ragavm"
)

var (
	inputArg    = cmds.Var[[]float64]("-input", "comma separated input queue")
	tapeArg     = cmds.Var[[]float64]("-tape", "comma separated initial tape")
	restoreArg  = cmds.Var[string]("-restore", "start from a state snapshot")
	snapshotArg = cmds.Var[string]("-snapshot", "write the final state snapshot")
	evalArgs    = cmds.Collect[string]("-eval", "evaluate starlark expression over the final state")
	dumpArg     = cmds.Switch("-dump", "pretty print the result")
	tapArg      = cmds.Switch("-tap", "open a starlark repl over the final state")
	traceArg    = cmds.Switch("-trace", "print every step to stderr")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		loader configs.Loader,
		version ragaconfigs.Version,
		limits ragavm.Limits,
		newState ragaconfigs.NewState,
		eval debugs.Eval,
		tap debugs.Tap,
		newExpresser phenotypes.NewExpresser,
	) {
		ce(loader.Err())

		if *batchArg != "" {
			instructions, err := ragavm.Activate(string(version))
			ce(err)
			ce(runBatch(ctx, *batchArg, instructions, newExpresser, *inputArg, os.Stdout))
			return
		}

		source, err := readSource()
		if errors.Is(err, errNoSource) && *restoreArg != "" {
			err = nil
		}
		ce(err)

		state := newState("")
		if *restoreArg != "" {
			state, err = restoreState(*restoreArg)
			ce(err)
			if source == "" {
				source = state.Source
			} else {
				state.SP = 0
			}
		}
		if len(*tapeArg) > 0 {
			state.Tape = *tapeArg
		}
		if len(*inputArg) > 0 {
			state.Input = *inputArg
		}
		if *traceArg {
			limits.Trace = os.Stderr
		}

		res, err := run(ctx, string(version), source, state, limits)
		ce(err)
		logger.InfoContext(ctx, "run",
			"version", version,
			"steps", res.Steps,
			"halt", res.Halt,
		)

		if *dumpArg {
			pp.Println(res)
		} else {
			fmt.Printf("tape: %v\n", res.State.Tape)
			fmt.Printf("output: %v\n", res.State.Output)
			fmt.Printf("halt: %v after %d steps\n", res.Halt, res.Steps)
		}

		globals := debugs.StateGlobals(res.State)
		globals["steps"] = res.Steps
		for _, expr := range *evalArgs {
			value, err := eval(ctx, expr, globals)
			ce(err)
			fmt.Printf("%s = %s\n", expr, value)
		}

		if *snapshotArg != "" {
			ce(snapshotState(*snapshotArg, res.State))
		}

		if *tapArg {
			tap(ctx, "result", globals)
		}
	})
}
