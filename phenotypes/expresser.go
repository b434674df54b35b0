package phenotypes

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/reusee/ragaraja/logs"
	"github.com/reusee/ragaraja/modes"
	"github.com/reusee/ragaraja/ragaconfigs"
	"github.com/reusee/ragaraja/ragavm"
	"github.com/reusee/ragaraja/syncs"
)

type Genome struct {
	Source string
	Input  []float64
	// Registers is the register context of the run. A fresh file is used
	// when nil.
	Registers *ragavm.Registers
}

type Phenotype struct {
	RunID  uuid.UUID
	Result ragavm.Result
	Err    error
}

type Expresser struct {
	instructions *ragavm.InstructionSet
	limits       ragavm.Limits
	parallelism  int
	newState     ragaconfigs.NewState
	logger       logs.Logger
	newSpan      logs.NewSpan
	development  bool
}

type NewExpresser func(instructions *ragavm.InstructionSet) *Expresser

func (Module) NewExpresser(
	limits ragavm.Limits,
	parallelism ragaconfigs.Parallelism,
	newState ragaconfigs.NewState,
	logger logs.Logger,
	newSpan logs.NewSpan,
	mode modes.Mode,
) NewExpresser {
	return func(instructions *ragavm.InstructionSet) *Expresser {
		return &Expresser{
			instructions: instructions,
			limits:       limits,
			parallelism:  int(parallelism),
			newState:     newState,
			logger:       logger,
			newSpan:      newSpan,
			development:  mode == modes.ModeDevelopment,
		}
	}
}

// Express runs every genome and returns the phenotypes in genome order.
// A failing genome sets its own Err and does not affect the others.
func (e *Expresser) Express(ctx context.Context, genomes []Genome) []Phenotype {
	ret := make([]Phenotype, len(genomes))
	sem := syncs.NewSemaphore(e.parallelism)
	var wg sync.WaitGroup
	for i, genome := range genomes {
		ret[i].RunID = uuid.New()
		if err := sem.Acquire(ctx); err != nil {
			ret[i].Err = err
			continue
		}
		wg.Go(func() {
			defer sem.Release()
			ret[i] = e.express(ctx, ret[i].RunID, genome)
		})
	}
	wg.Wait()
	return ret
}

func (e *Expresser) express(ctx context.Context, runID uuid.UUID, genome Genome) Phenotype {
	ctx, _ = e.newSpan(ctx, "")

	state := e.newState(genome.Source)
	state.Input = genome.Input
	state.Registers = genome.Registers
	if state.Registers == nil {
		state.Registers = ragavm.NewRegisters()
	}

	res, err := e.instructions.Run(ctx, state, e.limits)
	if err != nil {
		e.logger.WarnContext(ctx, "express",
			"run", runID,
			"error", err,
		)
		return Phenotype{
			RunID:  runID,
			Result: res,
			Err:    logs.WrapSpan(ctx, err),
		}
	}

	// per-genome records are too noisy for production batches
	if e.development {
		e.logger.DebugContext(ctx, "genome expressed",
			"run", runID,
			"steps", res.Steps,
			"halt", res.Halt,
			"output", len(res.State.Output),
		)
	}
	return Phenotype{
		RunID:  runID,
		Result: res,
	}
}
