package ragaconfigs

import (
	"cmp"
	"errors"
	"runtime"

	"github.com/reusee/ragaraja/cmds"
	"github.com/reusee/ragaraja/configs"
	"github.com/reusee/ragaraja/ragavm"
)

const (
	DefaultTapeSize = 50
	DefaultVersion  = ragavm.VersionV2
)

// MaxSteps is the step cap of every run. It has no default; zero makes
// runs fail with ragavm.ErrNoStepCap.
type MaxSteps int

func (MaxSteps) ConfigPath() string {
	return "max_steps"
}

var maxStepsFlag = cmds.Var[int]("-max-steps", "step cap, required")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return cmp.Or(
		MaxSteps(*maxStepsFlag),
		configs.Lookup[MaxSteps](loader),
	)
}

type TapeSize int

func (TapeSize) ConfigPath() string {
	return "tape_size"
}

var tapeSizeFlag = cmds.Var[int]("-tape-size", "number of tape cells")

func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	return cmp.Or(
		TapeSize(*tapeSizeFlag),
		configs.Lookup[TapeSize](loader),
		DefaultTapeSize,
	)
}

// FillValue is the initial value of every tape cell.
type FillValue float64

func (FillValue) ConfigPath() string {
	return "fill"
}

var fillFlag = cmds.Var[*float64]("-fill", "initial cell value")

func (Module) FillValue(
	loader configs.Loader,
) FillValue {
	if *fillFlag != nil {
		return FillValue(**fillFlag)
	}
	return configs.Lookup[FillValue](loader)
}

type Version string

func (Version) ConfigPath() string {
	return "version"
}

var versionFlag = cmds.Var[string]("-version", "instruction set version")

func (Module) Version(
	loader configs.Loader,
) Version {
	return cmp.Or(
		Version(*versionFlag),
		configs.Lookup[Version](loader),
		DefaultVersion,
	)
}

type Faults ragavm.Faults

func (Faults) ConfigPath() string {
	return "faults"
}

var (
	overflowFlag     = cmds.Var[*float64]("-overflow", "overflow sentinel")
	zeroDivisionFlag = cmds.Var[*float64]("-zero-division", "zero division sentinel")
)

func (Module) Faults(
	loader configs.Loader,
) Faults {
	faults := Faults(ragavm.DefaultFaults)
	if err := loader.AssignFirst(faults.ConfigPath(), &faults); err != nil &&
		!errors.Is(err, configs.ErrValueNotFound) {
		panic(err)
	}
	if *overflowFlag != nil {
		faults.Overflow = **overflowFlag
	}
	if *zeroDivisionFlag != nil {
		faults.ZeroDivision = **zeroDivisionFlag
	}
	return faults
}

// Parallelism bounds the genomes expressed at the same time.
type Parallelism int

func (Parallelism) ConfigPath() string {
	return "parallelism"
}

var parallelismFlag = cmds.Var[int]("-parallelism", "genomes expressed at the same time")

func (Module) Parallelism(
	loader configs.Loader,
) Parallelism {
	return cmp.Or(
		Parallelism(*parallelismFlag),
		configs.Lookup[Parallelism](loader),
		Parallelism(runtime.NumCPU()),
	)
}

// Limits combines the resolved run parameters.
func (Module) Limits(
	maxSteps MaxSteps,
) ragavm.Limits {
	return ragavm.Limits{
		MaxSteps: int(maxSteps),
	}
}

// NewState returns a state with the configured tape and faults.
type NewState func(source string) ragavm.State

func (Module) NewState(
	size TapeSize,
	fill FillValue,
	faults Faults,
) NewState {
	return func(source string) ragavm.State {
		s := ragavm.NewState(source, int(size), float64(fill))
		s.Faults = ragavm.Faults(faults)
		return s
	}
}
