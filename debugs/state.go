package debugs

import (
	"github.com/reusee/ragaraja/ragavm"
	"go.starlark.net/starlark"
)

// StateGlobals exposes a state to starlark code. The register file is read
// through register(n).
func StateGlobals(s ragavm.State) map[string]any {
	globals := map[string]any{
		"tape":   s.Tape,
		"ap":     s.AP,
		"input":  s.Input,
		"output": s.Output,
		"sp":     s.SP,
		"source": s.Source,
		"faults": s.Faults,
	}
	regs := s.Registers
	globals["register"] = starlark.NewBuiltin("register", func(
		_ *starlark.Thread,
		fn *starlark.Builtin,
		args starlark.Tuple,
		kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		var n int
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &n); err != nil {
			return nil, err
		}
		if regs == nil {
			return starlark.Float(0), nil
		}
		return starlark.Float(regs.Load(n)), nil
	})
	return globals
}
