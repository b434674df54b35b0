package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/ragaraja/ragavm"
	"go.starlark.net/starlark"
)

func TestEval(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		eval Eval,
	) {
		s := ragavm.NewState("", 3, 0)
		s.Tape = []float64{1, 2, 3}
		s.AP = 1
		s.Output = []float64{9}
		s.Registers.Store(3, 7)
		globals := StateGlobals(s)

		for _, c := range []struct {
			expr     string
			expected starlark.Value
		}{
			{"tape[ap] * 2", starlark.Float(4)},
			{"len(output)", starlark.MakeInt(1)},
			{"register(3)", starlark.Float(7)},
			{"register(4)", starlark.Float(0)},
			{"[x for x in tape if x > 1]", starlark.NewList([]starlark.Value{starlark.Float(2), starlark.Float(3)})},
			{"faults['ZeroDivision']", starlark.Float(ragavm.DefaultFaults.ZeroDivision)},
		} {
			got, err := eval(t.Context(), c.expr, globals)
			if err != nil {
				t.Fatalf("%s: %v", c.expr, err)
			}
			equal, err := starlark.Equal(got, c.expected)
			if err != nil {
				t.Fatal(err)
			}
			if !equal {
				t.Fatalf("%s: got %v", c.expr, got)
			}
		}

		if _, err := eval(t.Context(), "tape[", globals); err == nil {
			t.Fatal("should error")
		}
		if _, err := eval(t.Context(), "nope + 1", globals); err == nil {
			t.Fatal("should error")
		}
	})
}
