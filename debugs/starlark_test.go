package debugs

import (
	"testing"

	"github.com/reusee/ragaraja/ragavm"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type testStruct struct {
		Exported   string
		unexported int
	}

	structDict := func(s string) starlark.Value {
		d := starlark.NewDict(1)
		d.SetKey(starlark.String("Exported"), starlark.String(s))
		return d
	}
	ptr := &testStruct{Exported: "hello"}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"string", "hello", starlark.String("hello")},
		{"int", 42, starlark.MakeInt(42)},
		{"int8", int8(-3), starlark.MakeInt(-3)},
		{"uint16", uint16(42), starlark.MakeInt(42)},
		{"opcode", ragavm.OpFlip, starlark.MakeInt(150)},
		{"float32", float32(1.5), starlark.Float(1.5)},
		{"float64", 3.14, starlark.Float(3.14)},
		{"tape", []float64{1, 2}, starlark.NewList([]starlark.Value{starlark.Float(1), starlark.Float(2)})},
		{"map", map[int]bool{1: true}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.MakeInt(1), starlark.True)
			return d
		}()},
		{"struct", testStruct{Exported: "hello", unexported: 42}, structDict("hello")},
		{"pointer", ptr, structDict("hello")},
		{"pointer to pointer", &ptr, structDict("hello")},
		{"nested", []any{testStruct{Exported: "foo"}, &testStruct{Exported: "bar"}},
			starlark.NewList([]starlark.Value{structDict("foo"), structDict("bar")})},
		{"nil pointer", (*testStruct)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Fatalf("got %v, expected %v", actual, tc.expected)
			}
		})
	}
}

func TestToStarlarkValueState(t *testing.T) {
	s := ragavm.NewState("008", 3, 0.5)
	v, ok := toStarlarkValue(s).(*starlark.Dict)
	if !ok {
		t.Fatalf("got %T", toStarlarkValue(s))
	}
	tape, found, err := v.Get(starlark.String("Tape"))
	if err != nil || !found {
		t.Fatalf("got %v %v", found, err)
	}
	if n := tape.(*starlark.List).Len(); n != 3 {
		t.Fatalf("got %d", n)
	}
	regs, _, _ := v.Get(starlark.String("Registers"))
	slots, _, _ := regs.(*starlark.Dict).Get(starlark.String("Slots"))
	if n := slots.(*starlark.List).Len(); n != ragavm.NumRegisters {
		t.Fatalf("got %d", n)
	}
}
