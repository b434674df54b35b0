// Package lcbf is a Brainfuck derivative on a circular tape, running on the
// ragavm driver with one-byte codons.
package lcbf

import (
	"context"
	"strings"

	"github.com/reusee/ragaraja/ragavm"
)

const (
	OpRight ragavm.Opcode = iota
	OpLeft
	OpInc
	OpDec
	OpOut
	OpIn
	OpLoop
	OpEndLoop
	OpNop
)

const symbols = "><+-.,[]"

// Codec decodes one byte per codon. Bytes outside the eight commands are
// no-ops.
type Codec struct{}

var _ ragavm.Codec = Codec{}

func (Codec) Width() int {
	return 1
}

func (Codec) Decode(codon string) (ragavm.Opcode, bool) {
	if len(codon) != 1 {
		return 0, false
	}
	if i := strings.IndexByte(symbols, codon[0]); i >= 0 {
		return ragavm.Opcode(i), true
	}
	return OpNop, true
}

func nonZero(v float64) bool {
	return v != 0
}

var Brackets = ragavm.Brackets{
	Start:  OpLoop,
	End:    OpEndLoop,
	Enter:  nonZero,
	Repeat: nonZero,
}

var instructions = ragavm.NewInstructionSet(
	Codec{},
	[]ragavm.Handler{
		OpRight: ragavm.Builtin(ragavm.OpForward),
		OpLeft:  ragavm.Builtin(ragavm.OpBackward),
		OpInc:   ragavm.Builtin(ragavm.OpIncrement),
		OpDec:   ragavm.Builtin(ragavm.OpDecrement),
		OpOut:   ragavm.Builtin(ragavm.OpOutput),
		OpIn:    ragavm.Builtin(ragavm.OpInput),
		OpNop:   nil,
	},
	Brackets,
)

func Instructions() *ragavm.InstructionSet {
	return instructions
}

// Run executes source on a copy of tape.
func Run(ctx context.Context, source string, tape []float64, input []float64, limits ragavm.Limits) (ragavm.Result, error) {
	state := ragavm.State{
		Tape:      tape,
		Input:     input,
		Source:    source,
		Registers: ragavm.NewRegisters(),
		Faults:    ragavm.DefaultFaults,
	}
	return instructions.Run(ctx, state, limits)
}
