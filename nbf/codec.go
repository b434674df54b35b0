package nbf

import (
	"context"
	"strings"

	"github.com/reusee/ragaraja/ragavm"
)

const bases = "ACGT"

// Codec decodes two-base codons. The sixteen pairs AA, AC, ... TT map in
// order onto the sixteen nBF opcodes.
type Codec struct{}

var _ ragavm.Codec = Codec{}

var pairOpcodes = func() []ragavm.Opcode {
	ops, err := ragavm.ResolveVersion(ragavm.VersionNBF)
	if err != nil {
		panic(err)
	}
	return ops
}()

func (Codec) Width() int {
	return 2
}

func (Codec) Decode(codon string) (ragavm.Opcode, bool) {
	if len(codon) != 2 {
		return 0, false
	}
	i := strings.IndexByte(bases, upper(codon[0]))
	j := strings.IndexByte(bases, upper(codon[1]))
	if i < 0 || j < 0 {
		return 0, false
	}
	return pairOpcodes[i*4+j], true
}

// Pair returns the dinucleotide codon of op, or false if op is not an nBF
// opcode.
func Pair(op ragavm.Opcode) (string, bool) {
	for i, o := range pairOpcodes {
		if o == op {
			return string([]byte{bases[i/4], bases[i%4]}), true
		}
	}
	return "", false
}

var pairInstructions = instructions.WithCodec(Codec{})

func PairInstructions() *ragavm.InstructionSet {
	return pairInstructions
}

// RunPairs executes a dinucleotide program on state under the nBF version.
// state.Source is replaced.
func RunPairs(ctx context.Context, src string, state ragavm.State, limits ragavm.Limits) (ragavm.Result, error) {
	state.Source = src
	return pairInstructions.Run(ctx, state, limits)
}
