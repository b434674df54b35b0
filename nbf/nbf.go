// Package nbf reads NucleotideBF programs, either translated symbol by
// symbol into Ragaraja codons or decoded directly as dinucleotide codons.
package nbf

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/reusee/ragaraja/ragavm"
)

var ErrBadSymbol = errors.New("bad nBF symbol")

var symbols = map[byte]ragavm.Opcode{
	'G': ragavm.OpForward,
	'S': ragavm.OpForward5,
	'K': ragavm.OpForward10,
	'C': ragavm.OpBackward,
	'W': ragavm.OpBackward5,
	'M': ragavm.OpBackward10,
	'A': ragavm.OpIncrement,
	'R': ragavm.OpIncrement5,
	'B': ragavm.OpIncrement10,
	'T': ragavm.OpDecrement,
	'Y': ragavm.OpDecrement5,
	'D': ragavm.OpDecrement10,
	'[': ragavm.OpLoopStart,
	']': ragavm.OpLoopEnd,
	'.': ragavm.OpOutput,
	',': ragavm.OpInput,
}

func dropped(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', 'H', 'V', 'N', '-':
		return true
	}
	return false
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// Translate rewrites an nBF program into 3-digit Ragaraja codons.
func Translate(src string) (string, error) {
	var b strings.Builder
	b.Grow(len(src) * 3)
	for i := 0; i < len(src); i++ {
		c := upper(src[i])
		if dropped(c) {
			continue
		}
		op, ok := symbols[c]
		if !ok {
			return "", fmt.Errorf("%w: %q at %d", ErrBadSymbol, src[i], i)
		}
		b.WriteString(op.Codon())
	}
	return b.String(), nil
}

var instructions = func() *ragavm.InstructionSet {
	set, err := ragavm.Activate(ragavm.VersionNBF)
	if err != nil {
		panic(err)
	}
	return set
}()

// Instructions is the nBF version of the Ragaraja instruction set.
func Instructions() *ragavm.InstructionSet {
	return instructions
}

// Run translates src and executes it on state under the nBF version.
// state.Source is replaced.
func Run(ctx context.Context, src string, state ragavm.State, limits ragavm.Limits) (ragavm.Result, error) {
	source, err := Translate(src)
	if err != nil {
		return ragavm.Result{}, err
	}
	state.Source = source
	return instructions.Run(ctx, state, limits)
}
