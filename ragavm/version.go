package ragavm

import (
	"fmt"
	"slices"
)

const (
	VersionNBF    = "nBF"
	VersionV1     = "v1"
	VersionV2     = "v2"
	VersionTested = "tested"
	VersionAll    = "all"
)

var nbfOpcodes = []Opcode{
	OpForward, OpForward5, OpForward10,
	OpBackward, OpBackward5, OpBackward10,
	OpIncrement, OpIncrement5, OpIncrement10,
	OpDecrement, OpDecrement5, OpDecrement10,
	OpLoopStart, OpLoopEnd,
	OpOutput, OpInput,
}

func isBitOp(op Opcode) bool {
	return op >= 134 && op <= 140
}

func isMarker(op Opcode) bool {
	return op > 0 && op%100 == 0
}

func implementedWhere(pred func(Opcode) bool) []Opcode {
	var ret []Opcode
	for i := range ops {
		op := Opcode(i)
		if ops[i].implemented && pred(op) {
			ret = append(ret, op)
		}
	}
	return ret
}

var versions = map[string]func() []Opcode{
	VersionNBF: func() []Opcode {
		return slices.Clone(nbfOpcodes)
	},
	VersionV1: func() []Opcode {
		return implementedWhere(func(op Opcode) bool {
			return op <= OpFlip && !isBitOp(op) && !isMarker(op)
		})
	},
	VersionV2: func() []Opcode {
		return implementedWhere(func(op Opcode) bool {
			return !isBitOp(op)
		})
	},
	VersionTested: func() []Opcode {
		return implementedWhere(func(op Opcode) bool {
			return !isBitOp(op)
		})
	},
	VersionAll: func() []Opcode {
		return implementedWhere(func(Opcode) bool {
			return true
		})
	},
}

// Versions lists the known version identifiers.
func Versions() []string {
	return []string{
		VersionNBF,
		VersionV1,
		VersionV2,
		VersionTested,
		VersionAll,
	}
}

func ResolveVersion(id string) ([]Opcode, error) {
	fn, ok := versions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVersion, id)
	}
	return fn(), nil
}

// Activate derives the instruction set of a named version from the
// canonical table. The canonical table is never modified, so every call
// starts from the full set.
func Activate(id string) (*InstructionSet, error) {
	list, err := ResolveVersion(id)
	if err != nil {
		return nil, err
	}
	return ActivateOpcodes(list)
}

// ActivateOpcodes derives an instruction set in which only the listed
// opcodes are live. An empty list makes every opcode a no-op.
func ActivateOpcodes(list []Opcode) (*InstructionSet, error) {
	var handlers [NumOpcodes]Handler
	for i := range handlers {
		handlers[i] = opNop
	}
	active := make([]Opcode, 0, len(list))
	for _, op := range list {
		if !op.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrBadOpcode, int(op))
		}
		handlers[op] = ops[op].fn
		active = append(active, op)
	}
	slices.Sort(active)
	active = slices.Compact(active)
	return &InstructionSet{
		codec:    Decimal{},
		handlers: handlers[:],
		active:   active,
	}, nil
}

// ParseOpcodes parses codons such as "008" into opcodes.
func ParseOpcodes(codons []string) ([]Opcode, error) {
	ret := make([]Opcode, 0, len(codons))
	for i, codon := range codons {
		op, ok := Decimal{}.Decode(codon)
		if !ok {
			return nil, codonError(codon, i)
		}
		ret = append(ret, op)
	}
	return ret, nil
}
