package ragavm

import "fmt"

type Opcode uint16

const NumOpcodes = 1000

const (
	OpForward Opcode = iota
	OpForward5
	OpForward10
	OpToEnd
	OpBackward
	OpBackward5
	OpBackward10
	OpToStart
	OpIncrement
	OpIncrement5
	OpIncrement10
	OpDecrement
	OpDecrement5
	OpDecrement10
	OpLoopStart
	OpLoopEnd
	OpOutput
	OpInput
	OpSkipIfZero
	OpSkip
)

const (
	OpGrow Opcode = iota + 20
	OpGrow10
	OpShrink
	OpShrink10
	OpInsert
	OpDelete
)

const (
	OpFlip Opcode = 150

	OpStoreBase Opcode = 200
	OpLoadBase  Opcode = 300
	OpClearBase Opcode = 500
)

func (o Opcode) Codon() string {
	return fmt.Sprintf("%03d", int(o))
}

func (o Opcode) String() string {
	if int(o) >= NumOpcodes {
		return fmt.Sprintf("BAD%d", int(o))
	}
	return ops[o].name
}

func (o Opcode) Valid() bool {
	return int(o) < NumOpcodes
}
