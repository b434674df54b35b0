package ragavm

import (
	"errors"
	"fmt"
)

var (
	ErrBadCodon       = errors.New("bad codon")
	ErrBadOpcode      = errors.New("bad opcode")
	ErrCodonWidth     = errors.New("source length is not a multiple of codon width")
	ErrEmptyTape      = errors.New("empty tape")
	ErrNoStepCap      = errors.New("step cap required")
	ErrUnexpected     = errors.New("unexpected error")
	ErrUnknownVersion = errors.New("unknown version")
)

func codonError(codon string, pos int) error {
	return fmt.Errorf("%w: %q at %d", ErrBadCodon, codon, pos)
}
