package ragavm

import (
	"context"
	"fmt"
	"io"
	"slices"
)

// InstructionSet is an immutable view over a handler table: the handlers
// live for one version and the codec that reads codons.
type InstructionSet struct {
	codec    Codec
	handlers []Handler
	active   []Opcode
}

// NewInstructionSet builds an instruction set for a front-end with its own
// opcode space. Nil handlers are no-ops. When brackets has both conditions,
// its start and end handlers are installed at brackets.Start and
// brackets.End, replacing whatever handlers holds there.
func NewInstructionSet(codec Codec, handlers []Handler, brackets Brackets) *InstructionSet {
	n := len(handlers)
	loops := brackets.Enter != nil && brackets.Repeat != nil
	if loops {
		n = max(n, int(brackets.Start)+1, int(brackets.End)+1)
	}
	hs := make([]Handler, n)
	copy(hs, handlers)
	if loops {
		hs[brackets.Start] = brackets.StartHandler()
		hs[brackets.End] = brackets.EndHandler()
	}

	var active []Opcode
	for i, h := range hs {
		if h == nil {
			hs[i] = opNop
			continue
		}
		active = append(active, Opcode(i))
	}
	return &InstructionSet{
		codec:    codec,
		handlers: hs,
		active:   active,
	}
}

func (i *InstructionSet) Codec() Codec {
	return i.codec
}

// Active lists the live opcodes in ascending order.
func (i *InstructionSet) Active() []Opcode {
	return slices.Clone(i.active)
}

func (i *InstructionSet) IsActive(op Opcode) bool {
	_, ok := slices.BinarySearch(i.active, op)
	return ok
}

type Limits struct {
	// MaxSteps bounds the number of dispatched codons. Required.
	MaxSteps int
	// Trace, if non-nil, receives one line per step.
	Trace io.Writer
}

type Halt int

const (
	HaltExhausted Halt = iota
	HaltStepCap
)

func (h Halt) String() string {
	switch h {
	case HaltExhausted:
		return "exhausted"
	case HaltStepCap:
		return "step cap"
	}
	return fmt.Sprintf("halt(%d)", int(h))
}

type Result struct {
	State State
	Steps int
	Halt  Halt
}

const cancelCheckInterval = 1024

// Run executes the source of initial until the source is exhausted or
// limits.MaxSteps codons have been dispatched. The caller's slices are not
// modified; the register file in initial is shared and mutated in place.
func (i *InstructionSet) Run(ctx context.Context, initial State, limits Limits) (ret Result, err error) {
	if limits.MaxSteps <= 0 {
		return ret, ErrNoStepCap
	}
	if len(initial.Tape) == 0 {
		return ret, ErrEmptyTape
	}
	prog, err := decode(i.codec, initial.Source)
	if err != nil {
		return ret, err
	}
	for pos, op := range prog {
		if int(op) >= len(i.handlers) {
			return ret, fmt.Errorf("%w: %d at codon %d", ErrBadOpcode, int(op), pos)
		}
	}
	width := i.codec.Width()
	if initial.SP < 0 || initial.SP%width != 0 {
		return ret, fmt.Errorf("%w: start pointer %d not aligned to width %d", ErrBadCodon, initial.SP, width)
	}

	s := initial.clone()
	s.prog = prog
	s.width = width
	if s.Registers == nil {
		s.Registers = NewRegisters()
	}
	s.clampAP()

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrUnexpected, p)
		}
		ret.State = s
		ret.State.prog = nil
	}()

	for {
		if s.SP < 0 || s.SP+width > len(s.Source) {
			ret.Halt = HaltExhausted
			return ret, nil
		}
		if ret.Steps >= limits.MaxSteps {
			ret.Halt = HaltStepCap
			return ret, nil
		}
		if ret.Steps > 0 && ret.Steps%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return ret, err
			}
		}

		op := s.prog[s.SP/width]
		if limits.Trace != nil {
			fmt.Fprintf(limits.Trace, "step %d sp %d ap %d %s cell %g\n",
				ret.Steps, s.SP, s.AP, s.Source[s.SP:s.SP+width], s.cell())
		}
		s.jumped = false
		i.handlers[op](&s, op)
		ret.Steps++
		if !s.jumped {
			s.SP += width
		}
		s.clampAP()
	}
}

// WithCodec returns a copy of i reading codons with codec. Opcodes decoded
// by codec must lie in the handler table.
func (i *InstructionSet) WithCodec(codec Codec) *InstructionSet {
	ret := *i
	ret.codec = codec
	return &ret
}
