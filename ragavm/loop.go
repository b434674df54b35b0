package ragavm

// Brackets describes a pair of loop opcodes and their tape conditions.
//
// Matching is a linear scan over codons with a nesting counter. A start with
// no matching end consumes the rest of the program; an end with no matching
// start falls through.
type Brackets struct {
	Start  Opcode
	End    Opcode
	Enter  func(v float64) bool
	Repeat func(v float64) bool
}

var ragarajaBrackets = Brackets{
	Start: OpLoopStart,
	End:   OpLoopEnd,
	Enter: func(v float64) bool {
		return v > 0
	},
	Repeat: func(v float64) bool {
		return v >= 1
	},
}

func (b Brackets) StartHandler() Handler {
	return func(s *State, _ Opcode) {
		if b.Enter(s.cell()) {
			return
		}
		i := s.SP / s.width
		j := b.matchForward(s.prog, i)
		if j < 0 {
			s.Jump(len(s.prog) * s.width)
			return
		}
		s.Jump((j + 1) * s.width)
	}
}

func (b Brackets) EndHandler() Handler {
	return func(s *State, _ Opcode) {
		if !b.Repeat(s.cell()) {
			return
		}
		i := s.SP / s.width
		j := b.matchBackward(s.prog, i)
		if j < 0 {
			return
		}
		s.Jump((j + 1) * s.width)
	}
}

func (b Brackets) matchForward(prog []Opcode, i int) int {
	depth := 1
	for j := i + 1; j < len(prog); j++ {
		switch prog[j] {
		case b.Start:
			depth++
		case b.End:
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

func (b Brackets) matchBackward(prog []Opcode, i int) int {
	depth := 1
	for j := i - 1; j >= 0; j-- {
		switch prog[j] {
		case b.End:
			depth++
		case b.Start:
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

func opSkipIfZero(s *State, _ Opcode) {
	if s.cell() == 0 {
		s.Jump(s.SP + 2*s.width)
	}
}

func opSkip(s *State, _ Opcode) {
	s.Jump(s.SP + 2*s.width)
}
