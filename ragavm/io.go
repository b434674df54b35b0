package ragavm

import (
	"slices"
	"strings"
)

func opOutput(s *State, _ Opcode) {
	s.Output = append(s.Output, s.cell())
}

func opInput(s *State, _ Opcode) {
	if len(s.Input) == 0 {
		return
	}
	s.store(s.Input[0])
	s.Input = s.Input[1:]
}

func opDropInput(s *State, _ Opcode) {
	if len(s.Input) > 0 {
		s.Input = s.Input[1:]
	}
}

func opPeekFirstInput(s *State, _ Opcode) {
	if len(s.Input) > 0 {
		s.store(s.Input[0])
	}
}

func opPeekLastInput(s *State, _ Opcode) {
	if len(s.Input) > 0 {
		s.store(s.Input[len(s.Input)-1])
	}
}

func opPopLastInput(s *State, _ Opcode) {
	if n := len(s.Input); n > 0 {
		s.store(s.Input[n-1])
		s.Input = s.Input[:n-1]
	}
}

func opPopOutput(s *State, _ Opcode) {
	if n := len(s.Output); n > 0 {
		s.store(s.Output[n-1])
		s.Output = s.Output[:n-1]
	}
}

func opPeekOutput(s *State, _ Opcode) {
	if n := len(s.Output); n > 0 {
		s.store(s.Output[n-1])
	}
}

func opClearOutput(s *State, _ Opcode) {
	s.Output = s.Output[:0]
}

func opOutputTape(s *State, _ Opcode) {
	s.Output = append(s.Output, s.Tape...)
}

func opDropOutput(s *State, _ Opcode) {
	if n := len(s.Output); n > 0 {
		s.Output = s.Output[:n-1]
	}
}

// opFlip reverses the codon order of the program. Execution continues with
// the codon that follows the flip in the reversed program.
func opFlip(s *State, _ Opcode) {
	w := s.width
	n := len(s.prog)
	i := s.SP / w
	slices.Reverse(s.prog)
	var b strings.Builder
	b.Grow(len(s.Source))
	for k := n - 1; k >= 0; k-- {
		b.WriteString(s.Source[k*w : (k+1)*w])
	}
	s.Source = b.String()
	s.Jump((n - i) * w)
}
