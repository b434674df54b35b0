package ragavm

import (
	"math"
	"slices"
)

// movement

func wrapBy(n int) Handler {
	return func(s *State, _ Opcode) {
		s.wrapTo(s.AP + n)
	}
}

func moveBy(n int) Handler {
	return func(s *State, _ Opcode) {
		s.moveTo(s.AP + n)
	}
}

func opToEnd(s *State, _ Opcode) {
	s.AP = len(s.Tape) - 1
}

func opToStart(s *State, _ Opcode) {
	s.AP = 0
}

// moveToFraction puts the pointer on the cell at num/den of the tape.
func moveToFraction(num, den int) Handler {
	return func(s *State, _ Opcode) {
		s.moveTo(len(s.Tape) * num / den)
	}
}

func moveBySquare(sign int) Handler {
	return func(s *State, _ Opcode) {
		n := toIndex(s.cell())
		if n < 0 {
			n = -n
		}
		n = min(n, math.MaxInt16)
		s.moveTo(s.AP + sign*n*n)
	}
}

func opToOutput(s *State, _ Opcode) {
	if len(s.Output) == 0 {
		return
	}
	s.moveTo(toIndex(s.Output[len(s.Output)-1]))
}

// cell values

func addBy(n float64) Handler {
	return func(s *State, _ Opcode) {
		s.store(s.cell() + n)
	}
}

func setTo(v float64) Handler {
	return func(s *State, _ Opcode) {
		s.store(v)
	}
}

func opSetPosition(s *State, _ Opcode) {
	s.store(float64(s.AP))
}

func opBroadcastBefore(s *State, _ Opcode) {
	v := s.cell()
	for i := 0; i < s.AP; i++ {
		s.Tape[i] = v
	}
}

func opBroadcastAfter(s *State, _ Opcode) {
	v := s.cell()
	for i := s.AP + 1; i < len(s.Tape); i++ {
		s.Tape[i] = v
	}
}

func opZeroTape(s *State, _ Opcode) {
	clear(s.Tape)
}

func opBroadcastAll(s *State, _ Opcode) {
	v := s.cell()
	for i := range s.Tape {
		s.Tape[i] = v
	}
}

// sizing

func growBy(n int) Handler {
	return func(s *State, _ Opcode) {
		s.Tape = append(s.Tape, make([]float64, n)...)
	}
}

// shrinkBy removes up to n cells from the end, keeping at least one.
func shrinkBy(n int) Handler {
	return func(s *State, _ Opcode) {
		keep := max(len(s.Tape)-n, 1)
		s.Tape = s.Tape[:keep]
		s.clampAP()
	}
}

func opInsert(s *State, _ Opcode) {
	s.Tape = slices.Insert(s.Tape, s.AP+1, 0)
}

func opDelete(s *State, _ Opcode) {
	if len(s.Tape) <= 1 {
		return
	}
	s.Tape = slices.Delete(s.Tape, s.AP, s.AP+1)
	s.clampAP()
}
