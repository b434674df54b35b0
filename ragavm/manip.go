package ragavm

import (
	"math"
	"math/bits"
	"slices"
)

func opSwapNext(s *State, _ Opcode) {
	j := s.nextIndex()
	s.Tape[s.AP], s.Tape[j] = s.Tape[j], s.Tape[s.AP]
}

func opSwapPrevious(s *State, _ Opcode) {
	j := s.AP - 1
	if j < 0 {
		j = len(s.Tape) - 1
	}
	s.Tape[s.AP], s.Tape[j] = s.Tape[j], s.Tape[s.AP]
}

func reverse(sp span) Handler {
	return func(s *State, _ Opcode) {
		slices.Reverse(s.cells(sp))
	}
}

// rotateAt makes the cell at AP+offset the first cell of the tape.
func rotateAt(offset int) Handler {
	return func(s *State, _ Opcode) {
		n := len(s.Tape)
		k := wrap(s.AP+offset, n)
		s.Tape = append(slices.Clone(s.Tape[k:]), s.Tape[:k]...)
	}
}

func opPopPrepend(s *State, _ Opcode) {
	n := len(s.Tape)
	last := s.Tape[n-1]
	copy(s.Tape[1:], s.Tape[:n-1])
	s.Tape[0] = last
}

func opPopAppend(s *State, _ Opcode) {
	n := len(s.Tape)
	first := s.Tape[0]
	copy(s.Tape, s.Tape[1:])
	s.Tape[n-1] = first
}

// bit operations work on the cell truncated to int64; cells outside the
// int64 range store the overflow sentinel.

func toBits(v float64) (int64, bool) {
	if math.IsNaN(v) || v >= math.MaxInt64 || v < math.MinInt64 {
		return 0, false
	}
	return int64(v), true
}

func bitwise(fn func(a int64) int64) Handler {
	return func(s *State, _ Opcode) {
		a, ok := toBits(s.cell())
		if !ok {
			s.Tape[s.AP] = s.Faults.Overflow
			return
		}
		s.store(float64(fn(a)))
	}
}

func bitwiseNext(fn func(a, b int64) int64) Handler {
	return func(s *State, _ Opcode) {
		a, ok1 := toBits(s.cell())
		b, ok2 := toBits(s.Tape[s.nextIndex()])
		if !ok1 || !ok2 {
			s.Tape[s.AP] = s.Faults.Overflow
			return
		}
		s.store(float64(fn(a, b)))
	}
}

func bitNot(a int64) int64 { return ^a }

func bitAnd(a, b int64) int64 { return a & b }

func bitOr(a, b int64) int64 { return a | b }

func bitXor(a, b int64) int64 { return a ^ b }

func shiftLeft(a int64) int64 { return a << 1 }

func shiftRight(a int64) int64 { return a >> 1 }

func popCount(a int64) int64 {
	return int64(bits.OnesCount64(uint64(a)))
}
