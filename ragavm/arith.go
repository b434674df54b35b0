package ragavm

import "math"

type binaryOp func(s *State, a, b float64) float64

func opAdd(_ *State, a, b float64) float64 { return a + b }
func opSub(_ *State, a, b float64) float64 { return a - b }
func opMul(_ *State, a, b float64) float64 { return a * b }

func opDiv(s *State, a, b float64) float64 {
	if b == 0 {
		return s.Faults.ZeroDivision
	}
	return a / b
}

func opMod(s *State, a, b float64) float64 {
	if b == 0 {
		return s.Faults.ZeroDivision
	}
	// floored: the result takes the sign of the divisor
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

func withNext(fn binaryOp) Handler {
	return func(s *State, _ Opcode) {
		s.store(fn(s, s.cell(), s.Tape[s.nextIndex()]))
	}
}

func withFirstInput(fn binaryOp) Handler {
	return func(s *State, _ Opcode) {
		if len(s.Input) == 0 {
			return
		}
		s.store(fn(s, s.cell(), s.Input[0]))
	}
}

func withLastInput(fn binaryOp) Handler {
	return func(s *State, _ Opcode) {
		if len(s.Input) == 0 {
			return
		}
		s.store(fn(s, s.cell(), s.Input[len(s.Input)-1]))
	}
}

// unary applies fn to the current cell; NaN results count as domain faults.
func unary(fn func(float64) float64) Handler {
	return func(s *State, _ Opcode) {
		s.store(fn(s.cell()))
	}
}

// positive applies fn only to strictly positive cells.
func positive(fn func(float64) float64) Handler {
	return func(s *State, _ Opcode) {
		if s.cell() <= 0 {
			s.domainFault()
			return
		}
		s.store(fn(s.cell()))
	}
}

func negate(v float64) float64 { return -v }

func degrees(v float64) float64 { return v * 180 / math.Pi }

func radians(v float64) float64 { return v * math.Pi / 180 }

func square(v float64) float64 { return v * v }

func cube(v float64) float64 { return v * v * v }

func pow10(v float64) float64 { return math.Pow(10, v) }

func pow2(v float64) float64 { return math.Pow(2, v) }

func factorial(v float64) float64 {
	return math.Gamma(math.Floor(v) + 1)
}

func opFactorial(s *State, _ Opcode) {
	if s.cell() < 0 {
		s.domainFault()
		return
	}
	s.store(factorial(s.cell()))
}

func opFactorialAbs(s *State, _ Opcode) {
	s.store(factorial(math.Abs(s.cell())))
}

func opHypot(s *State, _ Opcode) {
	s.store(math.Hypot(s.cell(), s.Tape[s.nextIndex()]))
}

// opLogBase takes the logarithm of the cell in the base held by the next cell.
func opLogBase(s *State, _ Opcode) {
	v, base := s.cell(), s.Tape[s.nextIndex()]
	if v <= 0 || base <= 0 || base == 1 {
		s.domainFault()
		return
	}
	s.store(math.Log(v) / math.Log(base))
}

func opSqrt(s *State, _ Opcode) {
	if s.cell() < 0 {
		s.domainFault()
		return
	}
	s.store(math.Sqrt(s.cell()))
}
