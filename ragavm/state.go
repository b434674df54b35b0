package ragavm

import (
	"math"
	"slices"
)

// Faults holds the values stored in place of a faulting result.
type Faults struct {
	Overflow     float64 `cbor:"overflow" json:"overflow"`
	ZeroDivision float64 `cbor:"zero_division" json:"zero_division"`
}

var DefaultFaults = Faults{
	Overflow:     1e100,
	ZeroDivision: 1e100,
}

type State struct {
	Tape   []float64 `cbor:"tape"`
	AP     int       `cbor:"ap"`
	Input  []float64 `cbor:"input"`
	Output []float64 `cbor:"output"`
	Source string    `cbor:"source"`
	SP     int       `cbor:"sp"`

	Registers *Registers `cbor:"registers"`
	Faults    Faults     `cbor:"faults"`

	prog   []Opcode
	width  int
	jumped bool
}

// NewState returns a state with a tape of size cells, each set to fill.
func NewState(source string, size int, fill float64) State {
	tape := make([]float64, max(size, 1))
	for i := range tape {
		tape[i] = fill
	}
	return State{
		Tape:      tape,
		Source:    source,
		Registers: NewRegisters(),
		Faults:    DefaultFaults,
	}
}

func (s State) clone() State {
	ret := s
	ret.Tape = slices.Clone(s.Tape)
	ret.Input = slices.Clone(s.Input)
	ret.Output = slices.Clone(s.Output)
	ret.prog = nil
	ret.jumped = false
	return ret
}

// Jump sets the position of the next codon to execute.
func (s *State) Jump(sp int) {
	s.SP = sp
	s.jumped = true
}

// Width is the codon width of the running program.
func (s *State) Width() int {
	return s.width
}

func (s *State) cell() float64 {
	return s.Tape[s.AP]
}

// store writes v to the current cell, substituting fault sentinels.
func (s *State) store(v float64) {
	s.Tape[s.AP] = s.filter(v)
}

func (s *State) filter(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return s.Faults.ZeroDivision
	case math.IsInf(v, 0):
		return s.Faults.Overflow
	}
	return v
}

func (s *State) domainFault() {
	s.Tape[s.AP] = s.Faults.ZeroDivision
}

// nextIndex is the cell after the pointer, wrapping to the first cell.
func (s *State) nextIndex() int {
	if s.AP+1 >= len(s.Tape) {
		return 0
	}
	return s.AP + 1
}

func (s *State) clampAP() {
	s.AP = clamp(s.AP, 0, len(s.Tape)-1)
}

func (s *State) moveTo(p int) {
	s.AP = clamp(p, 0, len(s.Tape)-1)
}

func (s *State) wrapTo(p int) {
	s.AP = wrap(p, len(s.Tape))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	return (v%n + n) % n
}

// toIndex converts a cell value to a pointer offset, saturating instead of
// overflowing int.
func toIndex(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}
