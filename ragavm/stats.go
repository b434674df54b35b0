package ragavm

import "math"

type span int

const (
	spanBefore span = iota
	spanAfter
	spanWhole
)

func (s *State) cells(sp span) []float64 {
	switch sp {
	case spanBefore:
		return s.Tape[:s.AP]
	case spanAfter:
		return s.Tape[s.AP+1:]
	}
	return s.Tape
}

// aggregate stores fn over a span into the current cell. fn reports false on
// a domain fault.
func aggregate(sp span, fn func([]float64) (float64, bool)) Handler {
	return func(s *State, _ Opcode) {
		v, ok := fn(s.cells(sp))
		if !ok {
			s.domainFault()
			return
		}
		s.store(v)
	}
}

func sum(xs []float64) (float64, bool) {
	var ret float64
	for _, x := range xs {
		ret += x
	}
	return ret, true
}

func mean(xs []float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	total, _ := sum(xs)
	return total / float64(len(xs)), true
}

func variance(xs []float64) (float64, bool) {
	m, ok := mean(xs)
	if !ok {
		return 0, false
	}
	var ret float64
	for _, x := range xs {
		ret += (x - m) * (x - m)
	}
	return ret / float64(len(xs)), true
}

func geometricMean(xs []float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	var logs float64
	for _, x := range xs {
		if x <= 0 {
			return 0, false
		}
		logs += math.Log(x)
	}
	return math.Exp(logs / float64(len(xs))), true
}

func harmonicMean(xs []float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	var inv float64
	for _, x := range xs {
		if x == 0 {
			return 0, false
		}
		inv += 1 / x
	}
	if inv == 0 {
		return 0, false
	}
	return float64(len(xs)) / inv, true
}

// elementwise applies fn to every cell of a span, each through the fault filter.
func elementwise(sp span, fn func(float64) float64) Handler {
	return func(s *State, _ Opcode) {
		xs := s.cells(sp)
		for i, x := range xs {
			xs[i] = s.filter(fn(x))
		}
	}
}

func scale(k float64) func(float64) float64 {
	return func(v float64) float64 {
		return v * k
	}
}

func opScaleTape(s *State, _ Opcode) {
	k := s.cell()
	for i, x := range s.Tape {
		s.Tape[i] = s.filter(x * k)
	}
}
