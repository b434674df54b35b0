package ragavm

import (
	"math"
	"testing"
)

var testFaults = Faults{
	Overflow:     -7,
	ZeroDivision: -9,
}

func testState(source string, tape ...float64) State {
	return State{
		Tape:      tape,
		Source:    source,
		Registers: NewRegisters(),
		Faults:    testFaults,
	}
}

func runState(t *testing.T, version string, state State, maxSteps int) Result {
	t.Helper()
	set, err := Activate(version)
	if err != nil {
		t.Fatal(err)
	}
	res, err := set.Run(t.Context(), state, Limits{
		MaxSteps: maxSteps,
	})
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func near(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}

func nearAll(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !near(a[i], b[i]) {
			return false
		}
	}
	return true
}
