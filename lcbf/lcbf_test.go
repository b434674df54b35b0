package lcbf

import (
	"slices"
	"testing"

	"github.com/reusee/ragaraja/ragavm"
)

var limits = ragavm.Limits{
	MaxSteps: 10000,
}

func TestMultiply(t *testing.T) {
	res, err := Run(t.Context(), "++[>+++<-]>.", make([]float64, 2), nil, limits)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(res.State.Output, []float64{6}) {
		t.Fatalf("got %v", res.State.Output)
	}
	if res.Halt != ragavm.HaltExhausted {
		t.Fatalf("got %v", res.Halt)
	}
}

func TestCircularTape(t *testing.T) {
	res, err := Run(t.Context(), "<+>>>+", make([]float64, 3), nil, limits)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(res.State.Tape, []float64{0, 0, 2}) {
		t.Fatalf("got %v", res.State.Tape)
	}
}

func TestInput(t *testing.T) {
	res, err := Run(t.Context(), ",.,.,.", make([]float64, 1), []float64{4, 5}, limits)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(res.State.Output, []float64{4, 5, 5}) {
		t.Fatalf("got %v", res.State.Output)
	}
}

func TestUnmatchedBrackets(t *testing.T) {
	res, err := Run(t.Context(), "[++", make([]float64, 1), nil, limits)
	if err != nil {
		t.Fatal(err)
	}
	if res.State.Tape[0] != 0 {
		t.Fatalf("got %v", res.State.Tape)
	}

	res, err = Run(t.Context(), "+]+", make([]float64, 1), nil, limits)
	if err != nil {
		t.Fatal(err)
	}
	if res.State.Tape[0] != 2 {
		t.Fatalf("got %v", res.State.Tape)
	}
}

func TestCommentsAreNoOps(t *testing.T) {
	res, err := Run(t.Context(), "a+b", make([]float64, 1), nil, limits)
	if err != nil {
		t.Fatal(err)
	}
	if res.State.Tape[0] != 1 || res.Steps != 3 {
		t.Fatalf("got %v %d", res.State.Tape, res.Steps)
	}
	if len(Instructions().Active()) != 8 {
		t.Fatalf("got %v", Instructions().Active())
	}
}

func TestEndlessLoopCapped(t *testing.T) {
	res, err := Run(t.Context(), "+[]", make([]float64, 1), nil, ragavm.Limits{
		MaxSteps: 50,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Halt != ragavm.HaltStepCap || res.Steps != 50 {
		t.Fatalf("got %v %d", res.Halt, res.Steps)
	}
}
