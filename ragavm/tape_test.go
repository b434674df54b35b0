package ragavm

import (
	"slices"
	"testing"
)

func TestTapeSizeRoundTrip(t *testing.T) {
	pairs := [][2]Opcode{
		{OpGrow, OpShrink},
		{OpGrow10, OpShrink10},
		{OpInsert, OpDelete},
	}
	for _, pair := range pairs {
		for ap := 0; ap < 4; ap++ {
			tape := []float64{1, 2, 3, 4}
			state := testState(Encode(pair[0], pair[1]), tape...)
			state.AP = ap
			res := runState(t, VersionV1, state, 10)
			if len(res.State.Tape) != len(tape) {
				t.Fatalf("%v ap %d: got %v", pair, ap, res.State.Tape)
			}
			for i, v := range res.State.Tape {
				if i == ap {
					continue
				}
				if v != tape[i] {
					t.Fatalf("%v ap %d: got %v", pair, ap, res.State.Tape)
				}
			}
		}
	}
}

func TestTapeNeverEmpties(t *testing.T) {
	for _, op := range []Opcode{OpShrink, OpShrink10, OpDelete} {
		res := runState(t, VersionV1, testState(Encode(op, op, op), 5), 10)
		if !slices.Equal(res.State.Tape, []float64{5}) {
			t.Fatalf("%s: got %v", op, res.State.Tape)
		}
		if res.State.AP != 0 {
			t.Fatalf("%s: got %d", op, res.State.AP)
		}
	}
}

func TestShrinkClampsPointer(t *testing.T) {
	state := testState(Encode(OpShrink10), 1, 2, 3, 4, 5)
	state.AP = 4
	res := runState(t, VersionV1, state, 10)
	if !slices.Equal(res.State.Tape, []float64{1}) || res.State.AP != 0 {
		t.Fatalf("got %v %d", res.State.Tape, res.State.AP)
	}

	state = testState(Encode(OpDelete), 1, 2, 3)
	state.AP = 2
	res = runState(t, VersionV1, state, 10)
	if !slices.Equal(res.State.Tape, []float64{1, 2}) || res.State.AP != 1 {
		t.Fatalf("got %v %d", res.State.Tape, res.State.AP)
	}
}

func TestGrowInLoopIsBoundedByStepCap(t *testing.T) {
	res := runState(t, VersionV1, testState("008014021015", 0), 1000)
	if res.Halt != HaltStepCap {
		t.Fatalf("got %v", res.Halt)
	}
	// two steps per iteration after the first two codons
	if len(res.State.Tape) != 1+10*499 {
		t.Fatalf("got %d", len(res.State.Tape))
	}
}

func TestStartPointerClamped(t *testing.T) {
	state := testState("016", 1, 2, 3)
	state.AP = 10
	res := runState(t, VersionV1, state, 10)
	if !slices.Equal(res.State.Output, []float64{3}) {
		t.Fatalf("got %v", res.State.Output)
	}
}
