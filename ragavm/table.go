package ragavm

import (
	"fmt"
	"math"
)

type Handler func(s *State, op Opcode)

type opInfo struct {
	op          Opcode
	name        string
	fn          Handler
	implemented bool
}

func opNop(*State, Opcode) {}

var ops = [NumOpcodes]opInfo{
	OpForward:    {OpForward, "FORWARD", wrapBy(1), true},
	OpForward5:   {OpForward5, "FORWARD5", moveBy(5), true},
	OpForward10:  {OpForward10, "FORWARD10", moveBy(10), true},
	OpToEnd:      {OpToEnd, "TOEND", opToEnd, true},
	OpBackward:   {OpBackward, "BACKWARD", wrapBy(-1), true},
	OpBackward5:  {OpBackward5, "BACKWARD5", moveBy(-5), true},
	OpBackward10: {OpBackward10, "BACKWARD10", moveBy(-10), true},
	OpToStart:    {OpToStart, "TOSTART", opToStart, true},

	OpIncrement:   {OpIncrement, "INC", addBy(1), true},
	OpIncrement5:  {OpIncrement5, "INC5", addBy(5), true},
	OpIncrement10: {OpIncrement10, "INC10", addBy(10), true},
	OpDecrement:   {OpDecrement, "DEC", addBy(-1), true},
	OpDecrement5:  {OpDecrement5, "DEC5", addBy(-5), true},
	OpDecrement10: {OpDecrement10, "DEC10", addBy(-10), true},

	OpLoopStart:  {OpLoopStart, "LOOP", ragarajaBrackets.StartHandler(), true},
	OpLoopEnd:    {OpLoopEnd, "ENDLOOP", ragarajaBrackets.EndHandler(), true},
	OpOutput:     {OpOutput, "OUT", opOutput, true},
	OpInput:      {OpInput, "IN", opInput, true},
	OpSkipIfZero: {OpSkipIfZero, "SKIPZ", opSkipIfZero, true},
	OpSkip:       {OpSkip, "SKIP", opSkip, true},

	OpGrow:     {OpGrow, "GROW", growBy(1), true},
	OpGrow10:   {OpGrow10, "GROW10", growBy(10), true},
	OpShrink:   {OpShrink, "SHRINK", shrinkBy(1), true},
	OpShrink10: {OpShrink10, "SHRINK10", shrinkBy(10), true},
	OpInsert:   {OpInsert, "INSERT", opInsert, true},
	OpDelete:   {OpDelete, "DELETE", opDelete, true},

	30: {30, "TOQUARTER", moveToFraction(1, 4), true},
	31: {31, "TOHALF", moveToFraction(1, 2), true},
	32: {32, "TO3QUARTER", moveToFraction(3, 4), true},
	33: {33, "FORWARDSQ", moveBySquare(1), true},
	34: {34, "BACKWARDSQ", moveBySquare(-1), true},
	35: {35, "TOOUTPUT", opToOutput, true},
	36: {36, "WFORWARD5", wrapBy(5), true},
	37: {37, "WBACKWARD5", wrapBy(-5), true},

	40: {40, "SET0", setTo(0), true},
	41: {41, "SETM1", setTo(-1), true},
	42: {42, "SET1", setTo(1), true},
	43: {43, "SETPI", setTo(math.Pi), true},
	44: {44, "SETE", setTo(math.E), true},
	45: {45, "SETPOS", opSetPosition, true},
	46: {46, "FILLBEFORE", opBroadcastBefore, true},
	47: {47, "FILLAFTER", opBroadcastAfter, true},
	48: {48, "ZEROTAPE", opZeroTape, true},
	49: {49, "FILLTAPE", opBroadcastAll, true},

	50: {50, "ADDN", withNext(opAdd), true},
	51: {51, "SUBN", withNext(opSub), true},
	52: {52, "MULN", withNext(opMul), true},
	53: {53, "DIVN", withNext(opDiv), true},
	54: {54, "MODN", withNext(opMod), true},
	55: {55, "ADDI", withFirstInput(opAdd), true},
	56: {56, "SUBI", withFirstInput(opSub), true},
	57: {57, "MULI", withFirstInput(opMul), true},
	58: {58, "DIVI", withFirstInput(opDiv), true},
	59: {59, "MODI", withFirstInput(opMod), true},
	60: {60, "ADDL", withLastInput(opAdd), true},
	61: {61, "SUBL", withLastInput(opSub), true},
	62: {62, "MULL", withLastInput(opMul), true},
	63: {63, "DIVL", withLastInput(opDiv), true},
	64: {64, "MODL", withLastInput(opMod), true},

	65: {65, "FLOOR", unary(math.Floor), true},
	66: {66, "NEG", unary(negate), true},
	67: {67, "ABS", unary(math.Abs), true},
	68: {68, "SIN", unary(math.Sin), true},
	69: {69, "COS", unary(math.Cos), true},
	70: {70, "TAN", unary(math.Tan), true},
	71: {71, "ASIN", unary(math.Asin), true},
	72: {72, "ACOS", unary(math.Acos), true},
	73: {73, "ATAN", unary(math.Atan), true},
	74: {74, "SINH", unary(math.Sinh), true},
	75: {75, "COSH", unary(math.Cosh), true},
	76: {76, "TANH", unary(math.Tanh), true},
	77: {77, "ASINH", unary(math.Asinh), true},
	78: {78, "ACOSH", unary(math.Acosh), true},
	79: {79, "ATANH", unary(math.Atanh), true},
	80: {80, "DEGREES", unary(degrees), true},
	81: {81, "RADIANS", unary(radians), true},
	82: {82, "SQUARE", unary(square), true},
	83: {83, "CUBE", unary(cube), true},
	84: {84, "EXP", unary(math.Exp), true},
	85: {85, "EXPM1", unary(math.Expm1), true},
	86: {86, "LN", positive(math.Log), true},
	87: {87, "LOG10", positive(math.Log10), true},
	88: {88, "LOG2", positive(math.Log2), true},
	89: {89, "LOG1P", unary(math.Log1p), true},
	90: {90, "ERF", unary(math.Erf), true},
	91: {91, "ERFC", unary(math.Erfc), true},
	92: {92, "FACT", opFactorial, true},
	93: {93, "FACTABS", opFactorialAbs, true},
	94: {94, "HYPOT", opHypot, true},
	95: {95, "LOGBASE", opLogBase, true},
	96: {96, "SQRT", opSqrt, true},
	97: {97, "CEIL", unary(math.Ceil), true},
	98: {98, "POW10", unary(pow10), true},
	99: {99, "POW2", unary(pow2), true},

	101: {101, "SUMBEFORE", aggregate(spanBefore, sum), true},
	102: {102, "SUMAFTER", aggregate(spanAfter, sum), true},
	103: {103, "SUM", aggregate(spanWhole, sum), true},
	104: {104, "MEANBEFORE", aggregate(spanBefore, mean), true},
	105: {105, "MEANAFTER", aggregate(spanAfter, mean), true},
	106: {106, "MEAN", aggregate(spanWhole, mean), true},
	107: {107, "VARBEFORE", aggregate(spanBefore, variance), true},
	108: {108, "VARAFTER", aggregate(spanAfter, variance), true},
	109: {109, "VAR", aggregate(spanWhole, variance), true},
	110: {110, "GMEANBEFORE", aggregate(spanBefore, geometricMean), true},
	111: {111, "GMEANAFTER", aggregate(spanAfter, geometricMean), true},
	112: {112, "GMEAN", aggregate(spanWhole, geometricMean), true},
	113: {113, "HMEANBEFORE", aggregate(spanBefore, harmonicMean), true},
	114: {114, "HMEANAFTER", aggregate(spanAfter, harmonicMean), true},
	115: {115, "HMEAN", aggregate(spanWhole, harmonicMean), true},
	116: {116, "DOUBLETAPE", elementwise(spanWhole, scale(2)), true},
	117: {117, "HALVETAPE", elementwise(spanWhole, scale(0.5)), true},
	118: {118, "SQUARETAPE", elementwise(spanWhole, square), true},
	119: {119, "SQRTTAPE", elementwise(spanWhole, math.Sqrt), true},
	120: {120, "SQUAREBEFORE", elementwise(spanBefore, square), true},
	121: {121, "SQUAREAFTER", elementwise(spanAfter, square), true},
	122: {122, "SQRTBEFORE", elementwise(spanBefore, math.Sqrt), true},
	123: {123, "SQRTAFTER", elementwise(spanAfter, math.Sqrt), true},
	124: {124, "SCALETAPE", opScaleTape, true},

	125: {125, "SWAPNEXT", opSwapNext, true},
	126: {126, "SWAPPREV", opSwapPrevious, true},
	127: {127, "REVERSE", reverse(spanWhole), true},
	128: {128, "REVERSEBEFORE", reverse(spanBefore), true},
	129: {129, "REVERSEAFTER", reverse(spanAfter), true},
	130: {130, "ROTLEFT", rotateAt(0), true},
	131: {131, "ROTRIGHT", rotateAt(1), true},
	132: {132, "POPPREPEND", opPopPrepend, true},
	133: {133, "POPAPPEND", opPopAppend, true},

	134: {134, "NOT", bitwise(bitNot), true},
	135: {135, "AND", bitwiseNext(bitAnd), true},
	136: {136, "OR", bitwiseNext(bitOr), true},
	137: {137, "XOR", bitwiseNext(bitXor), true},
	138: {138, "SHL", bitwise(shiftLeft), true},
	139: {139, "SHR", bitwise(shiftRight), true},
	140: {140, "POPCOUNT", bitwise(popCount), true},

	141: {141, "DROPIN", opDropInput, true},
	142: {142, "PEEKIN", opPeekFirstInput, true},
	143: {143, "PEEKLASTIN", opPeekLastInput, true},
	144: {144, "POPLASTIN", opPopLastInput, true},
	145: {145, "POPOUT", opPopOutput, true},
	146: {146, "PEEKOUT", opPeekOutput, true},
	147: {147, "CLEAROUT", opClearOutput, true},
	148: {148, "OUTTAPE", opOutputTape, true},
	149: {149, "DROPOUT", opDropOutput, true},

	OpFlip: {OpFlip, "FLIP", opFlip, true},
}

var opsByName map[string]Opcode

func init() {
	for i := 1; i < 10; i++ {
		op := Opcode(i * 100)
		ops[op] = opInfo{op, fmt.Sprintf("MARK%d", i), opNop, true}
	}
	for n := 1; n <= NumRegisters; n++ {
		store := OpStoreBase + Opcode(n)
		ops[store] = opInfo{store, fmt.Sprintf("STORE%d", n), opStore, true}
		load := OpLoadBase + Opcode(n)
		ops[load] = opInfo{load, fmt.Sprintf("LOAD%d", n), opLoad, true}
		clr := OpClearBase + Opcode(n)
		ops[clr] = opInfo{clr, fmt.Sprintf("CLEAR%d", n), opClear, true}
	}

	for i := range ops {
		if ops[i].fn == nil {
			ops[i] = opInfo{Opcode(i), fmt.Sprintf("NOP%03d", i), opNop, false}
		}
	}

	opsByName = make(map[string]Opcode)
	for _, info := range ops {
		opsByName[info.name] = info.op
	}
}

// Lookup finds an opcode by mnemonic.
func Lookup(name string) (Opcode, bool) {
	op, ok := opsByName[name]
	return op, ok
}

// Implemented reports whether op has a handler other than the default no-op.
// Jump markers count as implemented.
func Implemented(op Opcode) bool {
	return op.Valid() && ops[op].implemented
}

// Builtin returns the canonical handler of op, for front-ends that reuse
// Ragaraja instructions in their own opcode space.
func Builtin(op Opcode) Handler {
	if !op.Valid() {
		return opNop
	}
	return ops[op].fn
}
