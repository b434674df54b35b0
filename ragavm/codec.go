package ragavm

// Codec maps fixed-width codons to opcodes.
type Codec interface {
	Width() int
	Decode(codon string) (Opcode, bool)
}

// Decimal is the 3-digit zero-padded codec, "000" to "999".
type Decimal struct{}

var _ Codec = Decimal{}

func (Decimal) Width() int {
	return 3
}

func (Decimal) Decode(codon string) (Opcode, bool) {
	if len(codon) != 3 {
		return 0, false
	}
	n := 0
	for i := 0; i < 3; i++ {
		c := codon[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return Opcode(n), true
}

// Encode concatenates the codons of ops.
func Encode(ops ...Opcode) string {
	buf := make([]byte, 0, len(ops)*3)
	for _, op := range ops {
		buf = append(buf, op.Codon()...)
	}
	return string(buf)
}

func decode(codec Codec, source string) ([]Opcode, error) {
	width := codec.Width()
	if width <= 0 || len(source)%width != 0 {
		return nil, ErrCodonWidth
	}
	prog := make([]Opcode, 0, len(source)/width)
	for i := 0; i < len(source); i += width {
		op, ok := codec.Decode(source[i : i+width])
		if !ok {
			return nil, codonError(source[i:i+width], i)
		}
		prog = append(prog, op)
	}
	return prog, nil
}
