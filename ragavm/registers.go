package ragavm

// NumRegisters is the size of the register file. Registers are numbered from 1.
const NumRegisters = 99

// Registers outlive a single Run. The caller owns them and decides whether
// consecutive runs share one file.
type Registers struct {
	Slots [NumRegisters]float64
}

func NewRegisters() *Registers {
	return new(Registers)
}

func (r *Registers) Store(n int, v float64) {
	if n < 1 || n > NumRegisters {
		return
	}
	r.Slots[n-1] = v
}

func (r *Registers) Load(n int) float64 {
	if n < 1 || n > NumRegisters {
		return 0
	}
	return r.Slots[n-1]
}

func (r *Registers) Clear(n int) {
	r.Store(n, 0)
}

func (r *Registers) Reset() {
	r.Slots = [NumRegisters]float64{}
}

func (r *Registers) Clone() *Registers {
	ret := *r
	return &ret
}

func opStore(s *State, op Opcode) {
	s.Registers.Store(int(op-OpStoreBase), s.cell())
}

func opLoad(s *State, op Opcode) {
	s.store(s.Registers.Load(int(op - OpLoadBase)))
}

func opClear(s *State, op Opcode) {
	s.Registers.Clear(int(op - OpClearBase))
}
