package ragavm

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

func (s *State) Snapshot(w io.Writer) error {
	enc := cbor.NewEncoder(w)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return nil
}

func (s *State) Restore(r io.Reader) error {
	dec := cbor.NewDecoder(r)
	if err := dec.Decode(s); err != nil {
		return err
	}
	return nil
}
