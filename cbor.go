package strbuf

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var (
	_ cbor.Marshaler   = Buffer[[8]byte]{}
	_ cbor.Unmarshaler = (*Buffer[[8]byte])(nil)
)

// MarshalCBOR implements [cbor.Marshaler], encoding the buffer as a text string.
func (b Buffer[S]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(b.String())
}

// UnmarshalCBOR implements [cbor.Unmarshaler]. It accepts a text string that fits the buffer.
func (b *Buffer[S]) UnmarshalCBOR(data []byte) error {
	var text string
	if err := cbor.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("decode text: %w", err)
	}
	return b.assign([]byte(text))
}
