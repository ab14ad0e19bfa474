package strbuf

import (
	"github.com/tinylib/msgp/msgp"
)

var (
	_ msgp.Marshaler   = Buffer[[8]byte]{}
	_ msgp.Unmarshaler = (*Buffer[[8]byte])(nil)
	_ msgp.Encodable   = Buffer[[8]byte]{}
	_ msgp.Decodable   = (*Buffer[[8]byte])(nil)
	_ msgp.Sizer       = Buffer[[8]byte]{}
)

// MarshalMsg implements [msgp.Marshaler], appending the buffer as a MessagePack str to o.
func (b Buffer[S]) MarshalMsg(o []byte) ([]byte, error) {
	return msgp.AppendStringFromBytes(o, b.Bytes()), nil
}

// UnmarshalMsg implements [msgp.Unmarshaler]. It reads one str that fits the buffer and returns
// the remaining bytes.
func (b *Buffer[S]) UnmarshalMsg(bts []byte) ([]byte, error) {
	text, o, err := msgp.ReadStringZC(bts)
	if err != nil {
		return bts, err
	}
	if err := b.assign(text); err != nil {
		return bts, err
	}
	return o, nil
}

// EncodeMsg implements [msgp.Encodable].
func (b Buffer[S]) EncodeMsg(en *msgp.Writer) error {
	return en.WriteStringFromBytes(b.Bytes())
}

// DecodeMsg implements [msgp.Decodable].
func (b *Buffer[S]) DecodeMsg(dc *msgp.Reader) error {
	text, err := dc.ReadString()
	if err != nil {
		return err
	}
	return b.assign([]byte(text))
}

// Msgsize implements [msgp.Sizer], returning an upper bound of the encoded size.
func (b Buffer[S]) Msgsize() int {
	return msgp.StringPrefixSize + b.len()
}
