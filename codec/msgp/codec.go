// Package msgp encodes batches of buffers as concatenated MessagePack strings.
package msgp

import (
	"fmt"
	"iter"

	"github.com/teenjuna/strbuf"
	"github.com/teenjuna/strbuf/codec"
	"github.com/tinylib/msgp/msgp"
)

var _ codec.Codec[[8]byte] = (*Codec[[8]byte])(nil)

type Codec[S strbuf.Storage] struct {
	buf []byte
}

func New[S strbuf.Storage]() *Codec[S] {
	buf := make([]byte, 0)
	return &Codec[S]{
		buf: buf,
	}
}

// Encode serializes the batch. The returned slice is reused by the next call.
func (c *Codec[S]) Encode(batch iter.Seq[strbuf.Buffer[S]]) ([]byte, error) {
	c.buf = c.buf[:0]
	for item := range batch {
		b, err := item.MarshalMsg(c.buf)
		if err != nil {
			return nil, err
		}
		c.buf = b
	}

	return c.buf, nil
}

func (c *Codec[S]) Decode(data []byte, push func(strbuf.Buffer[S])) error {
	for i := 0; len(data) > 0; i++ {
		var item strbuf.Buffer[S]
		d, err := item.UnmarshalMsg(data)
		if err == msgp.ErrShortBytes {
			return fmt.Errorf("item %d: truncated input: %w", i, err)
		} else if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		data = d
		push(item)
	}

	return nil
}

func (c *Codec[S]) Derive() codec.Codec[S] {
	return New[S]()
}
