// Package gob encodes batches of buffers as a gob stream with one value per buffer.
package gob

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"iter"

	"github.com/teenjuna/strbuf"
	"github.com/teenjuna/strbuf/codec"
)

var _ codec.Codec[[8]byte] = (*Codec[[8]byte])(nil)

type Codec[S strbuf.Storage] struct {
	buf *bytes.Buffer
}

func New[S strbuf.Storage]() *Codec[S] {
	return &Codec[S]{
		buf: new(bytes.Buffer),
	}
}

func (c *Codec[S]) Encode(batch iter.Seq[strbuf.Buffer[S]]) ([]byte, error) {
	c.buf.Reset()
	enc := gob.NewEncoder(c.buf)

	for item := range batch {
		if err := enc.Encode(&item); err != nil {
			return nil, err
		}
	}

	res := c.buf.Bytes()
	out := make([]byte, len(res))
	copy(out, res)

	return out, nil
}

func (c *Codec[S]) Decode(data []byte, push func(strbuf.Buffer[S])) error {
	dec := gob.NewDecoder(bytes.NewReader(data))

	for i := 0; ; i++ {
		var item strbuf.Buffer[S]
		err := dec.Decode(&item)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		push(item)
	}
}

func (c *Codec[S]) Derive() codec.Codec[S] {
	return New[S]()
}
