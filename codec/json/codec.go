// Package json encodes batches of buffers as a JSON array of strings.
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"slices"

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
	items := slices.Collect(batch)
	if items == nil {
		items = []strbuf.Buffer[S]{}
	}

	c.buf.Reset()
	enc := json.NewEncoder(c.buf)

	if err := enc.Encode(items); err != nil {
		return nil, err
	}

	res := c.buf.Bytes()
	out := make([]byte, len(res))
	copy(out, res)

	return out, nil
}

func (c *Codec[S]) Decode(data []byte, push func(strbuf.Buffer[S])) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	for i, raw := range items {
		var item strbuf.Buffer[S]
		if err := json.Unmarshal(raw, &item); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		push(item)
	}

	return nil
}

func (c *Codec[S]) Derive() codec.Codec[S] {
	return New[S]()
}
