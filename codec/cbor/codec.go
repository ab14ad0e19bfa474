// Package cbor encodes batches of buffers as a CBOR array of text strings.
//
// Output uses Core Deterministic Encoding (RFC 8949 §4.2), so the same batch always produces
// identical bytes.
package cbor

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/fxamacker/cbor/v2"
	"github.com/teenjuna/strbuf"
	"github.com/teenjuna/strbuf/codec"
)

var _ codec.Codec[[8]byte] = (*Codec[[8]byte])(nil)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cbor: encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("cbor: decoder initialization failed: " + err.Error())
	}
}

type Codec[S strbuf.Storage] struct {
	buf *bytes.Buffer
}

func New[S strbuf.Storage]() *Codec[S] {
	return &Codec[S]{
		buf: new(bytes.Buffer),
	}
}

func (c *Codec[S]) Encode(batch iter.Seq[strbuf.Buffer[S]]) ([]byte, error) {
	var items []cbor.RawMessage
	for item := range batch {
		raw, err := item.MarshalCBOR()
		if err != nil {
			return nil, err
		}
		items = append(items, raw)
	}
	if items == nil {
		items = []cbor.RawMessage{}
	}

	c.buf.Reset()
	if err := encMode.NewEncoder(c.buf).Encode(items); err != nil {
		return nil, err
	}

	res := c.buf.Bytes()
	out := make([]byte, len(res))
	copy(out, res)

	return out, nil
}

func (c *Codec[S]) Decode(data []byte, push func(strbuf.Buffer[S])) error {
	var items []cbor.RawMessage
	if err := decMode.Unmarshal(data, &items); err != nil {
		return err
	}

	for i, raw := range items {
		var item strbuf.Buffer[S]
		if err := item.UnmarshalCBOR(raw); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		push(item)
	}

	return nil
}

func (c *Codec[S]) Derive() codec.Codec[S] {
	return New[S]()
}
