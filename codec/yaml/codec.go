// Package yaml encodes batches of buffers as a YAML sequence of strings.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/teenjuna/strbuf"
	"github.com/teenjuna/strbuf/codec"
	"gopkg.in/yaml.v3"
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
	enc := yaml.NewEncoder(c.buf)
	if err := enc.Encode(items); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	res := c.buf.Bytes()
	out := make([]byte, len(res))
	copy(out, res)

	return out, nil
}

func (c *Codec[S]) Decode(data []byte, push func(strbuf.Buffer[S])) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.Kind == 0 {
		// Empty input.
		return nil
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.SequenceNode {
		return errors.New("expected a sequence")
	}

	for i, node := range doc.Content[0].Content {
		var item strbuf.Buffer[S]
		if err := item.UnmarshalYAML(node); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		push(item)
	}

	return nil
}

func (c *Codec[S]) Derive() codec.Codec[S] {
	return New[S]()
}
