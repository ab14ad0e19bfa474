package strbuf

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = Buffer[[8]byte]{}
	_ yaml.Unmarshaler = (*Buffer[[8]byte])(nil)
)

// MarshalYAML implements [yaml.Marshaler], encoding the buffer as a string scalar.
func (b Buffer[S]) MarshalYAML() (any, error) {
	return b.String(), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler]. It accepts a scalar that fits the buffer.
func (b *Buffer[S]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar", value.Line)
	}
	var text string
	if err := value.Decode(&text); err != nil {
		return err
	}
	return b.assign([]byte(text))
}
