package strbuf

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"fmt"
	"unicode/utf8"
)

var (
	_ encoding.TextMarshaler     = Buffer[[8]byte]{}
	_ encoding.TextUnmarshaler   = (*Buffer[[8]byte])(nil)
	_ encoding.BinaryMarshaler   = Buffer[[8]byte]{}
	_ encoding.BinaryUnmarshaler = (*Buffer[[8]byte])(nil)
	_ driver.Valuer              = Buffer[[8]byte]{}
	_ sql.Scanner                = (*Buffer[[8]byte])(nil)
)

// assign replaces the content with text. On error the buffer is left unchanged.
func (b *Buffer[S]) assign(text []byte) error {
	if len(text) > Capacity[S]() {
		return fmt.Errorf(
			"%w: %d bytes exceed capacity of %d bytes",
			ErrOverflow, len(text), Capacity[S](),
		)
	}
	if !utf8.Valid(text) {
		return ErrInvalidUTF8
	}
	copy(b.data(), text)
	b.UnsafeSetLen(len(text))
	return nil
}

// MarshalText implements [encoding.TextMarshaler]. It also makes [encoding/json] encode the buffer
// as a string.
func (b Buffer[S]) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. Text that doesn't fit is rejected with an
// error wrapping [ErrOverflow].
func (b *Buffer[S]) UnmarshalText(text []byte) error {
	return b.assign(text)
}

// MarshalBinary implements [encoding.BinaryMarshaler]. The encoding is the UTF-8 content itself.
func (b Buffer[S]) MarshalBinary() ([]byte, error) {
	return b.MarshalText()
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler].
func (b *Buffer[S]) UnmarshalBinary(data []byte) error {
	return b.assign(data)
}

// Value implements [driver.Valuer], storing the buffer as text.
func (b Buffer[S]) Value() (driver.Value, error) {
	return b.String(), nil
}

// Scan implements [sql.Scanner]. NULL scans as an empty buffer.
func (b *Buffer[S]) Scan(src any) error {
	switch src := src.(type) {
	case nil:
		b.Clear()
		return nil
	case string:
		return b.assign([]byte(src))
	case []byte:
		return b.assign(src)
	default:
		return fmt.Errorf("unsupported scan type %T", src)
	}
}
