package strbuf

import (
	"fmt"
	"io"
	"unicode/utf8"
	"unsafe"
)

var (
	_ io.Writer       = (*Buffer[[8]byte])(nil)
	_ io.StringWriter = (*Buffer[[8]byte])(nil)
	_ io.ByteWriter   = (*Buffer[[8]byte])(nil)
	_ io.WriterTo     = (*Buffer[[8]byte])(nil)
	_ fmt.Stringer    = Buffer[[8]byte]{}
)

// Write appends p like [Buffer.PushString], so the buffer can be the target of [fmt.Fprintf] and
// friends. If p doesn't fit, the part that does is kept and an error wrapping [ErrOverflow] is
// returned. Each call must carry complete characters; invalid UTF-8 yields [ErrInvalidUTF8].
func (b *Buffer[S]) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	// push doesn't retain text past the call.
	return b.WriteString(unsafe.String(unsafe.SliceData(p), len(p)))
}

// WriteString is the string version of [Buffer.Write].
func (b *Buffer[S]) WriteString(s string) (int, error) {
	n, err := b.push(s)
	if err == ErrOverflow {
		err = fmt.Errorf(
			"%w: wrote %d of %d bytes, capacity is %d bytes",
			ErrOverflow, n, len(s), Capacity[S](),
		)
	}
	return n, err
}

// WriteByte appends an ASCII byte. Other bytes can't form a character on their own and yield
// [ErrInvalidUTF8].
func (b *Buffer[S]) WriteByte(c byte) error {
	if c >= utf8.RuneSelf {
		return ErrInvalidUTF8
	}
	if err := b.check(1); err != nil {
		return err
	}
	n := b.len()
	b.data()[n] = c
	b.UnsafeSetLen(n + 1)
	return nil
}

// WriteRune appends the UTF-8 encoding of r, or nothing if it doesn't fit. Invalid runes are
// written as [utf8.RuneError].
func (b *Buffer[S]) WriteRune(r rune) (int, error) {
	var encoded [utf8.UTFMax]byte
	p := utf8.AppendRune(encoded[:0], r)
	if err := b.check(len(p)); err != nil {
		return 0, err
	}
	n := b.len()
	copy(b.data()[n:], p)
	b.UnsafeSetLen(n + len(p))
	return len(p), nil
}

// WriteTo writes the content to w.
func (b *Buffer[S]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes())
	return int64(n), err
}
