// Package strbuf provides a fixed-capacity string buffer stored inline in a byte array.
//
// A [Buffer] never allocates and never grows. Its total size is exactly the size of its storage
// array: the length of the content is encoded in the first bytes of the array itself, and the
// rest holds UTF-8 text.
//
//	type Name = strbuf.Buffer[[16]byte] // up to 15 bytes of text
//
//	name := strbuf.New[[16]byte]().And("hello").And(" ").And("world")
//	fmt.Println(name) // hello world
//
// Content is always valid UTF-8. Operations that would overflow either truncate on a character
// boundary ([Buffer.PushString]), report [ErrOverflow] ([TryFrom], [Buffer.TryPushString],
// decoding) or panic ([From], [Buffer.And]).
//
// A Buffer is a plain value and is not safe for concurrent mutation.
package strbuf

import (
	"fmt"
	"unicode/utf8"
	"unsafe"
)

// Buffer is a string buffer backed by the storage array S.
//
// The zero value is an empty buffer. Comparing buffers with == compares the whole storage,
// including bytes past the content; use [Equal] to compare text.
type Buffer[S Storage] struct {
	storage S
}

// Aliases for common sizes. The number is the total size in bytes, one of which holds the length.
type (
	Str16  = Buffer[[16]byte]
	Str32  = Buffer[[32]byte]
	Str64  = Buffer[[64]byte]
	Str128 = Buffer[[128]byte]
	Str256 = Buffer[[256]byte]
)

// New returns an empty buffer.
func New[S Storage]() Buffer[S] {
	return Buffer[S]{}
}

// From returns a buffer holding text. It panics if text doesn't fit or isn't valid UTF-8.
func From[S Storage](text string) Buffer[S] {
	b, err := TryFrom[S](text)
	if err != nil {
		panic(err.Error())
	}
	return b
}

// TryFrom returns a buffer holding text, or an error wrapping [ErrOverflow] or [ErrInvalidUTF8].
func TryFrom[S Storage](text string) (Buffer[S], error) {
	var b Buffer[S]
	if err := b.check(len(text)); err != nil {
		return b, err
	}
	if !utf8.ValidString(text) {
		return b, ErrInvalidUTF8
	}
	b.UnsafePushString(text)
	return b, nil
}

// UnsafeFromStorage wraps storage as is. The caller guarantees that the length marker is within
// capacity and that the content it covers is valid UTF-8.
func UnsafeFromStorage[S Storage](storage S) Buffer[S] {
	return Buffer[S]{storage: storage}
}

// raw returns the whole storage array, length marker included.
func (b *Buffer[S]) raw() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.storage)), len(b.storage))
}

// data returns the region after the length marker.
func (b *Buffer[S]) data() []byte {
	raw := b.raw()
	return raw[markerWidth(len(raw)):]
}

func (b *Buffer[S]) len() int {
	return loadLen(b.raw())
}

func (b *Buffer[S]) remaining() int {
	return Capacity[S]() - b.len()
}

func (b *Buffer[S]) check(n int) error {
	if n > b.remaining() {
		return fmt.Errorf(
			"%w: %d bytes exceed remaining %d of %d bytes",
			ErrOverflow, n, b.remaining(), Capacity[S](),
		)
	}
	return nil
}

// Cap returns the capacity of the buffer, the same as [Capacity].
func (b Buffer[S]) Cap() int {
	return Capacity[S]()
}

// Len returns the number of content bytes.
func (b Buffer[S]) Len() int {
	return b.len()
}

// Remaining returns the number of bytes that can still be written.
func (b Buffer[S]) Remaining() int {
	return b.remaining()
}

// IsEmpty reports whether the buffer holds no text.
func (b Buffer[S]) IsEmpty() bool {
	return b.len() == 0
}

// Bytes returns the content. The slice aliases the buffer and is valid until the next mutation.
func (b *Buffer[S]) Bytes() []byte {
	return b.data()[:b.len()]
}

// String returns a copy of the content.
func (b Buffer[S]) String() string {
	return string(b.Bytes())
}

// UnsafeString returns the content without copying it. The string aliases the buffer, so it
// changes if the buffer is mutated and must not be used after that.
func (b *Buffer[S]) UnsafeString() string {
	content := b.Bytes()
	if len(content) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(content), len(content))
}

// Get returns the content byte at index i. It reports false if i is out of range.
func (b Buffer[S]) Get(i int) (byte, bool) {
	if i < 0 || i >= b.len() {
		return 0, false
	}
	return b.data()[i], true
}

// Storage returns a copy of the underlying array, length marker included.
func (b Buffer[S]) Storage() S {
	return b.storage
}

// UnsafeStorage returns the underlying array. Writes through it must keep the length marker within
// capacity and the content valid UTF-8.
func (b *Buffer[S]) UnsafeStorage() *S {
	return &b.storage
}

// UnsafeAvailable returns the unwritten part of the data region. Bytes written to it become
// content only after [Buffer.UnsafeSetLen], which makes the caller responsible for their validity.
func (b *Buffer[S]) UnsafeAvailable() []byte {
	return b.data()[b.len():]
}

// UnsafeSetLen overwrites the length marker without any validation.
func (b *Buffer[S]) UnsafeSetLen(n int) {
	storeLen(b.raw(), n)
}

// Clear empties the buffer. The storage isn't wiped.
func (b *Buffer[S]) Clear() {
	b.UnsafeSetLen(0)
}

// Empty returns a copy of the buffer with no content.
func (b Buffer[S]) Empty() Buffer[S] {
	b.Clear()
	return b
}

// Truncate shortens the content to its first n bytes. It does nothing if n isn't less than the
// current length, and panics if n is negative or falls inside a character.
func (b *Buffer[S]) Truncate(n int) {
	if n < 0 {
		panic("strbuf: truncation out of range")
	}
	length := b.len()
	if n >= length {
		return
	}
	if !utf8.RuneStart(b.data()[n]) {
		panic("strbuf: truncation inside a character")
	}
	b.UnsafeSetLen(n)
}
