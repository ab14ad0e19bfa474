package strbuf

import (
	"bytes"
	"hash/maphash"
	"strings"
)

// Equal reports whether a and b hold the same text. Their capacities may differ.
func Equal[A, B Storage](a *Buffer[A], b *Buffer[B]) bool {
	return bytes.Equal(a.Bytes(), b.Bytes())
}

// Compare compares the text of a and b lexicographically, like [strings.Compare].
func Compare[A, B Storage](a *Buffer[A], b *Buffer[B]) int {
	return bytes.Compare(a.Bytes(), b.Bytes())
}

// EqualString reports whether the buffer holds s.
func (b *Buffer[S]) EqualString(s string) bool {
	return b.UnsafeString() == s
}

// CompareString compares the text of the buffer with s lexicographically.
func (b *Buffer[S]) CompareString(s string) int {
	return strings.Compare(b.UnsafeString(), s)
}

// Hash returns the hash of the text, equal to [maphash.String] of it with the same seed.
func (b *Buffer[S]) Hash(seed maphash.Seed) uint64 {
	return maphash.Bytes(seed, b.Bytes())
}
