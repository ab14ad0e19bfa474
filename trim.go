package strbuf

import (
	"unicode"
	"unicode/utf8"
)

// Trim removes leading and trailing white space, as defined by [unicode.IsSpace].
func (b *Buffer[S]) Trim() {
	b.TrimFunc(unicode.IsSpace)
}

// TrimLeft removes leading white space.
func (b *Buffer[S]) TrimLeft() {
	b.TrimLeftFunc(unicode.IsSpace)
}

// TrimRight removes trailing white space.
func (b *Buffer[S]) TrimRight() {
	b.TrimRightFunc(unicode.IsSpace)
}

// TrimFunc removes leading and trailing characters satisfying f.
func (b *Buffer[S]) TrimFunc(f func(rune) bool) {
	b.TrimRightFunc(f)
	b.TrimLeftFunc(f)
}

// TrimLeftFunc removes leading characters satisfying f, moving the rest of the content to the
// front of the buffer.
func (b *Buffer[S]) TrimLeftFunc(f func(rune) bool) {
	content := b.Bytes()

	skip := 0
	for skip < len(content) {
		r, w := utf8.DecodeRune(content[skip:])
		if !f(r) {
			break
		}
		skip += w
	}
	if skip == 0 {
		return
	}

	// copy handles the overlap.
	n := copy(content, content[skip:])
	b.UnsafeSetLen(n)
}

// TrimRightFunc removes trailing characters satisfying f.
func (b *Buffer[S]) TrimRightFunc(f func(rune) bool) {
	content := b.Bytes()

	end := len(content)
	for end > 0 {
		r, w := utf8.DecodeLastRune(content[:end])
		if !f(r) {
			break
		}
		end -= w
	}

	b.UnsafeSetLen(end)
}
