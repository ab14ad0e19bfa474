package strbuf

import (
	"fmt"
	"unicode/utf8"
)

// fit returns how many leading bytes of text can be appended to a buffer with room bytes left.
//
// The cut never splits a character of text, and never includes invalid UTF-8. The returned error
// tells why the cut is shorter than text, if it is.
func fit(text string, room int) (int, error) {
	size := min(len(text), room)

	// text[0] is a boundary of any valid string, so the walk stops there at the latest.
	for size > 0 && size < len(text) && !utf8.RuneStart(text[size]) {
		size--
	}

	if !utf8.ValidString(text[:size]) {
		return validPrefix(text[:size]), ErrInvalidUTF8
	}
	if size < len(text) {
		return size, ErrOverflow
	}
	return size, nil
}

func validPrefix(text string) int {
	n := 0
	for n < len(text) {
		r, w := utf8.DecodeRuneInString(text[n:])
		if r == utf8.RuneError && w == 1 {
			break
		}
		n += w
	}
	return n
}

// PushString appends as much of text as fits and returns the number of bytes written.
//
// The written part always ends on a character boundary of text, so fewer than Remaining bytes may
// be written even if text is longer; nothing is written if the next character doesn't fit. Invalid
// UTF-8 in text ends the written part as well.
func (b *Buffer[S]) PushString(text string) int {
	n, _ := b.push(text)
	return n
}

func (b *Buffer[S]) push(text string) (int, error) {
	n, err := fit(text, b.remaining())
	b.UnsafePushString(text[:n])
	return n, err
}

// TryPushString appends the whole text, or nothing and an error wrapping [ErrOverflow] or
// [ErrInvalidUTF8].
func (b *Buffer[S]) TryPushString(text string) error {
	if err := b.check(len(text)); err != nil {
		return err
	}
	if !utf8.ValidString(text) {
		return ErrInvalidUTF8
	}
	b.UnsafePushString(text)
	return nil
}

// UnsafePushString appends text without checking that it's valid UTF-8. It panics if text doesn't
// fit, so callers are expected to check Remaining first.
func (b *Buffer[S]) UnsafePushString(text string) {
	n := b.len()
	copy(b.data()[n:n+len(text)], text)
	b.UnsafeSetLen(n + len(text))
}

// And returns the buffer with text appended. It panics if text doesn't fit or isn't valid UTF-8,
// which makes it suited for building buffers from literals:
//
//	greeting := strbuf.New[[16]byte]().And("hello").And(", ").And("world")
func (b Buffer[S]) And(text string) Buffer[S] {
	if !utf8.ValidString(text) {
		panic("strbuf: And with invalid UTF-8")
	}
	b.mustFit(len(text))
	b.UnsafePushString(text)
	return b
}

// UnsafeAndBytes returns the buffer with p appended, assuming p is valid UTF-8. Like [Buffer.And],
// it panics if p doesn't fit.
func (b Buffer[S]) UnsafeAndBytes(p []byte) Buffer[S] {
	b.mustFit(len(p))
	n := b.len()
	copy(b.data()[n:], p)
	b.UnsafeSetLen(n + len(p))
	return b
}

func (b *Buffer[S]) mustFit(n int) {
	if n > b.remaining() {
		panic(fmt.Sprintf(
			"strbuf: And of %d bytes overflows remaining %d of %d bytes",
			n, b.remaining(), Capacity[S](),
		))
	}
}

// Pop removes the last character and returns it. It reports false if the buffer is empty.
func (b *Buffer[S]) Pop() (rune, bool) {
	r, w := utf8.DecodeLastRune(b.Bytes())
	if w == 0 {
		return 0, false
	}
	b.UnsafeSetLen(b.len() - w)
	return r, true
}
