package strbuf

import "errors"

var (
	// ErrOverflow is returned when content doesn't fit into the buffer.
	ErrOverflow = errors.New("buffer overflow")
	// ErrInvalidUTF8 is returned when content isn't valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)
