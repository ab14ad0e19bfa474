// This package contains the [Codec] interface for batches of buffers and several implementations
// inside subpackages.
package codec

import (
	"iter"

	"github.com/teenjuna/strbuf"
)

// Codec encodes and decodes batches of buffers.
//
// Decoding never panics on external input: an item that doesn't fit the buffer capacity fails the
// whole call with an error wrapping [strbuf.ErrOverflow]. Items pushed before the failing one are
// kept by the caller.
//
// Implementations are not considered thread-safe.
type Codec[S strbuf.Storage] interface {
	// Encode serializes a sequence of buffers into a byte slice.
	Encode(batch iter.Seq[strbuf.Buffer[S]]) ([]byte, error)
	// Decode deserializes a byte slice into buffers, pushing each to the provided function.
	Decode(data []byte, push func(strbuf.Buffer[S])) error
	// Derive returns a new Codec instance with the same settings.
	//
	// The returned codec maintains its own internal state independent of the original.
	Derive() Codec[S]
}
