package strbuf_test

import (
	"hash/maphash"
	"slices"
	"testing"

	"github.com/teenjuna/strbuf"
	"github.com/teenjuna/strbuf/internal/testing/require"
)

func TestEqual(t *testing.T) {
	small := strbuf.From[[8]byte]("ロri")
	large := strbuf.From[[64]byte]("ロri")
	require.True(t, strbuf.Equal(&small, &large))
	require.True(t, small.EqualString("ロri"))
	require.False(t, small.EqualString("ロr"))

	other := strbuf.From[[64]byte]("ロr")
	require.False(t, strbuf.Equal(&small, &other))

	// Stale bytes past the content make == unreliable, Equal isn't affected.
	truncated := strbuf.From[[8]byte]("ロrii")
	truncated.Truncate(len("ロri"))
	require.True(t, strbuf.Equal(&small, &truncated))
	require.NotEqual(t, small, truncated)
}

func TestCompare(t *testing.T) {
	a := strbuf.From[[8]byte]("abc")
	b := strbuf.From[[32]byte]("abd")
	require.Equal(t, strbuf.Compare(&a, &b), -1)
	require.Equal(t, strbuf.Compare(&b, &a), 1)
	require.Equal(t, strbuf.Compare(&a, &a), 0)
	require.Equal(t, a.CompareString("ab"), 1)
	require.Equal(t, a.CompareString("abc"), 0)

	bufs := []strbuf.Str16{
		strbuf.From[[16]byte]("ロ"),
		strbuf.From[[16]byte]("b"),
		strbuf.From[[16]byte]("a"),
		strbuf.From[[16]byte]("ab"),
	}
	slices.SortFunc(bufs, func(x, y strbuf.Str16) int { return strbuf.Compare(&x, &y) })

	var sorted []string
	for _, b := range bufs {
		sorted = append(sorted, b.String())
	}
	require.Equal(t, sorted, []string{"a", "ab", "b", "ロ"})
}

func TestHash(t *testing.T) {
	seed := maphash.MakeSeed()

	small := strbuf.From[[8]byte]("ロri")
	large := strbuf.From[[64]byte]("ロri")
	require.Equal(t, small.Hash(seed), large.Hash(seed))
	require.Equal(t, small.Hash(seed), maphash.String(seed, "ロri"))

	small.Clear()
	require.Equal(t, small.Hash(seed), maphash.String(seed, ""))
}
