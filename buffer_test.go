package strbuf_test

import (
	"math/bits"
	"testing"
	"unsafe"

	"github.com/teenjuna/strbuf"
	"github.com/teenjuna/strbuf/internal/testing/require"
)

// Capacity 5, the smallest buffer that fits "ロri".
type SmolStr = strbuf.Buffer[[6]byte]

type ZeroStr = strbuf.Buffer[[0]byte]

func TestCapacity(t *testing.T) {
	word := bits.UintSize / 8

	require.Equal(t, strbuf.Capacity[[0]byte](), 0)
	require.Equal(t, strbuf.Capacity[[1]byte](), 0)
	require.Equal(t, strbuf.Capacity[[6]byte](), 5)
	require.Equal(t, strbuf.Capacity[[16]byte](), 15)
	require.Equal(t, strbuf.Capacity[[256]byte](), 255)
	require.Equal(t, strbuf.Capacity[[257]byte](), 255)
	require.Equal(t, strbuf.Capacity[[65536]byte](), 65534)
	require.Equal(t, strbuf.Capacity[[65537]byte](), 65535)
	require.Equal(t, strbuf.Capacity[[65538]byte](), 65538-word)

	var b strbuf.Str64
	require.Equal(t, b.Cap(), 63)
	require.Equal(t, b.Remaining(), 63)
}

func TestSize(t *testing.T) {
	require.Equal(t, unsafe.Sizeof(ZeroStr{}), uintptr(0))
	require.Equal(t, unsafe.Sizeof(SmolStr{}), uintptr(6))
	require.Equal(t, unsafe.Sizeof(strbuf.Str256{}), uintptr(256))
	require.Equal(t, unsafe.Sizeof(strbuf.Buffer[[65538]byte]{}), uintptr(65538))
}

func TestLengthMarker(t *testing.T) {
	t.Run("one byte", func(t *testing.T) {
		b := strbuf.From[[256]byte]("hello")
		storage := b.Storage()
		require.Equal(t, storage[0], byte(5))
		require.Equal(t, string(storage[1:6]), "hello")
	})

	t.Run("two bytes", func(t *testing.T) {
		b := strbuf.New[[1024]byte]()
		for range 300 {
			require.Equal(t, b.PushString("x"), 1)
		}
		storage := b.Storage()
		require.Equal(t, storage[0], byte(300&0xff))
		require.Equal(t, storage[1], byte(300>>8))
		require.Equal(t, b.Len(), 300)
	})

	t.Run("word", func(t *testing.T) {
		b := strbuf.From[[131072]byte]("hello")
		storage := b.Storage()
		require.Equal(t, storage[0], byte(5))
		for i := 1; i < bits.UintSize/8; i++ {
			require.Equal(t, storage[i], byte(0))
		}
		require.Equal(t, b.String(), "hello")
		require.Equal(t, b.Cap(), 131072-bits.UintSize/8)
	})
}

func TestNew(t *testing.T) {
	b := strbuf.New[[16]byte]()
	require.Equal(t, b.Len(), 0)
	require.True(t, b.IsEmpty())
	require.Equal(t, b.String(), "")
	require.Equal(t, len(b.Bytes()), 0)

	var zero strbuf.Str16
	require.Equal(t, zero, b)
}

func TestFrom(t *testing.T) {
	b := strbuf.From[[16]byte]("hello ロ")
	require.Equal(t, b.String(), "hello ロ")
	require.Equal(t, b.Len(), len("hello ロ"))
	require.Equal(t, b.Remaining(), 15-len("hello ロ"))
	require.False(t, b.IsEmpty())

	full := strbuf.From[[6]byte]("ロri")
	require.Equal(t, full.Remaining(), 0)

	require.PanicWithError(t, "buffer overflow: 5 bytes exceed remaining 0 of 0 bytes", func() {
		_ = strbuf.From[[0]byte]("lolka")
	})
	require.PanicWithError(t, "invalid UTF-8", func() {
		_ = strbuf.From[[16]byte]("\xff")
	})
}

func TestTryFrom(t *testing.T) {
	b, err := strbuf.TryFrom[[6]byte]("lolka")
	require.Nil(t, err)
	require.Equal(t, b.String(), "lolka")

	_, err = strbuf.TryFrom[[5]byte]("lolka")
	require.ErrorIs(t, err, strbuf.ErrOverflow)

	_, err = strbuf.TryFrom[[16]byte]("lo\xc3lka")
	require.ErrorIs(t, err, strbuf.ErrInvalidUTF8)
}

func TestZeroCapacity(t *testing.T) {
	b := strbuf.From[[0]byte]("")
	require.Equal(t, b.Cap(), 0)
	require.Equal(t, b.Len(), 0)
	require.Equal(t, b.String(), "")
	require.Equal(t, b.PushString("a"), 0)

	_, err := strbuf.TryFrom[[0]byte]("a")
	require.ErrorIs(t, err, strbuf.ErrOverflow)

	_, ok := b.Pop()
	require.False(t, ok)
	b.Trim()
	b.MakeASCIIUpper()
	require.Equal(t, b.UnsafeString(), "")
}

func TestGet(t *testing.T) {
	b := strbuf.From[[6]byte]("123")

	for i, expected := range []byte("123") {
		c, ok := b.Get(i)
		require.True(t, ok)
		require.Equal(t, c, expected)
	}

	_, ok := b.Get(b.Len())
	require.False(t, ok)
	_, ok = b.Get(-1)
	require.False(t, ok)
}

func TestClear(t *testing.T) {
	b := strbuf.From[[16]byte]("hello")
	b.Clear()
	require.Equal(t, b.Len(), 0)
	require.Equal(t, b.String(), "")
	require.Equal(t, b.Remaining(), 15)

	// The bytes stay in place.
	storage := b.Storage()
	require.Equal(t, string(storage[1:6]), "hello")

	c := strbuf.From[[16]byte]("hello")
	empty := c.Empty()
	require.Equal(t, empty.Len(), 0)
	require.Equal(t, c.String(), "hello")
}

func TestTruncate(t *testing.T) {
	b := strbuf.From[[16]byte]("ロri")

	b.Truncate(10)
	require.Equal(t, b.String(), "ロri")

	b.Truncate(4)
	require.Equal(t, b.String(), "ロr")

	require.PanicWithError(t, "strbuf: truncation inside a character", func() {
		b.Truncate(1)
	})
	require.PanicWithError(t, "strbuf: truncation out of range", func() {
		b.Truncate(-1)
	})

	b.Truncate(0)
	require.Equal(t, b.String(), "")
}

func TestUnsafeAccess(t *testing.T) {
	b := strbuf.From[[16]byte]("abc")

	available := b.UnsafeAvailable()
	require.Equal(t, len(available), 12)
	n := copy(available, "def")
	b.UnsafeSetLen(b.Len() + n)
	require.Equal(t, b.String(), "abcdef")

	storage := b.UnsafeStorage()
	storage[1] = 'A'
	require.Equal(t, b.String(), "Abcdef")

	restored := strbuf.UnsafeFromStorage(b.Storage())
	require.Equal(t, restored.String(), "Abcdef")

	view := b.UnsafeString()
	require.Equal(t, view, "Abcdef")
}

func TestCopy(t *testing.T) {
	b := strbuf.From[[16]byte]("hello")
	c := b
	c.PushString(" world")

	require.Equal(t, b.String(), "hello")
	require.Equal(t, c.String(), "hello world")
}
