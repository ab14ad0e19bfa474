package strbuf_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/teenjuna/strbuf"
)

func FuzzPushString(f *testing.F) {
	seeds := []struct {
		prefix string
		text   string
	}{
		{"", ""},
		{"", "ロリ"},
		{"ロ", "ri."},
		{"test hello world", " or maybe not"},
		{"a", "\xff\x80ロ"},
		{"", "👨‍👩‍👧‍👦 family"},
	}
	for _, seed := range seeds {
		f.Add(seed.prefix, seed.text)
	}

	f.Fuzz(func(t *testing.T, prefix, text string) {
		var buf strbuf.Buffer[[12]byte]
		buf.PushString(prefix)
		before := buf.String()
		remaining := buf.Remaining()

		n := buf.PushString(text)
		after := buf.String()

		if n > min(len(text), remaining) {
			t.Fatalf("wrote %d bytes of %q with %d remaining", n, text, remaining)
		}
		if buf.Remaining() < 0 || buf.Len() > buf.Cap() {
			t.Fatalf("length %d exceeds capacity %d", buf.Len(), buf.Cap())
		}
		if after != before+text[:n] {
			t.Fatalf("content %q isn't %q followed by a prefix of %q", after, before, text)
		}
		if !utf8.ValidString(after) {
			t.Fatalf("content %q isn't valid UTF-8", after)
		}
		if utf8.ValidString(text) && n < len(text) {
			// The next character of text must not have fit.
			_, w := utf8.DecodeRuneInString(text[n:])
			if w <= remaining-n {
				t.Fatalf("stopped at %d of %q with room for the next character", n, text)
			}
		}
	})
}

func FuzzTrim(f *testing.F) {
	for _, seed := range []string{"", " ", "  a  ", "\tロri\n", "　ロ　"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, text string) {
		var buf strbuf.Buffer[[32]byte]
		buf.PushString(text)
		content := buf.String()

		buf.Trim()
		once := buf.String()
		if once != strings.TrimSpace(content) {
			t.Fatalf("trimmed %q to %q", content, once)
		}

		buf.Trim()
		if buf.String() != once {
			t.Fatalf("second trim changed %q to %q", once, buf.String())
		}
	})
}
