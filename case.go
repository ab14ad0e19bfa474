package strbuf

// ToASCIIUpper returns a copy of the buffer with ASCII letters mapped to upper case.
func (b Buffer[S]) ToASCIIUpper() Buffer[S] {
	b.MakeASCIIUpper()
	return b
}

// ToASCIILower returns a copy of the buffer with ASCII letters mapped to lower case.
func (b Buffer[S]) ToASCIILower() Buffer[S] {
	b.MakeASCIILower()
	return b
}

// MakeASCIIUpper maps ASCII letters to upper case in place.
//
// Bytes of multi-byte characters are never in the ASCII range, so they are left untouched.
func (b *Buffer[S]) MakeASCIIUpper() {
	content := b.Bytes()
	for i, c := range content {
		if 'a' <= c && c <= 'z' {
			content[i] = c - ('a' - 'A')
		}
	}
}

// MakeASCIILower maps ASCII letters to lower case in place.
func (b *Buffer[S]) MakeASCIILower() {
	content := b.Bytes()
	for i, c := range content {
		if 'A' <= c && c <= 'Z' {
			content[i] = c + ('a' - 'A')
		}
	}
}
