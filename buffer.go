package inputprompt

import (
	"unicode"
	"unicode/utf8"
)

// Buffer is the in-progress text of a prompt.
//
// The caret always sits at the end of the text: runes are appended and the
// whole buffer can be cleared. Control characters and invalid runes coming
// from raw input are dropped, so String always returns valid UTF-8 without
// embedded control characters.
type Buffer struct {
	runes []rune
}

// Insert appends r to the buffer. It reports whether r was accepted.
func (b *Buffer) Insert(r rune) bool {
	if r == utf8.RuneError || !utf8.ValidRune(r) || unicode.IsControl(r) {
		return false
	}
	b.runes = append(b.runes, r)
	return true
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.runes = b.runes[:0]
}

// Backspace removes the last rune, if any.
func (b *Buffer) Backspace() {
	if len(b.runes) > 0 {
		b.runes = b.runes[:len(b.runes)-1]
	}
}

// Set replaces the buffer content with text, rune by rune.
func (b *Buffer) Set(text string) {
	b.Clear()
	for _, r := range text {
		b.Insert(r)
	}
}

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// String returns the buffer content.
func (b *Buffer) String() string {
	return string(b.runes)
}
