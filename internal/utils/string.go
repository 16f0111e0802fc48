package utils

import (
	"unicode"
	"unicode/utf8"
)

// IsIdentRune reports whether r can be part of an identifier token
// (letters, digits and underscore).
func IsIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ClampOffset bounds a byte offset to [0, len(s)] and moves it back onto a
// rune boundary so slicing s[:offset] never splits a UTF-8 sequence.
func ClampOffset(s string, offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= len(s) {
		return len(s)
	}
	for offset > 0 && !utf8.RuneStart(s[offset]) {
		offset--
	}
	return offset
}
