// Package caret extracts the word being typed and its member-access context from raw text at a caret offset.
package caret

import (
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/codeassist/internal/utils"
)

// wordDelimiters split the text before the caret into segments.
// The last segment holds the word being typed.
const wordDelimiters = " \n\t();"

// Context is the derived state around a caret.
// It is recomputed on every text change and never stored.
type Context struct {
	// Word is the partial token being typed, used as the prefix filter.
	Word string
	// Key is the lower-cased identifier before the last dot, or "".
	Key string
}

// HasKey reports whether a member-access context was found.
func (c Context) HasKey() bool {
	return c.Key != ""
}

// Extract derives both the current word and the context key.
func Extract(text string, caretPos int) Context {
	return Context{
		Word: CurrentWord(text, caretPos),
		Key:  ContextKey(text, caretPos),
	}
}

// CurrentWord returns the token being typed at caretPos.
// The text before the caret is split on the delimiter set and the last segment
// is kept; when that segment contains a dot only the part after the last dot
// is returned. Out of range carets are clamped.
func CurrentWord(text string, caretPos int) string {
	before := text[:utils.ClampOffset(text, caretPos)]
	segment := before
	if i := strings.LastIndexAny(before, wordDelimiters); i >= 0 {
		segment = before[i+1:]
	}
	if dot := strings.LastIndexByte(segment, '.'); dot >= 0 {
		return segment[dot+1:]
	}
	return segment
}

// ContextKey returns the lower-cased identifier immediately preceding the last
// dot before caretPos. A missing dot, a dot at offset 0, or a dot with no
// identifier characters before it all yield "".
func ContextKey(text string, caretPos int) string {
	before := text[:utils.ClampOffset(text, caretPos)]
	dot := strings.LastIndexByte(before, '.')
	if dot <= 0 {
		return ""
	}
	start := dot
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(before[:start])
		if !utils.IsIdentRune(r) {
			break
		}
		start -= size
	}
	return strings.ToLower(before[start:dot])
}
