package editor

import (
	"unicode/utf8"

	"github.com/bastiangx/codeassist/internal/utils"
)

// Selection represents a text selection as two byte offsets into field text.
// Anchor is where the selection started, Focus is where it currently extends to.
type Selection struct {
	Anchor, Focus int
}

// Active reports whether the selection covers a non-empty range.
func (s Selection) Active() bool {
	return s.Anchor != s.Focus
}

// Ordered returns the selection bounds in ascending order (start, end).
func (s Selection) Ordered() (start, end int) {
	if s.Anchor <= s.Focus {
		return s.Anchor, s.Focus
	}
	return s.Focus, s.Anchor
}

// ValidateFunc is called before a typed character is inserted and returns the
// character to insert.
type ValidateFunc func(text string, index int, ch rune) rune

// Field is an in-memory single text input: text, caret, selection, a change
// event and a pre-insertion validation hook.
type Field struct {
	text      string
	caret     int
	selection Selection
	listeners []func(text string)
	validate  ValidateFunc
}

// NewField creates a field holding text with the caret at its end.
func NewField(text string) *Field {
	return &Field{
		text:      text,
		caret:     len(text),
		selection: Selection{Anchor: len(text), Focus: len(text)},
	}
}

// Text returns the current text content.
func (f *Field) Text() string {
	return f.text
}

// Caret returns the caret byte offset.
func (f *Field) Caret() int {
	return f.caret
}

// Selection returns the current selection.
func (f *Field) Selection() Selection {
	return f.selection
}

// Subscribe registers fn to run after every text change.
func (f *Field) Subscribe(fn func(text string)) {
	f.listeners = append(f.listeners, fn)
}

// SetValidator installs the pre-insertion hook used by TypeRune.
func (f *Field) SetValidator(fn ValidateFunc) {
	f.validate = fn
}

// SetText replaces the text, clamps caret and selection into it and fires the
// change event.
func (f *Field) SetText(text string) {
	f.text = text
	f.caret = utils.ClampOffset(text, f.caret)
	f.selection = Selection{
		Anchor: utils.ClampOffset(text, f.selection.Anchor),
		Focus:  utils.ClampOffset(text, f.selection.Focus),
	}
	f.notify()
}

// SetCaret moves the caret, clamped into the text, and collapses the selection.
func (f *Field) SetCaret(pos int) {
	f.caret = utils.ClampOffset(f.text, pos)
	f.selection = Selection{Anchor: f.caret, Focus: f.caret}
}

// SetSelection sets the selection range; the caret follows the focus end.
func (f *Field) SetSelection(anchor, focus int) {
	f.selection = Selection{
		Anchor: utils.ClampOffset(f.text, anchor),
		Focus:  utils.ClampOffset(f.text, focus),
	}
	f.caret = f.selection.Focus
}

// SetContent replaces text and caret together and fires one change event,
// the way a host reports a paste or a programmatic load.
func (f *Field) SetContent(text string, caretPos int) {
	f.text = text
	f.caret = utils.ClampOffset(text, caretPos)
	f.selection = Selection{Anchor: f.caret, Focus: f.caret}
	f.notify()
}

// TypeRune inserts ch at the caret as if typed, replacing an active
// selection. The validation hook sees the text before insertion and may
// substitute the character; returning utf8.RuneError drops it.
func (f *Field) TypeRune(ch rune) {
	start, end := f.caret, f.caret
	if f.selection.Active() {
		start, end = f.selection.Ordered()
	}
	if f.validate != nil {
		ch = f.validate(f.text, start, ch)
	}
	if ch == utf8.RuneError {
		return
	}
	inserted := string(ch)
	f.text = f.text[:start] + inserted + f.text[end:]
	f.caret = start + len(inserted)
	f.selection = Selection{Anchor: f.caret, Focus: f.caret}
	f.notify()
}

// Backspace deletes the selection, or the rune before the caret.
func (f *Field) Backspace() {
	start, end := f.caret, f.caret
	if f.selection.Active() {
		start, end = f.selection.Ordered()
	} else {
		if f.caret == 0 {
			return
		}
		_, size := utf8.DecodeLastRuneInString(f.text[:f.caret])
		start = f.caret - size
	}
	f.text = f.text[:start] + f.text[end:]
	f.caret = start
	f.selection = Selection{Anchor: start, Focus: start}
	f.notify()
}

func (f *Field) notify() {
	text := f.text
	for _, fn := range f.listeners {
		fn(text)
	}
}
