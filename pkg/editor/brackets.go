package editor

import (
	"github.com/bastiangx/codeassist/pkg/session"
)

// DefaultPairOpeners are the characters that get a closing partner inserted.
const DefaultPairOpeners = `({["'`

// closingPairs maps each opening character to the character inserted after it.
var closingPairs = map[rune]rune{
	'(':  ')',
	'{':  '}',
	'[':  ']',
	'"':  '"',
	'\'': '\'',
}

// PairInserter inserts the closing partner of a typed opening character on
// the turn after the keystroke, so the host has already placed the typed
// character and moved the caret.
type PairInserter struct {
	buffer session.Buffer
	loop   *Loop
	pairs  map[rune]rune
}

// NewPairInserter enables pairing for the characters in openers that have a
// known partner. Unknown characters are ignored.
func NewPairInserter(buffer session.Buffer, loop *Loop, openers string) *PairInserter {
	pairs := make(map[rune]rune)
	for _, r := range openers {
		if closing, ok := closingPairs[r]; ok {
			pairs[r] = closing
		}
	}
	return &PairInserter{buffer: buffer, loop: loop, pairs: pairs}
}

// OnValidateChar returns ch unchanged and, for an opening character, schedules
// the closing insert.
func (p *PairInserter) OnValidateChar(text string, index int, ch rune) rune {
	if closing, ok := p.pairs[ch]; ok {
		p.loop.Post(func() { p.insert(closing) })
	}
	return ch
}

// insert reads the caret when it runs, never a value captured at post time,
// so back-to-back pairs each land at the live caret.
func (p *PairInserter) insert(closing rune) {
	text := p.buffer.Text()
	pos := p.buffer.Caret()
	if pos < 0 || pos > len(text) {
		return
	}
	p.buffer.SetText(text[:pos] + string(closing) + text[pos:])
	p.buffer.SetCaret(pos)
	if sel, ok := p.buffer.(session.SelectionSetter); ok {
		sel.SetSelection(pos, pos)
	}
}
