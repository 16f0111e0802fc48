package session

import (
	"strings"

	"github.com/bastiangx/codeassist/internal/utils"
	"github.com/charmbracelet/log"
)

// Session is the state of one open candidate list.
type Session struct {
	Candidates  []string
	Selected    int
	AnchorWord  string
	AnchorCaret int

	buffer Buffer
}

// Current returns the selected candidate.
func (s *Session) Current() string {
	return s.Candidates[s.Selected]
}

// Applier drives the popup from navigation events and writes the confirmed
// candidate into the buffer.
type Applier struct {
	popup    Popup
	listener Listener
	snippets map[string]Snippet
	session  *Session
	applying bool
}

// Option configures an Applier.
type Option func(*Applier)

// WithListener sets the listener notified after a confirmed edit.
func WithListener(l Listener) Option {
	return func(a *Applier) {
		a.listener = l
	}
}

// WithSnippets enables snippet expansion for the given candidates.
func WithSnippets(snippets map[string]Snippet) Option {
	return func(a *Applier) {
		a.snippets = snippets
	}
}

// NewApplier creates an applier rendering through popup. A nil popup is
// replaced with one that draws nothing.
func NewApplier(popup Popup, opts ...Option) *Applier {
	if popup == nil {
		popup = noopPopup{}
	}
	a := &Applier{popup: popup}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetListener replaces the listener. Hosts that build the applier before the
// component that re-extracts context wire it here.
func (a *Applier) SetListener(l Listener) {
	a.listener = l
}

// Open starts a session over candidates with the first one selected and shows
// the popup. An empty candidate list closes any open session instead.
func (a *Applier) Open(candidates []string, anchorWord string, caretPos int, buf Buffer) {
	if len(candidates) == 0 {
		a.Dismiss()
		return
	}
	a.session = &Session{
		Candidates:  append([]string(nil), candidates...),
		Selected:    0,
		AnchorWord:  anchorWord,
		AnchorCaret: caretPos,
		buffer:      buf,
	}
	a.popup.Show(a.session.Candidates)
	a.popup.Highlight(0)
	a.popup.Reposition()
}

// Active reports whether a session is open.
func (a *Applier) Active() bool {
	return a.session != nil
}

// Applying reports whether the applier is writing to the buffer right now.
// Change notifications fired by the buffer during that window come from the
// applier itself and should not re-resolve suggestions.
func (a *Applier) Applying() bool {
	return a.applying
}

// Session returns a copy of the open session.
func (a *Applier) Session() (Session, bool) {
	if a.session == nil {
		return Session{}, false
	}
	s := *a.session
	s.Candidates = append([]string(nil), a.session.Candidates...)
	return s, true
}

// Selected returns the highlighted candidate of the open session.
func (a *Applier) Selected() (string, bool) {
	if a.session == nil {
		return "", false
	}
	return a.session.Current(), true
}

// SelectNext moves the selection down, wrapping to the first candidate.
func (a *Applier) SelectNext() {
	a.move(1)
}

// SelectPrevious moves the selection up, wrapping to the last candidate.
func (a *Applier) SelectPrevious() {
	a.move(-1)
}

func (a *Applier) move(delta int) {
	if a.session == nil {
		return
	}
	n := len(a.session.Candidates)
	if n == 0 {
		return
	}
	a.session.Selected = (a.session.Selected + delta + n) % n
	a.popup.Highlight(a.session.Selected)
	a.popup.Reposition()
}

// Dismiss closes the session and hides the popup. The buffer is untouched.
func (a *Applier) Dismiss() {
	a.session = nil
	a.popup.Hide()
}

// Confirm writes the selected candidate over the anchor word and closes the
// session. The anchor word is searched backward from the caret as the buffer
// is now, since edits after the session opened may have shifted it; anything
// between the end of that word and the caret is dropped. When the word can no
// longer be found the session just closes and the buffer is left alone.
// Confirm reports whether the buffer was edited.
func (a *Applier) Confirm() bool {
	s := a.session
	if s == nil {
		return false
	}
	a.Dismiss()

	buf := s.buffer
	if buf == nil || len(s.Candidates) == 0 {
		return false
	}

	text := buf.Text()
	caretPos := utils.ClampOffset(text, buf.Caret())
	wordStart := strings.LastIndex(text[:caretPos], s.AnchorWord)
	if wordStart < 0 {
		log.Debugf("Anchor word '%s' not found before caret %d, skipping insert", s.AnchorWord, caretPos)
		return false
	}

	insert, caretOffset := expand(a.snippets, s.Current())
	newText := text[:wordStart] + insert + text[caretPos:]
	newCaret := wordStart + caretOffset

	a.applying = true
	buf.SetText(newText)
	buf.SetCaret(newCaret)
	if sel, ok := buf.(SelectionSetter); ok {
		sel.SetSelection(newCaret, newCaret)
	}
	a.applying = false

	log.Debugf("Replaced '%s' at %d with '%s'", s.AnchorWord, wordStart, insert)

	if a.listener != nil {
		a.listener.OnTextChanged(buf.Text())
	}
	return true
}
