/*
Package session owns the transient state of an open suggestion list and applies
the chosen candidate back into the live text.

A session is opened with the candidates resolved for the word under the caret.
Navigation moves a cyclic selection index; confirming re-locates the anchor word
in the buffer as it is at that moment, replaces it, moves the caret behind the
inserted text and notifies the listener so extraction runs again on the new
text. Dismissing closes the session without touching the buffer.

Everything here runs on the single event-handling goroutine; no locking.
*/
package session

// Buffer is the live text of the host input widget.
// Offsets are byte offsets into Text.
type Buffer interface {
	Text() string
	Caret() int
	SetText(text string)
	SetCaret(pos int)
}

// SelectionSetter is implemented by buffers that track a selection range
// separately from the caret. The applier collapses it onto the new caret.
type SelectionSetter interface {
	SetSelection(anchor, focus int)
}

// Popup renders the candidate list. Screen placement is computed by the
// implementation; the applier only says when to run it.
type Popup interface {
	Show(items []string)
	Hide()
	Highlight(index int)
	Reposition()
}

// Listener is notified after a confirmed edit so a fresh extraction can run.
type Listener interface {
	OnTextChanged(text string)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(text string)

// OnTextChanged calls f(text).
func (f ListenerFunc) OnTextChanged(text string) {
	f(text)
}

type noopPopup struct{}

func (noopPopup) Show([]string) {}
func (noopPopup) Hide()         {}
func (noopPopup) Highlight(int) {}
func (noopPopup) Reposition()   {}
