/*
Package editor hosts the assist pipeline around an in-memory text field.

Every change to the field fans out to the Assistant, which extracts the caret
context and opens or closes the suggestion session, and to the Highlighter,
which restyles the display copy. Typing an opening bracket or quote schedules
the closing partner on the Loop so it lands after the keystroke completes.

An Editor is driven from one goroutine. Other goroutines (the data file
watcher) hand work over with Reload, which posts onto the Loop.
*/
package editor

import (
	"github.com/bastiangx/codeassist/pkg/caret"
	"github.com/bastiangx/codeassist/pkg/highlight"
	"github.com/bastiangx/codeassist/pkg/session"
	"github.com/bastiangx/codeassist/pkg/suggest"
)

// Options selects the optional editor behaviors.
type Options struct {
	AutoPair    bool
	PairOpeners string
	Snippets    bool
	Highlight   bool
}

// DefaultOptions returns auto-pairing and highlighting on, snippets off.
func DefaultOptions() Options {
	return Options{
		AutoPair:    true,
		PairOpeners: DefaultPairOpeners,
		Highlight:   true,
	}
}

// State is a snapshot of the editor after an event.
type State struct {
	Text        string
	Caret       int
	Context     caret.Context
	Suggestions []string
	Selected    int
	Open        bool
	Styled      string
}

// Editor owns the field, the loop and the assist components wired to them.
type Editor struct {
	field       *Field
	loop        *Loop
	popup       *ListPopup
	assistant   *Assistant
	highlighter *highlight.Highlighter
	pairs       *PairInserter
	styled      string
	opts        Options
}

// New builds an editor over an empty field.
func New(resolver suggest.Resolver, styles *highlight.StyleMap, opts Options) *Editor {
	e := &Editor{
		field: NewField(""),
		loop:  NewLoop(),
		popup: NewListPopup(),
		opts:  opts,
	}

	var applierOpts []session.Option
	if opts.Snippets {
		applierOpts = append(applierOpts, session.WithSnippets(session.DefaultSnippets()))
	}
	applier := session.NewApplier(e.popup, applierOpts...)
	e.assistant = NewAssistant(e.field, resolver, applier)
	e.field.Subscribe(e.assistant.OnTextChanged)

	if opts.Highlight {
		e.setStyles(styles)
		e.field.Subscribe(func(text string) {
			e.highlighter.OnTextChanged(text)
		})
	}

	if opts.AutoPair {
		openers := opts.PairOpeners
		if openers == "" {
			openers = DefaultPairOpeners
		}
		e.pairs = NewPairInserter(e.field, e.loop, openers)
		e.field.SetValidator(e.pairs.OnValidateChar)
	}
	return e
}

// SetStyledText receives the highlighter output.
func (e *Editor) SetStyledText(styled string) {
	e.styled = styled
}

func (e *Editor) setStyles(styles *highlight.StyleMap) {
	e.highlighter = highlight.New(styles)
	e.highlighter.Attach(e)
	e.styled = e.highlighter.Apply(e.field.Text())
}

// Set replaces the text and caret, as a paste would, then runs deferred work.
func (e *Editor) Set(text string, caretPos int) State {
	e.field.SetContent(text, caretPos)
	e.loop.RunPending()
	return e.State()
}

// Type inserts ch at the caret, then runs deferred work such as pairing.
func (e *Editor) Type(ch rune) State {
	e.field.TypeRune(ch)
	e.loop.RunPending()
	return e.State()
}

// Backspace deletes before the caret.
func (e *Editor) Backspace() State {
	e.field.Backspace()
	e.loop.RunPending()
	return e.State()
}

// Key forwards a navigation key and reports whether it was consumed.
func (e *Editor) Key(k session.Key) (State, bool) {
	handled := e.assistant.HandleKey(k)
	e.loop.RunPending()
	return e.State(), handled
}

// Reload swaps the candidate source and, when styles is non-nil, the
// highlight rules. Safe to call from any goroutine; the swap happens on the
// next turn of the loop.
func (e *Editor) Reload(resolver suggest.Resolver, styles *highlight.StyleMap) {
	e.loop.Post(func() {
		if resolver != nil {
			e.assistant.SetResolver(resolver)
		}
		if styles != nil && e.opts.Highlight {
			e.setStyles(styles)
		}
	})
}

// Tick runs tasks posted since the last event.
func (e *Editor) Tick() int {
	return e.loop.RunPending()
}

// State returns the current snapshot.
func (e *Editor) State() State {
	st := State{
		Text:        e.field.Text(),
		Caret:       e.field.Caret(),
		Context:     e.assistant.Context(),
		Suggestions: e.popup.Items(),
		Selected:    e.popup.Highlighted(),
		Open:        e.assistant.Applier().Active(),
	}
	if e.highlighter != nil {
		st.Styled = e.styled
	}
	return st
}

// Field returns the underlying text field.
func (e *Editor) Field() *Field {
	return e.field
}

// Stats returns candidate counts of the current source.
func (e *Editor) Stats() map[string]int {
	stats := e.assistant.Resolver().Stats()
	if stats == nil {
		stats = make(map[string]int)
	}
	if e.highlighter != nil {
		stats["highlightRules"] = e.highlighter.Rules()
	}
	return stats
}
