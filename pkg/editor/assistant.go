package editor

import (
	"github.com/charmbracelet/log"

	"github.com/bastiangx/codeassist/internal/utils"
	"github.com/bastiangx/codeassist/pkg/caret"
	"github.com/bastiangx/codeassist/pkg/session"
	"github.com/bastiangx/codeassist/pkg/suggest"
)

// Assistant reacts to text changes: it extracts the caret context, resolves
// candidates and opens or closes the suggestion session.
type Assistant struct {
	buffer   session.Buffer
	resolver suggest.Resolver
	applier  *session.Applier
	last     caret.Context
}

// NewAssistant wires resolver and applier to buffer. The assistant registers
// itself as the applier's listener so a confirmed edit triggers a fresh
// extraction.
func NewAssistant(buffer session.Buffer, resolver suggest.Resolver, applier *session.Applier) *Assistant {
	if resolver == nil {
		resolver = suggest.EmptyCatalog()
	}
	a := &Assistant{
		buffer:   buffer,
		resolver: resolver,
		applier:  applier,
	}
	applier.SetListener(a)
	return a
}

// OnTextChanged runs one extraction and resolution pass for the caret
// position. Changes caused by the applier writing the buffer are ignored.
func (a *Assistant) OnTextChanged(text string) {
	if a.applier.Applying() {
		return
	}
	pos := utils.ClampOffset(text, a.buffer.Caret())
	ctx := caret.Extract(text, pos)
	a.last = ctx

	candidates := a.resolver.Resolve(ctx.Key, ctx.Word)
	if !suggest.ShouldDisplay(candidates, ctx.Word) {
		a.applier.Dismiss()
		return
	}
	log.Debugf("%d candidates for '%s' (context '%s')", len(candidates), ctx.Word, ctx.Key)
	a.applier.Open(candidates, ctx.Word, pos, a.buffer)
}

// HandleKey forwards navigation keys to the open session.
func (a *Assistant) HandleKey(k session.Key) bool {
	return a.applier.HandleKey(k)
}

// SetResolver swaps the candidate source. The open session, if any, is
// closed since its candidates came from the old source.
func (a *Assistant) SetResolver(r suggest.Resolver) {
	if r == nil {
		r = suggest.EmptyCatalog()
	}
	a.resolver = r
	a.applier.Dismiss()
}

// Resolver returns the current candidate source.
func (a *Assistant) Resolver() suggest.Resolver {
	return a.resolver
}

// Context returns the caret context of the last extraction pass.
func (a *Assistant) Context() caret.Context {
	return a.last
}

// Applier returns the session applier.
func (a *Assistant) Applier() *session.Applier {
	return a.applier
}
