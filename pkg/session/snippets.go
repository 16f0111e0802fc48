package session

// Snippet is a template inserted in place of a confirmed candidate.
// Caret is the caret offset inside Body after insertion.
type Snippet struct {
	Body  string
	Caret int
}

// DefaultSnippets expands the common C-style control statements.
func DefaultSnippets() map[string]Snippet {
	return map[string]Snippet{
		"if":    {Body: "if () {\n\t\n}", Caret: 4},
		"for":   {Body: "for (int i = 0; i < ; i++) {\n\t\n}", Caret: 14},
		"while": {Body: "while () {\n\t\n}", Caret: 7},
	}
}

// expand returns the text to insert for candidate and the caret offset
// relative to the start of that text.
func expand(snippets map[string]Snippet, candidate string) (string, int) {
	snip, ok := snippets[candidate]
	if !ok {
		return candidate, len(candidate)
	}
	caret := snip.Caret
	if caret < 0 {
		caret = 0
	}
	if caret > len(snip.Body) {
		caret = len(snip.Body)
	}
	return snip.Body, caret
}
