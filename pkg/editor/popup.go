package editor

// ListPopup is a headless candidate list. It keeps what a drawn popup would
// show so callers without a screen (the msgpack server, tests) can report it.
type ListPopup struct {
	items       []string
	highlighted int
	visible     bool
	repositions int
}

// NewListPopup creates a hidden popup.
func NewListPopup() *ListPopup {
	return &ListPopup{highlighted: -1}
}

func (p *ListPopup) Show(items []string) {
	p.items = append(p.items[:0], items...)
	p.visible = true
}

func (p *ListPopup) Hide() {
	p.visible = false
	p.items = p.items[:0]
	p.highlighted = -1
}

func (p *ListPopup) Highlight(index int) {
	p.highlighted = index
}

func (p *ListPopup) Reposition() {
	p.repositions++
}

// Visible reports whether the list is shown.
func (p *ListPopup) Visible() bool {
	return p.visible
}

// Items returns a copy of the shown candidates.
func (p *ListPopup) Items() []string {
	if !p.visible {
		return nil
	}
	out := make([]string, len(p.items))
	copy(out, p.items)
	return out
}

// Highlighted returns the highlighted row, or -1 when hidden.
func (p *ListPopup) Highlighted() int {
	if !p.visible {
		return -1
	}
	return p.highlighted
}
