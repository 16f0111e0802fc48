package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bastiangx/codeassist/pkg/editor"
	"github.com/bastiangx/codeassist/pkg/highlight"
)

// Renderer prints editor state with lipgloss styles
type Renderer struct {
	out      io.Writer
	noColor  bool
	label    lipgloss.Style
	selected lipgloss.Style
	item     lipgloss.Style
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer, noColor bool) *Renderer {
	r := &Renderer{
		out:      out,
		noColor:  noColor,
		label:    lipgloss.NewStyle(),
		selected: lipgloss.NewStyle(),
		item:     lipgloss.NewStyle(),
	}
	if !noColor {
		r.label = r.label.Faint(true)
		r.selected = r.selected.Bold(true).Foreground(lipgloss.Color("75"))
		r.item = r.item.Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	}
	return r
}

// State prints the caret context, the candidate list and the styled text
func (r *Renderer) State(st editor.State) {
	fmt.Fprintf(r.out, "%s %q  %s %q\n",
		r.label.Render("word:"), st.Context.Word,
		r.label.Render("context:"), st.Context.Key)

	if st.Open {
		for i, s := range st.Suggestions {
			if i == st.Selected {
				fmt.Fprintf(r.out, "  > %s\n", r.selected.Render(s))
				continue
			}
			fmt.Fprintf(r.out, "    %s\n", r.item.Render(s))
		}
	}

	if st.Styled != "" {
		fmt.Fprintf(r.out, "%s %s\n", r.label.Render("text:"), r.Markup(st.Styled))
	} else {
		fmt.Fprintf(r.out, "%s %s\n", r.label.Render("text:"), st.Text)
	}
}

// Markup renders <color=...> markup as terminal colors
func (r *Renderer) Markup(styled string) string {
	var b strings.Builder
	for _, seg := range highlight.Segments(styled) {
		if seg.Color == "" || r.noColor {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(seg.Color)).Render(seg.Text))
	}
	return b.String()
}

// Stats prints catalog sizes in key order
func (r *Renderer) Stats(stats map[string]int) {
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(r.out, "%s %d\n", r.label.Render(k+":"), stats[k])
	}
}
