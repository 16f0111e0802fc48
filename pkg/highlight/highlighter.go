// Package highlight wraps known keywords in rich-text color tags.
package highlight

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/log"
)

// markupPattern matches one applied color tag pair.
var markupPattern = regexp.MustCompile(`<color=[^>]*>(.*?)</color>`)

// Display shows the styled copy of the editable text.
type Display interface {
	SetStyledText(styled string)
}

type rule struct {
	pattern *regexp.Regexp
	tag     string
}

// Highlighter paints whole-word, case-sensitive keyword matches.
//
// Rules run in StyleMap order and overlapping matches are not resolved: a
// token already wrapped by an earlier rule is no longer a whole word for a
// later rule containing it, so the earlier entry wins for that text, and a
// later rule matching inside an earlier one nests its tag inside.
type Highlighter struct {
	rules    []rule
	display  Display
	updating bool
}

// New compiles one rule per style map entry.
func New(styles *StyleMap) *Highlighter {
	h := &Highlighter{}
	styles.Each(func(key, color string) {
		pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(key) + `\b`)
		if err != nil {
			log.Warnf("Skipping keyword '%s': %v", key, err)
			return
		}
		h.rules = append(h.rules, rule{
			pattern: pattern,
			tag:     fmt.Sprintf("<color=%s>%s</color>", color, key),
		})
	})
	return h
}

// Rules returns the number of compiled keyword rules.
func (h *Highlighter) Rules() int {
	return len(h.rules)
}

// Apply strips markup left from an earlier pass and wraps every keyword
// occurrence in its color tag. Apply(Apply(s)) == Apply(s).
func (h *Highlighter) Apply(text string) string {
	text = Strip(text)
	for _, r := range h.rules {
		text = r.pattern.ReplaceAllLiteralString(text, r.tag)
	}
	return text
}

// Strip removes color tag pairs, nested ones included, keeping their content.
func Strip(text string) string {
	for {
		stripped := markupPattern.ReplaceAllString(text, "$1")
		if stripped == text {
			return text
		}
		text = stripped
	}
}

// Attach sets the display that receives styled text on every change.
func (h *Highlighter) Attach(d Display) {
	h.display = d
}

// OnTextChanged restyles text into the attached display. Calls made while the
// display is being updated are dropped, so a display that echoes changes back
// into the editable buffer cannot loop.
func (h *Highlighter) OnTextChanged(text string) {
	if h.updating || h.display == nil {
		return
	}
	h.updating = true
	defer func() { h.updating = false }()
	h.display.SetStyledText(h.Apply(text))
}
