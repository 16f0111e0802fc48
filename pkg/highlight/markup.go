package highlight

import "strings"

const (
	openTagPrefix = "<color="
	closeTag      = "</color>"
)

// Segment is a run of text painted with one color. Color is "" for
// unstyled text.
type Segment struct {
	Text  string
	Color string
}

// Segments splits styled text into colored runs for renderers that do not
// understand the tag markup. Nested tags paint with the innermost color;
// a stray closing tag is kept as text.
func Segments(styled string) []Segment {
	var (
		segments []Segment
		stack    []string
		run      strings.Builder
	)
	current := func() string {
		if len(stack) == 0 {
			return ""
		}
		return stack[len(stack)-1]
	}
	flush := func() {
		if run.Len() == 0 {
			return
		}
		segments = append(segments, Segment{Text: run.String(), Color: current()})
		run.Reset()
	}

	for i := 0; i < len(styled); {
		rest := styled[i:]
		if strings.HasPrefix(rest, openTagPrefix) {
			if end := strings.IndexByte(rest, '>'); end > 0 {
				flush()
				stack = append(stack, rest[len(openTagPrefix):end])
				i += end + 1
				continue
			}
		}
		if strings.HasPrefix(rest, closeTag) && len(stack) > 0 {
			flush()
			stack = stack[:len(stack)-1]
			i += len(closeTag)
			continue
		}
		run.WriteByte(styled[i])
		i++
	}
	flush()
	return segments
}
