package plan

import "strings"

// Render produces the plain-text view of a plan: one glyph-prefixed
// line per step, in insertion order. An empty plan renders as "".
func Render(steps []Step) string {
	if len(steps) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, st := range steps {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(st.Status.Glyph())
		sb.WriteByte(' ')
		sb.WriteString(st.Title)
	}
	return sb.String()
}
