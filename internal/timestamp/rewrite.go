package timestamp

import "strings"

// Class markers carried by rewritten timestamps.
const (
	ClassTimestamp = "org-timestamp"
	ClassTime      = "org-timestamp-time"
)

// Rewrite replaces every timestamp occurrence in markup with a styled span.
// When nothing matches, markup is returned as is so callers can compare the
// result to decide whether the fragment needs to be committed. Rewrite is
// idempotent: its own output never contains an occurrence.
func Rewrite(markup string) string {
	found := Find(markup)
	if len(found) == 0 {
		return markup
	}

	var b strings.Builder
	b.Grow(len(markup) + len(found)*64)
	last := 0
	for _, occ := range found {
		b.WriteString(markup[last:occ.Start])
		writeToken(&b, occ.Token)
		last = occ.End
	}
	b.WriteString(markup[last:])
	return b.String()
}

// HTML renders the token as it appears after Rewrite.
func (t Token) HTML() string {
	var b strings.Builder
	writeToken(&b, t)
	return b.String()
}

func writeToken(b *strings.Builder, t Token) {
	b.WriteString(`<span class="` + ClassTimestamp + `">`)
	if t.HasDate() {
		b.WriteString(t.AnchorOpen)
		b.WriteString(t.Date)
		b.WriteString(t.AnchorClose)
		b.WriteByte(' ')
		b.WriteString(t.Weekday)
		b.WriteByte(' ')
	}
	b.WriteString(`<span class="` + ClassTime + `">`)
	b.WriteString(t.Span)
	b.WriteString(`</span></span>`)
}
