package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var eligible = map[atom.Atom]bool{
	atom.Span: true,
	atom.P:    true,
	atom.Li:   true,
	atom.H1:   true,
	atom.H2:   true,
	atom.H3:   true,
	atom.H4:   true,
	atom.H5:   true,
	atom.H6:   true,
}

// Blocks runs hooks over the inner markup of every outermost span, p, li and
// h1-h6 element of doc. Bytes outside those elements are copied verbatim. If
// no hook changes anything, doc itself is returned with false.
func Blocks(doc string, hooks ...Hook) (string, bool) {
	if len(hooks) == 0 || doc == "" {
		return doc, false
	}

	var (
		out     strings.Builder
		inner   strings.Builder
		depth   int
		changed bool
	)
	out.Grow(len(doc))

	flush := func() {
		fragment := inner.String()
		inner.Reset()
		for _, hook := range hooks {
			if next, ok := hook.Rewrite(fragment); ok {
				fragment = next
				changed = true
			}
		}
		out.WriteString(fragment)
	}

	z := html.NewTokenizer(strings.NewReader(doc))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		// Copy before TagName, which lowercases the buffer in place.
		raw := string(z.Raw())

		switch tt {
		case html.StartTagToken:
			name, _ := z.TagName()
			if eligible[atom.Lookup(name)] {
				depth++
				if depth == 1 {
					out.WriteString(raw)
					continue
				}
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if eligible[atom.Lookup(name)] && depth > 0 {
				depth--
				if depth == 0 {
					flush()
					out.WriteString(raw)
					continue
				}
			}
		}

		if depth > 0 {
			inner.WriteString(raw)
		} else {
			out.WriteString(raw)
		}
	}
	if depth > 0 {
		flush()
	}

	if !changed {
		return doc, false
	}
	return out.String(), true
}
