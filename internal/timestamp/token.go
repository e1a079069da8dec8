package timestamp

import (
	"strings"
	"time"
)

// Token is a timestamp recognised in rendered markup. Span is always set.
// Date and Weekday are set together; AnchorOpen and AnchorClose are set
// together and only alongside Date.
type Token struct {
	AnchorOpen  string
	Date        string
	AnchorClose string
	Weekday     string
	Span        string
}

// HasDate reports whether the token carries a date and weekday prefix.
func (t Token) HasDate() bool {
	return t.Date != ""
}

// HasAnchor reports whether the date was wrapped in a link to its day note.
func (t Token) HasAnchor() bool {
	return t.AnchorOpen != ""
}

// IsRange reports whether the span is HH:MM-HH:MM.
func (t Token) IsRange() bool {
	return len(t.Span) > clockWidth
}

// Occurrence places a Token inside the markup it was found in. Start and End
// are byte offsets and include the delimiters.
type Occurrence struct {
	Token
	Start int
	End   int
}

const (
	entityOpen  = "&lt;"
	entityClose = "&gt;"
	anchorStart = "<a"
	anchorEnd   = "</a>"
	dateLayout  = "2006-01-02"
	clockWidth  = len("15:04")
)

// Find returns the timestamp occurrences in markup, left to right and
// non-overlapping. Partial or malformed occurrences are skipped.
func Find(markup string) []Occurrence {
	var found []Occurrence
	for i := 0; i < len(markup); {
		if markup[i] != '<' && markup[i] != '&' {
			i++
			continue
		}
		occ, ok := matchAt(markup, i)
		if !ok {
			i++
			continue
		}
		found = append(found, occ)
		i = occ.End
	}
	return found
}

func matchAt(s string, start int) (Occurrence, bool) {
	sc := scanner{s: s, pos: start}
	if !sc.consume("<") && !sc.consume(entityOpen) {
		return Occurrence{}, false
	}

	body := sc.pos
	tok, ok := sc.datePrefix()
	if !ok {
		tok = Token{}
		sc.pos = body
	}

	span, ok := sc.span()
	if !ok {
		return Occurrence{}, false
	}
	// The closing bracket is accepted in either encoding regardless of the opening one.
	if !sc.consume(">") && !sc.consume(entityClose) {
		return Occurrence{}, false
	}

	tok.Span = span
	return Occurrence{Token: tok, Start: start, End: sc.pos}, true
}

type scanner struct {
	s   string
	pos int
}

func (sc *scanner) consume(lit string) bool {
	if strings.HasPrefix(sc.s[sc.pos:], lit) {
		sc.pos += len(lit)
		return true
	}
	return false
}

func (sc *scanner) digits(n int) (string, bool) {
	if sc.pos+n > len(sc.s) {
		return "", false
	}
	for i := 0; i < n; i++ {
		if !isDigit(sc.s[sc.pos+i]) {
			return "", false
		}
	}
	v := sc.s[sc.pos : sc.pos+n]
	sc.pos += n
	return v, true
}

// datePrefix reads `[<a ...>]YYYY-MM-DD[</a>] Www ` and leaves pos after the
// trailing space.
func (sc *scanner) datePrefix() (Token, bool) {
	var tok Token

	if open, ok := sc.anchor(); ok {
		tok.AnchorOpen = open
	}

	start := sc.pos
	if _, ok := sc.digits(4); !ok {
		return Token{}, false
	}
	for _, n := range []int{2, 2} {
		if !sc.consume("-") {
			return Token{}, false
		}
		if _, ok := sc.digits(n); !ok {
			return Token{}, false
		}
	}
	tok.Date = sc.s[start:sc.pos]
	if _, err := time.Parse(dateLayout, tok.Date); err != nil {
		return Token{}, false
	}

	if tok.AnchorOpen != "" {
		if !sc.consume(anchorEnd) {
			return Token{}, false
		}
		tok.AnchorClose = anchorEnd
	}

	if !sc.consume(" ") {
		return Token{}, false
	}
	if sc.pos+3 > len(sc.s) {
		return Token{}, false
	}
	for i := 0; i < 3; i++ {
		if !isWordByte(sc.s[sc.pos+i]) {
			return Token{}, false
		}
	}
	tok.Weekday = sc.s[sc.pos : sc.pos+3]
	sc.pos += 3
	if !sc.consume(" ") {
		return Token{}, false
	}
	return tok, true
}

// anchor reads an opening <a ...> tag verbatim. Tags that embed another
// bracket, literal or escaped, are refused.
func (sc *scanner) anchor() (string, bool) {
	rest := sc.s[sc.pos:]
	if !strings.HasPrefix(rest, anchorStart) || len(rest) <= len(anchorStart) {
		return "", false
	}
	if c := rest[len(anchorStart)]; c != '>' && !isSpace(c) {
		return "", false
	}
	end := strings.IndexByte(rest, '>')
	if end < 0 {
		return "", false
	}
	tag := rest[:end+1]
	if strings.IndexByte(tag[1:], '<') >= 0 || strings.Contains(tag, entityOpen) {
		return "", false
	}
	sc.pos += len(tag)
	return tag, true
}

func (sc *scanner) span() (string, bool) {
	start := sc.pos
	if !sc.clock() {
		return "", false
	}
	mark := sc.pos
	if sc.consume("-") && !sc.clock() {
		sc.pos = mark
	}
	return sc.s[start:sc.pos], true
}

func (sc *scanner) clock() bool {
	start := sc.pos
	hh, ok := sc.digits(2)
	if !ok {
		return false
	}
	if !sc.consume(":") {
		sc.pos = start
		return false
	}
	mm, ok := sc.digits(2)
	if !ok {
		sc.pos = start
		return false
	}
	if atoi2(hh) > 23 || atoi2(mm) > 59 {
		sc.pos = start
		return false
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWordByte(c byte) bool {
	return isDigit(c) || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}
