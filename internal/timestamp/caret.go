package timestamp

// ClockMatch is a bare HH:MM token in a line of raw text. Start is a rune column.
type ClockMatch struct {
	Text  string
	Start int
}

// End returns the column just past the token.
func (m ClockMatch) End() int {
	return m.Start + clockWidth
}

// Contains reports whether col falls within [Start, End], both ends inclusive,
// so a caret resting right before or right after the token still selects it.
func (m ClockMatch) Contains(col int) bool {
	return col >= m.Start && col <= m.End()
}

// Clocks returns the HH:MM tokens in line that are not directly preceded or
// followed by a colon, scanning left to right without overlap. Either half of
// an HH:MM-HH:MM range matches on its own; HH:MM:SS never matches.
func Clocks(line string) []ClockMatch {
	runes := []rune(line)
	var found []ClockMatch
	for i := 0; i+clockWidth <= len(runes); i++ {
		if !clockAt(runes, i) {
			continue
		}
		if i > 0 && runes[i-1] == ':' {
			continue
		}
		if end := i + clockWidth; end < len(runes) && runes[end] == ':' {
			continue
		}
		found = append(found, ClockMatch{Text: string(runes[i : i+clockWidth]), Start: i})
		i += clockWidth - 1
	}
	return found
}

func clockAt(runes []rune, i int) bool {
	return runeDigit(runes[i]) && runeDigit(runes[i+1]) && runes[i+2] == ':' &&
		runeDigit(runes[i+3]) && runeDigit(runes[i+4])
}

func runeDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Edit is a replacement for columns [Start, End) of a line.
type Edit struct {
	Text  string
	Start int
	End   int
}

// LocateAndTransform finds the first clock in line whose span contains col,
// applies fn to it and returns the replacement. The range comes from the
// match, not the caret, so surrounding characters are left alone.
func LocateAndTransform(line string, col int, fn Transform) (Edit, error) {
	for _, m := range Clocks(line) {
		if !m.Contains(col) {
			continue
		}
		c, err := ParseClock(m.Text)
		if err != nil {
			return Edit{}, err
		}
		return Edit{
			Text:  fn(c).String(),
			Start: m.Start,
			End:   m.End(),
		}, nil
	}
	return Edit{}, ErrNoTimeUnderCaret
}
