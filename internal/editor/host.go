package editor

import "errors"

// Position is a caret location. Line and Column are 0-based; Column counts
// runes.
type Position struct {
	Line   int
	Column int
}

// Host is the editing surface commands run against.
type Host interface {
	// Line returns the text of line n, or "" when n is out of range.
	Line(n int) string
	Cursor() Position
	SetCursor(pos Position)
	// Replace swaps columns [from, to) of line for text. Hosts may move the
	// caret to the end of the inserted text.
	Replace(line, from, to int, text string)
}

// ErrLineOutOfRange is returned when a caller addresses a line the buffer does not have.
var ErrLineOutOfRange = errors.New("line out of range")
