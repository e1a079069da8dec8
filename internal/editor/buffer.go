package editor

import (
	"strings"
)

// LineBuffer is an in-memory Host over a slice of lines.
type LineBuffer struct {
	lines    []string
	cursor   Position
	modified bool
}

// NewLineBuffer copies lines into a buffer with the caret at the start. An
// empty input yields a single empty line.
func NewLineBuffer(lines []string) *LineBuffer {
	b := &LineBuffer{lines: append([]string(nil), lines...)}
	if len(b.lines) == 0 {
		b.lines = []string{""}
	}
	return b
}

// Lines returns a copy of the buffer contents.
func (b *LineBuffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// Text joins the lines with newlines.
func (b *LineBuffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// LineCount returns the number of lines.
func (b *LineBuffer) LineCount() int {
	return len(b.lines)
}

// Modified reports whether the buffer changed since creation or MarkSaved.
func (b *LineBuffer) Modified() bool {
	return b.modified
}

// MarkSaved clears the modified flag.
func (b *LineBuffer) MarkSaved() {
	b.modified = false
}

// Line implements Host.
func (b *LineBuffer) Line(n int) string {
	if n < 0 || n >= len(b.lines) {
		return ""
	}
	return b.lines[n]
}

// Cursor implements Host.
func (b *LineBuffer) Cursor() Position {
	return b.cursor
}

// SetCursor implements Host. The position is clamped into the buffer.
func (b *LineBuffer) SetCursor(pos Position) {
	b.cursor = b.clamp(pos)
}

// Replace implements Host. text may span several lines; the caret ends up
// right after it.
func (b *LineBuffer) Replace(line, from, to int, text string) {
	if line < 0 || line >= len(b.lines) {
		return
	}
	runes := []rune(b.lines[line])
	from = clampInt(from, 0, len(runes))
	to = clampInt(to, from, len(runes))

	prefix := string(runes[:from])
	suffix := string(runes[to:])
	parts := strings.Split(prefix+text+suffix, "\n")

	next := make([]string, 0, len(b.lines)+len(parts)-1)
	next = append(next, b.lines[:line]...)
	next = append(next, parts...)
	next = append(next, b.lines[line+1:]...)
	b.lines = next
	b.modified = true

	last := line + len(parts) - 1
	b.cursor = Position{
		Line:   last,
		Column: len([]rune(parts[len(parts)-1])) - len([]rune(suffix)),
	}
}

// Insert types text at the caret.
func (b *LineBuffer) Insert(text string) {
	b.Replace(b.cursor.Line, b.cursor.Column, b.cursor.Column, text)
}

// Newline splits the current line at the caret.
func (b *LineBuffer) Newline() {
	b.Insert("\n")
}

// Backspace removes the rune before the caret, joining with the previous
// line at column 0.
func (b *LineBuffer) Backspace() {
	cur := b.cursor
	if cur.Column > 0 {
		b.Replace(cur.Line, cur.Column-1, cur.Column, "")
		return
	}
	if cur.Line == 0 {
		return
	}
	prev := b.lines[cur.Line-1]
	col := len([]rune(prev))
	joined := prev + b.lines[cur.Line]
	b.lines = append(b.lines[:cur.Line-1], append([]string{joined}, b.lines[cur.Line+1:]...)...)
	b.modified = true
	b.cursor = Position{Line: cur.Line - 1, Column: col}
}

// MoveLeft moves the caret one rune back, wrapping to the previous line.
func (b *LineBuffer) MoveLeft() {
	if b.cursor.Column > 0 {
		b.cursor.Column--
		return
	}
	if b.cursor.Line > 0 {
		b.cursor.Line--
		b.cursor.Column = b.lineLen(b.cursor.Line)
	}
}

// MoveRight moves the caret one rune forward, wrapping to the next line.
func (b *LineBuffer) MoveRight() {
	if b.cursor.Column < b.lineLen(b.cursor.Line) {
		b.cursor.Column++
		return
	}
	if b.cursor.Line < len(b.lines)-1 {
		b.cursor.Line++
		b.cursor.Column = 0
	}
}

// MoveUp moves the caret to the previous line, keeping the column when possible.
func (b *LineBuffer) MoveUp() {
	b.SetCursor(Position{Line: b.cursor.Line - 1, Column: b.cursor.Column})
}

// MoveDown moves the caret to the next line, keeping the column when possible.
func (b *LineBuffer) MoveDown() {
	b.SetCursor(Position{Line: b.cursor.Line + 1, Column: b.cursor.Column})
}

// Home moves the caret to the start of the line.
func (b *LineBuffer) Home() {
	b.cursor.Column = 0
}

// End moves the caret to the end of the line.
func (b *LineBuffer) End() {
	b.cursor.Column = b.lineLen(b.cursor.Line)
}

func (b *LineBuffer) lineLen(n int) int {
	return len([]rune(b.Line(n)))
}

func (b *LineBuffer) clamp(pos Position) Position {
	pos.Line = clampInt(pos.Line, 0, len(b.lines)-1)
	pos.Column = clampInt(pos.Column, 0, b.lineLen(pos.Line))
	return pos
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
