package editor

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/faizmokh/orgstamp/internal/timestamp"
)

// Command identifiers.
const (
	InsertTimestampID       = "insert-timestamp"
	InsertLinkedTimestampID = "insert-timestamp-linked"
	ShiftForwardID          = "timestamp-forward"
	ShiftBackwardID         = "timestamp-backward"
)

// Command is an editor action a host can bind to a key or palette entry.
// Run reports whether the buffer was edited.
type Command struct {
	ID   string
	Name string
	Run  func(h Host) bool
}

// Commands returns the timestamp commands. step is the shift offset in minutes.
func Commands(stamper *timestamp.Stamper, step int) []Command {
	return []Command{
		{
			ID:   InsertTimestampID,
			Name: "Insert timestamp",
			Run:  InsertTimestamp(stamper, false),
		},
		{
			ID:   InsertLinkedTimestampID,
			Name: "Insert timestamp with day link",
			Run:  InsertTimestamp(stamper, true),
		},
		{
			ID:   ShiftForwardID,
			Name: fmt.Sprintf("Move timestamp under cursor forward %d minutes", step),
			Run:  ShiftTime(timestamp.Forward(step)),
		},
		{
			ID:   ShiftBackwardID,
			Name: fmt.Sprintf("Move timestamp under cursor backward %d minutes", step),
			Run:  ShiftTime(timestamp.Backward(step)),
		},
	}
}

// InsertTimestamp inserts the current time at the caret and leaves the caret
// right after it.
func InsertTimestamp(stamper *timestamp.Stamper, linked bool) func(Host) bool {
	return func(h Host) bool {
		cur := h.Cursor()
		text := stamper.Stamp(linked)
		h.Replace(cur.Line, cur.Column, cur.Column, text)
		h.SetCursor(Position{Line: cur.Line, Column: cur.Column + utf8.RuneCountInString(text)})
		return true
	}
}

// ShiftTime applies fn to the HH:MM under the caret. The caret is put back
// where it was after the replacement. With nothing under the caret the
// buffer is left untouched.
func ShiftTime(fn timestamp.Transform) func(Host) bool {
	return func(h Host) bool {
		cur := h.Cursor()
		edit, err := timestamp.LocateAndTransform(h.Line(cur.Line), cur.Column, fn)
		if err != nil {
			slog.Debug("no time under cursor", "line", cur.Line, "column", cur.Column)
			return false
		}
		h.Replace(cur.Line, edit.Start, edit.End, edit.Text)
		h.SetCursor(cur)
		return true
	}
}

// Lookup finds a command by ID.
func Lookup(cmds []Command, id string) (Command, bool) {
	for _, c := range cmds {
		if c.ID == id {
			return c, true
		}
	}
	return Command{}, false
}
