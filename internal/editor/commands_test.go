package editor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faizmokh/orgstamp/internal/timestamp"
)

func fixedStamper() *timestamp.Stamper {
	at := time.Date(2025, time.June, 1, 9, 58, 0, 0, time.UTC)
	return timestamp.NewStamperAt(func() time.Time { return at })
}

func runCommand(t *testing.T, id string, b *LineBuffer) bool {
	t.Helper()
	cmd, ok := Lookup(Commands(fixedStamper(), timestamp.DefaultStep), id)
	require.True(t, ok, "command %s not registered", id)
	return cmd.Run(b)
}

func TestInsertTimestampLeavesCaretAfterText(t *testing.T) {
	b := NewLineBuffer([]string{"Standup  notes"})
	b.SetCursor(Position{Line: 0, Column: 8})

	assert.True(t, runCommand(t, InsertTimestampID, b))
	assert.Equal(t, "Standup <2025-06-01 Sun 09:58> notes", b.Line(0))
	assert.Equal(t, Position{Line: 0, Column: 30}, b.Cursor())
	assert.True(t, b.Modified())
}

func TestInsertLinkedTimestamp(t *testing.T) {
	b := NewLineBuffer([]string{""})

	assert.True(t, runCommand(t, InsertLinkedTimestampID, b))
	assert.Equal(t, "<[[2025-06-01]] Sun 09:58>", b.Line(0))
	assert.Equal(t, Position{Line: 0, Column: 26}, b.Cursor())
}

func TestShiftForwardRestoresCaret(t *testing.T) {
	b := NewLineBuffer([]string{"first", "Meeting 09:25 today"})
	b.SetCursor(Position{Line: 1, Column: 10})

	assert.True(t, runCommand(t, ShiftForwardID, b))
	assert.Equal(t, "Meeting 09:30 today", b.Line(1))
	assert.Equal(t, Position{Line: 1, Column: 10}, b.Cursor())
}

func TestShiftBackwardOnRangeHalf(t *testing.T) {
	b := NewLineBuffer([]string{"<2025-06-01 Sun 10:00-10:35>"})
	b.SetCursor(Position{Line: 0, Column: 24})

	assert.True(t, runCommand(t, ShiftBackwardID, b))
	assert.Equal(t, "<2025-06-01 Sun 10:00-10:30>", b.Line(0))
	assert.Equal(t, Position{Line: 0, Column: 24}, b.Cursor())
}

func TestShiftWithoutTimeIsNoOp(t *testing.T) {
	b := NewLineBuffer([]string{"plain prose and nothing else"})
	b.SetCursor(Position{Line: 0, Column: 6})

	assert.False(t, runCommand(t, ShiftForwardID, b))
	assert.Equal(t, "plain prose and nothing else", b.Line(0))
	assert.Equal(t, Position{Line: 0, Column: 6}, b.Cursor())
	assert.False(t, b.Modified())
}

func TestCommandsNamesCarryStep(t *testing.T) {
	cmds := Commands(fixedStamper(), 10)
	require.Len(t, cmds, 4)

	fwd, ok := Lookup(cmds, ShiftForwardID)
	require.True(t, ok)
	assert.Equal(t, "Move timestamp under cursor forward 10 minutes", fwd.Name)

	b := NewLineBuffer([]string{"09:25"})
	assert.True(t, fwd.Run(b))
	assert.Equal(t, "09:35", b.Line(0))

	_, ok = Lookup(cmds, "missing")
	assert.False(t, ok)
}
