package timestamp

import "errors"

// ErrNoTimeUnderCaret is returned when the caret does not sit on or inside a bare HH:MM token.
var ErrNoTimeUnderCaret = errors.New("no time under caret")

// ErrInvalidClock indicates a string that is not shaped like HH:MM.
var ErrInvalidClock = errors.New("invalid clock value")
