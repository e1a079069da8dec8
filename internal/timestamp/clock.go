package timestamp

import (
	"fmt"
	"time"
)

const (
	minutesPerDay = 24 * 60
	// DefaultStep is the offset, in minutes, applied by the shift commands.
	DefaultStep = 5
	roundTo     = 5
)

// Clock is a time of day on a 24-hour clock without a date or zone.
type Clock struct {
	Hour   int
	Minute int
}

// ClockOf extracts the time of day from t in t's own location.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

// ParseClock parses a two-digit HH:MM value. Out-of-range values are not
// rejected; they wrap when normalised.
func ParseClock(s string) (Clock, error) {
	if len(s) != clockWidth || s[2] != ':' || !isDigit(s[0]) || !isDigit(s[1]) || !isDigit(s[3]) || !isDigit(s[4]) {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return Clock{Hour: atoi2(s[:2]), Minute: atoi2(s[3:])}, nil
}

// Normalize wraps the clock onto 00:00-23:59.
func (c Clock) Normalize() Clock {
	return fromMinutes(c.minutes())
}

// String formats the normalised clock as a zero-padded HH:MM.
func (c Clock) String() string {
	n := c.Normalize()
	return fmt.Sprintf("%02d:%02d", n.Hour, n.Minute)
}

func (c Clock) minutes() int {
	return c.Hour*60 + c.Minute
}

func fromMinutes(total int) Clock {
	total %= minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return Clock{Hour: total / 60, Minute: total % 60}
}

// Transform maps a time of day to another time of day.
type Transform func(Clock) Clock

// Forward adds step minutes and floors the result to a five-minute boundary.
// 23:58 moves to 00:00.
func Forward(step int) Transform {
	return func(c Clock) Clock {
		return floorMinute(fromMinutes(c.minutes() + step))
	}
}

// Backward subtracts step minutes and floors the result to a five-minute
// boundary, wrapping within the day: 00:02 moves to 23:55.
func Backward(step int) Transform {
	return func(c Clock) Clock {
		return floorMinute(fromMinutes(c.minutes() - step))
	}
}

func floorMinute(c Clock) Clock {
	c.Minute -= c.Minute % roundTo
	return c
}
