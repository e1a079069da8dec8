package timestamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForward(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:25", "09:30"},
		{"09:30", "09:35"},
		{"09:32", "09:35"},
		{"09:34", "09:35"},
		{"09:56", "10:00"},
		{"23:55", "00:00"},
		{"23:58", "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseClock(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Forward(DefaultStep)(c).String())
		})
	}
}

func TestBackward(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:32", "09:25"},
		{"09:30", "09:25"},
		{"09:27", "09:20"},
		{"10:03", "09:55"},
		{"00:02", "23:55"},
		{"00:00", "23:55"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseClock(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Backward(DefaultStep)(c).String())
		})
	}
}

func TestTransformsCustomStep(t *testing.T) {
	c := Clock{Hour: 9, Minute: 25}
	assert.Equal(t, "09:40", Forward(15)(c).String())
	assert.Equal(t, "09:10", Backward(15)(c).String())
}

func TestClockOutOfRangeWraps(t *testing.T) {
	c, err := ParseClock("99:99")
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 99, Minute: 99}, c)
	assert.Equal(t, "04:39", c.String())

	assert.Equal(t, "02:15", Forward(DefaultStep)(Clock{Hour: 25, Minute: 70}).String())
	assert.Equal(t, "22:55", Backward(DefaultStep)(Clock{Hour: -1, Minute: 0}).String())
}

func TestParseClockRejectsShape(t *testing.T) {
	for _, in := range []string{"9:25", "09-25", "0925", "ab:cd", ""} {
		_, err := ParseClock(in)
		assert.ErrorIs(t, err, ErrInvalidClock, "input %q", in)
	}
}

func TestClockOf(t *testing.T) {
	at := time.Date(2025, time.June, 1, 9, 58, 30, 0, time.UTC)
	assert.Equal(t, Clock{Hour: 9, Minute: 58}, ClockOf(at))
}
