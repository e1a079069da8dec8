package timestamp

import "time"

const (
	plainLayout  = "<2006-01-02 Mon 15:04>"
	linkedLayout = "<[[2006-01-02]] Mon 15:04>"
)

// Format renders t as an insertable timestamp. The linked variant wraps the
// date in a [[day]] link.
func Format(t time.Time, linked bool) string {
	if linked {
		return t.Format(linkedLayout)
	}
	return t.Format(plainLayout)
}

// Stamper produces timestamps for the current local time.
type Stamper struct {
	now func() time.Time
}

// NewStamper returns a Stamper reading the wall clock.
func NewStamper() *Stamper {
	return &Stamper{now: time.Now}
}

// NewStamperAt returns a Stamper that asks now for the current time.
func NewStamperAt(now func() time.Time) *Stamper {
	return &Stamper{now: now}
}

// Stamp formats the current time.
func (s *Stamper) Stamp(linked bool) string {
	now := time.Now
	if s != nil && s.now != nil {
		now = s.now
	}
	return Format(now(), linked)
}
