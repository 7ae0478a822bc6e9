package clock

import (
	"time"
)

// SystemClock serves wall-clock time in the agency's timezone. The window
// rules compare against local business time, never UTC.
type SystemClock struct {
	location *time.Location
}

func NewSystemClock(timezone string) (*SystemClock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &SystemClock{location: loc}, nil
}

func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.location)
}
