package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// ClockTime is a time of day without a date, serialized as HH:mm.
// The scheduling source sends slot boundaries this way ("09:00", "10:30").
type ClockTime struct {
	Time time.Time
}

func NewClockTime(hour, minute int) ClockTime {
	return ClockTime{Time: time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC)}
}

func (t *ClockTime) UnmarshalJSON(data []byte) error {
	// Strip the surrounding quotes
	str := string(data[1 : len(data)-1])
	parsedTime, err := time.Parse("15:04", str)
	if err != nil {
		parsedTime, err = time.Parse("15:04:05", str)
		if err != nil {
			return fmt.Errorf("failed to parse time: %v", err)
		}
	}
	*t = ClockTime{Time: parsedTime}
	return nil
}

func (t ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format("15:04"))
}

// On combines the clock time with a calendar day in the day's location.
func (t ClockTime) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		t.Time.Hour(), t.Time.Minute(), t.Time.Second(), 0, day.Location())
}
