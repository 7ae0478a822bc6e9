package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format the agency backend expects for every date field.
const DateLayout = "01/02/2006"

func parseDate(str string) (time.Time, error) {
	// The backend sends MM/DD/YYYY, the calendar source sometimes ISO
	parsedDate, err := time.Parse(DateLayout, str)
	if err != nil {
		parsedDate, err = time.Parse(time.RFC3339, str)
		if err != nil {
			parsedDate, err = time.Parse("2006-01-02", str)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse date: %v", err)
			}
		}
	}

	return parsedDate, nil
}

// Date is a calendar day without a time component, serialized as MM/DD/YYYY.
type Date struct {
	Date time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Date: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

func (t *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" || string(data) == `""` {
		return nil
	}

	// Strip the surrounding quotes
	str := string(data[1 : len(data)-1])

	parsedDate, err := parseDate(str)
	if err != nil {
		return err
	}

	*t = Date{Date: parsedDate}
	return nil
}

func (t Date) MarshalJSON() ([]byte, error) {
	if t.Date.IsZero() {
		return json.Marshal("")
	}

	return json.Marshal(t.Date.Format(DateLayout))
}

func (t Date) IsZero() bool {
	return t.Date.IsZero()
}

func (t Date) String() string {
	if t.Date.IsZero() {
		return ""
	}
	return t.Date.Format(DateLayout)
}
