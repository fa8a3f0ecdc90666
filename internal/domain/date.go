package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// dateLayouts are the calendar formats accepted from application and registry payloads.
var dateLayouts = []string{time.DateOnly, "01/02/2006", time.RFC3339}

// CalendarDate is a day-granularity date that unmarshals from "2006-01-02",
// "01/02/2006" or RFC3339 and marshals back as "2006-01-02".
type CalendarDate struct {
	time.Time
}

// NewCalendarDate truncates t to its calendar day.
func NewCalendarDate(y int, m time.Month, d int) CalendarDate {
	return CalendarDate{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseCalendarDate parses s using the accepted layouts.
func ParseCalendarDate(s string) (CalendarDate, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewCalendarDate(t.Date()), nil
		}
	}
	return CalendarDate{}, fmt.Errorf("could not parse date '%s'", s)
}

func (d *CalendarDate) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = CalendarDate{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = CalendarDate{}
		return nil
	}
	parsed, err := ParseCalendarDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d CalendarDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(time.DateOnly))
}
