// utils/dates.go
package utils

import (
	"fmt"
	"time"
)

const DateOnlyLayout = "2006-01-02"

// WeekdayISO converts a YYYY-MM-DD string into an ISO weekday
// (Monday=1 .. Sunday=7). The date is parsed as UTC midnight so the
// result never depends on the server's local timezone. This is the one
// place where Go's Sunday=0 numbering is mapped into the rule schema's
// 1..7 space.
func WeekdayISO(dateOnly string) (int, error) {
	t, err := time.ParseInLocation(DateOnlyLayout, dateOnly, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", dateOnly, err)
	}
	wd := int(t.Weekday()) // 0=Sunday .. 6=Saturday
	if wd == 0 {
		return 7, nil
	}
	return wd, nil
}

// DayBounds returns 00:00:00 and 23:59:59 UTC for the given date,
// used to bound booking queries to a single day.
func DayBounds(dateOnly string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation(DateOnlyLayout, dateOnly, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", dateOnly, err)
	}
	end := t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return t, end, nil
}

// CombineUTC builds an absolute instant from a date and a time-of-day
// string. Accepts HH:MM or HH:MM:SS.
func CombineUTC(dateOnly, clock string) (time.Time, error) {
	layout := DateOnlyLayout + "T15:04:05"
	if len(clock) == len("15:04") {
		layout = DateOnlyLayout + "T15:04"
	}
	t, err := time.ParseInLocation(layout, dateOnly+"T"+clock, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q on %q: %w", clock, dateOnly, err)
	}
	return t, nil
}

func AddMinutes(t time.Time, minutes int) time.Time {
	return t.Add(time.Duration(minutes) * time.Minute)
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
