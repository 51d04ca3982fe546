package utils

import (
	"testing"
	"time"
)

func TestWeekdayISO(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2025-11-10", 1}, // Monday
		{"2025-11-12", 3}, // Wednesday
		{"2025-11-15", 6}, // Saturday
		{"2025-11-16", 7}, // Sunday maps to 7, not 0
	}
	for _, tt := range tests {
		got, err := WeekdayISO(tt.date)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.date, err)
		}
		if got != tt.want {
			t.Errorf("%s: expected weekday %d, got %d", tt.date, tt.want, got)
		}
	}

	if _, err := WeekdayISO("not-a-date"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestDayBounds(t *testing.T) {
	start, end, err := DayBounds("2025-11-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantStart := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 11, 10, 23, 59, 59, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("start: expected %v, got %v", wantStart, start)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end: expected %v, got %v", wantEnd, end)
	}
}

func TestCombineUTC(t *testing.T) {
	tests := []struct {
		clock string
		want  time.Time
	}{
		{"09:00:00", time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC)},
		{"09:30", time.Date(2025, 11, 10, 9, 30, 0, 0, time.UTC)},
		{"23:59:59", time.Date(2025, 11, 10, 23, 59, 59, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := CombineUTC("2025-11-10", tt.clock)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.clock, err)
		}
		if !got.Equal(tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.clock, tt.want, got)
		}
		if got.Location() != time.UTC {
			t.Errorf("%s: instant must be UTC", tt.clock)
		}
	}

	if _, err := CombineUTC("2025-11-10", "9am"); err == nil {
		t.Error("expected error for malformed clock time")
	}
}

func TestValidateDateOnly(t *testing.T) {
	valid := []string{"2025-11-10", "2024-02-29"}
	invalid := []string{"", "2025-13-01", "2025-02-30", "10-11-2025", "2025-11-10T09:00:00Z", "tomorrow"}

	for _, d := range valid {
		if !ValidateDateOnly(d) {
			t.Errorf("%q should be valid", d)
		}
	}
	for _, d := range invalid {
		if ValidateDateOnly(d) {
			t.Errorf("%q should be invalid", d)
		}
	}
}
