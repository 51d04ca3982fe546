package availability

import (
	"testing"
	"time"

	"slotwise-backend/models"
)

func booking(t *testing.T, start, end string) models.Booking {
	t.Helper()
	b := models.Booking{
		StartAt: mustInstant(t, start),
		Status:  models.BookingStatusConfirmed,
	}
	if end != "" {
		b.EndAt = mustInstant(t, end)
	}
	return b
}

func slotStarts(t *testing.T, starts ...string) []Slot {
	t.Helper()
	slots := make([]Slot, 0, len(starts))
	for _, s := range starts {
		slots = append(slots, Slot{Start: mustInstant(t, s)})
	}
	return slots
}

func TestFilterConflicts_BookingRemovesOverlap(t *testing.T) {
	// Booking 10:00-10:30. The 09:30 slot ends exactly at 10:00 and is
	// kept; the 10:00 slot fully overlaps and goes.
	slots := slotStarts(t,
		"2025-11-10T09:30:00Z",
		"2025-11-10T10:00:00Z",
		"2025-11-10T10:30:00Z",
	)
	bookings := []models.Booking{booking(t, "2025-11-10T10:00:00Z", "2025-11-10T10:30:00Z")}

	kept := FilterConflicts(slots, 30, bookings)
	if len(kept) != 2 {
		t.Fatalf("expected 2 slots kept, got %d", len(kept))
	}
	if !kept[0].Start.Equal(mustInstant(t, "2025-11-10T09:30:00Z")) {
		t.Errorf("09:30 slot should survive, got %v", kept[0].Start)
	}
	if !kept[1].Start.Equal(mustInstant(t, "2025-11-10T10:30:00Z")) {
		t.Errorf("10:30 slot should survive, got %v", kept[1].Start)
	}
}

func TestFilterConflicts_BoundaryTouchIsNotConflict(t *testing.T) {
	// Booking ending exactly at a slot's start does not exclude it.
	slots := slotStarts(t, "2025-11-10T10:30:00Z")
	bookings := []models.Booking{booking(t, "2025-11-10T10:00:00Z", "2025-11-10T10:30:00Z")}

	kept := FilterConflicts(slots, 30, bookings)
	if len(kept) != 1 {
		t.Fatalf("expected boundary slot kept, got %d slots", len(kept))
	}
}

func TestFilterConflicts_DerivedEnd(t *testing.T) {
	// No end_at stored: derived as start + service duration.
	slots := slotStarts(t, "2025-11-10T10:30:00Z", "2025-11-10T11:00:00Z")
	bookings := []models.Booking{booking(t, "2025-11-10T10:00:00Z", "")}

	kept := FilterConflicts(slots, 60, bookings)
	if len(kept) != 1 {
		t.Fatalf("expected 1 slot kept, got %d", len(kept))
	}
	if !kept[0].Start.Equal(mustInstant(t, "2025-11-10T11:00:00Z")) {
		t.Errorf("only the 11:00 slot should survive, got %v", kept[0].Start)
	}
}

func TestFilterConflicts_NoRetainedSlotOverlapsAnyBooking(t *testing.T) {
	slots := slotStarts(t,
		"2025-11-10T09:00:00Z", "2025-11-10T09:30:00Z", "2025-11-10T10:00:00Z",
		"2025-11-10T10:30:00Z", "2025-11-10T11:00:00Z", "2025-11-10T11:30:00Z",
	)
	bookings := []models.Booking{
		booking(t, "2025-11-10T09:15:00Z", "2025-11-10T09:45:00Z"),
		booking(t, "2025-11-10T11:00:00Z", "2025-11-10T12:00:00Z"),
	}

	kept := FilterConflicts(slots, 30, bookings)
	for _, s := range kept {
		end := s.Start.Add(30 * time.Minute)
		for _, b := range bookings {
			if s.Start.Before(b.EndAt) && end.After(b.StartAt) {
				t.Errorf("retained slot %v overlaps booking %v-%v", s.Start, b.StartAt, b.EndAt)
			}
		}
	}
	if len(kept) != 2 {
		t.Fatalf("expected 2 slots (10:00, 10:30), got %d", len(kept))
	}
}

func TestFilterConflicts_OrderPreserved(t *testing.T) {
	slots := slotStarts(t,
		"2025-11-10T09:00:00Z", "2025-11-10T09:30:00Z", "2025-11-10T10:00:00Z",
	)
	kept := FilterConflicts(slots, 30, nil)
	if len(kept) != len(slots) {
		t.Fatalf("no bookings should keep everything, got %d", len(kept))
	}
	for i := range kept {
		if !kept[i].Start.Equal(slots[i].Start) {
			t.Errorf("order changed at index %d", i)
		}
	}
}
