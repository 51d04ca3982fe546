package availability

import (
	"time"

	"slotwise-backend/models"
	"slotwise-backend/utils"
)

// FilterConflicts drops every candidate slot that overlaps a confirmed
// booking, preserving order. Overlap is the half-open interval test
// slot.start < b.end && slot.end > b.start: a slot ending exactly when
// a booking starts is not a conflict, and vice versa.
func FilterConflicts(slots []Slot, serviceDurationMin int, bookings []models.Booking) []Slot {
	if len(bookings) == 0 {
		return slots
	}

	kept := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		slotEnd := utils.AddMinutes(slot.Start, serviceDurationMin)
		if !overlapsAny(slot.Start, slotEnd, serviceDurationMin, bookings) {
			kept = append(kept, slot)
		}
	}
	return kept
}

func overlapsAny(start, end time.Time, serviceDurationMin int, bookings []models.Booking) bool {
	for _, b := range bookings {
		bEnd := b.EndAt
		if bEnd.IsZero() {
			// end_at is authoritative when present; derive it otherwise
			bEnd = utils.AddMinutes(b.StartAt, serviceDurationMin)
		}
		if start.Before(bEnd) && end.After(b.StartAt) {
			return true
		}
	}
	return false
}
