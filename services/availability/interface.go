package availability

import (
	"context"
	"time"

	"slotwise-backend/models"

	"github.com/google/uuid"
)

// Slot is a candidate bookable start time. Its implicit end is
// Start plus the service duration; slots are derived values and are
// never persisted.
type Slot struct {
	Start time.Time `json:"start"`
}

// ServiceAccessor resolves the service whose duration drives the slot
// computation.
type ServiceAccessor interface {
	GetServiceByID(ctx context.Context, id uuid.UUID) (*models.Service, error)
}

// RuleStore exposes the recurring rules and date-specific exceptions
// for a professional. Both return empty slices, not errors, when
// nothing exists: a professional without rules simply does not work
// that day.
type RuleStore interface {
	RulesFor(ctx context.Context, professionalID uuid.UUID, weekday int) ([]models.AvailabilityRule, error)
	ExceptionsFor(ctx context.Context, professionalID uuid.UUID, date string) ([]models.AvailabilityException, error)
}

// BookingAccessor returns the confirmed bookings whose start falls
// within the given day for a professional.
type BookingAccessor interface {
	ConfirmedBookings(ctx context.Context, professionalID uuid.UUID, date string) ([]models.Booking, error)
}
