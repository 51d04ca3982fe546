package chat

import (
	"context"
	"time"

	"slotwise-backend/models"
	"slotwise-backend/services"
	"slotwise-backend/services/availability"

	"github.com/google/uuid"
)

// Intent is the structured result extracted from a free-text customer
// message.
type Intent struct {
	Intent  string `json:"intent"` // check_availability | create_booking | small_talk
	Service string `json:"service,omitempty"`
	Date    string `json:"date,omitempty"` // YYYY-MM-DD
	Time    string `json:"time,omitempty"` // HH:MM
}

const (
	IntentCheckAvailability = "check_availability"
	IntentCreateBooking     = "create_booking"
	IntentSmallTalk         = "small_talk"
)

// IntentExtractor turns a customer message into an Intent. Extractors
// must not fail the conversation: unparseable output degrades to
// small_talk.
type IntentExtractor interface {
	Extract(ctx context.Context, message string) (*Intent, error)
}

// Session is the per-sender conversation context: what was offered
// last, so a bare "10:30" reply can complete a booking.
type Session struct {
	ServiceID      string      `json:"service_id,omitempty"`
	ProfessionalID string      `json:"professional_id,omitempty"`
	Date           string      `json:"date,omitempty"`
	OfferedSlots   []time.Time `json:"offered_slots,omitempty"`
}

type SessionStore interface {
	Get(ctx context.Context, sender string) (*Session, error)
	Set(ctx context.Context, sender string, session *Session) error
	Clear(ctx context.Context, sender string) error
}

// ServiceCatalog lists the services a business offers.
type ServiceCatalog interface {
	List(ctx context.Context, businessID *uuid.UUID) ([]models.Service, error)
}

// ProfessionalDirectory lists professionals, optionally restricted to
// those performing a service.
type ProfessionalDirectory interface {
	List(ctx context.Context, businessID, serviceID *uuid.UUID) ([]models.Professional, error)
}

// SlotFinder is the availability engine surface the chat layer needs.
type SlotFinder interface {
	Compute(ctx context.Context, businessID, serviceID, professionalID uuid.UUID, date string) ([]availability.Slot, error)
}

// BookingCreator is the write side used when a customer confirms a
// time.
type BookingCreator interface {
	Create(ctx context.Context, input services.CreateBookingInput) (*models.Booking, error)
}
