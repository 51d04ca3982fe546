// services/booking_service.go
package services

import (
	"context"
	"errors"
	"time"

	"slotwise-backend/models"
	"slotwise-backend/services/availability"
	"slotwise-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSlotTaken is returned when the requested interval was booked
// between the availability read and the booking commit.
var ErrSlotTaken = errors.New("slot already booked")

type CreateBookingInput struct {
	BusinessID     uuid.UUID
	ProfessionalID uuid.UUID
	ServiceID      uuid.UUID
	CustomerName   string
	CustomerPhone  string
	StartAt        time.Time
}

// BookingService owns booking creation. Two concurrent availability
// reads can legitimately offer the same free slot to two callers, so
// the overlap check is repeated here inside a transaction that locks
// the professional's confirmed bookings before inserting.
type BookingService struct {
	db       *gorm.DB
	services availability.ServiceAccessor
	logger   *zap.Logger
}

func NewBookingService(db *gorm.DB, services availability.ServiceAccessor, logger *zap.Logger) *BookingService {
	return &BookingService{db: db, services: services, logger: logger}
}

func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	service, err := s.services.GetServiceByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}
	if service.BusinessID != input.BusinessID {
		return nil, &availability.NotFoundError{Resource: "service", ID: input.ServiceID.String()}
	}

	duration := service.DurationMinutes
	if duration <= 0 {
		duration = availability.DefaultServiceDurationMinutes
	}

	booking := &models.Booking{
		BusinessID:     input.BusinessID,
		ProfessionalID: input.ProfessionalID,
		ServiceID:      input.ServiceID,
		CustomerName:   input.CustomerName,
		CustomerPhone:  input.CustomerPhone,
		StartAt:        input.StartAt.UTC(),
		EndAt:          utils.AddMinutes(input.StartAt.UTC(), duration),
		Status:         models.BookingStatusConfirmed,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var clashing []models.Booking
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("professional_id = ? AND status = ? AND start_at < ? AND end_at > ?",
				input.ProfessionalID, models.BookingStatusConfirmed, booking.EndAt, booking.StartAt).
			Limit(1).
			Find(&clashing).Error
		if err != nil {
			return err
		}
		if len(clashing) > 0 {
			return ErrSlotTaken
		}
		return tx.Create(booking).Error
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.String("bookingID", booking.ID.String()),
		zap.String("professionalID", booking.ProfessionalID.String()),
		zap.Time("startAt", booking.StartAt))
	return booking, nil
}

// Cancel marks a booking cancelled so its interval becomes bookable
// again.
func (s *BookingService) Cancel(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, models.BookingStatusConfirmed).
		Update("status", models.BookingStatusCancelled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &availability.NotFoundError{Resource: "booking", ID: id.String()}
	}
	return nil
}
