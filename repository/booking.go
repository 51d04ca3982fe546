package repository

import (
	"context"

	"slotwise-backend/models"
	"slotwise-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingRepository implements availability.BookingAccessor on top of
// gorm.
type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// ConfirmedBookings returns the confirmed bookings whose start falls
// within the given day, ordered by start time.
func (r *BookingRepository) ConfirmedBookings(ctx context.Context, professionalID uuid.UUID, date string) ([]models.Booking, error) {
	dayStart, dayEnd, err := utils.DayBounds(date)
	if err != nil {
		return nil, err
	}
	var bookings []models.Booking
	err = r.db.WithContext(ctx).
		Where("professional_id = ? AND status = ? AND start_at BETWEEN ? AND ?",
			professionalID, models.BookingStatusConfirmed, dayStart, dayEnd).
		Order("start_at").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListForDay returns every non-cancelled booking of a professional on a
// date, for the calendar view.
func (r *BookingRepository) ListForDay(ctx context.Context, professionalID uuid.UUID, date string) ([]models.Booking, error) {
	dayStart, dayEnd, err := utils.DayBounds(date)
	if err != nil {
		return nil, err
	}
	var bookings []models.Booking
	err = r.db.WithContext(ctx).
		Where("professional_id = ? AND status <> ? AND start_at BETWEEN ? AND ?",
			professionalID, models.BookingStatusCancelled, dayStart, dayEnd).
		Order("start_at").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
