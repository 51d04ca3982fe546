// services/completion_service.go
package services

import (
	"time"

	"slotwise-backend/models"
	"slotwise-backend/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompletionService moves confirmed bookings whose end has passed into
// the completed state, so the calendar reflects history without manual
// bookkeeping.
type CompletionService struct {
	db *gorm.DB
}

func NewCompletionService(db *gorm.DB) *CompletionService {
	return &CompletionService{db: db}
}

func (s *CompletionService) StartScheduler() {
	c := cron.New()

	// Run nightly at 2:30 AM
	c.AddFunc("30 2 * * *", s.CompleteElapsedBookings)

	c.Start()
	utils.GetLogger().Info("booking completion scheduler started")
}

func (s *CompletionService) CompleteElapsedBookings() {
	logger := utils.GetLogger()
	now := time.Now().UTC()

	result := s.db.Model(&models.Booking{}).
		Where("status = ? AND end_at < ?", models.BookingStatusConfirmed, now).
		Update("status", models.BookingStatusCompleted)
	if result.Error != nil {
		logger.Error("failed to complete elapsed bookings", zap.Error(result.Error))
		return
	}

	if result.RowsAffected > 0 {
		logger.Info("completed elapsed bookings", zap.Int64("count", result.RowsAffected))
	}
}
