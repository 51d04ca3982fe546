package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

type Booking struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BusinessID     uuid.UUID `gorm:"type:uuid;index;not null" json:"business_id"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;index;not null" json:"professional_id"`
	ServiceID      uuid.UUID `gorm:"type:uuid;index;not null" json:"service_id"`
	CustomerName   string    `json:"customer_name"`
	CustomerPhone  string    `json:"customer_phone"`
	StartAt        time.Time `gorm:"index;not null" json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	Status         string    `gorm:"type:varchar(20);default:'confirmed'" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
