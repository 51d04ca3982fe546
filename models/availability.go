package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityRule is a recurring weekly open interval for a
// professional. Weekday uses ISO numbering (Monday=1 .. Sunday=7).
// Several rules may exist for the same (professional, weekday) to model
// split shifts; each is expanded independently.
type AvailabilityRule struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ProfessionalID  uuid.UUID `gorm:"type:uuid;index;not null" json:"professional_id"`
	Weekday         int       `gorm:"not null;check:weekday BETWEEN 1 AND 7" json:"weekday"`
	StartTime       string    `gorm:"type:varchar(8);not null" json:"start_time"` // "09:00:00"
	EndTime         string    `gorm:"type:varchar(8);not null" json:"end_time"`
	SlotSizeMinutes int       `json:"slot_size_minutes"`
}

// AvailabilityException is a date-specific override. IsClosed marks the
// professional fully closed that date and wins over every rule.
// StartTime/EndTime describe a narrowed window; the schema carries them
// but the engine does not apply window-narrowing yet.
type AvailabilityException struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;index;not null" json:"professional_id"`
	Date           string    `gorm:"type:date;index;not null" json:"date"` // YYYY-MM-DD
	IsClosed       bool      `gorm:"default:false" json:"is_closed"`
	StartTime      *string   `gorm:"type:varchar(8)" json:"start_time,omitempty"`
	EndTime        *string   `gorm:"type:varchar(8)" json:"end_time,omitempty"`
}

func (r *AvailabilityRule) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}

func (e *AvailabilityException) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}
