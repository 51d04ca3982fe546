package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BusinessID      uuid.UUID `gorm:"type:uuid;index;not null" json:"business_id"`
	Name            string    `gorm:"not null" json:"name"`
	Price           float64   `gorm:"type:decimal(10,2)" json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
	Active          bool      `gorm:"default:true" json:"active"`

	Professionals []Professional `gorm:"many2many:service_professionals;" json:"-"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
