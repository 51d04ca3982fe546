package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Professional struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null" json:"business_id"`
	Name       string    `gorm:"not null" json:"name"`
	Role       string    `json:"role"`
	Bio        string    `json:"bio"`
	Active     bool      `gorm:"default:true" json:"active"`

	Services   []Service               `gorm:"many2many:service_professionals;" json:"-"`
	Rules      []AvailabilityRule      `gorm:"foreignKey:ProfessionalID" json:"-"`
	Exceptions []AvailabilityException `gorm:"foreignKey:ProfessionalID" json:"-"`
}

func (p *Professional) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
