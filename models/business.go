package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Business struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Description    string    `json:"description"`
	WhatsappNumber string    `json:"whatsapp_number"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	CreatedAt      time.Time `json:"created_at"`

	Services      []Service      `gorm:"foreignKey:BusinessID" json:"-"`
	Professionals []Professional `gorm:"foreignKey:BusinessID" json:"-"`
	Bookings      []Booking      `gorm:"foreignKey:BusinessID" json:"-"`
}

func (b *Business) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
