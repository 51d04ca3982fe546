package repository

import (
	"context"
	"errors"

	"slotwise-backend/models"
	"slotwise-backend/services/availability"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BusinessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

// List returns all businesses, newest first.
func (r *BusinessRepository) List(ctx context.Context) ([]models.Business, error) {
	var businesses []models.Business
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&businesses).Error; err != nil {
		return nil, err
	}
	return businesses, nil
}

func (r *BusinessRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	var business models.Business
	if err := r.db.WithContext(ctx).First(&business, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &availability.NotFoundError{Resource: "business", ID: id.String()}
		}
		return nil, err
	}
	return &business, nil
}

func (r *BusinessRepository) Create(ctx context.Context, business *models.Business) error {
	return r.db.WithContext(ctx).Create(business).Error
}
