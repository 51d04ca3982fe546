package repository

import (
	"context"
	"errors"

	"slotwise-backend/models"
	"slotwise-backend/services/availability"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceRepository implements availability.ServiceAccessor on top of
// gorm.
type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) GetServiceByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &availability.NotFoundError{Resource: "service", ID: id.String()}
		}
		return nil, err
	}
	return &service, nil
}

// List returns active services, optionally restricted to one business.
func (r *ServiceRepository) List(ctx context.Context, businessID *uuid.UUID) ([]models.Service, error) {
	query := r.db.WithContext(ctx).Where("active = ?", true)
	if businessID != nil {
		query = query.Where("business_id = ?", *businessID)
	}
	var services []models.Service
	if err := query.Order("name").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceRepository) Create(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}
