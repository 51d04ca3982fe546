package repository

import (
	"context"
	"errors"

	"slotwise-backend/models"
	"slotwise-backend/services/availability"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfessionalRepository struct {
	db *gorm.DB
}

func NewProfessionalRepository(db *gorm.DB) *ProfessionalRepository {
	return &ProfessionalRepository{db: db}
}

func (r *ProfessionalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Professional, error) {
	var professional models.Professional
	if err := r.db.WithContext(ctx).First(&professional, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &availability.NotFoundError{Resource: "professional", ID: id.String()}
		}
		return nil, err
	}
	return &professional, nil
}

// List returns active professionals, optionally filtered by business
// and by the service they perform (via the service_professionals link
// table).
func (r *ProfessionalRepository) List(ctx context.Context, businessID, serviceID *uuid.UUID) ([]models.Professional, error) {
	query := r.db.WithContext(ctx).Where("active = ?", true)
	if businessID != nil {
		query = query.Where("business_id = ?", *businessID)
	}
	if serviceID != nil {
		query = query.Where(
			"id IN (?)",
			r.db.Table("service_professionals").
				Select("professional_id").
				Where("service_id = ?", *serviceID),
		)
	}
	var professionals []models.Professional
	if err := query.Order("name").Find(&professionals).Error; err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *ProfessionalRepository) Create(ctx context.Context, professional *models.Professional) error {
	return r.db.WithContext(ctx).Create(professional).Error
}

// AssignService links a professional to a service it performs.
func (r *ProfessionalRepository) AssignService(ctx context.Context, professionalID, serviceID uuid.UUID) error {
	professional := models.Professional{ID: professionalID}
	return r.db.WithContext(ctx).Model(&professional).
		Association("Services").
		Append(&models.Service{ID: serviceID})
}
