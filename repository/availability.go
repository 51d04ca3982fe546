package repository

import (
	"context"

	"slotwise-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RuleRepository implements availability.RuleStore on top of gorm.
type RuleRepository struct {
	db *gorm.DB
}

func NewRuleRepository(db *gorm.DB) *RuleRepository {
	return &RuleRepository{db: db}
}

// RulesFor returns the recurring rules for a professional on an ISO
// weekday, ordered by start time. An empty result is not an error:
// no rules means the professional does not work that day.
func (r *RuleRepository) RulesFor(ctx context.Context, professionalID uuid.UUID, weekday int) ([]models.AvailabilityRule, error) {
	var rules []models.AvailabilityRule
	err := r.db.WithContext(ctx).
		Where("professional_id = ? AND weekday = ?", professionalID, weekday).
		Order("start_time").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

// ExceptionsFor returns the date-specific overrides for a professional.
func (r *RuleRepository) ExceptionsFor(ctx context.Context, professionalID uuid.UUID, date string) ([]models.AvailabilityException, error) {
	var exceptions []models.AvailabilityException
	err := r.db.WithContext(ctx).
		Where("professional_id = ? AND date = ?", professionalID, date).
		Find(&exceptions).Error
	if err != nil {
		return nil, err
	}
	return exceptions, nil
}

// ListRules returns every rule of a professional for the dashboard.
func (r *RuleRepository) ListRules(ctx context.Context, professionalID uuid.UUID) ([]models.AvailabilityRule, error) {
	var rules []models.AvailabilityRule
	err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("weekday, start_time").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *RuleRepository) CreateRule(ctx context.Context, rule *models.AvailabilityRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *RuleRepository) ListExceptions(ctx context.Context, professionalID uuid.UUID) ([]models.AvailabilityException, error) {
	var exceptions []models.AvailabilityException
	err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("date").
		Find(&exceptions).Error
	if err != nil {
		return nil, err
	}
	return exceptions, nil
}

func (r *RuleRepository) CreateException(ctx context.Context, exception *models.AvailabilityException) error {
	return r.db.WithContext(ctx).Create(exception).Error
}
