package repository

import (
	"errors"
	"time"

	"medimarket/internal/domain/entity"
	domainRepo "medimarket/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type insurancePlanRepository struct{}

func NewInsurancePlanRepository() domainRepo.InsurancePlanRepository {
	return &insurancePlanRepository{}
}

func (r *insurancePlanRepository) Create(db *gorm.DB, plan *entity.InsurancePlan) error {
	return db.Create(plan).Error
}

func (r *insurancePlanRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.InsurancePlan, error) {
	var plan entity.InsurancePlan
	err := db.Where("id = ?", id).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *insurancePlanRepository) FindApproved(db *gorm.DB) ([]entity.InsurancePlan, error) {
	var plans []entity.InsurancePlan
	err := db.Where("is_approved = ?", true).
		Order("provider_name ASC, name ASC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *insurancePlanRepository) FindPending(db *gorm.DB) ([]entity.InsurancePlan, error) {
	var plans []entity.InsurancePlan
	err := db.Where("is_approved = ?", false).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *insurancePlanRepository) FindByUploader(db *gorm.DB, userID uuid.UUID) ([]entity.InsurancePlan, error) {
	var plans []entity.InsurancePlan
	err := db.Where("uploaded_by = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// SetApproval toggles approval. The is_approved guard in the WHERE clause
// makes approve and revoke idempotent at the row level.
func (r *insurancePlanRepository) SetApproval(db *gorm.DB, id uuid.UUID, approved bool, approvedBy *uuid.UUID) (int64, error) {
	values := map[string]interface{}{
		"is_approved": approved,
	}
	if approved {
		values["approved_by"] = approvedBy
		values["approved_at"] = time.Now().UTC()
	} else {
		values["approved_by"] = nil
		values["approved_at"] = nil
	}

	result := db.Model(&entity.InsurancePlan{}).
		Where("id = ? AND is_approved = ?", id, !approved).
		Updates(values)
	return result.RowsAffected, result.Error
}

func (r *insurancePlanRepository) CountPending(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.InsurancePlan{}).
		Where("is_approved = ?", false).
		Count(&count).Error
	return count, err
}
