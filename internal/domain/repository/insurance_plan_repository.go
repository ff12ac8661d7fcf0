package repository

import (
	"medimarket/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InsurancePlanRepository interface {
	Create(db *gorm.DB, plan *entity.InsurancePlan) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.InsurancePlan, error)
	FindApproved(db *gorm.DB) ([]entity.InsurancePlan, error)
	FindPending(db *gorm.DB) ([]entity.InsurancePlan, error)
	FindByUploader(db *gorm.DB, userID uuid.UUID) ([]entity.InsurancePlan, error)
	// SetApproval toggles is_approved and stamps/clears approved_at and
	// approved_by. Returns affected rows: 0 = plan not found or already in
	// the requested state.
	SetApproval(db *gorm.DB, id uuid.UUID, approved bool, approvedBy *uuid.UUID) (int64, error)
	CountPending(db *gorm.DB) (int64, error)
}
