package repository

import (
	"medimarket/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HospitalRepository interface {
	Create(db *gorm.DB, hospital *entity.Hospital) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Hospital, error)
	// SearchApproved returns only approved hospitals matching the filter.
	SearchApproved(db *gorm.DB, filter *entity.HospitalFilter) ([]entity.Hospital, error)
	FindByStatus(db *gorm.DB, status entity.HospitalStatus) ([]entity.Hospital, error)
	FindByRegisteredBy(db *gorm.DB, userID uuid.UUID) ([]entity.Hospital, error)
	// Approve atomically flips a pending hospital to approved.
	// Returns affected rows: 0 means the hospital was not pending.
	Approve(db *gorm.DB, id uuid.UUID, approvedBy uuid.UUID) (int64, error)
	// Reject atomically flips a pending hospital to rejected with a reason.
	Reject(db *gorm.DB, id uuid.UUID, reason string) (int64, error)
	CountByStatus(db *gorm.DB, status entity.HospitalStatus) (int64, error)
}
