package repository

import (
	"medimarket/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HospitalAdminRepository interface {
	Create(db *gorm.DB, link *entity.HospitalAdmin) error
	// FindFirstByUserID resolves "the" hospital of an admin. A user linked
	// to several hospitals gets the first match.
	FindFirstByUserID(db *gorm.DB, userID uuid.UUID) (*entity.HospitalAdmin, error)
	FindByUserAndHospital(db *gorm.DB, userID, hospitalID uuid.UUID) (*entity.HospitalAdmin, error)
}
