package repository

import (
	"medimarket/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID, activeOnly bool) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	// Deactivate soft-disables a doctor instead of deleting the row.
	Deactivate(db *gorm.DB, id uuid.UUID) (int64, error)
	CountActiveByHospital(db *gorm.DB, hospitalID uuid.UUID) (int64, error)
}
