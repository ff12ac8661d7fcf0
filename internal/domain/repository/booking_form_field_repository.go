package repository

import (
	"medimarket/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingFormFieldRepository interface {
	FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) ([]entity.BookingFormField, error)
	DeleteByHospitalID(db *gorm.DB, hospitalID uuid.UUID) error
	CreateBatch(db *gorm.DB, fields []entity.BookingFormField) error
	CountByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error)
}
