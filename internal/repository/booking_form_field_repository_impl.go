package repository

import (
	"medimarket/internal/domain/entity"
	domainRepo "medimarket/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingFormFieldRepository struct{}

func NewBookingFormFieldRepository() domainRepo.BookingFormFieldRepository {
	return &bookingFormFieldRepository{}
}

func (r *bookingFormFieldRepository) FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) ([]entity.BookingFormField, error) {
	var fields []entity.BookingFormField
	err := db.Where("hospital_id = ?", hospitalID).
		Order("sort_order ASC").
		Find(&fields).Error
	if err != nil {
		return nil, err
	}
	return fields, nil
}

func (r *bookingFormFieldRepository) DeleteByHospitalID(db *gorm.DB, hospitalID uuid.UUID) error {
	return db.Where("hospital_id = ?", hospitalID).
		Delete(&entity.BookingFormField{}).Error
}

func (r *bookingFormFieldRepository) CreateBatch(db *gorm.DB, fields []entity.BookingFormField) error {
	if len(fields) == 0 {
		return nil
	}
	return db.Create(&fields).Error
}

func (r *bookingFormFieldRepository) CountByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.BookingFormField{}).
		Where("hospital_id = ?", hospitalID).
		Count(&count).Error
	return count, err
}
