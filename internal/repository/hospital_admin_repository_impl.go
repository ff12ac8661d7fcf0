package repository

import (
	"errors"

	"medimarket/internal/domain/entity"
	domainRepo "medimarket/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type hospitalAdminRepository struct{}

func NewHospitalAdminRepository() domainRepo.HospitalAdminRepository {
	return &hospitalAdminRepository{}
}

func (r *hospitalAdminRepository) Create(db *gorm.DB, link *entity.HospitalAdmin) error {
	return db.Create(link).Error
}

func (r *hospitalAdminRepository) FindFirstByUserID(db *gorm.DB, userID uuid.UUID) (*entity.HospitalAdmin, error) {
	var link entity.HospitalAdmin
	err := db.Where("user_id = ?", userID).
		Order("id ASC").
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (r *hospitalAdminRepository) FindByUserAndHospital(db *gorm.DB, userID, hospitalID uuid.UUID) (*entity.HospitalAdmin, error) {
	var link entity.HospitalAdmin
	err := db.Where("user_id = ? AND hospital_id = ?", userID, hospitalID).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}
