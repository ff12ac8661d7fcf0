package repository

import (
	"errors"

	"medimarket/internal/domain/entity"
	domainRepo "medimarket/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID, activeOnly bool) ([]entity.Doctor, error) {
	query := db.Where("hospital_id = ?", hospitalID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var doctors []entity.Doctor
	err := query.Order("name ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Save(doctor).Error
}

// Deactivate soft-disables a doctor. Returns affected rows: 0 = doctor
// missing or already inactive.
func (r *doctorRepository) Deactivate(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Doctor{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

func (r *doctorRepository) CountActiveByHospital(db *gorm.DB, hospitalID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Doctor{}).
		Where("hospital_id = ? AND is_active = ?", hospitalID, true).
		Count(&count).Error
	return count, err
}
