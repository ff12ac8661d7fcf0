package repository

import (
	"errors"
	"time"

	"medimarket/internal/domain/entity"
	domainRepo "medimarket/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type hospitalRepository struct{}

func NewHospitalRepository() domainRepo.HospitalRepository {
	return &hospitalRepository{}
}

func (r *hospitalRepository) Create(db *gorm.DB, hospital *entity.Hospital) error {
	return db.Create(hospital).Error
}

func (r *hospitalRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Hospital, error) {
	var hospital entity.Hospital
	err := db.Where("id = ?", id).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepository) SearchApproved(db *gorm.DB, filter *entity.HospitalFilter) ([]entity.Hospital, error) {
	query := db.Where("status = ?", entity.HospitalStatusApproved)

	if filter != nil {
		if filter.Query != "" {
			query = query.Where("name ILIKE ?", "%"+filter.Query+"%")
		}
		if filter.City != "" {
			query = query.Where("city ILIKE ?", filter.City)
		}
		if filter.HospitalType != "" {
			query = query.Where("hospital_type = ?", filter.HospitalType)
		}
		if filter.Specialization != "" {
			query = query.Where("? = ANY(specializations)", filter.Specialization)
		}
	}

	var hospitals []entity.Hospital
	err := query.Order("rating DESC, name ASC").Find(&hospitals).Error
	if err != nil {
		return nil, err
	}
	return hospitals, nil
}

func (r *hospitalRepository) FindByStatus(db *gorm.DB, status entity.HospitalStatus) ([]entity.Hospital, error) {
	var hospitals []entity.Hospital
	err := db.Where("status = ?", status).
		Order("created_at DESC").
		Find(&hospitals).Error
	if err != nil {
		return nil, err
	}
	return hospitals, nil
}

func (r *hospitalRepository) FindByRegisteredBy(db *gorm.DB, userID uuid.UUID) ([]entity.Hospital, error) {
	var hospitals []entity.Hospital
	err := db.Where("registered_by = ?", userID).
		Order("created_at DESC").
		Find(&hospitals).Error
	if err != nil {
		return nil, err
	}
	return hospitals, nil
}

// Approve flips status pending -> approved. The WHERE guard makes the
// transition atomic: a second approve, or an approve of a rejected
// hospital, affects zero rows.
func (r *hospitalRepository) Approve(db *gorm.DB, id uuid.UUID, approvedBy uuid.UUID) (int64, error) {
	result := db.Model(&entity.Hospital{}).
		Where("id = ? AND status = ?", id, entity.HospitalStatusPending).
		Updates(map[string]interface{}{
			"status":      entity.HospitalStatusApproved,
			"approved_by": approvedBy,
			"approved_at": time.Now().UTC(),
		})
	return result.RowsAffected, result.Error
}

func (r *hospitalRepository) Reject(db *gorm.DB, id uuid.UUID, reason string) (int64, error) {
	result := db.Model(&entity.Hospital{}).
		Where("id = ? AND status = ?", id, entity.HospitalStatusPending).
		Updates(map[string]interface{}{
			"status":           entity.HospitalStatusRejected,
			"rejection_reason": reason,
		})
	return result.RowsAffected, result.Error
}

func (r *hospitalRepository) CountByStatus(db *gorm.DB, status entity.HospitalStatus) (int64, error) {
	var count int64
	err := db.Model(&entity.Hospital{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
