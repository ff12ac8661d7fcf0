package repository

import (
	"medimarket/internal/domain/entity"
	domainRepo "medimarket/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type hospitalInsuranceRepository struct{}

func NewHospitalInsuranceRepository() domainRepo.HospitalInsuranceRepository {
	return &hospitalInsuranceRepository{}
}

func (r *hospitalInsuranceRepository) Create(db *gorm.DB, link *entity.HospitalInsurance) error {
	return db.Create(link).Error
}

func (r *hospitalInsuranceRepository) Delete(db *gorm.DB, hospitalID, planID uuid.UUID) (int64, error) {
	result := db.Where("hospital_id = ? AND insurance_plan_id = ?", hospitalID, planID).
		Delete(&entity.HospitalInsurance{})
	return result.RowsAffected, result.Error
}

func (r *hospitalInsuranceRepository) Exists(db *gorm.DB, hospitalID, planID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.HospitalInsurance{}).
		Where("hospital_id = ? AND insurance_plan_id = ?", hospitalID, planID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *hospitalInsuranceRepository) FindApprovedPlansByHospital(db *gorm.DB, hospitalID uuid.UUID) ([]entity.InsurancePlan, error) {
	var plans []entity.InsurancePlan
	err := db.Model(&entity.InsurancePlan{}).
		Joins("JOIN hospital_insurance ON hospital_insurance.insurance_plan_id = insurance_plans.id").
		Where("hospital_insurance.hospital_id = ? AND insurance_plans.is_approved = ?", hospitalID, true).
		Order("insurance_plans.provider_name ASC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}
