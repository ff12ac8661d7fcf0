package repository

import (
	"medimarket/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HospitalInsuranceRepository interface {
	Create(db *gorm.DB, link *entity.HospitalInsurance) error
	Delete(db *gorm.DB, hospitalID, planID uuid.UUID) (int64, error)
	Exists(db *gorm.DB, hospitalID, planID uuid.UUID) (bool, error)
	// FindApprovedPlansByHospital lists the approved plans a hospital accepts.
	FindApprovedPlansByHospital(db *gorm.DB, hospitalID uuid.UUID) ([]entity.InsurancePlan, error)
}
