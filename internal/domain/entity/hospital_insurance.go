package entity

import "github.com/google/uuid"

// HospitalInsurance links a hospital to an insurance plan it accepts
type HospitalInsurance struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HospitalID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_hospital_insurance_pair" json:"hospital_id"`
	InsurancePlanID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_hospital_insurance_pair" json:"insurance_plan_id"`

	// Relationships
	InsurancePlan *InsurancePlan `gorm:"foreignKey:InsurancePlanID" json:"insurance_plan,omitempty"`
}

func (HospitalInsurance) TableName() string {
	return "hospital_insurance"
}
