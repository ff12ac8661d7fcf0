package entity

import "github.com/google/uuid"

// HospitalAdmin binds a user to the hospital they administer. Rows are
// created as a side effect of hospital approval, never directly.
type HospitalAdmin struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_hospital_admins_user_hospital" json:"user_id"`
	HospitalID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_hospital_admins_user_hospital" json:"hospital_id"`

	// Relationships
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (HospitalAdmin) TableName() string {
	return "hospital_admins"
}
