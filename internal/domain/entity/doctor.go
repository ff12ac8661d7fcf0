package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Doctor belongs to exactly one hospital. Doctors are never hard-deleted;
// hospital admins disable them via IsActive.
type Doctor struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HospitalID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"hospital_id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Specialization  string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Qualification   string          `gorm:"type:varchar(255)" json:"qualification,omitempty"`
	ExperienceYears int             `gorm:"default:0" json:"experience_years"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"consultation_fee"`
	AvailableDays   pq.StringArray  `gorm:"type:text[]" json:"available_days,omitempty"`
	AvailableFrom   string          `gorm:"type:time" json:"available_from,omitempty"`
	AvailableTo     string          `gorm:"type:time" json:"available_to,omitempty"`
	Bio             string          `gorm:"type:text" json:"bio,omitempty"`
	Email           string          `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone           string          `gorm:"type:varchar(20)" json:"phone,omitempty"`
	ImageURL        string          `gorm:"type:text" json:"image_url,omitempty"`
	IsActive        bool            `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
