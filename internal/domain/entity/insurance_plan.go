package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Uploader types for insurance plans
const (
	PlanUploaderInsuranceAdmin = "insurance_admin"
	PlanUploaderHospital       = "hospital"
)

// InsurancePlan is submitted by an insurance admin or a hospital and only
// appears in public comparisons once a super admin approves it. Approval is
// reversible; there is no rejected terminal state.
type InsurancePlan struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProviderName     string          `gorm:"type:varchar(255);not null;index" json:"provider_name"`
	Name             string          `gorm:"type:varchar(255);not null" json:"name"`
	PlanType         string          `gorm:"type:varchar(50);not null;default:'individual'" json:"plan_type"`
	CoverageAmount   decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"coverage_amount"`
	PremiumMonthly   decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"premium_monthly"`
	PremiumYearly    decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"premium_yearly"`
	Features         pq.StringArray  `gorm:"type:text[]" json:"features,omitempty"`
	Exclusions       pq.StringArray  `gorm:"type:text[]" json:"exclusions,omitempty"`
	NetworkHospitals int             `gorm:"default:0" json:"network_hospitals"`
	WaitingPeriod    string          `gorm:"type:varchar(100)" json:"waiting_period,omitempty"`
	ClaimProcess     string          `gorm:"type:text" json:"claim_process,omitempty"`
	Description      string          `gorm:"type:text" json:"description,omitempty"`
	IsApproved       bool            `gorm:"not null;default:false;index" json:"is_approved"`
	ApprovedBy       *uuid.UUID      `gorm:"type:uuid" json:"approved_by,omitempty"`
	ApprovedAt       *time.Time      `json:"approved_at,omitempty"`
	UploadedBy       *uuid.UUID      `gorm:"type:uuid;index" json:"uploaded_by,omitempty"`
	UploadedByType   string          `gorm:"type:varchar(50)" json:"uploaded_by_type,omitempty"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (InsurancePlan) TableName() string {
	return "insurance_plans"
}
