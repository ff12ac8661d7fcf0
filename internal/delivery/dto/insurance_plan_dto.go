package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type SubmitInsurancePlanRequest struct {
	ProviderName     string          `json:"provider_name" validate:"required,min=2,max=255"`
	Name             string          `json:"name" validate:"required,min=2,max=255"`
	PlanType         string          `json:"plan_type" validate:"omitempty,max=100"`
	CoverageAmount   decimal.Decimal `json:"coverage_amount"`
	PremiumMonthly   decimal.Decimal `json:"premium_monthly"`
	PremiumYearly    decimal.Decimal `json:"premium_yearly"`
	Features         []string        `json:"features"`
	Exclusions       []string        `json:"exclusions"`
	NetworkHospitals int             `json:"network_hospitals" validate:"gte=0"`
	WaitingPeriod    string          `json:"waiting_period"`
	ClaimProcess     string          `json:"claim_process"`
}

type LinkInsurancePlanRequest struct {
	InsurancePlanID uuid.UUID `json:"insurance_plan_id" validate:"required"`
}

// Response DTOs

type InsurancePlanResponse struct {
	ID               uuid.UUID       `json:"id"`
	ProviderName     string          `json:"provider_name"`
	Name             string          `json:"name"`
	PlanType         string          `json:"plan_type,omitempty"`
	CoverageAmount   decimal.Decimal `json:"coverage_amount"`
	PremiumMonthly   decimal.Decimal `json:"premium_monthly"`
	PremiumYearly    decimal.Decimal `json:"premium_yearly"`
	Features         []string        `json:"features"`
	Exclusions       []string        `json:"exclusions"`
	NetworkHospitals int             `json:"network_hospitals"`
	WaitingPeriod    string          `json:"waiting_period,omitempty"`
	ClaimProcess     string          `json:"claim_process,omitempty"`
	IsApproved       bool            `json:"is_approved"`
	UploadedByType   string          `json:"uploaded_by_type,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type InsurancePlanListResponse struct {
	Plans []InsurancePlanResponse `json:"plans"`
	Total int                     `json:"total"`
}
