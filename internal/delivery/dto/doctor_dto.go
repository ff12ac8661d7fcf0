package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateDoctorRequest struct {
	Name            string          `json:"name" validate:"required,min=2,max=255"`
	Specialization  string          `json:"specialization" validate:"required,max=100"`
	Qualification   string          `json:"qualification" validate:"omitempty,max=255"`
	ExperienceYears int             `json:"experience_years" validate:"omitempty,gte=0,lte=80"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	AvailableDays   []string        `json:"available_days"`
	AvailableFrom   string          `json:"available_from" validate:"omitempty"`
	AvailableTo     string          `json:"available_to" validate:"omitempty"`
	Bio             string          `json:"bio"`
	Email           string          `json:"email" validate:"omitempty,email"`
	Phone           string          `json:"phone" validate:"omitempty,max=20"`
	ImageURL        string          `json:"image_url" validate:"omitempty,url"`
}

type UpdateDoctorRequest struct {
	Name            string          `json:"name" validate:"required,min=2,max=255"`
	Specialization  string          `json:"specialization" validate:"required,max=100"`
	Qualification   string          `json:"qualification" validate:"omitempty,max=255"`
	ExperienceYears int             `json:"experience_years" validate:"omitempty,gte=0,lte=80"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	AvailableDays   []string        `json:"available_days"`
	AvailableFrom   string          `json:"available_from" validate:"omitempty"`
	AvailableTo     string          `json:"available_to" validate:"omitempty"`
	Bio             string          `json:"bio"`
	Email           string          `json:"email" validate:"omitempty,email"`
	Phone           string          `json:"phone" validate:"omitempty,max=20"`
	ImageURL        string          `json:"image_url" validate:"omitempty,url"`
	IsActive        *bool           `json:"is_active"`
}

// Response DTOs

type DoctorResponse struct {
	ID              uuid.UUID       `json:"id"`
	HospitalID      uuid.UUID       `json:"hospital_id"`
	Name            string          `json:"name"`
	Specialization  string          `json:"specialization"`
	Qualification   string          `json:"qualification,omitempty"`
	ExperienceYears int             `json:"experience_years"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	AvailableDays   []string        `json:"available_days,omitempty"`
	AvailableFrom   string          `json:"available_from,omitempty"`
	AvailableTo     string          `json:"available_to,omitempty"`
	Bio             string          `json:"bio,omitempty"`
	Email           string          `json:"email,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	ImageURL        string          `json:"image_url,omitempty"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
