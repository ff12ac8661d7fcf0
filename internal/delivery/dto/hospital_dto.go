package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterHospitalRequest struct {
	Name               string   `json:"name" validate:"required,min=2,max=255"`
	RegistrationNumber string   `json:"registration_number" validate:"omitempty,max=100"`
	HospitalType       string   `json:"hospital_type" validate:"required,oneof=private government trust clinic"`
	BedCount           int      `json:"bed_count" validate:"omitempty,gte=0"`
	Address            string   `json:"address" validate:"required"`
	City               string   `json:"city" validate:"required,max=100"`
	State              string   `json:"state" validate:"required,max=100"`
	District           string   `json:"district" validate:"omitempty,max=100"`
	Pincode            string   `json:"pincode" validate:"omitempty,max=10"`
	Phone              string   `json:"phone" validate:"required,max=20"`
	Email              string   `json:"email" validate:"required,email"`
	Website            string   `json:"website" validate:"omitempty,url"`
	Description        string   `json:"description"`
	Specializations    []string `json:"specializations"`
	Amenities          []string `json:"amenities"`
	ImageURL           string   `json:"image_url" validate:"omitempty,url"`
}

type RejectHospitalRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

// SearchHospitalsRequest is bound from query parameters on the public listing
type SearchHospitalsRequest struct {
	Query          string `json:"q"`
	City           string `json:"city"`
	HospitalType   string `json:"hospital_type"`
	Specialization string `json:"specialization"`
}

// Response DTOs

type HospitalResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	RegistrationNumber string     `json:"registration_number,omitempty"`
	HospitalType       string     `json:"hospital_type"`
	BedCount           int        `json:"bed_count"`
	Address            string     `json:"address"`
	City               string     `json:"city"`
	State              string     `json:"state"`
	District           string     `json:"district,omitempty"`
	Pincode            string     `json:"pincode,omitempty"`
	Phone              string     `json:"phone"`
	Email              string     `json:"email"`
	Website            string     `json:"website,omitempty"`
	Description        string     `json:"description,omitempty"`
	Specializations    []string   `json:"specializations,omitempty"`
	Amenities          []string   `json:"amenities,omitempty"`
	ImageURL           string     `json:"image_url,omitempty"`
	Rating             float64    `json:"rating"`
	ReviewCount        int        `json:"review_count"`
	Status             string     `json:"status"`
	RejectionReason    string     `json:"rejection_reason,omitempty"`
	ApprovedAt         *time.Time `json:"approved_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type HospitalListResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
	Total     int                `json:"total"`
}
