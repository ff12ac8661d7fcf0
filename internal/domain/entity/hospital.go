package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// HospitalStatus represents the verification status of a hospital
type HospitalStatus string

const (
	HospitalStatusPending  HospitalStatus = "pending"
	HospitalStatusApproved HospitalStatus = "approved"
	HospitalStatusRejected HospitalStatus = "rejected"
)

// Hospital represents a registered medical facility.
// Only approved hospitals are publicly visible.
type Hospital struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name               string         `gorm:"type:varchar(255);not null;index" json:"name"`
	RegistrationNumber string         `gorm:"type:varchar(100)" json:"registration_number,omitempty"`
	HospitalType       string         `gorm:"type:varchar(50);not null;default:'private'" json:"hospital_type"`
	BedCount           int            `gorm:"default:0" json:"bed_count"`
	Address            string         `gorm:"type:text;not null" json:"address"`
	City               string         `gorm:"type:varchar(100);not null;index" json:"city"`
	State              string         `gorm:"type:varchar(100);not null" json:"state"`
	District           string         `gorm:"type:varchar(100)" json:"district,omitempty"`
	Pincode            string         `gorm:"type:varchar(10)" json:"pincode,omitempty"`
	Phone              string         `gorm:"type:varchar(20);not null" json:"phone"`
	Email              string         `gorm:"type:varchar(255);not null" json:"email"`
	Website            string         `gorm:"type:text" json:"website,omitempty"`
	Description        string         `gorm:"type:text" json:"description,omitempty"`
	Specializations    pq.StringArray `gorm:"type:text[]" json:"specializations,omitempty"`
	Amenities          pq.StringArray `gorm:"type:text[]" json:"amenities,omitempty"`
	ImageURL           string         `gorm:"type:text" json:"image_url,omitempty"`
	GalleryURLs        pq.StringArray `gorm:"type:text[]" json:"gallery_urls,omitempty"`
	Rating             float64        `gorm:"type:numeric(2,1);default:0" json:"rating"`
	ReviewCount        int            `gorm:"default:0" json:"review_count"`
	Status             HospitalStatus `gorm:"type:hospital_status;not null;default:'pending';index" json:"status"`
	ApprovedBy         *uuid.UUID     `gorm:"type:uuid" json:"approved_by,omitempty"`
	ApprovedAt         *time.Time     `json:"approved_at,omitempty"`
	RejectionReason    string         `gorm:"type:text" json:"rejection_reason,omitempty"`
	RegisteredBy       *uuid.UUID     `gorm:"type:uuid;index" json:"registered_by,omitempty"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctors []Doctor `gorm:"foreignKey:HospitalID" json:"doctors,omitempty"`
}

func (Hospital) TableName() string {
	return "hospitals"
}

// IsApproved checks if the hospital is publicly visible
func (h *Hospital) IsApproved() bool {
	return h.Status == HospitalStatusApproved
}

// IsPending checks if the hospital is awaiting verification
func (h *Hospital) IsPending() bool {
	return h.Status == HospitalStatusPending
}

// HospitalFilter is a domain-level filter for public hospital search.
// Used by repository layer to avoid coupling with delivery DTOs.
type HospitalFilter struct {
	Query          string // ILIKE match on name
	City           string
	HospitalType   string
	Specialization string // membership test on specializations
}
