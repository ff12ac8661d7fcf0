package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type BookingFormFieldRequest struct {
	FieldName  string   `json:"field_name" validate:"required,min=1,max=100"`
	FieldLabel string   `json:"field_label" validate:"required,min=1,max=255"`
	FieldType  string   `json:"field_type" validate:"required"`
	IsRequired bool     `json:"is_required"`
	Options    []string `json:"options"`
}

type SaveBookingFormRequest struct {
	Fields []BookingFormFieldRequest `json:"fields" validate:"required,dive"`
}

// Response DTOs

type BookingFormFieldResponse struct {
	ID         uuid.UUID `json:"id"`
	FieldName  string    `json:"field_name"`
	FieldLabel string    `json:"field_label"`
	FieldType  string    `json:"field_type"`
	IsRequired bool      `json:"is_required"`
	Options    []string  `json:"options,omitempty"`
	SortOrder  int       `json:"sort_order"`
}

type BookingFormResponse struct {
	HospitalID uuid.UUID                  `json:"hospital_id"`
	Fields     []BookingFormFieldResponse `json:"fields"`
}
