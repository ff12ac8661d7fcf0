package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	HospitalID      uuid.UUID              `json:"hospital_id" validate:"required"`
	DoctorID        *uuid.UUID             `json:"doctor_id"`
	AppointmentDate string                 `json:"appointment_date" validate:"required"`
	AppointmentTime string                 `json:"appointment_time" validate:"omitempty"`
	PatientName     string                 `json:"patient_name" validate:"required,min=2,max=255"`
	PatientPhone    string                 `json:"patient_phone" validate:"omitempty,max=20"`
	PatientEmail    string                 `json:"patient_email" validate:"omitempty,email"`
	Symptoms        string                 `json:"symptoms"`
	Notes           string                 `json:"notes"`
	CustomFields    map[string]interface{} `json:"custom_fields"`
}

type ConfirmAppointmentRequest struct {
	AssignedTime string `json:"assigned_time" validate:"omitempty"`
	AdminNotes   string `json:"admin_notes"`
}

type RejectAppointmentRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID              `json:"id"`
	UserID          uuid.UUID              `json:"user_id"`
	HospitalID      uuid.UUID              `json:"hospital_id"`
	DoctorID        *uuid.UUID             `json:"doctor_id,omitempty"`
	AppointmentDate string                 `json:"appointment_date"`
	AppointmentTime string                 `json:"appointment_time,omitempty"`
	AssignedTime    string                 `json:"assigned_time,omitempty"`
	Status          string                 `json:"status"`
	PatientName     string                 `json:"patient_name"`
	PatientPhone    string                 `json:"patient_phone,omitempty"`
	PatientEmail    string                 `json:"patient_email,omitempty"`
	Symptoms        string                 `json:"symptoms,omitempty"`
	Notes           string                 `json:"notes,omitempty"`
	AdminNotes      string                 `json:"admin_notes,omitempty"`
	CustomFields    map[string]interface{} `json:"custom_fields,omitempty"`
	Hospital        *HospitalResponse      `json:"hospital,omitempty"`
	Doctor          *DoctorResponse        `json:"doctor,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
