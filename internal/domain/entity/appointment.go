package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusRejected  AppointmentStatus = "rejected"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment links a patient to a hospital and optionally one of its
// doctors. Lifecycle: pending -> confirmed -> completed, pending -> rejected,
// pending|confirmed -> cancelled. Completed, rejected and cancelled are
// terminal.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	HospitalID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"hospital_id"`
	DoctorID        *uuid.UUID        `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index" json:"appointment_date"`
	AppointmentTime string            `gorm:"type:time" json:"appointment_time,omitempty"`
	AssignedTime    string            `gorm:"type:time" json:"assigned_time,omitempty"`
	Status          AppointmentStatus `gorm:"type:appointment_status;not null;default:'pending';index" json:"status"`
	PatientName     string            `gorm:"type:varchar(255);not null" json:"patient_name"`
	PatientPhone    string            `gorm:"type:varchar(20)" json:"patient_phone,omitempty"`
	PatientEmail    string            `gorm:"type:varchar(255)" json:"patient_email,omitempty"`
	Symptoms        string            `gorm:"type:text" json:"symptoms,omitempty"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	AdminNotes      string            `gorm:"type:text" json:"admin_notes,omitempty"`
	CustomFields    JSON              `gorm:"type:jsonb" json:"custom_fields,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Doctor   *Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment is awaiting hospital action
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsConfirmed checks if the hospital has confirmed the appointment
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

// IsTerminal reports whether no further transition is permitted
func (a *Appointment) IsTerminal() bool {
	switch a.Status {
	case AppointmentStatusCompleted, AppointmentStatusRejected, AppointmentStatusCancelled:
		return true
	}
	return false
}

// CanCancel reports whether the owning patient may still cancel
func (a *Appointment) CanCancel() bool {
	return a.Status == AppointmentStatusPending || a.Status == AppointmentStatusConfirmed
}
