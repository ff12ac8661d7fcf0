package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// FormFieldType enumerates the input kinds a hospital may place on its
// booking form
type FormFieldType string

const (
	FieldTypeText     FormFieldType = "text"
	FieldTypeNumber   FormFieldType = "number"
	FieldTypeEmail    FormFieldType = "email"
	FieldTypePhone    FormFieldType = "phone"
	FieldTypeDate     FormFieldType = "date"
	FieldTypeSelect   FormFieldType = "select"
	FieldTypeTextarea FormFieldType = "textarea"
	FieldTypeCheckbox FormFieldType = "checkbox"
)

// ValidFieldType reports whether t is one of the enumerated field types
func ValidFieldType(t FormFieldType) bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeEmail, FieldTypePhone,
		FieldTypeDate, FieldTypeSelect, FieldTypeTextarea, FieldTypeCheckbox:
		return true
	}
	return false
}

// BookingFormField is one field of a hospital's custom booking form.
// Saving a form replaces the hospital's whole field set; sort_order is the
// array position at save time.
type BookingFormField struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HospitalID uuid.UUID      `gorm:"type:uuid;not null;index" json:"hospital_id"`
	FieldName  string         `gorm:"type:varchar(100);not null" json:"field_name"`
	FieldLabel string         `gorm:"type:varchar(255);not null" json:"field_label"`
	FieldType  FormFieldType  `gorm:"type:form_field_type;not null;default:'text'" json:"field_type"`
	IsRequired bool           `gorm:"not null;default:false" json:"is_required"`
	Options    pq.StringArray `gorm:"type:text[]" json:"options,omitempty"`
	SortOrder  int            `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (BookingFormField) TableName() string {
	return "booking_form_fields"
}
