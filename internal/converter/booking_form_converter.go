package converter

import (
	"medimarket/internal/delivery/dto"
	"medimarket/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingFormFieldToResponse converts a BookingFormField entity to BookingFormFieldResponse DTO
func BookingFormFieldToResponse(field *entity.BookingFormField) *dto.BookingFormFieldResponse {
	if field == nil {
		return nil
	}

	return &dto.BookingFormFieldResponse{
		ID:         field.ID,
		FieldName:  field.FieldName,
		FieldLabel: field.FieldLabel,
		FieldType:  string(field.FieldType),
		IsRequired: field.IsRequired,
		Options:    field.Options,
		SortOrder:  field.SortOrder,
	}
}

// BookingFormToResponse converts a hospital's field set to BookingFormResponse DTO
func BookingFormToResponse(hospitalID uuid.UUID, fields []entity.BookingFormField) *dto.BookingFormResponse {
	responses := make([]dto.BookingFormFieldResponse, len(fields))
	for i, field := range fields {
		resp := BookingFormFieldToResponse(&field)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return &dto.BookingFormResponse{
		HospitalID: hospitalID,
		Fields:     responses,
	}
}
