package converter

import (
	"medimarket/internal/delivery/dto"
	"medimarket/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              doctor.ID,
		HospitalID:      doctor.HospitalID,
		Name:            doctor.Name,
		Specialization:  doctor.Specialization,
		Qualification:   doctor.Qualification,
		ExperienceYears: doctor.ExperienceYears,
		ConsultationFee: doctor.ConsultationFee,
		AvailableDays:   doctor.AvailableDays,
		AvailableFrom:   doctor.AvailableFrom,
		AvailableTo:     doctor.AvailableTo,
		Bio:             doctor.Bio,
		Email:           doctor.Email,
		Phone:           doctor.Phone,
		ImageURL:        doctor.ImageURL,
		IsActive:        doctor.IsActive,
		CreatedAt:       doctor.CreatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		resp := DoctorToResponse(&doctor)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
