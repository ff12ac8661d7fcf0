package converter

import (
	"medimarket/internal/delivery/dto"
	"medimarket/internal/domain/entity"
)

// HospitalToResponse converts a Hospital entity to HospitalResponse DTO
func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}

	return &dto.HospitalResponse{
		ID:                 hospital.ID,
		Name:               hospital.Name,
		RegistrationNumber: hospital.RegistrationNumber,
		HospitalType:       hospital.HospitalType,
		BedCount:           hospital.BedCount,
		Address:            hospital.Address,
		City:               hospital.City,
		State:              hospital.State,
		District:           hospital.District,
		Pincode:            hospital.Pincode,
		Phone:              hospital.Phone,
		Email:              hospital.Email,
		Website:            hospital.Website,
		Description:        hospital.Description,
		Specializations:    hospital.Specializations,
		Amenities:          hospital.Amenities,
		ImageURL:           hospital.ImageURL,
		Rating:             hospital.Rating,
		ReviewCount:        hospital.ReviewCount,
		Status:             string(hospital.Status),
		RejectionReason:    hospital.RejectionReason,
		ApprovedAt:         hospital.ApprovedAt,
		CreatedAt:          hospital.CreatedAt,
	}
}

// HospitalsToResponses converts a slice of Hospital entities to slice of HospitalResponse DTOs
func HospitalsToResponses(hospitals []entity.Hospital) []dto.HospitalResponse {
	responses := make([]dto.HospitalResponse, len(hospitals))
	for i, hospital := range hospitals {
		resp := HospitalToResponse(&hospital)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
