package converter

import (
	"medimarket/internal/delivery/dto"
	"medimarket/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		UserID:          appointment.UserID,
		HospitalID:      appointment.HospitalID,
		DoctorID:        appointment.DoctorID,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		AppointmentTime: appointment.AppointmentTime,
		AssignedTime:    appointment.AssignedTime,
		Status:          string(appointment.Status),
		PatientName:     appointment.PatientName,
		PatientPhone:    appointment.PatientPhone,
		PatientEmail:    appointment.PatientEmail,
		Symptoms:        appointment.Symptoms,
		Notes:           appointment.Notes,
		AdminNotes:      appointment.AdminNotes,
		CustomFields:    appointment.CustomFields,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	// Include hospital and doctor info if preloaded
	if appointment.Hospital != nil {
		response.Hospital = HospitalToResponse(appointment.Hospital)
	}
	if appointment.Doctor != nil {
		response.Doctor = DoctorToResponse(appointment.Doctor)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
