package handler

import (
	"encoding/json"
	"net/http"

	"medimarket/internal/delivery/dto"
	"medimarket/internal/delivery/http/middleware"
	"medimarket/internal/usecase"
	"medimarket/pkg/response"
	"medimarket/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case usecase.ErrDoctorNotInHospital:
			response.Error(w, http.StatusBadRequest, "Doctor does not belong to this hospital", nil)
		case usecase.ErrDoctorInactive:
			response.Error(w, http.StatusBadRequest, "Doctor is not accepting appointments", nil)
		case usecase.ErrInvalidAppointmentDate:
			response.Error(w, http.StatusBadRequest, "Invalid appointment date, use YYYY-MM-DD", nil)
		case usecase.ErrMissingRequiredField:
			response.Error(w, http.StatusBadRequest, "Missing required booking form field", nil)
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.appointmentUsecase.ListByUser(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.Cancel(r.Context(), userID, appointmentID); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrNotAppointmentOwner:
			response.Forbidden(w, "Appointment does not belong to you")
		case usecase.ErrInvalidTransition:
			response.Error(w, http.StatusConflict, "Appointment can no longer be cancelled", nil)
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}

// ListHospitalAppointments lists the admin's hospital appointments,
// optionally filtered by ?status=
func (h *AppointmentHandler) ListHospitalAppointments(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := middleware.GetHospitalIDFromContext(r.Context())
	if !ok {
		response.Forbidden(w, "No hospital is linked to this account")
		return
	}

	appointments, err := h.appointmentUsecase.ListByHospital(r.Context(), hospitalID, r.URL.Query().Get("status"))
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	userID, hospitalID, appointmentID, ok := h.hospitalScope(w, r)
	if !ok {
		return
	}

	var req dto.ConfirmAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.appointmentUsecase.Confirm(r.Context(), userID, hospitalID, appointmentID, &req); err != nil {
		h.writeTransitionError(w, err, "Failed to confirm appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment confirmed successfully", nil)
}

func (h *AppointmentHandler) Reject(w http.ResponseWriter, r *http.Request) {
	userID, hospitalID, appointmentID, ok := h.hospitalScope(w, r)
	if !ok {
		return
	}

	var req dto.RejectAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.appointmentUsecase.Reject(r.Context(), userID, hospitalID, appointmentID, &req); err != nil {
		h.writeTransitionError(w, err, "Failed to reject appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment rejected successfully", nil)
}

func (h *AppointmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID, hospitalID, appointmentID, ok := h.hospitalScope(w, r)
	if !ok {
		return
	}

	if err := h.appointmentUsecase.Complete(r.Context(), userID, hospitalID, appointmentID); err != nil {
		h.writeTransitionError(w, err, "Failed to complete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment completed successfully", nil)
}

// hospitalScope pulls the acting admin, their hospital and the target
// appointment out of the request. On failure the response is already written.
func (h *AppointmentHandler) hospitalScope(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}

	hospitalID, ok := middleware.GetHospitalIDFromContext(r.Context())
	if !ok {
		response.Forbidden(w, "No hospital is linked to this account")
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}

	return userID, hospitalID, appointmentID, true
}

func (h *AppointmentHandler) writeTransitionError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrAppointmentNotFound:
		response.NotFound(w, "Appointment not found")
	case usecase.ErrNotHospitalAppointment:
		response.Forbidden(w, "Appointment belongs to another hospital")
	case usecase.ErrInvalidTransition:
		response.Error(w, http.StatusConflict, "Appointment status does not permit this action", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
