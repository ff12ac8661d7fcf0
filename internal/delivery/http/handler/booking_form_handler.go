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

type BookingFormHandler struct {
	bookingFormUsecase usecase.BookingFormUsecase
	validator          *validator.CustomValidator
}

func NewBookingFormHandler(bookingFormUsecase usecase.BookingFormUsecase, validator *validator.CustomValidator) *BookingFormHandler {
	return &BookingFormHandler{
		bookingFormUsecase: bookingFormUsecase,
		validator:          validator,
	}
}

// GetPublic returns an approved hospital's booking form for rendering
func (h *BookingFormHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hospitalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	form, err := h.bookingFormUsecase.Get(r.Context(), hospitalID)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		default:
			response.InternalServerError(w, "Failed to get booking form")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking form retrieved successfully", form)
}

// GetMine returns the admin's own booking form
func (h *BookingFormHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := middleware.GetHospitalIDFromContext(r.Context())
	if !ok {
		response.Forbidden(w, "No hospital is linked to this account")
		return
	}

	form, err := h.bookingFormUsecase.GetForAdmin(r.Context(), hospitalID)
	if err != nil {
		response.InternalServerError(w, "Failed to get booking form")
		return
	}

	response.Success(w, http.StatusOK, "Booking form retrieved successfully", form)
}

// Save replaces the admin's whole booking form
func (h *BookingFormHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	hospitalID, ok := middleware.GetHospitalIDFromContext(r.Context())
	if !ok {
		response.Forbidden(w, "No hospital is linked to this account")
		return
	}

	var req dto.SaveBookingFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	form, err := h.bookingFormUsecase.Save(r.Context(), userID, hospitalID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidFieldType:
			response.Error(w, http.StatusBadRequest, "Invalid form field type", nil)
		case usecase.ErrSelectRequiresOptions:
			response.Error(w, http.StatusBadRequest, "Select fields require at least one option", nil)
		case usecase.ErrDuplicateFieldName:
			response.Error(w, http.StatusBadRequest, "Duplicate form field name", nil)
		default:
			response.InternalServerError(w, "Failed to save booking form")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking form saved successfully", form)
}
