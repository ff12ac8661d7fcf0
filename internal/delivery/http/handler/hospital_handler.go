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

type HospitalHandler struct {
	hospitalUsecase usecase.HospitalUsecase
	validator       *validator.CustomValidator
}

func NewHospitalHandler(hospitalUsecase usecase.HospitalUsecase, validator *validator.CustomValidator) *HospitalHandler {
	return &HospitalHandler{
		hospitalUsecase: hospitalUsecase,
		validator:       validator,
	}
}

// Search lists approved hospitals, filtered by query parameters
func (h *HospitalHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &dto.SearchHospitalsRequest{
		Query:          query.Get("q"),
		City:           query.Get("city"),
		HospitalType:   query.Get("hospital_type"),
		Specialization: query.Get("specialization"),
	}

	hospitals, err := h.hospitalUsecase.Search(r.Context(), req)
	if err != nil {
		response.InternalServerError(w, "Failed to search hospitals")
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", hospitals)
}

func (h *HospitalHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hospitalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	hospital, err := h.hospitalUsecase.Get(r.Context(), hospitalID, false)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		default:
			response.InternalServerError(w, "Failed to get hospital")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital retrieved successfully", hospital)
}

func (h *HospitalHandler) Register(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.RegisterHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hospital, err := h.hospitalUsecase.Register(r.Context(), userID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to register hospital")
		return
	}

	response.Success(w, http.StatusCreated, "Hospital registered successfully", hospital)
}

// ListMine lists the hospitals the current user registered
func (h *HospitalHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	hospitals, err := h.hospitalUsecase.ListByRegistrant(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list hospitals")
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", hospitals)
}

// ListPending lists hospitals awaiting verification (super admin)
func (h *HospitalHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.hospitalUsecase.ListPending(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list pending hospitals")
		return
	}

	response.Success(w, http.StatusOK, "Pending hospitals retrieved successfully", hospitals)
}

// GetAsAdmin returns a hospital regardless of its status (super admin)
func (h *HospitalHandler) GetAsAdmin(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hospitalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	hospital, err := h.hospitalUsecase.Get(r.Context(), hospitalID, true)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		default:
			response.InternalServerError(w, "Failed to get hospital")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital retrieved successfully", hospital)
}

func (h *HospitalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	hospitalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	if err := h.hospitalUsecase.Approve(r.Context(), hospitalID, userID); err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case usecase.ErrHospitalNotPending:
			response.Error(w, http.StatusConflict, "Hospital is not pending verification", nil)
		default:
			response.InternalServerError(w, "Failed to approve hospital")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital approved successfully", nil)
}

func (h *HospitalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	hospitalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	var req dto.RejectHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.hospitalUsecase.Reject(r.Context(), hospitalID, userID, &req); err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case usecase.ErrHospitalNotPending:
			response.Error(w, http.StatusConflict, "Hospital is not pending verification", nil)
		default:
			response.InternalServerError(w, "Failed to reject hospital")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital rejected successfully", nil)
}
