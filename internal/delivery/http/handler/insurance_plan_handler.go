package handler

import (
	"encoding/json"
	"net/http"

	"medimarket/internal/delivery/dto"
	"medimarket/internal/delivery/http/middleware"
	"medimarket/internal/domain/entity"
	"medimarket/internal/usecase"
	"medimarket/pkg/response"
	"medimarket/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type InsurancePlanHandler struct {
	planUsecase usecase.InsurancePlanUsecase
	validator   *validator.CustomValidator
}

func NewInsurancePlanHandler(planUsecase usecase.InsurancePlanUsecase, validator *validator.CustomValidator) *InsurancePlanHandler {
	return &InsurancePlanHandler{
		planUsecase: planUsecase,
		validator:   validator,
	}
}

// ListApproved is the public comparison listing
func (h *InsurancePlanHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planUsecase.ListApproved(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list insurance plans")
		return
	}

	response.Success(w, http.StatusOK, "Insurance plans retrieved successfully", plans)
}

// SubmitAsInsuranceAdmin files a plan on behalf of an insurance provider
func (h *InsurancePlanHandler) SubmitAsInsuranceAdmin(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, entity.PlanUploaderInsuranceAdmin)
}

// SubmitAsHospital files a plan on behalf of a hospital
func (h *InsurancePlanHandler) SubmitAsHospital(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, entity.PlanUploaderHospital)
}

func (h *InsurancePlanHandler) submit(w http.ResponseWriter, r *http.Request, uploaderType string) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SubmitInsurancePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	plan, err := h.planUsecase.Submit(r.Context(), userID, uploaderType, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to submit insurance plan")
		return
	}

	response.Success(w, http.StatusCreated, "Insurance plan submitted successfully", plan)
}

// ListMine lists the plans the current user uploaded
func (h *InsurancePlanHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	plans, err := h.planUsecase.ListByUploader(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list insurance plans")
		return
	}

	response.Success(w, http.StatusOK, "Insurance plans retrieved successfully", plans)
}

// ListPending lists plans awaiting approval (super admin)
func (h *InsurancePlanHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planUsecase.ListPending(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list pending insurance plans")
		return
	}

	response.Success(w, http.StatusOK, "Pending insurance plans retrieved successfully", plans)
}

func (h *InsurancePlanHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.setApproval(w, r, true)
}

func (h *InsurancePlanHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	h.setApproval(w, r, false)
}

func (h *InsurancePlanHandler) setApproval(w http.ResponseWriter, r *http.Request, approve bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	planID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid insurance plan ID", nil)
		return
	}

	if approve {
		err = h.planUsecase.Approve(r.Context(), planID, userID)
	} else {
		err = h.planUsecase.Revoke(r.Context(), planID, userID)
	}
	if err != nil {
		switch err {
		case usecase.ErrPlanNotFound:
			response.NotFound(w, "Insurance plan not found")
		case usecase.ErrPlanAlreadySet:
			response.Error(w, http.StatusConflict, "Insurance plan already in the requested approval state", nil)
		default:
			response.InternalServerError(w, "Failed to update insurance plan approval")
		}
		return
	}

	if approve {
		response.Success(w, http.StatusOK, "Insurance plan approved successfully", nil)
	} else {
		response.Success(w, http.StatusOK, "Insurance plan approval revoked successfully", nil)
	}
}

// ListByHospital lists the approved plans a hospital accepts (public)
func (h *InsurancePlanHandler) ListByHospital(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hospitalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	plans, err := h.planUsecase.ListByHospital(r.Context(), hospitalID)
	if err != nil {
		response.InternalServerError(w, "Failed to list hospital insurance plans")
		return
	}

	response.Success(w, http.StatusOK, "Insurance plans retrieved successfully", plans)
}

// Link attaches an approved plan to the admin's hospital
func (h *InsurancePlanHandler) Link(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := middleware.GetHospitalIDFromContext(r.Context())
	if !ok {
		response.Forbidden(w, "No hospital is linked to this account")
		return
	}

	var req dto.LinkInsurancePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.planUsecase.Link(r.Context(), hospitalID, &req); err != nil {
		switch err {
		case usecase.ErrPlanNotFound:
			response.NotFound(w, "Insurance plan not found")
		case usecase.ErrPlanNotApproved:
			response.Error(w, http.StatusBadRequest, "Insurance plan is not approved", nil)
		case usecase.ErrPlanAlreadyLinked:
			response.Error(w, http.StatusConflict, "Insurance plan already linked to this hospital", nil)
		default:
			response.InternalServerError(w, "Failed to link insurance plan")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Insurance plan linked successfully", nil)
}

func (h *InsurancePlanHandler) Unlink(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := middleware.GetHospitalIDFromContext(r.Context())
	if !ok {
		response.Forbidden(w, "No hospital is linked to this account")
		return
	}

	vars := mux.Vars(r)
	planID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid insurance plan ID", nil)
		return
	}

	if err := h.planUsecase.Unlink(r.Context(), hospitalID, planID); err != nil {
		switch err {
		case usecase.ErrPlanNotLinked:
			response.NotFound(w, "Insurance plan is not linked to this hospital")
		default:
			response.InternalServerError(w, "Failed to unlink insurance plan")
		}
		return
	}

	response.Success(w, http.StatusOK, "Insurance plan unlinked successfully", nil)
}
