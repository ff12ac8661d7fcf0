package handler

import (
	"net/http"

	"medimarket/internal/delivery/http/middleware"
	"medimarket/internal/usecase"
	"medimarket/pkg/response"
)

type StatsHandler struct {
	statsUsecase usecase.StatsUsecase
}

func NewStatsHandler(statsUsecase usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{
		statsUsecase: statsUsecase,
	}
}

// HospitalStats is the hospital admin dashboard
func (h *StatsHandler) HospitalStats(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := middleware.GetHospitalIDFromContext(r.Context())
	if !ok {
		response.Forbidden(w, "No hospital is linked to this account")
		return
	}

	stats, err := h.statsUsecase.HospitalStats(r.Context(), hospitalID)
	if err != nil {
		response.InternalServerError(w, "Failed to get hospital stats")
		return
	}

	response.Success(w, http.StatusOK, "Hospital stats retrieved successfully", stats)
}

// PlatformStats is the super admin dashboard
func (h *StatsHandler) PlatformStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUsecase.PlatformStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get platform stats")
		return
	}

	response.Success(w, http.StatusOK, "Platform stats retrieved successfully", stats)
}
