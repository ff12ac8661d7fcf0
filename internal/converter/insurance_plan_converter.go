package converter

import (
	"medimarket/internal/delivery/dto"
	"medimarket/internal/domain/entity"
)

// InsurancePlanToResponse converts an InsurancePlan entity to InsurancePlanResponse DTO
func InsurancePlanToResponse(plan *entity.InsurancePlan) *dto.InsurancePlanResponse {
	if plan == nil {
		return nil
	}

	return &dto.InsurancePlanResponse{
		ID:               plan.ID,
		ProviderName:     plan.ProviderName,
		Name:             plan.Name,
		PlanType:         plan.PlanType,
		CoverageAmount:   plan.CoverageAmount,
		PremiumMonthly:   plan.PremiumMonthly,
		PremiumYearly:    plan.PremiumYearly,
		Features:         plan.Features,
		Exclusions:       plan.Exclusions,
		NetworkHospitals: plan.NetworkHospitals,
		WaitingPeriod:    plan.WaitingPeriod,
		ClaimProcess:     plan.ClaimProcess,
		IsApproved:       plan.IsApproved,
		UploadedByType:   plan.UploadedByType,
		CreatedAt:        plan.CreatedAt,
		UpdatedAt:        plan.UpdatedAt,
	}
}

// InsurancePlansToResponses converts a slice of InsurancePlan entities to slice of InsurancePlanResponse DTOs
func InsurancePlansToResponses(plans []entity.InsurancePlan) []dto.InsurancePlanResponse {
	responses := make([]dto.InsurancePlanResponse, len(plans))
	for i, plan := range plans {
		resp := InsurancePlanToResponse(&plan)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
