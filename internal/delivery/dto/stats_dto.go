package dto

type HospitalStatsResponse struct {
	PendingAppointments   int64 `json:"pending_appointments"`
	ConfirmedAppointments int64 `json:"confirmed_appointments"`
	CompletedAppointments int64 `json:"completed_appointments"`
	ActiveDoctors         int64 `json:"active_doctors"`
}

type PlatformStatsResponse struct {
	TotalUsers            int64 `json:"total_users"`
	PendingHospitals      int64 `json:"pending_hospitals"`
	ApprovedHospitals     int64 `json:"approved_hospitals"`
	PendingInsurancePlans int64 `json:"pending_insurance_plans"`
	TotalAppointments     int64 `json:"total_appointments"`
}
