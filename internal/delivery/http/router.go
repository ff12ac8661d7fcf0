package http

import (
	"net/http"

	"medimarket/internal/delivery/http/handler"
	"medimarket/internal/delivery/http/middleware"
	"medimarket/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	profileHandler       *handler.ProfileHandler
	hospitalHandler      *handler.HospitalHandler
	doctorHandler        *handler.DoctorHandler
	appointmentHandler   *handler.AppointmentHandler
	insurancePlanHandler *handler.InsurancePlanHandler
	bookingFormHandler   *handler.BookingFormHandler
	statsHandler         *handler.StatsHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	roleMiddleware       *middleware.RoleMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	hospitalHandler *handler.HospitalHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	insurancePlanHandler *handler.InsurancePlanHandler,
	bookingFormHandler *handler.BookingFormHandler,
	statsHandler *handler.StatsHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	roleMiddleware *middleware.RoleMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		profileHandler:       profileHandler,
		hospitalHandler:      hospitalHandler,
		doctorHandler:        doctorHandler,
		appointmentHandler:   appointmentHandler,
		insurancePlanHandler: insurancePlanHandler,
		bookingFormHandler:   bookingFormHandler,
		statsHandler:         statsHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		roleMiddleware:       roleMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetSession).Methods(http.MethodGet)

	// Public marketplace routes
	api.HandleFunc("/hospitals", r.hospitalHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{id}", r.hospitalHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{id}/doctors", r.doctorHandler.ListPublic).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{id}/insurance-plans", r.insurancePlanHandler.ListByHospital).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{id}/booking-form", r.bookingFormHandler.GetPublic).Methods(http.MethodGet)
	api.HandleFunc("/insurance-plans", r.insurancePlanHandler.ListApproved).Methods(http.MethodGet)

	// Authenticated user routes
	user := api.PathPrefix("").Subrouter()
	user.Use(r.authMiddleware.Authenticate)
	user.HandleFunc("/profile", r.profileHandler.Get).Methods(http.MethodGet)
	user.HandleFunc("/profile", r.profileHandler.Update).Methods(http.MethodPut)
	user.HandleFunc("/hospitals", r.hospitalHandler.Register).Methods(http.MethodPost)
	user.HandleFunc("/my/hospitals", r.hospitalHandler.ListMine).Methods(http.MethodGet)
	user.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	user.HandleFunc("/appointments", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	user.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)

	// Hospital admin routes
	hospital := api.PathPrefix("/hospital").Subrouter()
	hospital.Use(r.authMiddleware.Authenticate)
	hospital.Use(r.roleMiddleware.RequireHospitalAdmin)
	hospital.HandleFunc("/appointments", r.appointmentHandler.ListHospitalAppointments).Methods(http.MethodGet)
	hospital.HandleFunc("/appointments/{id}/confirm", r.appointmentHandler.Confirm).Methods(http.MethodPost)
	hospital.HandleFunc("/appointments/{id}/reject", r.appointmentHandler.Reject).Methods(http.MethodPost)
	hospital.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.Complete).Methods(http.MethodPost)
	hospital.HandleFunc("/doctors", r.doctorHandler.Create).Methods(http.MethodPost)
	hospital.HandleFunc("/doctors", r.doctorHandler.ListMine).Methods(http.MethodGet)
	hospital.HandleFunc("/doctors/{id}", r.doctorHandler.Update).Methods(http.MethodPut)
	hospital.HandleFunc("/doctors/{id}", r.doctorHandler.Deactivate).Methods(http.MethodDelete)
	hospital.HandleFunc("/booking-form", r.bookingFormHandler.GetMine).Methods(http.MethodGet)
	hospital.HandleFunc("/booking-form", r.bookingFormHandler.Save).Methods(http.MethodPut)
	hospital.HandleFunc("/insurance-plans", r.insurancePlanHandler.SubmitAsHospital).Methods(http.MethodPost)
	hospital.HandleFunc("/insurance-plans/link", r.insurancePlanHandler.Link).Methods(http.MethodPost)
	hospital.HandleFunc("/insurance-plans/{id}", r.insurancePlanHandler.Unlink).Methods(http.MethodDelete)
	hospital.HandleFunc("/stats", r.statsHandler.HospitalStats).Methods(http.MethodGet)

	// Insurance admin routes
	insurance := api.PathPrefix("/insurance").Subrouter()
	insurance.Use(r.authMiddleware.Authenticate)
	insurance.Use(r.roleMiddleware.RequireInsuranceAdmin)
	insurance.HandleFunc("/plans", r.insurancePlanHandler.SubmitAsInsuranceAdmin).Methods(http.MethodPost)
	insurance.HandleFunc("/plans", r.insurancePlanHandler.ListMine).Methods(http.MethodGet)

	// Super admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(r.roleMiddleware.RequireRole(entity.RoleSuperAdmin))
	admin.HandleFunc("/hospitals/pending", r.hospitalHandler.ListPending).Methods(http.MethodGet)
	admin.HandleFunc("/hospitals/{id}", r.hospitalHandler.GetAsAdmin).Methods(http.MethodGet)
	admin.HandleFunc("/hospitals/{id}/approve", r.hospitalHandler.Approve).Methods(http.MethodPost)
	admin.HandleFunc("/hospitals/{id}/reject", r.hospitalHandler.Reject).Methods(http.MethodPost)
	admin.HandleFunc("/insurance-plans/pending", r.insurancePlanHandler.ListPending).Methods(http.MethodGet)
	admin.HandleFunc("/insurance-plans/{id}/approve", r.insurancePlanHandler.Approve).Methods(http.MethodPost)
	admin.HandleFunc("/insurance-plans/{id}/revoke", r.insurancePlanHandler.Revoke).Methods(http.MethodPost)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/stats", r.statsHandler.PlatformStats).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
