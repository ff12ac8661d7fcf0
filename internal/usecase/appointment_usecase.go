package usecase

import (
	"context"
	"errors"
	"time"

	"medimarket/internal/converter"
	"medimarket/internal/delivery/dto"
	"medimarket/internal/domain/entity"
	"medimarket/internal/domain/repository"
	"medimarket/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrInvalidTransition      = errors.New("appointment status does not permit this action")
	ErrNotAppointmentOwner    = errors.New("appointment belongs to another user")
	ErrNotHospitalAppointment = errors.New("appointment belongs to another hospital")
	ErrDoctorNotInHospital    = errors.New("doctor does not belong to this hospital")
	ErrDoctorInactive         = errors.New("doctor is not accepting appointments")
	ErrInvalidAppointmentDate = errors.New("invalid appointment date, use YYYY-MM-DD")
	ErrMissingRequiredField   = errors.New("missing required booking form field")
)

type AppointmentUsecase interface {
	// Create books a pending appointment against an approved hospital.
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	ListByUser(ctx context.Context, userID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListByHospital(ctx context.Context, hospitalID uuid.UUID, status string) (*dto.AppointmentListResponse, error)
	// Cancel is the only patient-side transition; owner only.
	Cancel(ctx context.Context, userID, appointmentID uuid.UUID) error
	// Confirm, Reject and Complete are hospital-side transitions, scoped to
	// the admin's own hospital. The status guard runs in SQL.
	Confirm(ctx context.Context, adminUserID, hospitalID, appointmentID uuid.UUID, req *dto.ConfirmAppointmentRequest) error
	Reject(ctx context.Context, adminUserID, hospitalID, appointmentID uuid.UUID, req *dto.RejectAppointmentRequest) error
	Complete(ctx context.Context, adminUserID, hospitalID, appointmentID uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	hospitalRepo    repository.HospitalRepository
	doctorRepo      repository.DoctorRepository
	formFieldRepo   repository.BookingFormFieldRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	hospitalRepo repository.HospitalRepository,
	doctorRepo repository.DoctorRepository,
	formFieldRepo repository.BookingFormFieldRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		hospitalRepo:    hospitalRepo,
		doctorRepo:      doctorRepo,
		formFieldRepo:   formFieldRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Parse appointment date
	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidAppointmentDate
	}

	// Only approved hospitals accept bookings
	hospital, err := u.hospitalRepo.FindByID(tx, req.HospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}
	if hospital == nil || !hospital.IsApproved() {
		return nil, ErrHospitalNotFound
	}

	// A chosen doctor must belong to the hospital and be active
	if req.DoctorID != nil {
		doctor, err := u.doctorRepo.FindByID(tx, *req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor: %+v", err)
			return nil, err
		}
		if doctor == nil || doctor.HospitalID != req.HospitalID {
			return nil, ErrDoctorNotInHospital
		}
		if !doctor.IsActive {
			return nil, ErrDoctorInactive
		}
	}

	// Required custom form fields must be answered
	formFields, err := u.formFieldRepo.FindByHospitalID(tx, req.HospitalID)
	if err != nil {
		u.log.Warnf("Failed to load booking form fields: %+v", err)
		return nil, err
	}
	for _, field := range formFields {
		if !field.IsRequired {
			continue
		}
		value, ok := req.CustomFields[field.FieldName]
		if !ok || value == nil || value == "" {
			return nil, ErrMissingRequiredField
		}
	}

	appointment := &entity.Appointment{
		UserID:          userID,
		HospitalID:      req.HospitalID,
		DoctorID:        req.DoctorID,
		AppointmentDate: date,
		AppointmentTime: req.AppointmentTime,
		Status:          entity.AppointmentStatusPending,
		PatientName:     req.PatientName,
		PatientPhone:    req.PatientPhone,
		PatientEmail:    req.PatientEmail,
		Symptoms:        req.Symptoms,
		Notes:           req.Notes,
		CustomFields:    entity.JSON(req.CustomFields),
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		// The hospital or doctor can disappear between the checks above and
		// the insert; the foreign keys catch the race
		if isForeignKeyError(err, "hospital") {
			return nil, ErrHospitalNotFound
		}
		if isForeignKeyError(err, "doctor") {
			return nil, ErrDoctorNotInHospital
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, tx, &userID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), entity.JSON{
		"hospital_id": req.HospitalID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListByUser(ctx context.Context, userID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ListByHospital(ctx context.Context, hospitalID uuid.UUID, status string) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByHospitalID(u.db.WithContext(ctx), hospitalID, entity.AppointmentStatus(status))
	if err != nil {
		u.log.Warnf("Failed to list hospital appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) Cancel(ctx context.Context, userID, appointmentID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.UserID != userID {
		return ErrNotAppointmentOwner
	}

	affected, err := u.appointmentRepo.TransitionStatus(tx, appointmentID,
		[]entity.AppointmentStatus{entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed},
		entity.AppointmentStatusCancelled, nil)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrInvalidTransition
	}

	if err := u.auditService.LogTransition(ctx, tx, &userID, entity.AuditActionAppointmentCancel, "appointment", appointmentID.String(),
		string(appointment.Status), string(entity.AppointmentStatusCancelled)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *appointmentUsecase) Confirm(ctx context.Context, adminUserID, hospitalID, appointmentID uuid.UUID, req *dto.ConfirmAppointmentRequest) error {
	updates := map[string]interface{}{}
	if req.AssignedTime != "" {
		updates["assigned_time"] = req.AssignedTime
	}
	if req.AdminNotes != "" {
		updates["admin_notes"] = req.AdminNotes
	}

	return u.transition(ctx, adminUserID, hospitalID, appointmentID,
		[]entity.AppointmentStatus{entity.AppointmentStatusPending},
		entity.AppointmentStatusConfirmed, entity.AuditActionAppointmentConfirm, updates)
}

func (u *appointmentUsecase) Reject(ctx context.Context, adminUserID, hospitalID, appointmentID uuid.UUID, req *dto.RejectAppointmentRequest) error {
	return u.transition(ctx, adminUserID, hospitalID, appointmentID,
		[]entity.AppointmentStatus{entity.AppointmentStatusPending},
		entity.AppointmentStatusRejected, entity.AuditActionAppointmentReject,
		map[string]interface{}{"admin_notes": req.Reason})
}

func (u *appointmentUsecase) Complete(ctx context.Context, adminUserID, hospitalID, appointmentID uuid.UUID) error {
	return u.transition(ctx, adminUserID, hospitalID, appointmentID,
		[]entity.AppointmentStatus{entity.AppointmentStatusConfirmed},
		entity.AppointmentStatusCompleted, entity.AuditActionAppointmentComplete, nil)
}

// transition runs a hospital-side status change: verifies the appointment
// belongs to the admin's hospital, then attempts the guarded SQL update.
func (u *appointmentUsecase) transition(
	ctx context.Context,
	adminUserID, hospitalID, appointmentID uuid.UUID,
	from []entity.AppointmentStatus,
	to entity.AppointmentStatus,
	auditAction string,
	updates map[string]interface{},
) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.HospitalID != hospitalID {
		return ErrNotHospitalAppointment
	}

	affected, err := u.appointmentRepo.TransitionStatus(tx, appointmentID, from, to, updates)
	if err != nil {
		u.log.Warnf("Failed to transition appointment: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrInvalidTransition
	}

	if err := u.auditService.LogTransition(ctx, tx, &adminUserID, auditAction, "appointment", appointmentID.String(),
		string(appointment.Status), string(to)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
