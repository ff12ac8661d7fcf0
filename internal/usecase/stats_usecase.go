package usecase

import (
	"context"

	"medimarket/internal/delivery/dto"
	"medimarket/internal/domain/entity"
	"medimarket/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type StatsUsecase interface {
	HospitalStats(ctx context.Context, hospitalID uuid.UUID) (*dto.HospitalStatsResponse, error)
	PlatformStats(ctx context.Context) (*dto.PlatformStatsResponse, error)
}

type statsUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	hospitalRepo    repository.HospitalRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	planRepo        repository.InsurancePlanRepository
}

func NewStatsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	hospitalRepo repository.HospitalRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	planRepo repository.InsurancePlanRepository,
) StatsUsecase {
	return &statsUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		hospitalRepo:    hospitalRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		planRepo:        planRepo,
	}
}

func (u *statsUsecase) HospitalStats(ctx context.Context, hospitalID uuid.UUID) (*dto.HospitalStatsResponse, error) {
	db := u.db.WithContext(ctx)

	pending, err := u.appointmentRepo.CountByHospitalAndStatus(db, hospitalID, entity.AppointmentStatusPending)
	if err != nil {
		u.log.Warnf("Failed to count pending appointments: %+v", err)
		return nil, err
	}

	confirmed, err := u.appointmentRepo.CountByHospitalAndStatus(db, hospitalID, entity.AppointmentStatusConfirmed)
	if err != nil {
		u.log.Warnf("Failed to count confirmed appointments: %+v", err)
		return nil, err
	}

	completed, err := u.appointmentRepo.CountByHospitalAndStatus(db, hospitalID, entity.AppointmentStatusCompleted)
	if err != nil {
		u.log.Warnf("Failed to count completed appointments: %+v", err)
		return nil, err
	}

	doctors, err := u.doctorRepo.CountActiveByHospital(db, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to count active doctors: %+v", err)
		return nil, err
	}

	return &dto.HospitalStatsResponse{
		PendingAppointments:   pending,
		ConfirmedAppointments: confirmed,
		CompletedAppointments: completed,
		ActiveDoctors:         doctors,
	}, nil
}

func (u *statsUsecase) PlatformStats(ctx context.Context) (*dto.PlatformStatsResponse, error) {
	db := u.db.WithContext(ctx)

	users, err := u.userRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count users: %+v", err)
		return nil, err
	}

	pendingHospitals, err := u.hospitalRepo.CountByStatus(db, entity.HospitalStatusPending)
	if err != nil {
		u.log.Warnf("Failed to count pending hospitals: %+v", err)
		return nil, err
	}

	approvedHospitals, err := u.hospitalRepo.CountByStatus(db, entity.HospitalStatusApproved)
	if err != nil {
		u.log.Warnf("Failed to count approved hospitals: %+v", err)
		return nil, err
	}

	pendingPlans, err := u.planRepo.CountPending(db)
	if err != nil {
		u.log.Warnf("Failed to count pending plans: %+v", err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	return &dto.PlatformStatsResponse{
		TotalUsers:            users,
		PendingHospitals:      pendingHospitals,
		ApprovedHospitals:     approvedHospitals,
		PendingInsurancePlans: pendingPlans,
		TotalAppointments:     appointments,
	}, nil
}
