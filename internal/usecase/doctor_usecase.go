package usecase

import (
	"context"
	"errors"

	"medimarket/internal/converter"
	"medimarket/internal/delivery/dto"
	"medimarket/internal/domain/entity"
	"medimarket/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
)

type DoctorUsecase interface {
	Create(ctx context.Context, hospitalID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	// ListPublic returns only active doctors of an approved hospital.
	ListPublic(ctx context.Context, hospitalID uuid.UUID) (*dto.DoctorListResponse, error)
	// ListByHospital includes inactive doctors; hospital admin view.
	ListByHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.DoctorListResponse, error)
	Update(ctx context.Context, hospitalID, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	// Deactivate disables a doctor; rows are never deleted.
	Deactivate(ctx context.Context, hospitalID, doctorID uuid.UUID) error
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	hospitalRepo repository.HospitalRepository
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	hospitalRepo repository.HospitalRepository,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		hospitalRepo: hospitalRepo,
	}
}

func (u *doctorUsecase) Create(ctx context.Context, hospitalID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor := &entity.Doctor{
		HospitalID:      hospitalID,
		Name:            req.Name,
		Specialization:  req.Specialization,
		Qualification:   req.Qualification,
		ExperienceYears: req.ExperienceYears,
		ConsultationFee: req.ConsultationFee,
		AvailableDays:   req.AvailableDays,
		AvailableFrom:   req.AvailableFrom,
		AvailableTo:     req.AvailableTo,
		Bio:             req.Bio,
		Email:           req.Email,
		Phone:           req.Phone,
		ImageURL:        req.ImageURL,
		IsActive:        true,
	}

	if err := u.doctorRepo.Create(u.db.WithContext(ctx), doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) ListPublic(ctx context.Context, hospitalID uuid.UUID) (*dto.DoctorListResponse, error) {
	db := u.db.WithContext(ctx)

	hospital, err := u.hospitalRepo.FindByID(db, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}
	if hospital == nil || !hospital.IsApproved() {
		return nil, ErrHospitalNotFound
	}

	doctors, err := u.doctorRepo.FindByHospitalID(db, hospitalID, true)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) ListByHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindByHospitalID(u.db.WithContext(ctx), hospitalID, false)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) Update(ctx context.Context, hospitalID, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil || doctor.HospitalID != hospitalID {
		return nil, ErrDoctorNotFound
	}

	doctor.Name = req.Name
	doctor.Specialization = req.Specialization
	doctor.Qualification = req.Qualification
	doctor.ExperienceYears = req.ExperienceYears
	doctor.ConsultationFee = req.ConsultationFee
	doctor.AvailableDays = req.AvailableDays
	doctor.AvailableFrom = req.AvailableFrom
	doctor.AvailableTo = req.AvailableTo
	doctor.Bio = req.Bio
	doctor.Email = req.Email
	doctor.Phone = req.Phone
	doctor.ImageURL = req.ImageURL
	if req.IsActive != nil {
		doctor.IsActive = *req.IsActive
	}

	if err := u.doctorRepo.Update(db, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Deactivate(ctx context.Context, hospitalID, doctorID uuid.UUID) error {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil || doctor.HospitalID != hospitalID {
		return ErrDoctorNotFound
	}

	affected, err := u.doctorRepo.Deactivate(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to deactivate doctor: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrDoctorNotFound
	}

	return nil
}
