package usecase

import (
	"context"
	"errors"

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
	ErrInvalidFieldType      = errors.New("invalid form field type")
	ErrSelectRequiresOptions = errors.New("select fields require at least one option")
	ErrDuplicateFieldName    = errors.New("duplicate form field name")
)

type BookingFormUsecase interface {
	// Get returns the form of an approved hospital for public rendering.
	Get(ctx context.Context, hospitalID uuid.UUID) (*dto.BookingFormResponse, error)
	// GetForAdmin skips the approval check; hospital admin view.
	GetForAdmin(ctx context.Context, hospitalID uuid.UUID) (*dto.BookingFormResponse, error)
	// Save replaces the hospital's whole field set atomically. Field order
	// in the request becomes sort_order.
	Save(ctx context.Context, adminUserID, hospitalID uuid.UUID, req *dto.SaveBookingFormRequest) (*dto.BookingFormResponse, error)
}

type bookingFormUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	formFieldRepo repository.BookingFormFieldRepository
	hospitalRepo  repository.HospitalRepository
	auditService  service.AuditService
}

func NewBookingFormUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	formFieldRepo repository.BookingFormFieldRepository,
	hospitalRepo repository.HospitalRepository,
	auditService service.AuditService,
) BookingFormUsecase {
	return &bookingFormUsecase{
		db:            db,
		log:           log,
		formFieldRepo: formFieldRepo,
		hospitalRepo:  hospitalRepo,
		auditService:  auditService,
	}
}

func (u *bookingFormUsecase) Get(ctx context.Context, hospitalID uuid.UUID) (*dto.BookingFormResponse, error) {
	db := u.db.WithContext(ctx)

	hospital, err := u.hospitalRepo.FindByID(db, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}
	if hospital == nil || !hospital.IsApproved() {
		return nil, ErrHospitalNotFound
	}

	return u.load(db, hospitalID)
}

func (u *bookingFormUsecase) GetForAdmin(ctx context.Context, hospitalID uuid.UUID) (*dto.BookingFormResponse, error) {
	return u.load(u.db.WithContext(ctx), hospitalID)
}

func (u *bookingFormUsecase) load(db *gorm.DB, hospitalID uuid.UUID) (*dto.BookingFormResponse, error) {
	fields, err := u.formFieldRepo.FindByHospitalID(db, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to load booking form fields: %+v", err)
		return nil, err
	}

	return converter.BookingFormToResponse(hospitalID, fields), nil
}

func (u *bookingFormUsecase) Save(ctx context.Context, adminUserID, hospitalID uuid.UUID, req *dto.SaveBookingFormRequest) (*dto.BookingFormResponse, error) {
	// Validate before touching the database
	seen := make(map[string]bool, len(req.Fields))
	for _, f := range req.Fields {
		fieldType := entity.FormFieldType(f.FieldType)
		if !entity.ValidFieldType(fieldType) {
			return nil, ErrInvalidFieldType
		}
		if fieldType == entity.FieldTypeSelect && len(f.Options) == 0 {
			return nil, ErrSelectRequiresOptions
		}
		if seen[f.FieldName] {
			return nil, ErrDuplicateFieldName
		}
		seen[f.FieldName] = true
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Full replace: delete the old set, insert the new one
	if err := u.formFieldRepo.DeleteByHospitalID(tx, hospitalID); err != nil {
		u.log.Warnf("Failed to delete booking form fields: %+v", err)
		return nil, err
	}

	fields := make([]entity.BookingFormField, len(req.Fields))
	for i, f := range req.Fields {
		fields[i] = entity.BookingFormField{
			HospitalID: hospitalID,
			FieldName:  f.FieldName,
			FieldLabel: f.FieldLabel,
			FieldType:  entity.FormFieldType(f.FieldType),
			IsRequired: f.IsRequired,
			Options:    f.Options,
			SortOrder:  i,
		}
	}

	if len(fields) > 0 {
		if err := u.formFieldRepo.CreateBatch(tx, fields); err != nil {
			u.log.Warnf("Failed to create booking form fields: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.LogAction(ctx, tx, &adminUserID, entity.AuditActionBookingFormSave, "booking_form", hospitalID.String(), entity.JSON{
		"field_count": len(fields),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BookingFormToResponse(hospitalID, fields), nil
}
