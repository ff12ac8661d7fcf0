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
	ErrHospitalNotFound    = errors.New("hospital not found")
	ErrHospitalNotPending  = errors.New("hospital is not pending verification")
	ErrHospitalNotApproved = errors.New("hospital is not approved")
)

type HospitalUsecase interface {
	// Register files a new hospital in pending status, owned by userID.
	Register(ctx context.Context, userID uuid.UUID, req *dto.RegisterHospitalRequest) (*dto.HospitalResponse, error)
	// Search lists approved hospitals only; results are cached.
	Search(ctx context.Context, req *dto.SearchHospitalsRequest) (*dto.HospitalListResponse, error)
	// Get returns a hospital. Unapproved hospitals are visible only to the
	// registrant and platform admins, signalled via includeUnapproved.
	Get(ctx context.Context, id uuid.UUID, includeUnapproved bool) (*dto.HospitalResponse, error)
	ListPending(ctx context.Context) (*dto.HospitalListResponse, error)
	ListByRegistrant(ctx context.Context, userID uuid.UUID) (*dto.HospitalListResponse, error)
	// Approve flips a pending hospital to approved and provisions the
	// registrant as its admin, all in one transaction.
	Approve(ctx context.Context, id uuid.UUID, approvedBy uuid.UUID) error
	// Reject flips a pending hospital to rejected. Reason is mandatory.
	Reject(ctx context.Context, id uuid.UUID, rejectedBy uuid.UUID, req *dto.RejectHospitalRequest) error
}

type hospitalUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	hospitalRepo      repository.HospitalRepository
	userRoleRepo      repository.UserRoleRepository
	hospitalAdminRepo repository.HospitalAdminRepository
	auditService      service.AuditService
	listingCache      *service.ListingCacheService
}

func NewHospitalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	hospitalRepo repository.HospitalRepository,
	userRoleRepo repository.UserRoleRepository,
	hospitalAdminRepo repository.HospitalAdminRepository,
	auditService service.AuditService,
	listingCache *service.ListingCacheService,
) HospitalUsecase {
	return &hospitalUsecase{
		db:                db,
		log:               log,
		hospitalRepo:      hospitalRepo,
		userRoleRepo:      userRoleRepo,
		hospitalAdminRepo: hospitalAdminRepo,
		auditService:      auditService,
		listingCache:      listingCache,
	}
}

func (u *hospitalUsecase) Register(ctx context.Context, userID uuid.UUID, req *dto.RegisterHospitalRequest) (*dto.HospitalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	registeredBy := userID
	hospital := &entity.Hospital{
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		HospitalType:       req.HospitalType,
		BedCount:           req.BedCount,
		Address:            req.Address,
		City:               req.City,
		State:              req.State,
		District:           req.District,
		Pincode:            req.Pincode,
		Phone:              req.Phone,
		Email:              req.Email,
		Website:            req.Website,
		Description:        req.Description,
		Specializations:    req.Specializations,
		Amenities:          req.Amenities,
		ImageURL:           req.ImageURL,
		Status:             entity.HospitalStatusPending,
		RegisteredBy:       &registeredBy,
	}

	if err := u.hospitalRepo.Create(tx, hospital); err != nil {
		u.log.Warnf("Failed to create hospital: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, tx, &registeredBy, entity.AuditActionHospitalRegister, "hospital", hospital.ID.String(), entity.JSON{
		"name": hospital.Name,
		"city": hospital.City,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) Search(ctx context.Context, req *dto.SearchHospitalsRequest) (*dto.HospitalListResponse, error) {
	filter := &entity.HospitalFilter{
		Query:          req.Query,
		City:           req.City,
		HospitalType:   req.HospitalType,
		Specialization: req.Specialization,
	}

	if hospitals, ok := u.listingCache.GetHospitals(ctx, filter); ok {
		return &dto.HospitalListResponse{
			Hospitals: converter.HospitalsToResponses(hospitals),
			Total:     len(hospitals),
		}, nil
	}

	hospitals, err := u.hospitalRepo.SearchApproved(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to search hospitals: %+v", err)
		return nil, err
	}

	u.listingCache.SetHospitals(ctx, filter, hospitals)

	return &dto.HospitalListResponse{
		Hospitals: converter.HospitalsToResponses(hospitals),
		Total:     len(hospitals),
	}, nil
}

func (u *hospitalUsecase) Get(ctx context.Context, id uuid.UUID, includeUnapproved bool) (*dto.HospitalResponse, error) {
	hospital, err := u.hospitalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	// Unapproved hospitals are invisible to the public
	if !hospital.IsApproved() && !includeUnapproved {
		return nil, ErrHospitalNotFound
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) ListPending(ctx context.Context) (*dto.HospitalListResponse, error) {
	hospitals, err := u.hospitalRepo.FindByStatus(u.db.WithContext(ctx), entity.HospitalStatusPending)
	if err != nil {
		u.log.Warnf("Failed to list pending hospitals: %+v", err)
		return nil, err
	}

	return &dto.HospitalListResponse{
		Hospitals: converter.HospitalsToResponses(hospitals),
		Total:     len(hospitals),
	}, nil
}

func (u *hospitalUsecase) ListByRegistrant(ctx context.Context, userID uuid.UUID) (*dto.HospitalListResponse, error) {
	hospitals, err := u.hospitalRepo.FindByRegisteredBy(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list hospitals by registrant: %+v", err)
		return nil, err
	}

	return &dto.HospitalListResponse{
		Hospitals: converter.HospitalsToResponses(hospitals),
		Total:     len(hospitals),
	}, nil
}

// Approve flips the hospital to approved, grants the registrant the hospital
// admin role and links them to the hospital. The status flip, role grant and
// link commit or roll back together; both grants are idempotent so approving
// a registrant who already administers another hospital cannot fail.
func (u *hospitalUsecase) Approve(ctx context.Context, id uuid.UUID, approvedBy uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hospital, err := u.hospitalRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return err
	}
	if hospital == nil {
		return ErrHospitalNotFound
	}

	// Guarded update: only a pending hospital can be approved
	affected, err := u.hospitalRepo.Approve(tx, id, approvedBy)
	if err != nil {
		u.log.Warnf("Failed to approve hospital: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrHospitalNotPending
	}

	// Provision the registrant as hospital admin
	if hospital.RegisteredBy != nil {
		registrant := *hospital.RegisteredBy

		hasRole, err := u.userRoleRepo.HasRole(tx, registrant, entity.RoleHospitalAdmin)
		if err != nil {
			u.log.Warnf("Failed to check hospital admin role: %+v", err)
			return err
		}
		if !hasRole {
			role := &entity.UserRole{UserID: registrant, Role: entity.RoleHospitalAdmin}
			if err := u.userRoleRepo.Create(tx, role); err != nil {
				u.log.Warnf("Failed to grant hospital admin role: %+v", err)
				return err
			}
		}

		link, err := u.hospitalAdminRepo.FindByUserAndHospital(tx, registrant, id)
		if err != nil {
			u.log.Warnf("Failed to check hospital admin link: %+v", err)
			return err
		}
		if link == nil {
			link = &entity.HospitalAdmin{UserID: registrant, HospitalID: id}
			if err := u.hospitalAdminRepo.Create(tx, link); err != nil {
				u.log.Warnf("Failed to create hospital admin link: %+v", err)
				return err
			}
		}
	}

	if err := u.auditService.LogTransition(ctx, tx, &approvedBy, entity.AuditActionHospitalApprove, "hospital", id.String(),
		string(entity.HospitalStatusPending), string(entity.HospitalStatusApproved)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	// The hospital just became publicly visible
	u.listingCache.Invalidate(ctx)

	return nil
}

func (u *hospitalUsecase) Reject(ctx context.Context, id uuid.UUID, rejectedBy uuid.UUID, req *dto.RejectHospitalRequest) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.hospitalRepo.Reject(tx, id, req.Reason)
	if err != nil {
		u.log.Warnf("Failed to reject hospital: %+v", err)
		return err
	}
	if affected == 0 {
		hospital, err := u.hospitalRepo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if hospital == nil {
			return ErrHospitalNotFound
		}
		return ErrHospitalNotPending
	}

	if err := u.auditService.LogAction(ctx, tx, &rejectedBy, entity.AuditActionHospitalReject, "hospital", id.String(), entity.JSON{
		"reason": req.Reason,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.listingCache.Invalidate(ctx)

	return nil
}
