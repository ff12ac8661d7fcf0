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
	ErrPlanNotFound      = errors.New("insurance plan not found")
	ErrPlanAlreadySet    = errors.New("insurance plan already in the requested approval state")
	ErrPlanNotApproved   = errors.New("insurance plan is not approved")
	ErrPlanAlreadyLinked = errors.New("insurance plan already linked to this hospital")
	ErrPlanNotLinked     = errors.New("insurance plan is not linked to this hospital")
)

type InsurancePlanUsecase interface {
	// Submit files a new unapproved plan. uploaderType records whether an
	// insurance admin or a hospital admin filed it.
	Submit(ctx context.Context, userID uuid.UUID, uploaderType string, req *dto.SubmitInsurancePlanRequest) (*dto.InsurancePlanResponse, error)
	// ListApproved is the public comparison listing.
	ListApproved(ctx context.Context) (*dto.InsurancePlanListResponse, error)
	ListPending(ctx context.Context) (*dto.InsurancePlanListResponse, error)
	ListByUploader(ctx context.Context, userID uuid.UUID) (*dto.InsurancePlanListResponse, error)
	// Approve publishes a plan; Revoke withdraws it. Both are guarded so a
	// repeat call reports the conflict instead of silently succeeding.
	Approve(ctx context.Context, id uuid.UUID, approvedBy uuid.UUID) error
	Revoke(ctx context.Context, id uuid.UUID, revokedBy uuid.UUID) error
	// Link / Unlink manage which approved plans a hospital accepts.
	Link(ctx context.Context, hospitalID uuid.UUID, req *dto.LinkInsurancePlanRequest) error
	Unlink(ctx context.Context, hospitalID, planID uuid.UUID) error
	ListByHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.InsurancePlanListResponse, error)
}

type insurancePlanUsecase struct {
	db                    *gorm.DB
	log                   *logrus.Logger
	planRepo              repository.InsurancePlanRepository
	hospitalInsuranceRepo repository.HospitalInsuranceRepository
	auditService          service.AuditService
}

func NewInsurancePlanUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	planRepo repository.InsurancePlanRepository,
	hospitalInsuranceRepo repository.HospitalInsuranceRepository,
	auditService service.AuditService,
) InsurancePlanUsecase {
	return &insurancePlanUsecase{
		db:                    db,
		log:                   log,
		planRepo:              planRepo,
		hospitalInsuranceRepo: hospitalInsuranceRepo,
		auditService:          auditService,
	}
}

func (u *insurancePlanUsecase) Submit(ctx context.Context, userID uuid.UUID, uploaderType string, req *dto.SubmitInsurancePlanRequest) (*dto.InsurancePlanResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	uploadedBy := userID
	plan := &entity.InsurancePlan{
		ProviderName:     req.ProviderName,
		Name:             req.Name,
		PlanType:         req.PlanType,
		CoverageAmount:   req.CoverageAmount,
		PremiumMonthly:   req.PremiumMonthly,
		PremiumYearly:    req.PremiumYearly,
		Features:         req.Features,
		Exclusions:       req.Exclusions,
		NetworkHospitals: req.NetworkHospitals,
		WaitingPeriod:    req.WaitingPeriod,
		ClaimProcess:     req.ClaimProcess,
		IsApproved:       false,
		UploadedBy:       &uploadedBy,
		UploadedByType:   uploaderType,
	}
	if plan.PlanType == "" {
		plan.PlanType = "individual"
	}

	if err := u.planRepo.Create(tx, plan); err != nil {
		u.log.Warnf("Failed to create insurance plan: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, tx, &uploadedBy, entity.AuditActionPlanSubmit, "insurance_plan", plan.ID.String(), entity.JSON{
		"provider_name": plan.ProviderName,
		"name":          plan.Name,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.InsurancePlanToResponse(plan), nil
}

func (u *insurancePlanUsecase) ListApproved(ctx context.Context) (*dto.InsurancePlanListResponse, error) {
	plans, err := u.planRepo.FindApproved(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list approved plans: %+v", err)
		return nil, err
	}

	return &dto.InsurancePlanListResponse{
		Plans: converter.InsurancePlansToResponses(plans),
		Total: len(plans),
	}, nil
}

func (u *insurancePlanUsecase) ListPending(ctx context.Context) (*dto.InsurancePlanListResponse, error) {
	plans, err := u.planRepo.FindPending(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list pending plans: %+v", err)
		return nil, err
	}

	return &dto.InsurancePlanListResponse{
		Plans: converter.InsurancePlansToResponses(plans),
		Total: len(plans),
	}, nil
}

func (u *insurancePlanUsecase) ListByUploader(ctx context.Context, userID uuid.UUID) (*dto.InsurancePlanListResponse, error) {
	plans, err := u.planRepo.FindByUploader(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list plans by uploader: %+v", err)
		return nil, err
	}

	return &dto.InsurancePlanListResponse{
		Plans: converter.InsurancePlansToResponses(plans),
		Total: len(plans),
	}, nil
}

func (u *insurancePlanUsecase) Approve(ctx context.Context, id uuid.UUID, approvedBy uuid.UUID) error {
	return u.setApproval(ctx, id, approvedBy, true, entity.AuditActionPlanApprove)
}

func (u *insurancePlanUsecase) Revoke(ctx context.Context, id uuid.UUID, revokedBy uuid.UUID) error {
	return u.setApproval(ctx, id, revokedBy, false, entity.AuditActionPlanRevoke)
}

func (u *insurancePlanUsecase) setApproval(ctx context.Context, id uuid.UUID, actor uuid.UUID, approved bool, auditAction string) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	var approvedByPtr *uuid.UUID
	if approved {
		approvedByPtr = &actor
	}

	affected, err := u.planRepo.SetApproval(tx, id, approved, approvedByPtr)
	if err != nil {
		u.log.Warnf("Failed to set plan approval: %+v", err)
		return err
	}
	if affected == 0 {
		plan, err := u.planRepo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if plan == nil {
			return ErrPlanNotFound
		}
		return ErrPlanAlreadySet
	}

	if err := u.auditService.LogAction(ctx, tx, &actor, auditAction, "insurance_plan", id.String(), entity.JSON{
		"is_approved": approved,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *insurancePlanUsecase) Link(ctx context.Context, hospitalID uuid.UUID, req *dto.LinkInsurancePlanRequest) error {
	db := u.db.WithContext(ctx)

	plan, err := u.planRepo.FindByID(db, req.InsurancePlanID)
	if err != nil {
		u.log.Warnf("Failed to find insurance plan: %+v", err)
		return err
	}
	if plan == nil {
		return ErrPlanNotFound
	}
	if !plan.IsApproved {
		return ErrPlanNotApproved
	}

	exists, err := u.hospitalInsuranceRepo.Exists(db, hospitalID, req.InsurancePlanID)
	if err != nil {
		u.log.Warnf("Failed to check hospital insurance link: %+v", err)
		return err
	}
	if exists {
		return ErrPlanAlreadyLinked
	}

	link := &entity.HospitalInsurance{
		HospitalID:      hospitalID,
		InsurancePlanID: req.InsurancePlanID,
	}
	if err := u.hospitalInsuranceRepo.Create(db, link); err != nil {
		if isDuplicateKeyError(err, "hospital_insurance") {
			return ErrPlanAlreadyLinked
		}
		u.log.Warnf("Failed to link insurance plan: %+v", err)
		return err
	}

	return nil
}

func (u *insurancePlanUsecase) Unlink(ctx context.Context, hospitalID, planID uuid.UUID) error {
	affected, err := u.hospitalInsuranceRepo.Delete(u.db.WithContext(ctx), hospitalID, planID)
	if err != nil {
		u.log.Warnf("Failed to unlink insurance plan: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPlanNotLinked
	}

	return nil
}

func (u *insurancePlanUsecase) ListByHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.InsurancePlanListResponse, error) {
	plans, err := u.hospitalInsuranceRepo.FindApprovedPlansByHospital(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to list hospital insurance plans: %+v", err)
		return nil, err
	}

	return &dto.InsurancePlanListResponse{
		Plans: converter.InsurancePlansToResponses(plans),
		Total: len(plans),
	}, nil
}
