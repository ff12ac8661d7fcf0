package usecase

import (
	"context"
	"testing"

	"medimarket/internal/delivery/dto"
	"medimarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInsurancePlanUsecaseForTest(t *testing.T) (InsurancePlanUsecase, *fakeInsurancePlanRepo, *fakeHospitalInsuranceRepo, *fakeAuditLogRepo, testDeps) {
	t.Helper()

	db, mock := newTestDB(t)

	planRepo := newFakeInsurancePlanRepo()
	hospitalInsuranceRepo := newFakeHospitalInsuranceRepo(planRepo)
	auditRepo := newFakeAuditLogRepo()

	uc := NewInsurancePlanUsecase(db, newTestLogger(), planRepo, hospitalInsuranceRepo,
		newTestAuditService(db, auditRepo))

	return uc, planRepo, hospitalInsuranceRepo, auditRepo, testDeps{mock: mock}
}

func seedPlan(repo *fakeInsurancePlanRepo, approved bool) *entity.InsurancePlan {
	plan := &entity.InsurancePlan{
		ID:             uuid.New(),
		ProviderName:   "Star Health",
		Name:           "Family Floater Gold",
		PlanType:       "family",
		CoverageAmount: decimal.NewFromInt(500000),
		IsApproved:     approved,
	}
	repo.plans[plan.ID] = plan
	return plan
}

func TestInsurancePlanUsecase_Submit(t *testing.T) {
	uc, planRepo, _, auditRepo, deps := newInsurancePlanUsecaseForTest(t)

	uploader := uuid.New()

	deps.mock.ExpectBegin()
	deps.mock.ExpectCommit()

	resp, err := uc.Submit(context.Background(), uploader, entity.PlanUploaderInsuranceAdmin, &dto.SubmitInsurancePlanRequest{
		ProviderName:   "Star Health",
		Name:           "Family Floater Gold",
		CoverageAmount: decimal.NewFromInt(500000),
		PremiumMonthly: decimal.NewFromInt(1500),
	})
	require.NoError(t, err)

	// Plans start unapproved with the default plan type
	assert.False(t, resp.IsApproved)
	assert.Equal(t, "individual", resp.PlanType)

	require.Len(t, planRepo.plans, 1)
	for _, p := range planRepo.plans {
		assert.Equal(t, entity.PlanUploaderInsuranceAdmin, p.UploadedByType)
		require.NotNil(t, p.UploadedBy)
		assert.Equal(t, uploader, *p.UploadedBy)
	}
	assert.Contains(t, auditRepo.actions(), entity.AuditActionPlanSubmit)
}

func TestInsurancePlanUsecase_ApproveAndRevoke(t *testing.T) {
	uc, planRepo, _, auditRepo, deps := newInsurancePlanUsecaseForTest(t)

	plan := seedPlan(planRepo, false)
	admin := uuid.New()

	deps.mock.ExpectBegin()
	deps.mock.ExpectCommit()

	err := uc.Approve(context.Background(), plan.ID, admin)
	require.NoError(t, err)
	assert.True(t, plan.IsApproved)
	require.NotNil(t, plan.ApprovedBy)
	assert.Equal(t, admin, *plan.ApprovedBy)

	// Approving an already-approved plan reports the conflict
	deps.mock.ExpectBegin()
	deps.mock.ExpectRollback()

	err = uc.Approve(context.Background(), plan.ID, admin)
	assert.ErrorIs(t, err, ErrPlanAlreadySet)

	// Revoke withdraws the plan and clears the approver
	deps.mock.ExpectBegin()
	deps.mock.ExpectCommit()

	err = uc.Revoke(context.Background(), plan.ID, admin)
	require.NoError(t, err)
	assert.False(t, plan.IsApproved)
	assert.Nil(t, plan.ApprovedBy)

	assert.Contains(t, auditRepo.actions(), entity.AuditActionPlanApprove)
	assert.Contains(t, auditRepo.actions(), entity.AuditActionPlanRevoke)
}

func TestInsurancePlanUsecase_ApproveNotFound(t *testing.T) {
	uc, _, _, _, deps := newInsurancePlanUsecaseForTest(t)

	deps.mock.ExpectBegin()
	deps.mock.ExpectRollback()

	err := uc.Approve(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestInsurancePlanUsecase_Link(t *testing.T) {
	uc, planRepo, hospitalInsuranceRepo, _, _ := newInsurancePlanUsecaseForTest(t)

	plan := seedPlan(planRepo, true)
	hospitalID := uuid.New()

	err := uc.Link(context.Background(), hospitalID, &dto.LinkInsurancePlanRequest{InsurancePlanID: plan.ID})
	require.NoError(t, err)
	require.Len(t, hospitalInsuranceRepo.links, 1)

	// Linking twice is a conflict
	err = uc.Link(context.Background(), hospitalID, &dto.LinkInsurancePlanRequest{InsurancePlanID: plan.ID})
	assert.ErrorIs(t, err, ErrPlanAlreadyLinked)
	assert.Len(t, hospitalInsuranceRepo.links, 1)
}

func TestInsurancePlanUsecase_LinkRequiresApprovedPlan(t *testing.T) {
	uc, planRepo, _, _, _ := newInsurancePlanUsecaseForTest(t)

	plan := seedPlan(planRepo, false)

	err := uc.Link(context.Background(), uuid.New(), &dto.LinkInsurancePlanRequest{InsurancePlanID: plan.ID})
	assert.ErrorIs(t, err, ErrPlanNotApproved)

	err = uc.Link(context.Background(), uuid.New(), &dto.LinkInsurancePlanRequest{InsurancePlanID: uuid.New()})
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestInsurancePlanUsecase_Unlink(t *testing.T) {
	uc, planRepo, hospitalInsuranceRepo, _, _ := newInsurancePlanUsecaseForTest(t)

	plan := seedPlan(planRepo, true)
	hospitalID := uuid.New()
	hospitalInsuranceRepo.links = append(hospitalInsuranceRepo.links, entity.HospitalInsurance{
		ID:              uuid.New(),
		HospitalID:      hospitalID,
		InsurancePlanID: plan.ID,
	})

	err := uc.Unlink(context.Background(), hospitalID, plan.ID)
	require.NoError(t, err)
	assert.Empty(t, hospitalInsuranceRepo.links)

	err = uc.Unlink(context.Background(), hospitalID, plan.ID)
	assert.ErrorIs(t, err, ErrPlanNotLinked)
}

func TestInsurancePlanUsecase_ListByHospital(t *testing.T) {
	uc, planRepo, hospitalInsuranceRepo, _, _ := newInsurancePlanUsecaseForTest(t)

	approved := seedPlan(planRepo, true)
	revoked := seedPlan(planRepo, false)

	hospitalID := uuid.New()
	for _, planID := range []uuid.UUID{approved.ID, revoked.ID} {
		hospitalInsuranceRepo.links = append(hospitalInsuranceRepo.links, entity.HospitalInsurance{
			ID:              uuid.New(),
			HospitalID:      hospitalID,
			InsurancePlanID: planID,
		})
	}

	// Revoked plans drop out of the hospital's listing
	resp, err := uc.ListByHospital(context.Background(), hospitalID)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, approved.ID, resp.Plans[0].ID)
}
