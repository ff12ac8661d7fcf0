package usecase

import (
	"context"
	"testing"

	"medimarket/internal/delivery/dto"
	"medimarket/internal/domain/entity"
	"medimarket/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHospitalUsecaseForTest(t *testing.T) (HospitalUsecase, *fakeHospitalRepo, *fakeUserRoleRepo, *fakeHospitalAdminRepo, *fakeAuditLogRepo, *service.ListingCacheService, testDeps) {
	t.Helper()

	db, mock := newTestDB(t)
	redisClient, _ := newTestRedis(t)

	hospitalRepo := newFakeHospitalRepo()
	userRoleRepo := newFakeUserRoleRepo()
	hospitalAdminRepo := newFakeHospitalAdminRepo()
	auditRepo := newFakeAuditLogRepo()
	listingCache := service.NewListingCacheService(redisClient, newTestLogger())

	uc := NewHospitalUsecase(db, newTestLogger(), hospitalRepo, userRoleRepo, hospitalAdminRepo,
		newTestAuditService(db, auditRepo), listingCache)

	return uc, hospitalRepo, userRoleRepo, hospitalAdminRepo, auditRepo, listingCache, testDeps{mock: mock}
}

func TestHospitalUsecase_Approve(t *testing.T) {
	uc, hospitalRepo, userRoleRepo, hospitalAdminRepo, auditRepo, _, deps := newHospitalUsecaseForTest(t)

	registrant := uuid.New()
	admin := uuid.New()
	hospital := &entity.Hospital{
		ID:           uuid.New(),
		Name:         "City Care Hospital",
		Status:       entity.HospitalStatusPending,
		RegisteredBy: &registrant,
	}
	hospitalRepo.hospitals[hospital.ID] = hospital

	deps.mock.ExpectBegin()
	deps.mock.ExpectCommit()

	err := uc.Approve(context.Background(), hospital.ID, admin)
	require.NoError(t, err)

	assert.Equal(t, entity.HospitalStatusApproved, hospital.Status)
	require.NotNil(t, hospital.ApprovedBy)
	assert.Equal(t, admin, *hospital.ApprovedBy)

	// Registrant is provisioned exactly once
	assert.Equal(t, 1, userRoleRepo.countRole(registrant, entity.RoleHospitalAdmin))
	require.Len(t, hospitalAdminRepo.links, 1)
	assert.Equal(t, registrant, hospitalAdminRepo.links[0].UserID)
	assert.Equal(t, hospital.ID, hospitalAdminRepo.links[0].HospitalID)

	assert.Contains(t, auditRepo.actions(), entity.AuditActionHospitalApprove)
	assert.NoError(t, deps.mock.ExpectationsWereMet())
}

func TestHospitalUsecase_ApproveIdempotentProvisioning(t *testing.T) {
	uc, hospitalRepo, userRoleRepo, hospitalAdminRepo, _, _, deps := newHospitalUsecaseForTest(t)

	registrant := uuid.New()
	hospital := &entity.Hospital{
		ID:           uuid.New(),
		Name:         "Lakeside Medical",
		Status:       entity.HospitalStatusPending,
		RegisteredBy: &registrant,
	}
	hospitalRepo.hospitals[hospital.ID] = hospital

	// Registrant already administers another hospital
	userRoleRepo.roles = append(userRoleRepo.roles, entity.UserRole{
		ID:     uuid.New(),
		UserID: registrant,
		Role:   entity.RoleHospitalAdmin,
	})
	hospitalAdminRepo.links = append(hospitalAdminRepo.links, entity.HospitalAdmin{
		ID:         uuid.New(),
		UserID:     registrant,
		HospitalID: uuid.New(),
	})

	deps.mock.ExpectBegin()
	deps.mock.ExpectCommit()

	err := uc.Approve(context.Background(), hospital.ID, uuid.New())
	require.NoError(t, err)

	// No duplicate role, but a fresh link to the new hospital
	assert.Equal(t, 1, userRoleRepo.countRole(registrant, entity.RoleHospitalAdmin))
	assert.Len(t, hospitalAdminRepo.links, 2)
}

func TestHospitalUsecase_ApproveNotPending(t *testing.T) {
	uc, hospitalRepo, userRoleRepo, _, _, _, deps := newHospitalUsecaseForTest(t)

	registrant := uuid.New()
	hospital := &entity.Hospital{
		ID:           uuid.New(),
		Status:       entity.HospitalStatusApproved,
		RegisteredBy: &registrant,
	}
	hospitalRepo.hospitals[hospital.ID] = hospital

	deps.mock.ExpectBegin()
	deps.mock.ExpectRollback()

	err := uc.Approve(context.Background(), hospital.ID, uuid.New())
	assert.ErrorIs(t, err, ErrHospitalNotPending)

	// Nothing provisioned on a failed approval
	assert.Empty(t, userRoleRepo.roles)
	assert.NoError(t, deps.mock.ExpectationsWereMet())
}

func TestHospitalUsecase_ApproveNotFound(t *testing.T) {
	uc, _, _, _, _, _, deps := newHospitalUsecaseForTest(t)

	deps.mock.ExpectBegin()
	deps.mock.ExpectRollback()

	err := uc.Approve(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrHospitalNotFound)
}

func TestHospitalUsecase_RejectPersistsReason(t *testing.T) {
	uc, hospitalRepo, _, _, auditRepo, _, deps := newHospitalUsecaseForTest(t)

	hospital := &entity.Hospital{
		ID:     uuid.New(),
		Status: entity.HospitalStatusPending,
	}
	hospitalRepo.hospitals[hospital.ID] = hospital

	deps.mock.ExpectBegin()
	deps.mock.ExpectCommit()

	err := uc.Reject(context.Background(), hospital.ID, uuid.New(), &dto.RejectHospitalRequest{
		Reason: "registration number could not be verified",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.HospitalStatusRejected, hospital.Status)
	assert.Equal(t, "registration number could not be verified", hospital.RejectionReason)
	assert.Contains(t, auditRepo.actions(), entity.AuditActionHospitalReject)
}

func TestHospitalUsecase_RejectNotPending(t *testing.T) {
	uc, hospitalRepo, _, _, _, _, deps := newHospitalUsecaseForTest(t)

	hospital := &entity.Hospital{
		ID:     uuid.New(),
		Status: entity.HospitalStatusRejected,
	}
	hospitalRepo.hospitals[hospital.ID] = hospital

	deps.mock.ExpectBegin()
	deps.mock.ExpectRollback()

	err := uc.Reject(context.Background(), hospital.ID, uuid.New(), &dto.RejectHospitalRequest{Reason: "duplicate"})
	assert.ErrorIs(t, err, ErrHospitalNotPending)
}

func TestHospitalUsecase_ApproveInvalidatesListingCache(t *testing.T) {
	uc, hospitalRepo, _, _, _, listingCache, deps := newHospitalUsecaseForTest(t)

	// Warm the cache with the pre-approval listing
	listingCache.SetHospitals(context.Background(), &entity.HospitalFilter{}, []entity.Hospital{})

	registrant := uuid.New()
	hospital := &entity.Hospital{
		ID:           uuid.New(),
		Status:       entity.HospitalStatusPending,
		RegisteredBy: &registrant,
	}
	hospitalRepo.hospitals[hospital.ID] = hospital

	deps.mock.ExpectBegin()
	deps.mock.ExpectCommit()

	err := uc.Approve(context.Background(), hospital.ID, uuid.New())
	require.NoError(t, err)

	_, ok := listingCache.GetHospitals(context.Background(), &entity.HospitalFilter{})
	assert.False(t, ok, "listing cache should be invalidated after approval")
}

func TestHospitalUsecase_GetHidesUnapproved(t *testing.T) {
	uc, hospitalRepo, _, _, _, _, _ := newHospitalUsecaseForTest(t)

	hospital := &entity.Hospital{
		ID:     uuid.New(),
		Name:   "Sunrise Clinic",
		Status: entity.HospitalStatusPending,
	}
	hospitalRepo.hospitals[hospital.ID] = hospital

	_, err := uc.Get(context.Background(), hospital.ID, false)
	assert.ErrorIs(t, err, ErrHospitalNotFound)

	resp, err := uc.Get(context.Background(), hospital.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "Sunrise Clinic", resp.Name)
}
