package usecase

import (
	"context"
	"testing"

	"medimarket/internal/delivery/dto"
	"medimarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingFormUsecaseForTest(t *testing.T) (BookingFormUsecase, *fakeBookingFormFieldRepo, *fakeHospitalRepo, testDeps) {
	t.Helper()

	db, mock := newTestDB(t)

	formFieldRepo := newFakeBookingFormFieldRepo()
	hospitalRepo := newFakeHospitalRepo()

	uc := NewBookingFormUsecase(db, newTestLogger(), formFieldRepo, hospitalRepo,
		newTestAuditService(db, newFakeAuditLogRepo()))

	return uc, formFieldRepo, hospitalRepo, testDeps{mock: mock}
}

func TestBookingFormUsecase_SaveAssignsSortOrder(t *testing.T) {
	uc, formFieldRepo, _, deps := newBookingFormUsecaseForTest(t)

	hospitalID := uuid.New()

	deps.mock.ExpectBegin()
	deps.mock.ExpectCommit()

	resp, err := uc.Save(context.Background(), uuid.New(), hospitalID, &dto.SaveBookingFormRequest{
		Fields: []dto.BookingFormFieldRequest{
			{FieldName: "blood_group", FieldLabel: "Blood Group", FieldType: "select", Options: []string{"A+", "B+", "O+"}},
			{FieldName: "allergies", FieldLabel: "Known Allergies", FieldType: "textarea"},
			{FieldName: "emergency_contact", FieldLabel: "Emergency Contact", FieldType: "phone", IsRequired: true},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Fields, 3)

	stored := formFieldRepo.fields[hospitalID]
	require.Len(t, stored, 3)
	for i, f := range stored {
		assert.Equal(t, i, f.SortOrder)
		assert.Equal(t, hospitalID, f.HospitalID)
	}
	assert.Equal(t, "blood_group", stored[0].FieldName)
	assert.Equal(t, "emergency_contact", stored[2].FieldName)
}

func TestBookingFormUsecase_SaveReplacesExistingFields(t *testing.T) {
	uc, formFieldRepo, _, deps := newBookingFormUsecaseForTest(t)

	hospitalID := uuid.New()
	formFieldRepo.fields[hospitalID] = []entity.BookingFormField{
		{HospitalID: hospitalID, FieldName: "old_field", FieldLabel: "Old", FieldType: "text"},
	}

	deps.mock.ExpectBegin()
	deps.mock.ExpectCommit()

	_, err := uc.Save(context.Background(), uuid.New(), hospitalID, &dto.SaveBookingFormRequest{
		Fields: []dto.BookingFormFieldRequest{
			{FieldName: "new_field", FieldLabel: "New", FieldType: "text"},
		},
	})
	require.NoError(t, err)

	stored := formFieldRepo.fields[hospitalID]
	require.Len(t, stored, 1)
	assert.Equal(t, "new_field", stored[0].FieldName)
}

func TestBookingFormUsecase_SaveEmptyClearsForm(t *testing.T) {
	uc, formFieldRepo, _, deps := newBookingFormUsecaseForTest(t)

	hospitalID := uuid.New()
	formFieldRepo.fields[hospitalID] = []entity.BookingFormField{
		{HospitalID: hospitalID, FieldName: "old_field", FieldLabel: "Old", FieldType: "text"},
	}

	deps.mock.ExpectBegin()
	deps.mock.ExpectCommit()

	resp, err := uc.Save(context.Background(), uuid.New(), hospitalID, &dto.SaveBookingFormRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Fields)
	assert.Empty(t, formFieldRepo.fields[hospitalID])
}

func TestBookingFormUsecase_SaveValidation(t *testing.T) {
	tests := []struct {
		name    string
		fields  []dto.BookingFormFieldRequest
		wantErr error
	}{
		{
			name: "unknown field type",
			fields: []dto.BookingFormFieldRequest{
				{FieldName: "age", FieldLabel: "Age", FieldType: "slider"},
			},
			wantErr: ErrInvalidFieldType,
		},
		{
			name: "select without options",
			fields: []dto.BookingFormFieldRequest{
				{FieldName: "blood_group", FieldLabel: "Blood Group", FieldType: "select"},
			},
			wantErr: ErrSelectRequiresOptions,
		},
		{
			name: "duplicate field name",
			fields: []dto.BookingFormFieldRequest{
				{FieldName: "phone", FieldLabel: "Phone", FieldType: "phone"},
				{FieldName: "phone", FieldLabel: "Alternate Phone", FieldType: "phone"},
			},
			wantErr: ErrDuplicateFieldName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, formFieldRepo, _, _ := newBookingFormUsecaseForTest(t)

			hospitalID := uuid.New()

			// Validation fails before any transaction starts
			_, err := uc.Save(context.Background(), uuid.New(), hospitalID, &dto.SaveBookingFormRequest{
				Fields: tt.fields,
			})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, formFieldRepo.fields[hospitalID])
		})
	}
}

func TestBookingFormUsecase_GetRequiresApprovedHospital(t *testing.T) {
	uc, formFieldRepo, hospitalRepo, _ := newBookingFormUsecaseForTest(t)

	hospital := &entity.Hospital{ID: uuid.New(), Status: entity.HospitalStatusPending}
	hospitalRepo.hospitals[hospital.ID] = hospital
	formFieldRepo.fields[hospital.ID] = []entity.BookingFormField{
		{HospitalID: hospital.ID, FieldName: "blood_group", FieldLabel: "Blood Group", FieldType: "text"},
	}

	_, err := uc.Get(context.Background(), hospital.ID)
	assert.ErrorIs(t, err, ErrHospitalNotFound)

	// The admin view works regardless of approval status
	resp, err := uc.GetForAdmin(context.Background(), hospital.ID)
	require.NoError(t, err)
	assert.Len(t, resp.Fields, 1)
}
