package repository

import (
	"testing"

	"medimarket/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentRepository_TransitionStatus(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAppointmentRepository()

	appointmentID := uuid.New()

	t.Run("legal transition affects one row", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "appointments" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		affected, err := repo.TransitionStatus(db, appointmentID,
			[]entity.AppointmentStatus{entity.AppointmentStatusPending},
			entity.AppointmentStatusConfirmed,
			map[string]interface{}{"assigned_time": "10:30"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("illegal transition affects zero rows", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "appointments" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		affected, err := repo.TransitionStatus(db, appointmentID,
			[]entity.AppointmentStatus{entity.AppointmentStatusConfirmed},
			entity.AppointmentStatusCompleted, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_CountByHospitalAndStatus(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAppointmentRepository()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountByHospitalAndStatus(db, uuid.New(), entity.AppointmentStatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
