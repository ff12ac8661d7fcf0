package repository

import (
	"medimarket/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Appointment, error)
	FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID, status entity.AppointmentStatus) ([]entity.Appointment, error)
	// TransitionStatus updates the status ONLY if the current status is one
	// of from. Returns affected rows: 1 = success, 0 = precondition failed
	// (illegal transition or missing row). The guard lives in SQL so two
	// concurrent admins cannot both win.
	TransitionStatus(db *gorm.DB, id uuid.UUID, from []entity.AppointmentStatus, to entity.AppointmentStatus, updates map[string]interface{}) (int64, error)
	CountByHospitalAndStatus(db *gorm.DB, hospitalID uuid.UUID, status entity.AppointmentStatus) (int64, error)
	Count(db *gorm.DB) (int64, error)
}
