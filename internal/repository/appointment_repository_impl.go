package repository

import (
	"errors"

	"medimarket/internal/domain/entity"
	domainRepo "medimarket/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Hospital").Preload("Doctor").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Hospital").Preload("Doctor").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID, status entity.AppointmentStatus) ([]entity.Appointment, error) {
	query := db.Preload("Doctor").Where("hospital_id = ?", hospitalID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var appointments []entity.Appointment
	err := query.Order("appointment_date ASC, created_at DESC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// TransitionStatus performs the guarded lifecycle update. The status
// precondition sits in the WHERE clause so an illegal transition (for
// example completing a pending appointment) affects zero rows instead of
// overwriting a terminal state.
func (r *appointmentRepository) TransitionStatus(db *gorm.DB, id uuid.UUID, from []entity.AppointmentStatus, to entity.AppointmentStatus, updates map[string]interface{}) (int64, error) {
	values := map[string]interface{}{"status": to}
	for k, v := range updates {
		values[k] = v
	}

	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(values)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) CountByHospitalAndStatus(db *gorm.DB, hospitalID uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("hospital_id = ? AND status = ?", hospitalID, status).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Count(&count).Error
	return count, err
}
