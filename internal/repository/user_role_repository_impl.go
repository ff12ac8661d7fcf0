package repository

import (
	"medimarket/internal/domain/entity"
	domainRepo "medimarket/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRoleRepository struct{}

func NewUserRoleRepository() domainRepo.UserRoleRepository {
	return &userRoleRepository{}
}

func (r *userRoleRepository) Create(db *gorm.DB, role *entity.UserRole) error {
	return db.Create(role).Error
}

func (r *userRoleRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.UserRole, error) {
	var roles []entity.UserRole
	err := db.Where("user_id = ?", userID).Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *userRoleRepository) HasRole(db *gorm.DB, userID uuid.UUID, role entity.AppRole) (bool, error) {
	var count int64
	err := db.Model(&entity.UserRole{}).
		Where("user_id = ? AND role = ?", userID, role).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
