package repository

import (
	"medimarket/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRoleRepository interface {
	Create(db *gorm.DB, role *entity.UserRole) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.UserRole, error)
	HasRole(db *gorm.DB, userID uuid.UUID, role entity.AppRole) (bool, error)
}
