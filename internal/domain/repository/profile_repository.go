package repository

import (
	"medimarket/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(db *gorm.DB, profile *entity.Profile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Profile, error)
	Update(db *gorm.DB, profile *entity.Profile) error
}
