package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table.
// Authorization roles live in user_roles; a user may hold several.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Profile *Profile   `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Roles   []UserRole `gorm:"foreignKey:UserID" json:"roles,omitempty"`
}

func (User) TableName() string {
	return "users"
}
