package entity

import "github.com/google/uuid"

// AppRole is an application role held by a user
type AppRole string

const (
	RoleUser           AppRole = "user"
	RoleHospitalAdmin  AppRole = "hospital_admin"
	RoleInsuranceAdmin AppRole = "insurance_admin"
	RoleSuperAdmin     AppRole = "super_admin"
)

// UserRole maps a user to one of their roles. A user with no rows is
// treated as holding RoleUser.
type UserRole struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_roles_user_role" json:"user_id"`
	Role   AppRole   `gorm:"type:app_role;not null;default:'user';uniqueIndex:idx_user_roles_user_role" json:"role"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

// EffectiveRoles flattens a user's role rows into the roles they act with.
// A user with no rows holds RoleUser.
func EffectiveRoles(userRoles []UserRole) []AppRole {
	if len(userRoles) == 0 {
		return []AppRole{RoleUser}
	}
	roles := make([]AppRole, len(userRoles))
	for i, r := range userRoles {
		roles[i] = r.Role
	}
	return roles
}

// RolesContain reports whether roles includes the required role.
// Super admins satisfy every role requirement.
func RolesContain(roles []AppRole, required AppRole) bool {
	for _, r := range roles {
		if r == required || r == RoleSuperAdmin {
			return true
		}
	}
	return false
}
