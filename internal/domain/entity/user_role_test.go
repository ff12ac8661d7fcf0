package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesContain(t *testing.T) {
	tests := []struct {
		name     string
		roles    []AppRole
		required AppRole
		want     bool
	}{
		{
			name:     "user has the required role",
			roles:    []AppRole{RoleUser, RoleHospitalAdmin},
			required: RoleHospitalAdmin,
			want:     true,
		},
		{
			name:     "user lacks the required role",
			roles:    []AppRole{RoleUser},
			required: RoleHospitalAdmin,
			want:     false,
		},
		{
			name:     "super admin satisfies any role check",
			roles:    []AppRole{RoleSuperAdmin},
			required: RoleInsuranceAdmin,
			want:     true,
		},
		{
			name:     "super admin satisfies its own role check",
			roles:    []AppRole{RoleSuperAdmin},
			required: RoleSuperAdmin,
			want:     true,
		},
		{
			name:     "empty role set",
			roles:    nil,
			required: RoleUser,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RolesContain(tt.roles, tt.required))
		})
	}
}

func TestEffectiveRoles(t *testing.T) {
	tests := []struct {
		name      string
		userRoles []UserRole
		want      []AppRole
	}{
		{
			name:      "no rows defaults to plain user",
			userRoles: nil,
			want:      []AppRole{RoleUser},
		},
		{
			name:      "empty slice defaults to plain user",
			userRoles: []UserRole{},
			want:      []AppRole{RoleUser},
		},
		{
			name: "rows map to their roles",
			userRoles: []UserRole{
				{Role: RoleUser},
				{Role: RoleHospitalAdmin},
			},
			want: []AppRole{RoleUser, RoleHospitalAdmin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveRoles(tt.userRoles))
		})
	}
}
