package middleware

import (
	"context"
	"net/http"

	"medimarket/internal/domain/entity"
	"medimarket/internal/domain/repository"
	"medimarket/pkg/response"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RoleMiddleware resolves authorization roles from the database on every
// request. Roles change while a session is live (a user becomes a hospital
// admin the moment their hospital is approved), so they are never baked
// into the JWT.
type RoleMiddleware struct {
	db                *gorm.DB
	log               *logrus.Logger
	userRoleRepo      repository.UserRoleRepository
	hospitalAdminRepo repository.HospitalAdminRepository
}

func NewRoleMiddleware(
	db *gorm.DB,
	log *logrus.Logger,
	userRoleRepo repository.UserRoleRepository,
	hospitalAdminRepo repository.HospitalAdminRepository,
) *RoleMiddleware {
	return &RoleMiddleware{
		db:                db,
		log:               log,
		userRoleRepo:      userRoleRepo,
		hospitalAdminRepo: hospitalAdminRepo,
	}
}

// RequireRole checks that the user holds any of the allowed roles.
// A super admin passes every role check.
func (m *RoleMiddleware) RequireRole(allowedRoles ...entity.AppRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "User information not found")
				return
			}

			userRoles, err := m.userRoleRepo.FindByUserID(m.db.WithContext(r.Context()), userID)
			if err != nil {
				m.log.Warnf("Failed to resolve user roles: %+v", err)
				response.InternalServerError(w, "Failed to resolve roles")
				return
			}

			roles := entity.EffectiveRoles(userRoles)

			allowed := false
			for _, allowedRole := range allowedRoles {
				if entity.RolesContain(roles, allowedRole) {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireHospitalAdmin checks the hospital admin role and injects the
// administered hospital ID into the request context. A user linked to
// several hospitals resolves to the first link.
func (m *RoleMiddleware) RequireHospitalAdmin(next http.Handler) http.Handler {
	return m.RequireRole(entity.RoleHospitalAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "User information not found")
			return
		}

		admin, err := m.hospitalAdminRepo.FindFirstByUserID(m.db.WithContext(r.Context()), userID)
		if err != nil {
			m.log.Warnf("Failed to resolve hospital admin link: %+v", err)
			response.InternalServerError(w, "Failed to resolve hospital")
			return
		}
		if admin == nil {
			response.Forbidden(w, "No hospital is linked to this account")
			return
		}

		ctx := context.WithValue(r.Context(), HospitalIDKey, admin.HospitalID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}))
}

// RequireInsuranceAdmin gates insurance management endpoints
func (m *RoleMiddleware) RequireInsuranceAdmin(next http.Handler) http.Handler {
	return m.RequireRole(entity.RoleInsuranceAdmin)(next)
}

// RequireSuperAdmin gates platform administration endpoints
func (m *RoleMiddleware) RequireSuperAdmin(next http.Handler) http.Handler {
	return m.RequireRole(entity.RoleSuperAdmin)(next)
}
