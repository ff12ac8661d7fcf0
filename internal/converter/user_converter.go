package converter

import (
	"medimarket/internal/delivery/dto"
	"medimarket/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// SessionToResponse assembles the resolved session view: user identity,
// profile, every held role and (for hospital admins) the linked hospital
func SessionToResponse(user *entity.User, profile *entity.Profile, roles []entity.AppRole, admin *entity.HospitalAdmin) *dto.SessionResponse {
	if user == nil {
		return nil
	}

	response := &dto.SessionResponse{
		User:    *UserToResponse(user),
		Profile: ProfileToResponse(profile),
		Roles:   make([]string, len(roles)),
	}
	for i, role := range roles {
		response.Roles[i] = string(role)
	}

	if admin != nil {
		hospitalID := admin.HospitalID
		response.HospitalID = &hospitalID
	}

	return response
}
