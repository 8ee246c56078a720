package converter

import (
	"bloodlink-api/internal/delivery/dto"
	"bloodlink-api/internal/domain/entity"
)

// UserToResponse converts a User entity to its response DTO. The role name
// may be overridden by a cached session role; pass "" to derive it from
// the entity.
func UserToResponse(user *entity.User, role string) *dto.UserResponse {
	if user == nil {
		return nil
	}
	if role == "" {
		role = entity.RoleNameFor(user.RoleID)
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
