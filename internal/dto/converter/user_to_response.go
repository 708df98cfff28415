package converter

import (
	"time"

	"auth-service/internal/dto"
	"auth-service/internal/model"
)

func UserToResponse(user *model.User) *dto.UserResponse {
	roles := user.RoleNames()

	return &dto.UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		IsActive:  user.IsActive,
		Roles:     roles,
		CreatedAt: user.CreatedAt.Format(dto.DateLayout),
		UpdatedAt: formatDate(user.UpdatedAt),
	}
}

func RoleToResponse(role *model.Role) *dto.RoleResponse {
	return &dto.RoleResponse{
		Name:        role.Name,
		Title:       role.Title,
		Description: role.Description,
		CreatedAt:   role.CreatedAt.Format(dto.DateLayout),
		UpdatedAt:   formatDate(role.UpdatedAt),
	}
}

// SignupRequestToUser builds an unsaved user. Password is still plaintext.
func SignupRequestToUser(request *dto.SignupRequest) *model.User {
	return &model.User{
		Email:    request.Email,
		Password: request.Password,
		IsActive: true,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dto.DateLayout)
	return &s
}
