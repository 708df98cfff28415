package service

import (
	"auth-service/internal/model"
	"auth-service/internal/utils/apperrors"
)

// AuthorizeRoles requires user to hold every role in names.
func AuthorizeRoles(user *model.User, names ...string) error {
	if user == nil {
		return apperrors.ErrNotAuthorized
	}
	if !user.HasRoles(names...) {
		return apperrors.ErrPermissions
	}
	return nil
}
