package model

import "github.com/google/uuid"

// UserRole is the auth_user_role join row.
type UserRole struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (UserRole) TableName() string { return "auth_user_role" }
