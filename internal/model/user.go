package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// PasswordCost is the bcrypt cost used by SetPassword.
var PasswordCost = bcrypt.DefaultCost

type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string     `gorm:"unique;not null" json:"email"`
	Password  string     `gorm:"not null" json:"-"`
	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	Roles     []Role     `gorm:"many2many:auth_user_role;" json:"roles"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

func (User) TableName() string { return "auth_user" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) BeforeUpdate(tx *gorm.DB) error {
	now := time.Now()
	u.UpdatedAt = &now
	return nil
}

// SetPassword replaces the password with its bcrypt hash.
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

func (u *User) RoleNames() []string {
	names := make([]string, len(u.Roles))
	for i, role := range u.Roles {
		names[i] = role.Name
	}
	return names
}

// HasRoles reports whether the user holds every one of names.
func (u *User) HasRoles(names ...string) bool {
	held := make(map[string]struct{}, len(u.Roles))
	for _, role := range u.Roles {
		held[role.Name] = struct{}{}
	}
	for _, name := range names {
		if _, ok := held[name]; !ok {
			return false
		}
	}
	return true
}
