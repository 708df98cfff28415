package repository

import (
	"context"

	"auth-service/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	Repository[model.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		Repository: Repository[model.User]{db},
	}
}

// FindByID loads a user and its roles. A missing row yields gorm.ErrRecordNotFound.
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.getDb(ctx).Preload("Roles").Where("id = ?", id).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail loads a user and its roles. A missing row yields gorm.ErrRecordNotFound.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.getDb(ctx).Preload("Roles").Where("email = ?", email).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CountByEmail returns the number of users with the given email.
func (r *UserRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var total int64
	err := r.getDb(ctx).Model(&model.User{}).Where("email = ?", email).Count(&total).Error
	return total, err
}

// Save treats user.Password as plaintext, hashes it and persists the user.
func (r *UserRepository) Save(ctx context.Context, user *model.User) error {
	if err := user.SetPassword(user.Password); err != nil {
		return err
	}
	return r.SaveHashed(ctx, user)
}

// SaveHashed persists the user with its password column untouched.
func (r *UserRepository) SaveHashed(ctx context.Context, user *model.User) error {
	return r.Repository.Save(ctx, user)
}

// AssignRoles links roles to user, keeping existing links. It writes the
// join rows only, so the user's updated_at is left alone.
func (r *UserRepository) AssignRoles(ctx context.Context, user *model.User, roles ...model.Role) error {
	held := make(map[uuid.UUID]struct{}, len(user.Roles))
	for _, role := range user.Roles {
		held[role.ID] = struct{}{}
	}

	links := make([]model.UserRole, 0, len(roles))
	added := make([]model.Role, 0, len(roles))
	for _, role := range roles {
		if _, ok := held[role.ID]; ok {
			continue
		}
		held[role.ID] = struct{}{}
		links = append(links, model.UserRole{UserID: user.ID, RoleID: role.ID})
		added = append(added, role)
	}
	if len(links) == 0 {
		return nil
	}

	if err := r.getDb(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error; err != nil {
		return err
	}
	user.Roles = append(user.Roles, added...)
	return nil
}
