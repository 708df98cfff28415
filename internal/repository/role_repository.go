package repository

import (
	"context"

	"auth-service/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoleRepository struct {
	Repository[model.Role]
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{
		Repository: Repository[model.Role]{db},
	}
}

func (r *RoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	var role model.Role
	if err := r.FindById(ctx, &role, id); err != nil {
		return nil, err
	}
	return &role, nil
}

// FindByName returns gorm.ErrRecordNotFound when no role carries name.
func (r *RoleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	if err := r.getDb(ctx).Where("name = ?", name).Take(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// FindByNames returns the roles matching names; unknown names are skipped.
func (r *RoleRepository) FindByNames(ctx context.Context, names ...string) ([]model.Role, error) {
	var roles []model.Role
	if len(names) == 0 {
		return roles, nil
	}
	err := r.getDb(ctx).Where("name IN ?", names).Order("name").Find(&roles).Error
	return roles, err
}

// FindAllByName lists every role ordered by name.
func (r *RoleRepository) FindAllByName(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	err := r.getDb(ctx).Order("name").Find(&roles).Error
	return roles, err
}
