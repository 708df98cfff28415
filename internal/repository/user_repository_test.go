package repository

import (
	"context"
	"testing"

	"auth-service/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_SaveHashesPassword(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &model.User{Email: "alice@example.com", Password: "s3cret"}
	require.NoError(t, repo.Save(ctx, user))
	require.NotEqual(t, "s3cret", user.Password)

	stored, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, stored.ID)
	require.NotEqual(t, "s3cret", stored.Password)
	require.True(t, stored.CheckPassword("s3cret"))
	require.True(t, stored.IsActive)
	require.Nil(t, stored.UpdatedAt)
}

func TestUserRepository_SaveHashedKeepsHash(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &model.User{Email: "bob@example.com"}
	require.NoError(t, user.SetPassword("pw"))
	hash := user.Password

	require.NoError(t, repo.SaveHashed(ctx, user))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, hash, stored.Password)
	require.True(t, stored.CheckPassword("pw"))

	stored.IsActive = false
	require.NoError(t, repo.SaveHashed(ctx, stored))

	updated, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.False(t, updated.IsActive)
	require.NotNil(t, updated.UpdatedAt)
	require.Equal(t, hash, updated.Password)
}

func TestUserRepository_UniqueEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &model.User{Email: "dup@example.com", Password: "a"}))
	err := repo.Save(ctx, &model.User{Email: "dup@example.com", Password: "b"})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	total, err := repo.CountByEmail(ctx, "dup@example.com")
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
}

func TestUserRepository_AssignRoles(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	roles := NewRoleRepository(db)
	ctx := context.Background()
	seedRoles(t, roles, "GUEST", "ADMINISTRATOR")

	user := &model.User{Email: "carol@example.com", Password: "pw"}
	require.NoError(t, users.Save(ctx, user))

	found, err := roles.FindByNames(ctx, "GUEST", "ADMINISTRATOR")
	require.NoError(t, err)
	require.NoError(t, users.AssignRoles(ctx, user, found...))
	require.NoError(t, users.AssignRoles(ctx, user))

	stored, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"GUEST", "ADMINISTRATOR"}, stored.RoleNames())
	require.True(t, stored.HasRoles("ADMINISTRATOR"))
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByID(ctx, uuid.New())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.FindByEmail(ctx, "ghost@example.com")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	total, err := repo.CountByEmail(ctx, "ghost@example.com")
	require.NoError(t, err)
	require.Zero(t, total)
}
