package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"auth-service/internal/config/database"
	"auth-service/internal/config/env"
	"auth-service/internal/model"
	"auth-service/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	model.PasswordCost = bcrypt.MinCost
}

func testEnvConfig() *env.Config {
	cfg := &env.Config{}
	cfg.App.Name = "auth-test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTokenExpiration = 900
	cfg.Redis.ProfileTTL = 60
	return cfg
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.RunMigrations(db, testLogger()))
	return db
}

func seedRole(t *testing.T, db *gorm.DB, name string) model.Role {
	t.Helper()
	role := model.Role{Name: name}
	require.NoError(t, repository.NewRoleRepository(db).Create(context.Background(), &role))
	return role
}

func seedUser(t *testing.T, db *gorm.DB, email, password string, roles ...model.Role) *model.User {
	t.Helper()
	users := repository.NewUserRepository(db)
	user := &model.User{Email: email, Password: password, IsActive: true}
	require.NoError(t, users.Save(context.Background(), user))
	require.NoError(t, users.AssignRoles(context.Background(), user, roles...))
	return user
}
