package database

import (
	"auth-service/internal/model"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RunMigrations creates auth_role, auth_user and the auth_user_role join table.
func RunMigrations(db *gorm.DB, log *logrus.Logger) error {
	log.Info("Starting database migrations")

	if err := db.SetupJoinTable(&model.User{}, "Roles", &model.UserRole{}); err != nil {
		log.WithError(err).Error("Failed to set up user role join table")
		return err
	}

	if err := db.AutoMigrate(&model.Role{}, &model.User{}, &model.UserRole{}); err != nil {
		log.WithError(err).Error("Failed to run migrations")
		return err
	}

	log.Info("Database migrations completed successfully")
	return nil
}
