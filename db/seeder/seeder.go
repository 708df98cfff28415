package seeder

import (
	"context"
	"errors"

	"auth-service/internal/config/env"
	"auth-service/internal/constant"
	"auth-service/internal/model"
	"auth-service/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type roleSeed struct {
	name        string
	title       string
	description string
}

var roleSeeds = []roleSeed{
	{constant.RoleGuest, "Guest", "Basic permissions"},
	{constant.RoleAdministrator, "Administrator", "All permissions"},
}

// SeedRoles creates the GUEST and ADMINISTRATOR roles when missing.
// Running it again changes nothing.
func SeedRoles(ctx context.Context, db *gorm.DB, log *logrus.Logger) error {
	roles := repository.NewRoleRepository(db)

	for _, seed := range roleSeeds {
		_, err := roles.FindByName(ctx, seed.name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		title, description := seed.title, seed.description
		role := &model.Role{Name: seed.name, Title: &title, Description: &description}
		if err := roles.Create(ctx, role); err != nil {
			return err
		}
		log.WithField("role", seed.name).Info("Seeded role")
	}
	return nil
}

// Seed runs SeedRoles and, when seed.admin_email is configured, creates that
// user holding every seeded role.
func Seed(ctx context.Context, db *gorm.DB, log *logrus.Logger, config *env.Config) error {
	return repository.NewUnitOfWork(db).Do(ctx, func(ctx context.Context) error {
		if err := SeedRoles(ctx, db, log); err != nil {
			return err
		}

		email := config.Seed.AdminEmail
		if email == "" {
			return nil
		}
		if config.Seed.AdminPassword == "" {
			return errors.New("seed.admin_password is required with seed.admin_email")
		}

		users := repository.NewUserRepository(db)
		roles, err := repository.NewRoleRepository(db).FindByNames(ctx, constant.RoleGuest, constant.RoleAdministrator)
		if err != nil {
			return err
		}

		admin, err := users.FindByEmail(ctx, email)
		switch {
		case err == nil:
			// an existing account keeps its password and gains the missing roles
			if err := users.AssignRoles(ctx, admin, roles...); err != nil {
				return err
			}
			log.WithField("email", email).Info("Administrator already present, roles ensured")
			return nil
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		admin = &model.User{Email: email, Password: config.Seed.AdminPassword, IsActive: true}
		if err := users.Save(ctx, admin); err != nil {
			return err
		}
		if err := users.AssignRoles(ctx, admin, roles...); err != nil {
			return err
		}
		log.WithField("email", email).Info("Seeded administrator")
		return nil
	})
}
