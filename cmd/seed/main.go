package main

import (
	"context"

	"auth-service/db/seeder"
	"auth-service/internal/config/database"
	"auth-service/internal/config/env"
	"auth-service/internal/config/logger"
)

func main() {
	config := env.NewConfig()
	log := logger.NewLogger(config)
	db := database.NewDatabase(log, config)

	if err := database.RunMigrations(db, log); err != nil {
		log.WithError(err).Fatal("Failed to migrate")
	}
	if err := seeder.Seed(context.Background(), db, log, config); err != nil {
		log.WithError(err).Fatal("Failed to seed")
	}
	log.Info("Seeding completed")
}
