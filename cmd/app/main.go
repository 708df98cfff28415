package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"auth-service/db/seeder"
	app "auth-service/internal"
	"auth-service/internal/config/database"
	"auth-service/internal/config/env"
	"auth-service/internal/config/logger"
	"auth-service/internal/config/monitor"
	"auth-service/internal/config/redis"
	"auth-service/internal/config/validation"
	"auth-service/internal/config/web"
)

func main() {
	config := env.NewConfig()
	log := logger.NewLogger(config)
	monitoring := monitor.NewMonitoring(log, config)
	defer func() {
		if err := monitoring.Shutdown(); err != nil {
			log.WithError(err).Warn("Monitoring shutdown failed")
		}
	}()

	db := database.NewDatabase(log, config)
	if err := database.RunMigrations(db, log); err != nil {
		log.WithError(err).Fatal("Failed to migrate")
	}
	if err := seeder.SeedRoles(context.Background(), db, log); err != nil {
		log.WithError(err).Fatal("Failed to seed roles")
	}

	redis := redis.NewRedis(log, config)
	web := web.NewFiber(log, config)
	validation := validation.NewValidation()

	server := app.NewApp(log, config, db, web, validation, redis)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Info("Shutting down server")
		if err := web.Shutdown(); err != nil {
			log.WithError(err).Error("Server shutdown failed")
		}
	}()

	if err := server.Run(); err != nil {
		log.WithError(err).Error("Server stopped")
	}
}
