package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cradle/internal/api"
	"cradle/internal/config"
	"cradle/internal/db"
	"cradle/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
)

func main() {
	cfg := config.Load()
	appLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("database init failed")
	}

	handler, err := api.NewHandler(database, cfg.UploadsDir, cfg.SecretKey, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("handler init failed")
	}

	authService := services.NewAuthService(db.NewUserRepository(database))
	seeded, err := authService.SeedAdmin()
	if err != nil {
		appLogger.Fatal().Err(err).Msg("admin seeding failed")
	}
	if seeded {
		appLogger.Info().Str("username", "admin").Msg("default admin account created")
	}

	app := fiber.New(fiber.Config{
		AppName:               "Cradle",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Static("/uploads", cfg.UploadsDir)
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	appLogger.Info().
		Str("port", cfg.Port).
		Str("db", cfg.DBPath).
		Str("uploads", cfg.UploadsDir).
		Msg("cradle listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		appLogger.Fatal().Err(err).Msg("server exited")
	}
}
