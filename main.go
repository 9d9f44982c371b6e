package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"inventory-app/config"
	"inventory-app/internal/app"
	"inventory-app/internal/database"
	"inventory-app/internal/server"
	"inventory-app/internal/services"
	"inventory-app/internal/storage/localfs"
	"inventory-app/internal/storage/postgres"
	"inventory-app/pkg/logging"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // .env is optional
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := postgres.Migrate(context.Background(), dbPool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	images, err := localfs.NewImageStore(cfg.Uploads.Dir, cfg.Uploads.PublicPath)
	if err != nil {
		slog.Error("Failed to initialize image store", "error", err)
		os.Exit(1)
	}

	categoryRepo := postgres.NewCategoryRepo(dbPool)
	itemRepo := postgres.NewItemRepo(dbPool)

	application := &app.Application{
		Config:     cfg,
		Categories: services.NewCategoryService(categoryRepo, itemRepo),
		Items:      services.NewItemService(itemRepo, categoryRepo, images),
		Validator:  validator.New(),
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("Server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	slog.Info("Application gracefully stopped")
}
