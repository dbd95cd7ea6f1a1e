package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel-booking/internal/adaptor"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/usecase"
	"travel-booking/internal/wire"
	"travel-booking/pkg/database"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

// Run loads configuration, connects storage and serves the API until an
// interrupt arrives.
func Run() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	if err := os.MkdirAll(config.Upload.Dir, 0o755); err != nil {
		logger.Fatal("Failed to create upload directory", zap.Error(err))
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	indexCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := db.EnsureIndexes(indexCtx); err != nil {
		logger.Fatal("Failed to ensure indexes", zap.Error(err))
	}

	repo := repository.NewRepository(db, logger)
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, config, logger)
	app := wire.Wiring(handler, repo, config, logger)

	server := &http.Server{
		Addr:         ":" + config.App.Port,
		Handler:      app.Router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("Server listening",
			zap.String("app", config.App.Name),
			zap.String("port", config.App.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}

	logger.Info("Server stopped")
}
