package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ondrasimku/upload-service-go/internal/config"
	"github.com/ondrasimku/upload-service-go/internal/files"
	httphandler "github.com/ondrasimku/upload-service-go/internal/http"
	"github.com/ondrasimku/upload-service-go/internal/log"
	"github.com/ondrasimku/upload-service-go/internal/storage/local"
)

// @title Upload Service API
// @version 1.0
// @description Stores uploaded files in a volume directory and lists them.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := log.New(log.Options{
		Level:    cfg.Log.Level,
		Format:   cfg.Log.Format,
		Output:   cfg.Log.Output,
		FilePath: cfg.Log.FilePath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	gin.SetMode(cfg.Server.Mode)

	storage := local.NewLocalStorage(cfg.Storage.Path)
	service := files.NewService(
		storage,
		files.NewAllowList(cfg.Upload.AllowedExtensions),
		cfg.Health.Timeout,
		logger.Logger,
	)

	router, err := httphandler.NewRouter(service, cfg, logger.Logger)
	if err != nil {
		logger.Error("Failed to build router", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting upload service",
			"addr", cfg.Server.Addr,
			"storagePath", cfg.Storage.Path,
			"maxUploadSize", cfg.Upload.MaxSize,
			"allowedExtensions", service.AllowList().String(),
			"secretKey", log.MaskSecret(cfg.Server.SecretKey),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("Server exited")
}
