package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lexiflow/internal/config"
	"lexiflow/internal/handlers"
	"lexiflow/internal/repository"
	"lexiflow/internal/service"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context(), &config.Cfg)
		},
	}
}

func runServer(ctx context.Context, cfg *config.Config) error {
	logger := newAppLogger(cfg.Log.Level)
	slog.SetDefault(logger)
	logger.Info("Application starting...", slog.String("version", config.AppVersion))

	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("Error closing database connection", slog.Any("error", err))
		} else {
			logger.Info("Database connection closed.")
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := repository.MigrateUp(ctx, sqlDB); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
		logger.Info("Database migrations applied")
	}

	// Dependency Injection
	groupRepo := repository.NewGormVocabularyGroupRepository()
	vocabRepo := repository.NewGormVocabularyRepository()
	categoryRepo := repository.NewGormCategoryRepository()

	paging := service.PagingOptions{
		DefaultPageSize: cfg.App.DefaultPageSize,
		MaxPageSize:     cfg.App.MaxPageSize,
	}
	groupService := service.NewVocabularyGroupService(db, groupRepo, vocabRepo, categoryRepo, paging)
	categoryService := service.NewCategoryService(db, categoryRepo)

	router := newRouter(cfg, logger, routerDeps{
		groupHandler:    handlers.NewVocabularyGroupHandler(groupService, logger),
		categoryHandler: handlers.NewCategoryHandler(categoryService, logger),
		healthHandler:   handlers.NewHealthHandler(sqlDB, config.AppVersion, logger),
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return fmt.Errorf("listen on %s: %w", cfg.Server.Port, err)
	case <-quit:
	}
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.Any("error", err))
		return err
	}

	logger.Info("Server exiting")
	return nil
}
