package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clienthub/backend/internal/auth"
	"github.com/clienthub/backend/internal/config"
	"github.com/clienthub/backend/internal/database"
	"github.com/clienthub/backend/internal/logging"
	"github.com/clienthub/backend/internal/server"
	"github.com/clienthub/backend/internal/store"
	"github.com/clienthub/backend/internal/users"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	db, err := database.Init(cfg.DatabaseURL)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		logger.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	if cfg.Env == "development" {
		if err := database.SeedDevData(db); err != nil {
			logger.Warn("dev seed failed", "error", err)
		}
	}

	provider, err := auth.NewFirebaseProvider(context.Background(), cfg.FirebaseCredentials)
	if err != nil {
		logger.Error("auth provider init failed", "error", err)
		os.Exit(1)
	}

	stores := store.New(db, cfg.UniquePhoneNumbers)
	userService := users.NewService(stores.Users, provider)

	router, err := server.NewRouter(server.Deps{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Provider: provider,
		Stores:   stores,
		Users:    userService,
	})
	if err != nil {
		logger.Error("router setup failed", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		serverErrors <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
			os.Exit(1)
		}
		logger.Info("server stopped")
	}
}
