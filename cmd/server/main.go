package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"refearn/config"
	"refearn/internal/database"
	"refearn/internal/repository"
	"refearn/internal/router"
	"refearn/internal/store"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err)
	}

	var repos *repository.Repositories
	switch cfg.Storage.Driver {
	case config.StorageDriverMySQL:
		db, err := database.NewMySQL(&cfg.Storage)
		if err != nil {
			sugar.Fatalw("database error", "error", err)
		}
		if err := database.AutoMigrate(db); err != nil {
			sugar.Fatalw("migration error", "error", err)
		}
		repos = repository.NewMySQLRepositories(db)
	default:
		fs, err := store.New(cfg.Storage.DataDir)
		if err != nil {
			sugar.Fatalw("file store error", "error", err)
		}
		repos = repository.NewJSONRepositories(fs)
	}

	engine := router.Setup(cfg, repos, logger)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		sugar.Infow("server listening", "port", cfg.Server.Port, "storage", cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("listen error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugar.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sugar.Fatalw("server shutdown error", "error", err)
	}
	sugar.Info("server stopped")
}
