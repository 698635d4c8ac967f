package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"task-manager-api/internal/core/config"
	"task-manager-api/internal/core/database"
	"task-manager-api/internal/core/logger"
	"task-manager-api/internal/core/server"
	"task-manager-api/internal/transport/http/router"
)

const shutdownGrace = 10 * time.Second

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  "Opens the database, applies the schema when enabled and serves the API until SIGINT/SIGTERM.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

func runServe(parent context.Context, configPath string) error {
	cfg, err := config.LoadE(configPath)
	if err != nil {
		return err
	}

	log, cleanup := newLogger(cfg)
	defer cleanup()
	defer logger.RedirectStdLog(log, zapcore.InfoLevel)()

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg, log)
	if err != nil {
		log.Error("db open", zap.Error(err))
		return err
	}
	defer func() { _ = database.Close(db) }()

	pingCtx, cancel := context.WithTimeout(parent, 5*time.Second)
	err = database.Ping(pingCtx, db)
	cancel()
	if err != nil {
		log.Error("database unreachable", zap.String("driver", cfg.DB.Driver), zap.Error(err))
		return fmt.Errorf("database unreachable: %w", err)
	}
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			log.Error("automigrate failed", zap.Error(err))
			return err
		}
		log.Info("automigrate done")
	}

	r := router.NewAPIEngine(log, db, routerOptions(cfg))

	h := cfg.App.HTTP
	addr := server.Addr(h.Host, h.Port)
	srv := server.BuildServer(addr, r, h.ReadTimeout(), h.WriteTimeout(), h.IdleTimeout())
	if el, err := logger.ToStdLogger(log.Named("http"), zapcore.ErrorLevel); err == nil {
		srv.ErrorLog = el
	}

	host4human := h.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "localhost"
	}
	baseURL := fmt.Sprintf("http://%s:%d", host4human, h.Port)
	log.Info("task api starting",
		zap.String("addr", addr),
		zap.String("env", cfg.App.Env),
		zap.String("docs", baseURL+"/"),
		zap.String("health", baseURL+"/health"),
	)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("task api start FAILED", zap.Error(err))
			return err
		}
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
		return err
	}
	log.Info("task api stopped gracefully")
	return nil
}

func newLogger(cfg *config.Config) (*zap.Logger, func()) {
	f := cfg.Log.File
	if !f.Enable {
		return logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	return logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate{
		Filename:   f.Filename,
		MaxSizeMB:  f.MaxSizeMB,
		MaxBackups: f.MaxBackups,
		MaxAgeDays: f.MaxAgeDays,
		Compress:   f.Compress,
	})
}

func openDB(cfg *config.Config, l *zap.Logger) (*gorm.DB, error) {
	return database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
		Logger:             l,
	})
}

func routerOptions(cfg *config.Config) router.Options {
	h := cfg.App.HTTP
	return router.Options{
		Env:          cfg.App.Env,
		MaxBodyBytes: h.MaxBodyBytes(),
		Timeout:      h.RequestTimeout(),
		MaxInFlight:  int64(h.MaxInFlight),
		CORSOrigins:  h.CORSOrigins,
	}
}
