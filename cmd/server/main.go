package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/config"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/database"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/bootstrap"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/middleware"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/router"
)

func main() {
	if err := run(); err != nil {
		zap.L().Error("server exited", zap.Error(err))
		_ = zap.L().Sync()
		os.Exit(1)
	}
}

func run() error {
	// 1) Config + logger
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := config.InitLogger(cfg.Log); err != nil {
		return err
	}
	defer func() { _ = zap.L().Sync() }()

	// 2) Dataset, aggregator, rule engine
	rt := bootstrap.New(cfg)

	// 3) DB (sqlite) + automigrate + seed from the dataset
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SeedOnStart {
		if _, err := database.Seed(ctx, db, rt.Aggregator, rt.SeedOptions()); err != nil {
			return err
		}
	}

	// 4) Echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{AllowOrigins: cfg.CORSOrigins}))
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(zap.L()))
	e.Use(middleware.Metrics())

	// 5) Router
	router.New(e, router.Build(db, rt.Aggregator, rt.Engine, rt.LiveDefaults()))

	// 6) Start + graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("listening", zap.String("port", cfg.Port), zap.Int("records", rt.Store.Len()))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zap.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
