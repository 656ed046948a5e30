package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"catalogapi/internal/adapter/api"
	"catalogapi/internal/adapter/api/handler"
	apimiddleware "catalogapi/internal/adapter/api/middleware"
	"catalogapi/internal/adapter/api/router"
	"catalogapi/internal/adapter/repository"
	"catalogapi/internal/infrastructure/metrics"
	"catalogapi/internal/infrastructure/store"
	"catalogapi/internal/usecase"
	"catalogapi/pkg/config"
	"catalogapi/pkg/logger"
	"catalogapi/pkg/response"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Logger().Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Setup(cfg.Environment, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg)
	if err != nil {
		logger.Logger().Fatal().Err(err).Str("driver", cfg.DatabaseDriver).Msg("Failed to open product store")
	}
	defer st.Close()

	m := metrics.New()

	productRepo := repository.NewInstrumentedProductRepository(st.Products, m)
	productUseCase := usecase.NewProductUseCase(productRepo)

	handler.Setup(productUseCase)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = response.HTTPErrorHandler(cfg.IsDevelopment())
	e.Validator = api.NewValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORS())
	e.Use(m.Middleware())
	e.Use(apimiddleware.RequestLogger())

	rateLimiter := apimiddleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	rateLimiter.StartCleanupRoutine(ctx, time.Minute, 5*time.Minute)
	e.Use(rateLimiter.RateLimitMiddleware())

	router.Setup(e, m.Handler())

	go func() {
		logger.Info("Starting server on port %s (%s, store=%s)", cfg.ServerPort, cfg.Environment, cfg.DatabaseDriver)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger().Fatal().Err(err).Msg("Server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
}
