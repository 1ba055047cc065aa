package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zenithcamp/medcamp-backend/internal/app"
	"github.com/zenithcamp/medcamp-backend/internal/auth"
	"github.com/zenithcamp/medcamp-backend/internal/config"
	"github.com/zenithcamp/medcamp-backend/internal/db"
	"github.com/zenithcamp/medcamp-backend/internal/payment"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/logger"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/storage"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	logger.Init(cfg.IsProduction, cfg.LogLevel)
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect DB
	pool, err := db.NewPool(ctx, cfg.DBDSN, cfg.DBMaxConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to db")
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := db.Migrate(ctx, pool); err != nil {
			logger.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init storage")
	}

	var provider payment.Provider
	if cfg.StripeSecretKey != "" {
		provider = payment.NewStripeProvider(cfg.StripeSecretKey)
	} else {
		logger.Warn().Msg("STRIPE_SECRET_KEY not set, payment intents are disabled")
	}

	container := app.NewContainer(app.Config{
		IsProduction:     cfg.IsProduction,
		ProdOrigins:      cfg.ProdOrigins,
		TrustedProxies:   cfg.TrustedProxies,
		DBPool:           pool,
		JWTSecret:        cfg.JWTSecret,
		TokenTransport:   auth.ParseTransport(cfg.TokenTransport),
		CookieSecure:     cfg.CookieSecure,
		RegListAdminOnly: cfg.RegListAdminOnly,
		PaymentCurrency:  cfg.PaymentCurrency,
		PaymentProvider:  provider,
		Storage:          store,
	})

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           container.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run server in separate goroutine
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Str("token_transport", cfg.TokenTransport).Msg("server running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited gracefully")
}
