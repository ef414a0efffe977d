package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/everydukan/deals-cms/internal/config"
	"github.com/everydukan/deals-cms/internal/handler"
	"github.com/everydukan/deals-cms/internal/scheduler"
	"github.com/everydukan/deals-cms/internal/service"
	"github.com/everydukan/deals-cms/internal/validator"
)

func main() {
	// Optional .env for local development; real environment wins
	_ = godotenv.Load()

	// Load configuration first
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Initialize zerolog based on configuration
	initLogger(cfg)

	// Prices go out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	// Create context for startup
	ctx := context.Background()

	// Connect the selected store with retry
	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Store.Driver).Msg("failed to connect to database")
	}

	// Initialize Fiber with production-ready configuration
	app := fiber.New(fiber.Config{
		AppName:      "Deals CMS",
		ReadTimeout:  30 * time.Second,  // Max time to read request
		WriteTimeout: 30 * time.Second,  // Max time to write response
		IdleTimeout:  120 * time.Second, // Max time for keep-alive connections
		BodyLimit:    1 * 1024 * 1024,   // 1MB body limit (explicit, prevents large payloads)
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New()) // Adds X-Request-ID header to all requests
	app.Use(logger.New())

	validate := validator.New()

	dealService := service.NewDealService(st.deals)

	handler.RegisterRoutes(app, handler.Handlers{
		Health:     handler.NewHealthHandler(st.pinger, cfg.Store.Driver),
		Banners:    handler.NewBannerHandler(service.NewBannerService(st.banners), validate),
		Shops:      handler.NewShopHandler(service.NewShopService(st.shops), validate),
		Categories: handler.NewCategoryHandler(service.NewCategoryService(st.categories), validate),
		Coupons:    handler.NewCouponHandler(service.NewCouponService(st.coupons), validate),
		Deals:      handler.NewDealHandler(dealService, validate),
		Components: handler.NewComponentHandler(service.NewComponentService(st.components), validate),
		Users:      handler.NewUserHandler(service.NewUserService(st.users), validate),
	})

	// Deal expiry job
	var jobs *cron.Cron
	if cfg.DealExpiry.Enabled {
		job := scheduler.NewDealExpiryJob(dealService, time.Duration(cfg.DealExpiry.Timeout)*time.Second)
		jobs, err = scheduler.Start(cfg.DealExpiry.Schedule, job)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to start deal expiry scheduler")
		}
	}

	// Start server with graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Server.Port).Str("store", cfg.Store.Driver).Msg("starting server")
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
	log.Info().Int("timeout_seconds", cfg.Server.ShutdownTimeout).Msg("shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer shutdownCancel()

	// Shutdown server (waits for in-flight requests)
	log.Info().Msg("waiting for in-flight requests to complete...")
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	// Stop the scheduler and wait for a running job before closing the store
	if jobs != nil {
		select {
		case <-jobs.Stop().Done():
			log.Info().Msg("scheduler stopped")
		case <-shutdownCtx.Done():
			log.Warn().Msg("scheduler did not stop before shutdown timeout")
		}
	}

	// Close the store AFTER server shutdown (even if shutdown timed out)
	st.close()
	log.Info().Msg("server stopped")
}

// initLogger configures zerolog based on the application configuration.
func initLogger(cfg *config.Config) {
	// Set log level
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Log.Pretty {
		// Human-readable output for development
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
			With().Timestamp().Logger()
	} else {
		// JSON output for production
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
}
