package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/weather-estimation/internal/api/http"
	"github.com/i474232898/weather-estimation/internal/config"
	"github.com/i474232898/weather-estimation/internal/geo"
	"github.com/i474232898/weather-estimation/internal/logger"
	"github.com/i474232898/weather-estimation/internal/scheduler"
	"github.com/i474232898/weather-estimation/internal/store"
	"github.com/i474232898/weather-estimation/internal/weather"
	"github.com/i474232898/weather-estimation/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to load config: %w", err))
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Fatal(err)
	}

	// Shared HTTP client for the live provider call.
	httpClient := providers.NewHTTPClient(providers.TimeoutConfig{
		Connect: cfg.HTTPConnectTimeout,
		Read:    cfg.HTTPReadTimeout,
	})

	var provider weather.Provider
	switch cfg.LiveProvider {
	case config.ProviderOpenMeteo:
		provider = providers.NewOpenMeteoProvider(httpClient, cfg.OpenMeteoBaseURL)
	case config.ProviderWeatherAPI:
		provider = providers.NewWeatherAPIProvider(httpClient, cfg.WeatherAPIBaseURL, cfg.WeatherAPIKey)
	default:
		provider = providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherBaseURL, cfg.OpenWeatherAPIKey)
	}

	// Static city table, with Google geocoding for unknown names when a key is set.
	table := geo.Default()
	reference := geo.NewGeocodingReference(table, cfg.GeocoderAPIKey)

	estimator := weather.NewEstimator(weather.Options{
		LiveEnabled:     cfg.LiveEnabled(),
		Provider:        provider,
		Geo:             reference,
		DefaultLocation: cfg.DefaultLocation,
		Timezone:        cfg.Timezone,
		LiveTimeout:     cfg.HTTPConnectTimeout + cfg.HTTPReadTimeout,
		Rand:            weather.NewRand(time.Now().UnixNano()),
	})
	logger.Infof("estimator ready: live=%t provider=%s", estimator.LiveEnabled(), provider.Name())

	// In-memory store with configured retention.
	memStore := store.NewMemoryStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)
	service := weather.NewService(estimator, memStore)

	// Scheduler that periodically refreshes tracked locations.
	sched := scheduler.New(cfg.Locations, cfg.FetchInterval, service)
	if err := sched.Start(); err != nil {
		logger.Fatal(fmt.Errorf("failed to start scheduler: %w", err))
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-estimation",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          40 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(fiberlogger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-estimation",
			"live":    estimator.LiveEnabled(),
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service, table, cfg.Preferences)

	go func() {
		logger.Infof("listening on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Infof("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error(fmt.Errorf("error during shutdown: %w", err))
	}
}
