package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mediboard/mediboard/internal/config"
	"github.com/mediboard/mediboard/internal/domain/appointment"
	"github.com/mediboard/mediboard/internal/domain/hospitalstats"
	"github.com/mediboard/mediboard/internal/domain/medicalrecord"
	"github.com/mediboard/mediboard/internal/domain/patient"
	"github.com/mediboard/mediboard/internal/domain/staff"
	"github.com/mediboard/mediboard/internal/platform/middleware"
	"github.com/mediboard/mediboard/internal/platform/sandbox"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mediboard-server",
		Short: "Hospital information management API server",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			seedDemo, _ := cmd.Flags().GetBool("seed-demo")
			return runServer(seedDemo)
		},
	}
	cmd.Flags().Bool("seed-demo", false, "Load demo data on startup")
	return cmd
}

func runServer(seedDemo bool) error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RequestTimeout(time.Duration(cfg.RequestTimeout) * time.Second))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	// API group
	api := e.Group("/api")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	api.Use(middleware.RateLimit(rateLimitCfg))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// -- Register Domain Handlers --

	patientRepo := patient.NewMemRepo()
	patientSvc := patient.NewService(patientRepo)
	patient.NewHandler(patientSvc, cfg.RecentLimit).RegisterRoutes(api)

	staffRepo := staff.NewMemRepo()
	staffSvc := staff.NewService(staffRepo)
	staff.NewHandler(staffSvc).RegisterRoutes(api)

	apptSvc := appointment.NewService(appointment.NewMemRepo(), patientRepo, staffRepo, logger)
	appointment.NewHandler(apptSvc).RegisterRoutes(api)

	recordSvc := medicalrecord.NewService(medicalrecord.NewMemRepo())
	medicalrecord.NewHandler(recordSvc).RegisterRoutes(api)

	statsSvc := hospitalstats.NewService(hospitalstats.NewMemRepo())
	hospitalstats.NewHandler(statsSvc).RegisterRoutes(api)

	if seedDemo || cfg.SeedDemo {
		svcs := sandbox.Services{
			Patients:       patientSvc,
			Staff:          staffSvc,
			Appointments:   apptSvc,
			MedicalRecords: recordSvc,
			HospitalStats:  statsSvc,
		}
		if err := sandbox.Seed(context.Background(), svcs, logger); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo data")
		}
	}

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
