package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/Stuti0916/SymMuse/internal/analytics"
	"github.com/Stuti0916/SymMuse/internal/config"
	"github.com/Stuti0916/SymMuse/internal/handlers"
	"github.com/Stuti0916/SymMuse/internal/logger"
	"github.com/Stuti0916/SymMuse/internal/middleware"
	"github.com/Stuti0916/SymMuse/internal/repository"
	"github.com/Stuti0916/SymMuse/internal/service"
	"github.com/Stuti0916/SymMuse/pkg/supabase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.NewSlogLogger(logger.Config{
		Level:     logger.ParseLevel(cfg.Log.Level),
		Format:    cfg.Log.Format,
		AddSource: !cfg.Server.IsProduction(),
	})
	logger.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	store, closeStore, err := openStore(ctx, cfg, supabaseClient)
	if err != nil {
		return err
	}
	defer closeStore()

	engine := analytics.NewEngine(analytics.Options{
		PredictionCycles: cfg.Analytics.PredictionCycles,
	})
	analyticsService := service.NewAnalyticsService(store, engine, service.AnalyticsOptions{
		OverviewMonths:     cfg.Analytics.OverviewMonths,
		PremiumMonths:      cfg.Analytics.PremiumMonths,
		MaxPremiumMonths:   cfg.Analytics.MaxPremiumMonths,
		PeriodHistoryLimit: cfg.Analytics.PeriodHistoryLimit,
		MoodWindowDays:     cfg.Analytics.MoodWindowDays,
	})
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, "api")
	defer limiter.Stop()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(log))
	router.Use(middleware.Logger())
	router.Use(metrics.Instrument())
	router.Use(middleware.SecurityHeaders(cfg.Server.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"env":     cfg.Server.Env,
			"storage": cfg.Storage.Driver,
		})
	})
	router.GET("/metrics", metrics.Handler())

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Auth(supabaseClient), middleware.RateLimit(limiter))
	{
		v1.GET("/analytics", analyticsHandler.GetOverview)
		v1.GET("/analytics/premium", analyticsHandler.GetAdvanced)
		v1.GET("/periods/insights", analyticsHandler.GetCycleSummary)
		v1.GET("/mood/insights", analyticsHandler.GetMoodSummary)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening",
			logger.String("port", cfg.Server.Port),
			logger.String("env", cfg.Server.Env),
			logger.String("storage", cfg.Storage.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", logger.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down cleanly: %w", err)
	}
	return nil
}

// openStore builds the record store selected by storage.driver. The returned
// func releases its connections.
func openStore(ctx context.Context, cfg *config.Config, client *supabase.Client) (*repository.Store, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverMongo:
		mongoClient, err := repository.ConnectMongo(ctx, cfg.Mongo.URI, cfg.Mongo.ConnectTimeout)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		closeFn := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
			defer cancel()
			if err := mongoClient.Disconnect(disconnectCtx); err != nil {
				logger.Warn("mongo disconnect failed", logger.Err(err))
			}
		}
		return repository.NewMongoStore(mongoClient.Database(cfg.Mongo.Database)), closeFn, nil
	default:
		return repository.NewSupabaseStore(client), func() {}, nil
	}
}
