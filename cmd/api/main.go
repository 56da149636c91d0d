package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shiftsorted/shiftsorted-backend/api/routes"
	"github.com/shiftsorted/shiftsorted-backend/internal/booking"
	"github.com/shiftsorted/shiftsorted-backend/internal/companies"
	"github.com/shiftsorted/shiftsorted-backend/internal/drafts"
	"github.com/shiftsorted/shiftsorted-backend/internal/movers"
	"github.com/shiftsorted/shiftsorted-backend/internal/quotes"
	"github.com/shiftsorted/shiftsorted-backend/internal/subscriptions"
	"github.com/shiftsorted/shiftsorted-backend/pkg/auth/session"
	"github.com/shiftsorted/shiftsorted-backend/pkg/config"
	"github.com/shiftsorted/shiftsorted-backend/pkg/db"
	"github.com/shiftsorted/shiftsorted-backend/pkg/logger"
	"github.com/shiftsorted/shiftsorted-backend/pkg/metrics"
	"github.com/shiftsorted/shiftsorted-backend/pkg/migrate"
	"github.com/shiftsorted/shiftsorted-backend/pkg/outbox"
	"github.com/shiftsorted/shiftsorted-backend/pkg/redis"
	"github.com/shiftsorted/shiftsorted-backend/pkg/square"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}
	cfg.Service.Kind = "api"

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags.UseSQLite, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	squareClient, err := square.NewClient(context.Background(), cfg.Square, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create square client", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	pipelineMetrics := metrics.NewPipelineMetrics(registry)

	outboxService := outbox.NewService(outbox.NewRepository(dbClient.DB()), logg)

	companiesService, err := companies.NewService(companies.NewRepository(dbClient.DB()), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create company service", err)
		os.Exit(1)
	}

	quotesService, err := quotes.NewService(companiesService, cfg.Pricing, pipelineMetrics, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create quote service", err)
		os.Exit(1)
	}

	bookingService, err := booking.NewService(
		booking.NewRepository(dbClient.DB()),
		dbClient,
		squareClient,
		outboxService,
		pipelineMetrics,
		logg,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create booking service", err)
		os.Exit(1)
	}

	subscriptionsService, err := subscriptions.NewService(
		subscriptions.NewRepository(dbClient.DB()),
		dbClient,
		squareClient,
		outboxService,
		cfg.Subscription,
		logg,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create subscription service", err)
		os.Exit(1)
	}

	moversService, err := movers.NewService(movers.ServiceParams{
		UserRepo:       movers.NewRepository(dbClient.DB()),
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
		Logger:         logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create mover service", err)
		os.Exit(1)
	}

	draftStore, err := drafts.NewStore(redisClient, cfg.Drafts, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create draft store", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:         cfg,
			Logger:         logg,
			DB:             dbClient,
			Redis:          redisClient,
			SessionChecker: sessionManager,
			Quotes:         quotesService,
			Companies:      companiesService,
			Bookings:       bookingService,
			Movers:         moversService,
			Subscriptions:  subscriptionsService,
			Drafts:         draftStore,
			Metrics:        promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		}),
	}

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-stopCtx.Done():
		logg.Info(ctx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "api server shutdown failed", err)
			os.Exit(1)
		}
	}
}
