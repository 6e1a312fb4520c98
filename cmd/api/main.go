package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kmazurov/fuelcard-backend/internal/api"
	"github.com/kmazurov/fuelcard-backend/internal/auth"
	"github.com/kmazurov/fuelcard-backend/internal/config"
	"github.com/kmazurov/fuelcard-backend/internal/db"
	"github.com/kmazurov/fuelcard-backend/internal/logger"
	"github.com/kmazurov/fuelcard-backend/internal/metrics"
	"github.com/kmazurov/fuelcard-backend/internal/repository/postgres"
	"github.com/kmazurov/fuelcard-backend/internal/services"
	"github.com/kmazurov/fuelcard-backend/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	if cfg.DatabaseURL == "" {
		log.Error("DATABASE_URL is not configured")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	metrics.Init()

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4)
	defer wp.Stop()

	// All daily-limit windows are counted in the business timezone, a
	// fixed UTC offset.
	loc := time.FixedZone("business", cfg.TZOffsetHours*3600)

	tm := auth.NewTokenManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.JWTIssuer,
		15*time.Minute, 7*24*time.Hour)
	auditor := services.NewAuditor(repos.AuditLogs, wp)

	deps := api.RouterDeps{
		Cfg:          cfg,
		TokenManager: tm,
		AuthSvc:      services.NewAuthService(repos.Clients, tm),
		BalanceSvc:   services.NewBalanceService(repos.Cards, loc),
		RefuelSvc:    services.NewRefuelService(repos.Refuels, auditor, loc),
		ClientSvc:    services.NewClientService(repos.Clients, auditor),
		CardSvc:      services.NewCardService(repos.Cards, auditor),
		StationSvc:   services.NewStationService(repos.Stations, auditor),
		FuelTypeSvc:  services.NewFuelTypeService(repos.FuelTypes, auditor),
		OperationSvc: services.NewOperationService(repos.Operations, repos.Cards, repos.Stations, auditor, loc),
	}

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           api.NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
