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

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/mukhtar-travel/trip-platform/internal/api"
	"github.com/mukhtar-travel/trip-platform/internal/api/metrics"
	"github.com/mukhtar-travel/trip-platform/internal/core/ports"
	"github.com/mukhtar-travel/trip-platform/internal/core/service"
	"github.com/mukhtar-travel/trip-platform/internal/infrastructure/mailer"
	"github.com/mukhtar-travel/trip-platform/internal/infrastructure/memory"
	"github.com/mukhtar-travel/trip-platform/internal/infrastructure/queue"
	"github.com/mukhtar-travel/trip-platform/internal/infrastructure/storage"
	"github.com/mukhtar-travel/trip-platform/internal/pkg/config"
	"github.com/mukhtar-travel/trip-platform/pkg/logger"
)

const activityWorkers = 4

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Storage.Backend).Msg("storage init failed")
	}
	defer cleanup()

	// Repositories
	tripRepo := memory.NewTripRepository()
	bookingRepo := memory.NewBookingRepository()
	reviewRepo := memory.NewReviewRepository()
	favoriteRepo := memory.NewFavoriteRepository()

	// Reporting pipeline
	reports := service.NewReportService(log)
	dispatcher := queue.NewDispatcher(activityWorkers, reports, logger.Component("dispatcher"))
	dispatcher.Start(ctx)

	// Services
	sessions := service.NewSessionService(store, cfg.LoginDelay, log)
	trips := service.NewTripService(tripRepo, favoriteRepo, log)
	bookings := service.NewBookingService(bookingRepo, tripRepo, dispatcher, log)
	reviews := service.NewReviewService(reviewRepo, tripRepo, dispatcher, log)
	prefs := service.NewPrefsService(store)
	resets := service.NewResetService(buildMailer(cfg, log), cfg.Mailer.ResetBaseURL, log)

	outcome, err := sessions.Restore(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("session restore failed")
	}
	metrics.SessionRestoresTotal.WithLabelValues(string(outcome)).Inc()
	log.Info().Str("outcome", string(outcome)).Msg("session restored")

	e := api.NewRouter(api.Services{
		Sessions: sessions,
		Trips:    trips,
		Bookings: bookings,
		Reviews:  reviews,
		Prefs:    prefs,
		Reports:  reports,
		Resets:   resets,
		Store:    store,
	}, cfg.JWTSecret, cfg.TokenTTL)

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}

// buildStore selects the durable key-value backend from configuration.
func buildStore(ctx context.Context, cfg *config.Config) (ports.KVStore, func(), error) {
	switch cfg.Storage.Backend {
	case "redis":
		client, err := storage.ConnectRedis(ctx, storage.RedisConfig{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedisStore(client), func() { _ = client.Close() }, nil
	case "mongo":
		client, db, err := storage.ConnectMongo(ctx, storage.MongoConfig{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, nil, err
		}
		return storage.NewMongoStore(db), func() { _ = client.Disconnect(context.Background()) }, nil
	default:
		fs, err := storage.NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	}
}

func buildMailer(cfg *config.Config, log zerolog.Logger) ports.Mailer {
	if cfg.Mailer.APIKey == "" {
		return mailer.NewDev(log)
	}
	return mailer.NewMailerSend(cfg.Mailer.APIKey, cfg.Mailer.FromName, cfg.Mailer.FromEmail)
}
