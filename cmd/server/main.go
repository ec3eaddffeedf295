package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-gift-catalog/internal/cache"
	"github.com/MKhiriev/go-gift-catalog/internal/config"
	"github.com/MKhiriev/go-gift-catalog/internal/handler"
	"github.com/MKhiriev/go-gift-catalog/internal/logger"
	"github.com/MKhiriev/go-gift-catalog/internal/server"
	"github.com/MKhiriev/go-gift-catalog/internal/service"
	"github.com/MKhiriev/go-gift-catalog/internal/store"
	"github.com/MKhiriev/go-gift-catalog/internal/workers"
	"github.com/MKhiriev/go-gift-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("gift-catalog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}
	storages := store.NewStorages(db, log)

	var (
		productCache cache.ProductCache
		rateLimiter  cache.RateLimiter
	)
	if cfg.Storage.Cache.Enabled() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Storage.Cache, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to redis")
		}
		defer redisClient.Close()

		productCache = cache.NewProductCache(redisClient, cfg.Storage.Cache.TTL)
		if cfg.Server.RateLimit > 0 {
			rateLimiter = cache.NewRateLimiter(redisClient, cfg.Server.RateLimit, cfg.Server.RateLimitWindow)
		}
	}

	services, err := service.NewServices(storages, productCache, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.App.AdminEmail != "" && cfg.App.AdminPassword != "" {
		admin, err := services.MemberService.EnsureAdmin(ctx, models.Credentials{
			Email:    cfg.App.AdminEmail,
			Password: cfg.App.AdminPassword,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("error ensuring admin account")
		}
		log.Info().Int64("member_id", admin.MemberID).Msg("admin account is ready")
	}

	handlers, err := handler.NewHandlers(services, rateLimiter, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	go workers.NewWorkers(services.ProductService, *cfg, log).Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
