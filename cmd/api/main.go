package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/electromart/marketplace-api/internal/api"
	"github.com/electromart/marketplace-api/internal/infrastructure/db/mongo"
	"github.com/electromart/marketplace-api/internal/infrastructure/db/redis"
	"github.com/electromart/marketplace-api/internal/infrastructure/storage"
	"github.com/electromart/marketplace-api/internal/pkg/config"
	"github.com/electromart/marketplace-api/pkg/logger"
)

const tokenTTL = 24 * time.Hour

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")

	userRepo := mongo.NewUserRepository(db)
	productRepo := mongo.NewProductRepository(db)
	notificationRepo := mongo.NewNotificationRepository(db)
	if err := mongo.Bootstrap(ctx, userRepo, productRepo, notificationRepo, cfg.Admin.Email, cfg.Admin.Password, log); err != nil {
		log.Fatal().Err(err).Msg("database bootstrap failed")
	}

	// --- Redis ---
	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Upload storage ---
	images, err := storage.NewDiskStore(cfg.Upload.Dir, cfg.Upload.MaxBytes)
	if err != nil {
		log.Fatal().Err(err).Msg("upload storage init failed")
	}

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, api.Options{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  tokenTTL,
		UploadDir: cfg.Upload.Dir,
		Images:    images,
		Logger:    log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
		os.Exit(1)
	}
}
