package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/angelb-studio/studio-api/internal/api"
	"github.com/angelb-studio/studio-api/internal/core/service"
	mongodb "github.com/angelb-studio/studio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/angelb-studio/studio-api/internal/infrastructure/db/redis"
	"github.com/angelb-studio/studio-api/internal/pkg/config"
	"github.com/angelb-studio/studio-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close")
		}
	}()

	userRepo := mongodb.NewUserRepository(db)
	artworkRepo := mongodb.NewArtworkRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	sectionRepo := mongodb.NewSectionRepository(db)
	wellnessRepo := mongodb.NewWellnessRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"users":    userRepo.EnsureIndexes,
		"artworks": artworkRepo.EnsureIndexes,
		"posts":    postRepo.EnsureIndexes,
		"sections": sectionRepo.EnsureIndexes,
		"wellness": wellnessRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("ensure indexes")
		}
	}

	if cfg.Admin.Username != "" && cfg.Admin.Password != "" {
		userService := service.NewUserService(userRepo, artworkRepo, postRepo, wellnessRepo, sectionRepo, log)
		if err := userService.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
			log.Fatal().Err(err).Msg("ensure admin account")
		}
	}

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown")
		os.Exit(1)
	}
}
