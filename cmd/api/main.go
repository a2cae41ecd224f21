package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/api"
	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/infrastructure/config"
	mongodb "github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/infrastructure/db/mongo"
	redisdb "github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/infrastructure/db/redis"
	"github.com/codecrafters-goa/CalmNest-CodeCrafters/pkg/logger"
)

// @title           CalmNest API
// @version         1.0
// @description     Wellness content platform: authentication, therapy session accounting, and content catalogues.
// @BasePath        /api
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.UsingDefaultSecret() {
		log.Warn().Msg("JWT_SECRET not set, using insecure default signing key")
	}

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	e := api.NewRouter(db, rdb, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// ensureIndexes creates the unique identity and listing indexes at startup,
// before the first request can race an insert.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewSessionRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewContentRepository(db).EnsureIndexes(ctx)
}
