package main

import (
	"context"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/infrastructure/config"
	mongodb "github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/infrastructure/db/mongo"
	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/seed"
	"github.com/codecrafters-goa/CalmNest-CodeCrafters/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := seed.Run(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
}
