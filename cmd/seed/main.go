package main

import (
	"context"
	"os"

	"github.com/GagstyCommunity/Minutely.xyz/internal/config"
	"github.com/GagstyCommunity/Minutely.xyz/internal/database"
	"github.com/GagstyCommunity/Minutely.xyz/internal/logger"
	"github.com/GagstyCommunity/Minutely.xyz/internal/seed"
	"github.com/GagstyCommunity/Minutely.xyz/internal/store"
)

// One-shot seeding of the postgres backend with the demo catalog.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	pool, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer pool.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx, pool); err != nil {
		logger.Error("Schema bootstrap failed: %v", err)
		os.Exit(1)
	}

	if err := seed.Apply(ctx, store.NewPgStore(pool)); err != nil {
		logger.Error("Seeding failed: %v", err)
		os.Exit(1)
	}
	logger.Success("Database seeded")
}
