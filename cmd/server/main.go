package main

import (
	"context"
	"net/http"
	"os"

	"github.com/GagstyCommunity/Minutely.xyz/internal/api"
	"github.com/GagstyCommunity/Minutely.xyz/internal/auth"
	"github.com/GagstyCommunity/Minutely.xyz/internal/config"
	"github.com/GagstyCommunity/Minutely.xyz/internal/database"
	"github.com/GagstyCommunity/Minutely.xyz/internal/handler"
	"github.com/GagstyCommunity/Minutely.xyz/internal/logger"
	"github.com/GagstyCommunity/Minutely.xyz/internal/middleware"
	"github.com/GagstyCommunity/Minutely.xyz/internal/seed"
	"github.com/GagstyCommunity/Minutely.xyz/internal/services"
	"github.com/GagstyCommunity/Minutely.xyz/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Pick the storage backend. The memory backend boots with the demo
	// catalog so the site has something to show.
	var st store.Store
	switch cfg.StorageBackend {
	case "postgres":
		pool, err := database.ConnectPostgres(cfg)
		if err != nil {
			logger.Error("Database connection failed: %v", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := database.EnsureSchema(context.Background(), pool); err != nil {
			logger.Error("Schema bootstrap failed: %v", err)
			os.Exit(1)
		}
		st = store.NewPgStore(pool)
	default:
		mem := store.NewMemStore()
		if err := seed.Apply(context.Background(), mem); err != nil {
			logger.Error("Could not seed demo data: %v", err)
			os.Exit(1)
		}
		st = mem
	}

	sessions := auth.NewSessions()
	ai := services.NewOpenAIService(cfg)
	h := handler.New(st, sessions, ai)
	authmw := middleware.NewAuth(sessions, st)

	router := api.SetupRouter(h, authmw)
	srv := middleware.CORSMiddleware(router)

	logger.Success("Server starting on port %s (storage: %s)", cfg.Port, cfg.StorageBackend)
	if err := http.ListenAndServe(":"+cfg.Port, srv); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
