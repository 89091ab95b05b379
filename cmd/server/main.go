package main

import (
	"context"
	"log"

	"github.com/energystats/factbook-backend-go/internal/api"
	"github.com/energystats/factbook-backend-go/internal/config"
	"github.com/energystats/factbook-backend-go/internal/database"
)

func main() {
	cfg := config.Load()

	dbConfig := database.Config{
		Path: cfg.DBPath,
	}
	if err := database.Init(dbConfig); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	router, projects := api.SetupRouter(cfg)

	// Initial dataset load: fetch, fall back to the cache, otherwise the
	// API serves the terminal load-error state until an explicit reload.
	if err := projects.Load(context.Background()); err != nil {
		log.Printf("Initial dataset load failed: %v", err)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
