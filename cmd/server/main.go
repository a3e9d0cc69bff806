package main

import (
	"log"

	"github.com/betaview/betaview-backend/internal/api"
	"github.com/betaview/betaview-backend/internal/config"
	"github.com/betaview/betaview-backend/internal/database"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	router := api.SetupRouter(cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
