package main

import (
	"log"

	"github.com/ducktracker/reports-backend-go/internal/api"
	"github.com/ducktracker/reports-backend-go/internal/config"
	"github.com/ducktracker/reports-backend-go/internal/database"
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

	router := api.SetupRouter(cfg, database.GetDB())

	log.Printf("Server starting on port %s (tsi=%dm)", cfg.Port, cfg.TSIMinutes)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
