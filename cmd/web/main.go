package main

import (
	"log"
	"os"

	"github.com/SirClappington/competitor-watch/internal/config"
	"github.com/SirClappington/competitor-watch/internal/server"
	"github.com/SirClappington/competitor-watch/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	cfg    *config.Config
	client *services.CompetitorAPIClient
	logger *log.Logger
)

func init() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	// Initialize logger
	logger = log.New(os.Stdout, "[COMPETITOR-WATCH] ", log.LstdFlags)

	var err error
	cfg, err = config.Load(os.Getenv("COMPETITOR_WATCH_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client = services.NewCompetitorAPIClient(cfg.Backend.BaseURL, cfg.Backend.RequestTimeout, logger)
}

func main() {
	gin.SetMode(cfg.Server.Mode)

	r := server.New(client, client, logger).Router()

	logger.Printf("Serving on %s (backend %s)", cfg.Server.Addr, cfg.Backend.BaseURL)
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
