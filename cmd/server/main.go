package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/viftode4/partydrinks/internal/api"
	"github.com/viftode4/partydrinks/internal/config"
	"github.com/viftode4/partydrinks/internal/cooldown"
	"github.com/viftode4/partydrinks/internal/database"
	"github.com/viftode4/partydrinks/internal/handler"
	"github.com/viftode4/partydrinks/internal/logger"
	"github.com/viftode4/partydrinks/internal/middleware"
	"github.com/viftode4/partydrinks/internal/points"
	"github.com/viftode4/partydrinks/internal/refresh"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Fenêtre de cooldown depuis la configuration
	handler.Cooldown = cooldown.New(cfg.CooldownWindow)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Chargement initial du lookup des points : sans lui, aucune boisson ne
	// peut être enregistrée
	if err := points.Reload(ctx); err != nil {
		logger.Error("Could not load drink points: %v", err)
		os.Exit(1)
	}
	logger.Success("Drink point values loaded: %v", points.Current())

	// Rafraîchissement périodique : lookup des points (administré en base) et
	// snapshot du leaderboard (alimente previous_rank)
	go refresh.Run(ctx, cfg.RefreshEvery, "drink-points", points.Reload)
	go refresh.Run(ctx, cfg.RefreshEvery, "leaderboard-snapshot", handler.RefreshSnapshot)

	// Initialize routes
	router := api.SetupRouter()

	// Wrap router with CORS middleware
	h := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
