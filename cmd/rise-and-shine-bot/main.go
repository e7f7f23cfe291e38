package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tasnim/rise-and-shine-bot/internal/bot"
	"github.com/tasnim/rise-and-shine-bot/internal/config"
	"github.com/tasnim/rise-and-shine-bot/internal/health"
	"github.com/tasnim/rise-and-shine-bot/internal/repository/sheets"
	"github.com/tasnim/rise-and-shine-bot/internal/schedule"
	"github.com/tasnim/rise-and-shine-bot/internal/service"
	"github.com/tasnim/rise-and-shine-bot/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	window, err := schedule.NewWindow(cfg.FormWindow.Timezone, cfg.FormWindow.Start, cfg.FormWindow.End)
	if err != nil {
		log.Fatalf("Invalid form window: %v", err)
	}

	// Initialize spreadsheet client and repositories
	client, err := sheets.NewClient(context.Background(), cfg.ServiceAccountEmail, cfg.PrivateKey, cfg.SpreadsheetID)
	if err != nil {
		log.Fatalf("Failed to create sheets client: %v", err)
	}

	formRepo := sheets.NewFormRepository(client)
	leaderboardRepo := sheets.NewLeaderboardRepository(client)

	// Initialize service
	challengeService := service.NewChallengeService(formRepo, leaderboardRepo, window.Location())

	// Initialize bot
	telegramBot, err := bot.New(cfg.TelegramToken, challengeService, session.NewMemoryStore(), window)
	if err != nil {
		log.Fatalf("Failed to initialize bot: %v", err)
	}

	// Liveness endpoint for the hosting platform
	healthServer := health.New(cfg.Port)
	go func() {
		log.Printf("Health server listening on port %s", cfg.Port)
		if err := healthServer.Start(); err != nil {
			log.Fatalf("Health server stopped with error: %v", err)
		}
	}()

	// Start bot in goroutine
	go func() {
		log.Println("Bot started. Press Ctrl+C to stop.")
		if err := telegramBot.Start(); err != nil {
			log.Fatalf("Bot stopped with error: %v", err)
		}
	}()

	// Wait for stop signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := healthServer.Shutdown(ctx); err != nil {
		log.Printf("Health server shutdown error: %v", err)
	}
}
