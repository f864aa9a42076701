package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"humanize-backend/internal/config"
	"humanize-backend/internal/database"
	"humanize-backend/internal/events"
	"humanize-backend/internal/handlers"
	"humanize-backend/internal/router"
	"humanize-backend/internal/services"
	"humanize-backend/internal/websocket"
)

func main() {
	log.Println("🚀 Starting Humanize Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ──── Step 2: Initialize Completion Backend ────
	var completer services.Completer
	switch cfg.AIProvider {
	case config.ProviderGemini:
		gemini, err := services.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("✗ Gemini client initialization failed: %v", err)
		}
		defer gemini.Close()
		completer = gemini
		log.Printf("✓ Gemini backend initialized (model %s)", cfg.GeminiModel)
	case config.ProviderGateway:
		completer = services.NewGatewayClient(cfg.AIGatewayURL, cfg.AIGatewayKey, cfg.AIModel, nil)
		log.Printf("✓ AI gateway backend initialized (model %s)", cfg.AIModel)
	default:
		log.Fatalf("✗ Unknown AI_PROVIDER %q", cfg.AIProvider)
	}
	if !completer.Configured() {
		log.Println("⚠ AI service credential is not configured; rewrite requests will fail until it is set")
	}

	// ──── Step 3: Initialize Activity Feed (optional) ────
	var publisher events.Publisher = events.Nop{}
	var wsHub *websocket.Hub
	if cfg.FeedEnabled() {
		redisClients, err := database.NewRedisClients(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer redisClients.Close()

		publisher = events.NewRedisPublisher(redisClients.Publisher, cfg.EventsChannel)
		wsHub = websocket.NewHub(redisClients.PubSub, cfg.EventsChannel)
		go wsHub.Run(ctx)
		log.Printf("✓ Activity feed started on channel %s", cfg.EventsChannel)
	}

	// ──── Step 4: Initialize Services and Handlers ────
	humanizeService := services.NewHumanizeService(completer, publisher)
	humanizeHandler := handlers.NewHumanizeHandler(humanizeService)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(humanizeHandler, wsHub)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Generations can take a while; the write side stays generous.
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		server.Shutdown(shutdownCtx)
	}()

	log.Printf("✓ Humanize Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/functions/v1/humanize-text", cfg.Port)
	if wsHub != nil {
		log.Printf("  WS:  ws://localhost:%s/api/v1/ws", cfg.Port)
	}

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
