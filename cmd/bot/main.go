package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/tipsy/internal/bac"
	"github.com/KirkDiggler/tipsy/internal/common/clock"
	"github.com/KirkDiggler/tipsy/internal/common/uuid"
	"github.com/KirkDiggler/tipsy/internal/config"
	"github.com/KirkDiggler/tipsy/internal/handlers/discord"
	"github.com/KirkDiggler/tipsy/internal/repositories/drink_log"
	"github.com/KirkDiggler/tipsy/internal/repositories/profile"
	"github.com/KirkDiggler/tipsy/internal/services/messaging"
	"github.com/KirkDiggler/tipsy/internal/services/tracker"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.DiscordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	drinkRepo, err := drink_log.NewRedis(&drink_log.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create drink log repository: %v", err)
	}

	profileRepo, err := profile.NewRedis(&profile.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create profile repository: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	clk := clock.New()

	// Initialize tracker service
	trackerSvc, err := tracker.New(&tracker.Config{
		DrinkRepo:     drinkRepo,
		ProfileRepo:   profileRepo,
		Calculator:    bac.New(nil),
		Messaging:     messagingSvc,
		Clock:         clk,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create tracker service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:          cfg.DiscordToken,
		ApplicationID:  cfg.ApplicationID,
		GuildID:        cfg.GuildID,
		TrackerService: trackerSvc,
		Clock:          clk,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Bot has been shut down")
}
