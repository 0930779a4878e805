package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"elevate-bot/chatbot"
	"elevate-bot/config"
	"elevate-bot/llmclient"
	"elevate-bot/notify"
	"elevate-bot/store"
	"elevate-bot/web"

	"go.uber.org/zap"
)

func main() {
	// Initialize logger with default level to load config
	tempLogger, err := config.InitLogger("info")
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Load config (which includes log level setting)
	cfg := config.Load(tempLogger)

	// Re-initialize logger with configured level
	logger, err := config.InitLogger(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Failed to re-initialize logger with configured level: %v\n", err)
		os.Exit(1)
	}
	defer config.Cleanup()

	history := store.NewHistoryStore(cfg.HistoryMaxTurns)
	cache, err := store.NewResponseCache(cfg.CacheMaxEntries, cfg.CacheTTL)
	if err != nil {
		logger.Fatal("Failed to initialize response cache", zap.Error(err))
	}
	limiter := store.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)

	llm := llmclient.New(cfg, logger)
	bot := chatbot.New(cfg, llm, history, cache, logger)
	notifier := notify.NewService(cfg, logger)

	webServer := web.NewServer(bot, limiter, notifier, logger, cfg)

	// Create context that listens for interrupt signals
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := webServer.Start(ctx, ":"+cfg.Port); err != nil {
		logger.Error("Web server shutdown error", zap.Error(err))
	}
}
