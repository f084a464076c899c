package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/qepting91/license-bot/internal/collector"
	"github.com/qepting91/license-bot/internal/config"
	"github.com/qepting91/license-bot/internal/dashboard"
	"github.com/qepting91/license-bot/internal/github"
	"github.com/qepting91/license-bot/internal/storage"
	"github.com/qepting91/license-bot/internal/watch"
)

func main() {
	// 1. Setup
	godotenv.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. Run Dashboard + Metrics
	replyLogPath := filepath.Join(cfg.DataDir, "replies.json")
	go func() {
		logger.Info("Starting dashboard", "port", cfg.Port)
		if err := dashboard.StartServer(replyLogPath, cfg.Port); err != nil {
			logger.Error("Dashboard failed", "err", err)
		}
	}()

	// 3. Initialize Clients (Using Factory)
	listings, replier, err := collector.New(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize collector", "err", err)
		os.Exit(1)
	}
	logger.Info("Collector initialized", "mode", cfg.CollectorMode)

	checker := github.NewClient(cfg.GitHubToken)

	// 4. Graceful Shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Shutdown signal received")
		cancel()
	}()

	// 5. Watch
	watcher := watch.New(watch.Options{
		Collector:      listings,
		Checker:        checker,
		Replier:        replier,
		Subreddit:      cfg.Subreddit,
		StatePath:      storage.FilePath(cfg.DataDir, cfg.Subreddit),
		ReplyLog:       &storage.ReplyLog{FilePath: replyLogPath},
		EmptyPageDelay: cfg.EmptyPageDelay,
		Logger:         logger,
	})

	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Watcher stopped", "err", err)
		os.Exit(1)
	}
	logger.Info("Watcher stopped")
}
