package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bhaktofmahakal/Kanban-board/services/board/adapters/cli"
	"github.com/bhaktofmahakal/Kanban-board/services/board/adapters/fallback"
	"github.com/bhaktofmahakal/Kanban-board/services/board/adapters/local"
	"github.com/bhaktofmahakal/Kanban-board/services/board/adapters/local/blob"
	"github.com/bhaktofmahakal/Kanban-board/services/board/adapters/remote"
	"github.com/bhaktofmahakal/Kanban-board/services/board/config"
	"github.com/bhaktofmahakal/Kanban-board/services/board/core"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "board configuration file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	log := mustMakeLogger(cfg.LogLevel)

	os.Exit(run(cfg, log, flag.Args()))
}

func run(cfg config.Config, log *slog.Logger, args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var closeStore func()
	defer func() {
		if closeStore != nil {
			closeStore()
		}
	}()

	factory := func(ctx context.Context) (*cli.App, error) {
		store, closer, err := openStore(ctx, cfg.Cache, log)
		if err != nil {
			return nil, err
		}
		closeStore = closer

		client, err := remote.NewClient(cfg.API.URL, cfg.API.Timeout, log)
		if err != nil {
			return nil, fmt.Errorf("tasks api client: %w", err)
		}
		cache := local.New(store, cfg.Cache.Key)
		log.Debug("board backend", "api", client.BaseURL(), "cache", cfg.Cache.Backend)

		return &cli.App{
			Board: core.NewBoard(fallback.New(log, client, cache)),
			Cache: cache,
		}, nil
	}

	dispatcher := cli.NewDispatcher(cli.NewDefaultRegistry(), factory)
	return dispatcher.Run(ctx, args, os.Stdout, os.Stderr)
}

func openStore(ctx context.Context, cfg config.CacheConfig, log *slog.Logger) (blob.Store, func(), error) {
	switch cfg.Backend {
	case config.BackendRedis:
		s, err := blob.NewRedisStore(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("redis cache: %w", err)
		}
		if err := s.Ping(ctx); err != nil {
			_ = s.Close()
			return nil, nil, fmt.Errorf("redis cache: %w", err)
		}
		return s, func() {
			if err := s.Close(); err != nil {
				log.Error("failed to close redis cache", "error", err)
			}
		}, nil
	default:
		s, err := blob.NewFileStore(cfg.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("file cache: %w", err)
		}
		return s, func() {}, nil
	}
}

func mustMakeLogger(levelStr string) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
