package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bhaktofmahakal/Kanban-board/services/tasks/adapters/db"
	taskgrpc "github.com/bhaktofmahakal/Kanban-board/services/tasks/adapters/grpc"
	"github.com/bhaktofmahakal/Kanban-board/services/tasks/adapters/rest/handlers"
	"github.com/bhaktofmahakal/Kanban-board/services/tasks/adapters/rest/middleware"
	"github.com/bhaktofmahakal/Kanban-board/services/tasks/config"
	"github.com/bhaktofmahakal/Kanban-board/services/tasks/core"
)

func main() {
	// config
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "tasks server configuration file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	// logger
	log := mustMakeLogger(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	log.Info("starting tasks server")

	// graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// database adapter
	storage, err := db.New(log, cfg.DB.Driver, cfg.DB.Address)
	if err != nil {
		return fmt.Errorf("failed to connect to db: %w", err)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.Error("failed to close db connection", "error", err)
		}
	}()

	if err := storage.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate db: %w", err)
	}

	// service
	tasksService := core.NewService(storage)

	// grpc health, optional
	if cfg.GRPC.Address != "" {
		lis, err := net.Listen("tcp", cfg.GRPC.Address)
		if err != nil {
			return fmt.Errorf("failed to listen grpc: %w", err)
		}
		hs := taskgrpc.NewServer(log, storage, cfg.GRPC.HealthInterval)
		go hs.Watch(ctx)
		go func() {
			log.Info("grpc health server is running", "address", cfg.GRPC.Address)
			if err := hs.Serve(lis); err != nil {
				log.Error("grpc server failed", "error", err)
			}
		}()
		defer hs.Stop()
	}

	// http
	mux := http.NewServeMux()
	handlers.Register(mux, log, tasksService, cfg.HTTP.Timeout)

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.HTTP.AllowedOrigins)(handler)
	handler = middleware.Logging(log)(handler)

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.HTTP.Timeout,
	}

	go func() {
		<-ctx.Done()
		log.Debug("shutting down tasks server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("http shutdown failed", "error", err)
		}
	}()

	log.Info("tasks http server is running", "address", server.Addr, "origins", cfg.HTTP.AllowedOrigins)

	// blocking
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
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
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
