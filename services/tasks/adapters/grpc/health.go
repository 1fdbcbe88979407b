package grpc

import (
	"context"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/bhaktofmahakal/Kanban-board/services/tasks/core"
)

// ServiceName is the health-check service name of the tasks API.
const ServiceName = "kanban.tasks"

// Server exposes grpc.health.v1 with a status that follows the store.
type Server struct {
	log      *slog.Logger
	pinger   core.Pinger
	interval time.Duration

	health *health.Server
	srv    *grpc.Server
}

func NewServer(log *slog.Logger, pinger core.Pinger, interval time.Duration) *Server {
	hs := health.NewServer()
	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)

	// unknown until the first check
	hs.SetServingStatus("", healthpb.HealthCheckResponse_UNKNOWN)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_UNKNOWN)

	return &Server{
		log:      log,
		pinger:   pinger,
		interval: interval,
		health:   hs,
		srv:      srv,
	}
}

// Check pings the store once and publishes the result.
func (s *Server) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := s.pinger.Ping(ctx); err != nil {
		s.log.Warn("store ping failed", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
	return status
}

// Watch runs Check every interval until ctx is done.
func (s *Server) Watch(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.Check(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Serve blocks until Stop is called or the listener fails.
func (s *Server) Serve(lis net.Listener) error {
	return s.srv.Serve(lis)
}

func (s *Server) Stop() {
	s.health.Shutdown()
	s.srv.GracefulStop()
}
