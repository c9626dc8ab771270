package health

import (
	"context"
	"net"
	"time"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"evaluation_service/pkg/logger"
)

// Service is the health service name clients check for database
// reachability.
const Service = "postgres"

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	grpc     *grpc.Server
	health   *health.Server
	pinger   Pinger
	interval time.Duration
	log      *logger.Logger
}

// NewServer builds a gRPC server exposing grpc.health.v1.Health. A nil
// pinger reports SERVING forever, which is what the in-memory store wants.
func NewServer(log *logger.Logger, pinger Pinger, interval time.Duration) *Server {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	srv := grpc.NewServer(
		grpc.UnaryInterceptor(grpc_middleware.ChainUnaryServer(
			NewRecoveryUnaryInterceptor(log),
			NewMetadataUnaryInterceptor(),
			NewUnaryLoggingInterceptor(log),
		)),
	)
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus(Service, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		grpc:     srv,
		health:   healthServer,
		pinger:   pinger,
		interval: interval,
		log:      log,
	}
}

// Serve runs the database watcher and the gRPC server until ctx is done or
// the listener fails.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go s.watch(ctx)
	go func() {
		<-ctx.Done()
		s.health.Shutdown()
		s.grpc.GracefulStop()
	}()

	return s.grpc.Serve(lis)
}

func (s *Server) watch(ctx context.Context) {
	if s.pinger == nil {
		return
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

func (s *Server) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := s.pinger.Ping(pingCtx); err != nil {
		s.log.Warn(ctx, "database ping failed", zap.Error(err))
		s.health.SetServingStatus(Service, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		return
	}
	s.health.SetServingStatus(Service, grpc_health_v1.HealthCheckResponse_SERVING)
}
