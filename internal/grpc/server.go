package grpc

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync/atomic"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	pb "github.com/oakline/fleetpulse/api/proto"
	"github.com/oakline/fleetpulse/internal/telemetry"
)

// Config holds the registration server configuration.
type Config struct {
	Host                 string
	Port                 int
	DialTimeout          time.Duration
	MaxConcurrentStreams uint32
	KeepaliveTime        time.Duration
	KeepaliveTimeout     time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Host:                 "127.0.0.1",
		Port:                 3001,
		DialTimeout:          5 * time.Second,
		MaxConcurrentStreams: 1000,
		KeepaliveTime:        30 * time.Second,
		KeepaliveTimeout:     10 * time.Second,
	}
}

// DialFunc establishes a metrics client channel to an agent address. The
// returned closer tears the channel down on eviction or shutdown.
type DialFunc func(ctx context.Context, addr string) (pb.MetricsServiceClient, io.Closer, error)

// Server implements the RegistrationService exposed to agents.
type Server struct {
	pb.UnimplementedRegistrationServiceServer

	config   *Config
	registry *Registry
	dial     DialFunc
	metrics  *telemetry.Metrics
	logger   *slog.Logger

	grpcServer *grpc.Server
	serving    atomic.Bool
}

// NewServer creates a registration server publishing into registry.
func NewServer(cfg *Config, registry *Registry, metrics *telemetry.Metrics, logger *slog.Logger) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config:   cfg,
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}
	s.dial = s.defaultDial
	return s
}

// SetDialer overrides how reverse connections are established.
func (s *Server) SetDialer(dial DialFunc) {
	s.dial = dial
}

// defaultDial opens a blocking insecure gRPC channel so that an entry only
// reaches the registry once reverse connectivity is proven.
func (s *Server) defaultDial(ctx context.Context, addr string) (pb.MetricsServiceClient, io.Closer, error) {
	conn, err := grpc.DialContext(ctx, addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("dialing agent at %s: %w", addr, err)
	}
	return pb.NewMetricsServiceClient(conn), conn, nil
}

func (s *Server) buildServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.MaxConcurrentStreams(s.config.MaxConcurrentStreams),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    s.config.KeepaliveTime,
			Timeout: s.config.KeepaliveTimeout,
		}),
		grpc.ChainUnaryInterceptor(
			s.loggingInterceptor(),
		),
	}
}

// Start starts the registration server and blocks until ctx is cancelled
// or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.grpcServer = grpc.NewServer(s.buildServerOptions()...)
	pb.RegisterRegistrationServiceServer(s.grpcServer, s)

	addr := net.JoinHostPort(s.config.Host, fmt.Sprintf("%d", s.config.Port))
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	s.serving.Store(true)
	s.logger.Info("registration server starting", "address", addr)

	go func() {
		<-ctx.Done()
		s.Stop(context.Background())
	}()

	if err := s.grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("serving gRPC: %w", err)
	}

	return nil
}

// Stop gracefully stops the server, forcing the stop after a timeout.
func (s *Server) Stop(ctx context.Context) error {
	s.serving.Store(false)
	s.logger.Info("registration server stopping")

	if s.grpcServer == nil {
		return nil
	}

	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("registration server stopped gracefully")
	case <-time.After(10 * time.Second):
		s.logger.Warn("graceful stop timed out, forcing stop")
		s.grpcServer.Stop()
	case <-ctx.Done():
		s.logger.Warn("context cancelled, forcing stop")
		s.grpcServer.Stop()
	}

	return nil
}

// IsServing returns whether the server is currently accepting requests.
func (s *Server) IsServing() bool {
	return s.serving.Load()
}
