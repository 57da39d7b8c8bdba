// Package agent implements the leaf process: a metrics endpoint computed
// on demand from local host state, plus the registration bootstrap that
// announces it to the aggregator.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/oakline/fleetpulse/api/proto"
	"github.com/oakline/fleetpulse/internal/collector"
)

// MetricsServer answers RequestMetrics calls from the aggregator.
type MetricsServer struct {
	pb.UnimplementedMetricsServiceServer

	procDir      string
	hostnamePath string
	logger       *slog.Logger

	grpcServer *grpc.Server
	listener   net.Listener
}

// NewMetricsServer creates a metrics server reading host state from
// procDir and hostnamePath.
func NewMetricsServer(procDir, hostnamePath string, logger *slog.Logger) *MetricsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &MetricsServer{
		procDir:      procDir,
		hostnamePath: hostnamePath,
		logger:       logger,
	}
}

// RequestMetrics computes a fresh snapshot. An unreadable hostname fails
// the call; an unreadable meminfo table degrades to a nil memory block,
// and CPU/network sampling errors degrade to zero values.
func (s *MetricsServer) RequestMetrics(ctx context.Context, req *pb.MetricsRequest) (*pb.MetricsReport, error) {
	host, err := collector.ReadHostname(s.hostnamePath)
	if err != nil {
		s.logger.Warn("hostname read failed", "error", err)
		return nil, status.Error(codes.Internal, "could not get hostname")
	}

	report := &pb.MetricsReport{Host: host}

	mem, err := collector.ReadMemory(s.procDir)
	if err != nil {
		s.logger.Warn("memory read failed", "error", err)
	} else {
		report.Memory = &pb.MemoryStats{
			Total:     mem.Total,
			Free:      mem.Free,
			Available: mem.Available,
			Buffers:   mem.Buffers,
			Cached:    mem.Cached,
		}
	}

	if cpu, err := collector.CPUPercent(); err != nil {
		s.logger.Debug("cpu sample failed", "error", err)
	} else {
		report.CpuUsage = cpu
	}

	if rx, tx, err := collector.NetCounters(); err != nil {
		s.logger.Debug("net sample failed", "error", err)
	} else {
		report.NetRxBytes = rx
		report.NetTxBytes = tx
	}

	return report, nil
}

// Listen binds the metrics endpoint. It must be called before
// registration is attempted: the aggregator dials back immediately.
func (s *MetricsServer) Listen(port int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", port, err)
	}
	s.listener = lis

	s.grpcServer = grpc.NewServer()
	pb.RegisterMetricsServiceServer(s.grpcServer, s)

	s.logger.Info("metrics endpoint listening", "addr", lis.Addr().String())
	return nil
}

// Addr returns the bound listener address. Only valid after Listen.
func (s *MetricsServer) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve blocks serving metrics requests until ctx is cancelled or the
// listener fails. Listen must have succeeded first.
func (s *MetricsServer) Serve(ctx context.Context) error {
	if s.listener == nil {
		return fmt.Errorf("serve called before listen")
	}

	go func() {
		<-ctx.Done()
		s.Stop(context.Background())
	}()

	if err := s.grpcServer.Serve(s.listener); err != nil {
		return fmt.Errorf("serving metrics: %w", err)
	}
	return nil
}

// Stop gracefully stops the server, forcing the stop after a timeout.
func (s *MetricsServer) Stop(ctx context.Context) {
	if s.grpcServer == nil {
		return
	}

	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		s.grpcServer.Stop()
	case <-ctx.Done():
		s.grpcServer.Stop()
	}
}
