// Package poll implements the dashboard's fan-out over registered agents.
package poll

import (
	"context"
	"log/slog"
	"time"

	pb "github.com/oakline/fleetpulse/api/proto"
	fpgrpc "github.com/oakline/fleetpulse/internal/grpc"
	"github.com/oakline/fleetpulse/internal/telemetry"
)

// DefaultTimeout bounds a single per-agent metrics call so one
// unreachable agent cannot stall the dashboard response.
const DefaultTimeout = 2 * time.Second

// Result is one agent's answer within a poll cycle.
type Result struct {
	AgentID string
	Addr    string
	Report  *pb.MetricsReport
}

// Poller fans a metrics request out to every registered agent.
type Poller struct {
	registry *fpgrpc.Registry
	timeout  time.Duration
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// New creates a Poller over registry. A non-positive timeout falls back
// to DefaultTimeout.
func New(registry *fpgrpc.Registry, timeout time.Duration, metrics *telemetry.Metrics, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Poller{
		registry: registry,
		timeout:  timeout,
		metrics:  metrics,
		logger:   logger,
	}
}

// Poll queries every connection in the current registry snapshot, in
// registry order. Agents that error or time out are logged, reported to
// the registry for eviction accounting, and omitted from this cycle's
// results; they never fail the poll as a whole.
func (p *Poller) Poll(ctx context.Context) []Result {
	snapshot := p.registry.Snapshot()
	results := make([]Result, 0, len(snapshot))

	for _, conn := range snapshot {
		callCtx, cancel := context.WithTimeout(ctx, p.timeout)
		report, err := conn.Client().RequestMetrics(callCtx, &pb.MetricsRequest{})
		cancel()

		if err != nil {
			p.metrics.AgentPollFailed()
			p.logger.Warn("agent poll failed",
				"agent_id", conn.ID,
				"addr", conn.Addr,
				"error", err,
			)
			p.registry.ReportFailure(conn)
			continue
		}

		p.registry.ReportSuccess(conn)
		results = append(results, Result{
			AgentID: conn.ID,
			Addr:    conn.Addr,
			Report:  report,
		})
	}

	p.metrics.PollServed()
	return results
}

// UsedBytes derives consumed memory from the transmitted counters:
// total - free - buffers - cached, clamped at zero.
func UsedBytes(m *pb.MemoryStats) uint64 {
	if m == nil {
		return 0
	}
	reclaimable := m.Free + m.Buffers + m.Cached
	if reclaimable > m.Total {
		return 0
	}
	return m.Total - reclaimable
}

// PercentUsed derives the used fraction of total memory, in [0, 1].
// A zero total yields zero.
func PercentUsed(m *pb.MemoryStats) float64 {
	if m == nil || m.Total == 0 {
		return 0
	}
	return float64(UsedBytes(m)) / float64(m.Total)
}
