// Package grpc provides the aggregator's registration server and the
// registry of live agent connections.
package grpc

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	pb "github.com/oakline/fleetpulse/api/proto"
	"github.com/oakline/fleetpulse/internal/telemetry"
)

// DefaultEvictThreshold is the number of consecutive failed polls after
// which a connection is dropped from the registry.
const DefaultEvictThreshold = 3

// AgentConnection is an open, reusable channel to one agent's metrics
// endpoint. It is created only after a successful reverse dial, so every
// entry in the registry was proven reachable at insertion time.
type AgentConnection struct {
	ID           string
	Addr         string
	RegisteredAt time.Time

	client pb.MetricsServiceClient
	closer io.Closer

	// failures counts consecutive failed polls; guarded by mu.
	mu       sync.Mutex
	failures int
}

// NewAgentConnection wraps an established client channel to addr.
func NewAgentConnection(addr string, client pb.MetricsServiceClient, closer io.Closer) *AgentConnection {
	return &AgentConnection{
		ID:           uuid.New().String(),
		Addr:         addr,
		RegisteredAt: time.Now(),
		client:       client,
		closer:       closer,
	}
}

// Client returns the metrics client for this connection.
func (c *AgentConnection) Client() pb.MetricsServiceClient {
	return c.client
}

// Close closes the underlying transport, if any.
func (c *AgentConnection) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// Failures returns the current consecutive-failure count.
func (c *AgentConnection) Failures() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failures
}

func (c *AgentConnection) recordFailure() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures++
	return c.failures
}

func (c *AgentConnection) resetFailures() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures = 0
}

// Registry is the shared set of live agent connections. Appends take the
// write lock only for the insert itself; poll iteration works on a
// snapshot taken under the read lock, so a registration racing a poll may
// or may not be visible to that poll.
//
// Connections are keyed by a generated ID, never by address: duplicate
// registrations from the same agent produce duplicate entries.
type Registry struct {
	mu    sync.RWMutex
	conns []*AgentConnection

	evictThreshold int
	logger         *slog.Logger
	metrics        *telemetry.Metrics
}

// NewRegistry creates an empty registry. evictThreshold values below one
// fall back to DefaultEvictThreshold.
func NewRegistry(evictThreshold int, logger *slog.Logger, metrics *telemetry.Metrics) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	if evictThreshold < 1 {
		evictThreshold = DefaultEvictThreshold
	}
	return &Registry{
		evictThreshold: evictThreshold,
		logger:         logger,
		metrics:        metrics,
	}
}

// Add appends a proven-reachable connection.
func (r *Registry) Add(conn *AgentConnection) {
	r.mu.Lock()
	r.conns = append(r.conns, conn)
	n := len(r.conns)
	r.mu.Unlock()

	r.metrics.SetRegistrySize(n)
	r.logger.Info("registered agent connection",
		"agent_id", conn.ID,
		"addr", conn.Addr,
		"registry_size", n,
	)
}

// Snapshot returns the current connections in insertion order. The
// returned slice is a copy and safe to iterate without holding any lock.
func (r *Registry) Snapshot() []*AgentConnection {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*AgentConnection, len(r.conns))
	copy(out, r.conns)
	return out
}

// Len returns the number of registered connections.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}

// ReportSuccess resets the connection's consecutive-failure count.
func (r *Registry) ReportSuccess(conn *AgentConnection) {
	conn.resetFailures()
}

// ReportFailure records a failed poll against the connection and evicts
// it once the threshold of consecutive failures is reached. It returns
// true when the connection was evicted.
func (r *Registry) ReportFailure(conn *AgentConnection) bool {
	failures := conn.recordFailure()
	if failures < r.evictThreshold {
		return false
	}
	if !r.Remove(conn.ID) {
		return false
	}

	r.metrics.ConnectionEvicted()
	r.logger.Warn("evicted agent connection",
		"agent_id", conn.ID,
		"addr", conn.Addr,
		"consecutive_failures", failures,
	)
	return true
}

// Remove drops the connection with the given ID and closes it. It returns
// false when the ID is not present, which makes eviction idempotent under
// concurrent polls.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	idx := -1
	for i, c := range r.conns {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.mu.Unlock()
		return false
	}
	conn := r.conns[idx]
	r.conns = append(r.conns[:idx], r.conns[idx+1:]...)
	n := len(r.conns)
	r.mu.Unlock()

	r.metrics.SetRegistrySize(n)
	if err := conn.Close(); err != nil {
		r.logger.Debug("closing evicted connection", "agent_id", id, "error", err)
	}
	return true
}

// Close closes every connection. Used at process shutdown.
func (r *Registry) Close() error {
	r.mu.Lock()
	conns := r.conns
	r.conns = nil
	r.mu.Unlock()

	var lastErr error
	for _, c := range conns {
		if err := c.Close(); err != nil {
			lastErr = err
		}
	}
	r.metrics.SetRegistrySize(0)
	return lastErr
}
