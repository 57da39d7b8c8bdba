package poll

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"google.golang.org/grpc"

	pb "github.com/oakline/fleetpulse/api/proto"
	fpgrpc "github.com/oakline/fleetpulse/internal/grpc"
)

// flakyClient fails while broken is set and answers otherwise.
type flakyClient struct {
	host   string
	broken *atomic.Bool
}

func (c *flakyClient) RequestMetrics(ctx context.Context, in *pb.MetricsRequest, opts ...grpc.CallOption) (*pb.MetricsReport, error) {
	if c.broken != nil && c.broken.Load() {
		return nil, errors.New("unreachable")
	}
	return &pb.MetricsReport{
		Host: c.host,
		Memory: &pb.MemoryStats{
			Total: 1000000,
			Free:  200000,
		},
	}, nil
}

func addAgent(r *fpgrpc.Registry, host string, broken *atomic.Bool) *fpgrpc.AgentConnection {
	conn := fpgrpc.NewAgentConnection(host+":4000", &flakyClient{host: host, broken: broken}, nil)
	r.Add(conn)
	return conn
}

func TestPollAllHealthy(t *testing.T) {
	registry := fpgrpc.NewRegistry(3, nil, nil)
	hosts := []string{"a", "b", "c"}
	for _, h := range hosts {
		addAgent(registry, h, nil)
	}

	results := New(registry, time.Second, nil, nil).Poll(context.Background())
	if len(results) != len(hosts) {
		t.Fatalf("got %d results, want %d", len(results), len(hosts))
	}
	for i, res := range results {
		if res.Report.Host != hosts[i] {
			t.Errorf("result %d host = %q, want %q (registry order)", i, res.Report.Host, hosts[i])
		}
	}
}

func TestPollEmptyRegistry(t *testing.T) {
	registry := fpgrpc.NewRegistry(3, nil, nil)
	results := New(registry, time.Second, nil, nil).Poll(context.Background())
	if len(results) != 0 {
		t.Fatalf("got %d results from empty registry, want 0", len(results))
	}
}

func TestPollIsolatesFailingAgent(t *testing.T) {
	registry := fpgrpc.NewRegistry(3, nil, nil)
	var broken atomic.Bool
	broken.Store(true)

	addAgent(registry, "healthy-1", nil)
	addAgent(registry, "flaky", &broken)
	addAgent(registry, "healthy-2", nil)

	poller := New(registry, time.Second, nil, nil)

	results := poller.Poll(context.Background())
	if len(results) != 2 {
		t.Fatalf("got %d results with one broken agent, want 2", len(results))
	}
	for _, res := range results {
		if res.Report.Host == "flaky" {
			t.Error("broken agent present in results")
		}
	}
}

func TestPollRecoveryAfterTransientFailure(t *testing.T) {
	registry := fpgrpc.NewRegistry(3, nil, nil)
	var broken atomic.Bool

	addAgent(registry, "steady", nil)
	addAgent(registry, "flaky", &broken)

	poller := New(registry, time.Second, nil, nil)

	broken.Store(true)
	if got := len(poller.Poll(context.Background())); got != 1 {
		t.Fatalf("poll during outage returned %d results, want 1", got)
	}

	broken.Store(false)
	if got := len(poller.Poll(context.Background())); got != 2 {
		t.Fatalf("poll after recovery returned %d results, want 2", got)
	}
	if registry.Len() != 2 {
		t.Fatalf("registry size = %d after recovery, want 2", registry.Len())
	}
}

func TestPollEvictsPersistentlyFailingAgent(t *testing.T) {
	registry := fpgrpc.NewRegistry(3, nil, nil)
	var broken atomic.Bool
	broken.Store(true)

	addAgent(registry, "steady", nil)
	addAgent(registry, "dead", &broken)

	poller := New(registry, time.Second, nil, nil)
	for i := 0; i < 3; i++ {
		poller.Poll(context.Background())
	}

	if registry.Len() != 1 {
		t.Fatalf("registry size = %d after 3 failed polls, want 1 (dead agent evicted)", registry.Len())
	}
	if registry.Snapshot()[0].Addr != "steady:4000" {
		t.Error("wrong connection evicted")
	}
}

func TestUsedBytes(t *testing.T) {
	tests := []struct {
		name string
		mem  *pb.MemoryStats
		want uint64
	}{
		{
			name: "reference derivation",
			mem:  &pb.MemoryStats{Total: 1000000, Free: 200000, Buffers: 50000, Cached: 150000},
			want: 600000,
		},
		{
			name: "all zero",
			mem:  &pb.MemoryStats{},
			want: 0,
		},
		{
			name: "nil",
			mem:  nil,
			want: 0,
		},
		{
			name: "reclaimable exceeds total clamps to zero",
			mem:  &pb.MemoryStats{Total: 100, Free: 90, Buffers: 20, Cached: 30},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UsedBytes(tt.mem); got != tt.want {
				t.Errorf("UsedBytes = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPercentUsed(t *testing.T) {
	mem := &pb.MemoryStats{Total: 1000000, Free: 200000, Buffers: 50000, Cached: 150000}
	if got := PercentUsed(mem); got != 0.6 {
		t.Errorf("PercentUsed = %v, want 0.6", got)
	}
	if got := PercentUsed(&pb.MemoryStats{}); got != 0 {
		t.Errorf("PercentUsed of zero total = %v, want 0", got)
	}
	if got := PercentUsed(nil); got != 0 {
		t.Errorf("PercentUsed(nil) = %v, want 0", got)
	}
}
