package grpc

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"

	pb "github.com/oakline/fleetpulse/api/proto"
)

// stubMetricsClient satisfies pb.MetricsServiceClient without a network.
type stubMetricsClient struct {
	report *pb.MetricsReport
	err    error
}

func (c stubMetricsClient) RequestMetrics(ctx context.Context, in *pb.MetricsRequest, opts ...grpc.CallOption) (*pb.MetricsReport, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.report, nil
}

type countingCloser struct {
	closed int
}

func (c *countingCloser) Close() error {
	c.closed++
	return nil
}

func testConn(addr string) *AgentConnection {
	return NewAgentConnection(addr, stubMetricsClient{report: &pb.MetricsReport{Host: addr}}, nil)
}

func TestRegistryAddAndSnapshot(t *testing.T) {
	r := NewRegistry(3, nil, nil)

	first := testConn("10.0.0.1:4000")
	second := testConn("10.0.0.2:4000")
	r.Add(first)
	r.Add(second)

	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}

	snap := r.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("snapshot length = %d, want 2", len(snap))
	}
	if snap[0].ID != first.ID || snap[1].ID != second.ID {
		t.Error("snapshot not in insertion order")
	}

	// The snapshot is a copy: mutating it must not affect the registry.
	snap[0] = nil
	if r.Snapshot()[0] == nil {
		t.Error("snapshot aliases registry storage")
	}
}

func TestRegistryAllowsDuplicateAddresses(t *testing.T) {
	r := NewRegistry(3, nil, nil)
	r.Add(testConn("10.0.0.1:4000"))
	r.Add(testConn("10.0.0.1:4000"))

	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2 duplicate entries", r.Len())
	}
}

func TestRegistryEvictsAfterThreshold(t *testing.T) {
	r := NewRegistry(3, nil, nil)
	closer := &countingCloser{}
	conn := NewAgentConnection("10.0.0.1:4000", stubMetricsClient{}, closer)
	r.Add(conn)

	if r.ReportFailure(conn) {
		t.Fatal("evicted after 1 failure, threshold is 3")
	}
	if r.ReportFailure(conn) {
		t.Fatal("evicted after 2 failures, threshold is 3")
	}
	if !r.ReportFailure(conn) {
		t.Fatal("not evicted after 3 consecutive failures")
	}

	if r.Len() != 0 {
		t.Fatalf("Len = %d after eviction, want 0", r.Len())
	}
	if closer.closed != 1 {
		t.Fatalf("connection closed %d times, want 1", closer.closed)
	}
}

func TestRegistrySuccessResetsFailureCount(t *testing.T) {
	r := NewRegistry(3, nil, nil)
	conn := testConn("10.0.0.1:4000")
	r.Add(conn)

	r.ReportFailure(conn)
	r.ReportFailure(conn)
	r.ReportSuccess(conn)

	// Two more failures stay under the threshold after the reset.
	r.ReportFailure(conn)
	if r.ReportFailure(conn) {
		t.Fatal("transient failures before a success must not accumulate")
	}
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}
}

func TestRegistryRemoveIsIdempotent(t *testing.T) {
	r := NewRegistry(3, nil, nil)
	conn := testConn("10.0.0.1:4000")
	r.Add(conn)

	if !r.Remove(conn.ID) {
		t.Fatal("first Remove returned false")
	}
	if r.Remove(conn.ID) {
		t.Fatal("second Remove returned true")
	}
	if r.Remove("no-such-id") {
		t.Fatal("Remove of unknown ID returned true")
	}
}

func TestRegistryClose(t *testing.T) {
	r := NewRegistry(3, nil, nil)
	closers := []*countingCloser{{}, {}}
	for i, c := range closers {
		r.Add(NewAgentConnection("10.0.0.1:400"+string(rune('0'+i)), stubMetricsClient{}, c))
	}

	wantErr := errors.New("close failed")
	r.Add(NewAgentConnection("10.0.0.9:4000", stubMetricsClient{}, closerFunc(func() error { return wantErr })))

	if err := r.Close(); !errors.Is(err, wantErr) {
		t.Fatalf("Close error = %v, want %v", err, wantErr)
	}
	for i, c := range closers {
		if c.closed != 1 {
			t.Errorf("closer %d closed %d times, want 1", i, c.closed)
		}
	}
	if r.Len() != 0 {
		t.Fatalf("Len = %d after Close, want 0", r.Len())
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
