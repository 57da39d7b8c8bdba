package agent

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/oakline/fleetpulse/api/proto"
	"github.com/oakline/fleetpulse/internal/retry"
)

// fakeAggregator records Register calls and can fail a configurable
// number of times before succeeding.
type fakeAggregator struct {
	pb.UnimplementedRegistrationServiceServer

	calls     atomic.Int32
	failFirst int32
	lastPort  atomic.Value
}

func (f *fakeAggregator) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	n := f.calls.Add(1)
	if n <= f.failFirst {
		return nil, status.Error(codes.Unavailable, "not ready")
	}
	f.lastPort.Store(req.Port)
	return &pb.RegisterResponse{Status: "OK"}, nil
}

func startFakeAggregator(t *testing.T, agg *fakeAggregator) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := grpc.NewServer()
	pb.RegisterRegistrationServiceServer(srv, agg)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)
	return lis.Addr().String()
}

func fastPolicy(attempts int) retry.Policy {
	return retry.Policy{Attempts: attempts, Interval: 10 * time.Millisecond}
}

func TestRegistrarSuccess(t *testing.T) {
	agg := &fakeAggregator{}
	addr := startFakeAggregator(t, agg)

	r := NewRegistrar(addr, 5500, fastPolicy(3), slog.Default())
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := agg.lastPort.Load(); got != "5500" {
		t.Errorf("registered port = %v, want %q", got, "5500")
	}
	if n := agg.calls.Load(); n != 1 {
		t.Errorf("register calls = %d, want 1", n)
	}
}

func TestRegistrarRetriesRegistration(t *testing.T) {
	agg := &fakeAggregator{failFirst: 2}
	addr := startFakeAggregator(t, agg)

	r := NewRegistrar(addr, 6000, fastPolicy(5), slog.Default())
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n := agg.calls.Load(); n != 3 {
		t.Errorf("register calls = %d, want 3", n)
	}
}

func TestRegistrarRegistrationExhaustion(t *testing.T) {
	agg := &fakeAggregator{failFirst: 100}
	addr := startFakeAggregator(t, agg)

	r := NewRegistrar(addr, 6000, fastPolicy(3), slog.Default())
	err := r.Run(context.Background())
	if !errors.Is(err, retry.ErrExhausted) {
		t.Fatalf("error = %v, want ErrExhausted", err)
	}
	if n := agg.calls.Load(); n != 3 {
		t.Errorf("register calls = %d, want 3", n)
	}
}

func TestRegistrarDialExhaustion(t *testing.T) {
	// A reserved-then-closed port refuses connections immediately.
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := lis.Addr().String()
	lis.Close()

	r := NewRegistrar(addr, 6000, fastPolicy(2), slog.Default())
	r.dialTimeout = 100 * time.Millisecond

	err = r.Run(context.Background())
	if !errors.Is(err, retry.ErrExhausted) {
		t.Fatalf("error = %v, want ErrExhausted", err)
	}
}
