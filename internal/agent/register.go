package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/oakline/fleetpulse/api/proto"
	"github.com/oakline/fleetpulse/internal/retry"
)

// Registrar announces the agent's metrics port to the aggregator. Both
// the dial and the registration call retry on failure; exhaustion is
// surfaced as an error wrapping retry.ErrExhausted so the caller can
// decide it is fatal.
type Registrar struct {
	aggregatorURL string
	port          int
	policy        retry.Policy
	dialTimeout   time.Duration
	logger        *slog.Logger
}

// NewRegistrar creates a registrar targeting aggregatorURL, announcing
// the given metrics port.
func NewRegistrar(aggregatorURL string, port int, policy retry.Policy, logger *slog.Logger) *Registrar {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registrar{
		aggregatorURL: aggregatorURL,
		port:          port,
		policy:        policy,
		dialTimeout:   5 * time.Second,
		logger:        logger,
	}
}

// Run dials the aggregator and registers, retrying each phase up to the
// policy's attempt count. The connection is only needed for the single
// registration call and is closed before returning.
func (r *Registrar) Run(ctx context.Context) error {
	var conn *grpc.ClientConn

	err := retry.Do(ctx, r.policy, r.logger, "dial aggregator", func(ctx context.Context) error {
		dialCtx, cancel := context.WithTimeout(ctx, r.dialTimeout)
		defer cancel()

		c, err := grpc.DialContext(dialCtx, r.aggregatorURL,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithBlock(),
		)
		if err != nil {
			return fmt.Errorf("dialing %s: %w", r.aggregatorURL, err)
		}
		conn = c
		return nil
	})
	if err != nil {
		return err
	}
	defer conn.Close()

	client := pb.NewRegistrationServiceClient(conn)

	err = retry.Do(ctx, r.policy, r.logger, "register with aggregator", func(ctx context.Context) error {
		resp, err := client.Register(ctx, &pb.RegisterRequest{
			Port: strconv.Itoa(r.port),
		})
		if err != nil {
			return fmt.Errorf("register call: %w", err)
		}
		r.logger.Info("registered with aggregator",
			"aggregator", r.aggregatorURL,
			"port", r.port,
			"status", resp.Status,
		)
		return nil
	})
	return err
}
