package grpc

import (
	"context"
	"net"
	"strconv"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	pb "github.com/oakline/fleetpulse/api/proto"
	"github.com/oakline/fleetpulse/pkg/config"
)

// Register handles agent registration. The caller's IP is taken from the
// transport connection, never from the request, so an agent can only ever
// register its own address. The reverse dial happens synchronously: if
// the agent cannot be reached back on the advertised port, registration
// fails and nothing is added to the registry.
func (s *Server) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	port, err := strconv.Atoi(req.Port)
	if err != nil {
		s.metrics.RegistrationRejected()
		return nil, status.Errorf(codes.InvalidArgument, "invalid port %q", req.Port)
	}
	if err := config.ValidatePort(port); err != nil {
		s.metrics.RegistrationRejected()
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	host, err := callerHost(ctx)
	if err != nil {
		s.metrics.RegistrationRejected()
		s.logger.Error("registration without usable peer address", "error", err)
		return nil, status.Error(codes.Internal, "could not determine caller address")
	}

	addr := net.JoinHostPort(host, req.Port)
	s.logger.Info("registration received, dialing back", "addr", addr)

	dialCtx, cancel := context.WithTimeout(ctx, s.config.DialTimeout)
	defer cancel()

	client, closer, err := s.dial(dialCtx, addr)
	if err != nil {
		s.metrics.RegistrationRejected()
		s.logger.Warn("reverse dial failed", "addr", addr, "error", err)
		return nil, status.Error(codes.Internal, "could not connect back to agent")
	}

	conn := NewAgentConnection(addr, client, closer)
	s.registry.Add(conn)
	s.metrics.RegistrationAccepted()

	return &pb.RegisterResponse{Status: "OK"}, nil
}

// callerHost extracts the transport-level source IP of the current call.
func callerHost(ctx context.Context) (string, error) {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "", status.Error(codes.Internal, "no peer in context")
	}

	if tcp, ok := p.Addr.(*net.TCPAddr); ok {
		return tcp.IP.String(), nil
	}

	host, _, err := net.SplitHostPort(p.Addr.String())
	if err != nil {
		// Non host:port transports (in-memory listeners in tests).
		return p.Addr.String(), nil
	}
	return host, nil
}
