// Package dashboard serves the fleet overview page. The page polls the
// /metrics fragment over htmx, which triggers a fresh fan-out to every
// registered agent.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/oakline/fleetpulse/internal/poll"
	"github.com/oakline/fleetpulse/web/views"
)

// Poller produces one snapshot per reachable agent.
type Poller interface {
	Poll(ctx context.Context) []poll.Result
}

// Config holds the dashboard server settings.
type Config struct {
	Host string
	Port int

	// Ready reports whether the registration listener is accepting
	// agents. When set, /health returns degraded while it is false.
	Ready func() bool
}

// Server is the HTTP server behind the dashboard.
type Server struct {
	router     chi.Router
	httpServer *http.Server
	poller     Poller
	telemetry  http.Handler
	config     Config
	logger     *slog.Logger
}

// NewServer creates a dashboard server. telemetry may be nil, in which
// case /debug/metrics is not mounted.
func NewServer(cfg Config, poller Poller, telemetry http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		poller:    poller,
		telemetry: telemetry,
		config:    cfg,
		logger:    logger,
	}
	s.setupRouter()
	return s
}

// setupRouter configures the router with middleware and routes.
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(recovery(s.logger))
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Get("/", s.handleIndex)
	r.Get("/metrics", s.handleMetrics)
	r.Get("/health", s.handleHealth)

	if s.telemetry != nil {
		r.Get("/debug/metrics", s.telemetry.ServeHTTP)
	}

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if s.config.Ready != nil && !s.config.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"degraded"}`))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if err := views.Index().Render(r.Context(), w); err != nil {
		s.logger.Error("rendering index", "error", err)
	}
}

// handleMetrics fans out to every registered agent and renders the
// snapshot table fragment. Unreachable agents are simply absent from
// the table.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	results := s.poller.Poll(r.Context())

	items := make([]views.Item, 0, len(results))
	for _, res := range results {
		item := views.Item{
			Host:     res.Report.Host,
			CPUUsage: res.Report.CpuUsage,
			RxBytes:  res.Report.NetRxBytes,
			TxBytes:  res.Report.NetTxBytes,
		}
		if mem := res.Report.Memory; mem != nil {
			item.Total = mem.Total
			item.Free = mem.Free
			item.Available = mem.Available
			item.Buffers = mem.Buffers
			item.Cached = mem.Cached
			item.Used = poll.UsedBytes(mem)
			item.PctUsed = poll.PercentUsed(mem)
		}
		items = append(items, item)
	}

	if err := views.Snapshots(items).Render(r.Context(), w); err != nil {
		s.logger.Error("rendering snapshots", "error", err)
	}
}

// Start runs the HTTP server until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	s.logger.Info("starting dashboard server", "addr", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.logger.Info("shutting down dashboard server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}

// Router returns the chi router for testing purposes.
func (s *Server) Router() chi.Router {
	return s.router
}
