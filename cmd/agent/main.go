// Package main provides the entry point for the fleetpulse agent.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/oakline/fleetpulse/internal/agent"
	"github.com/oakline/fleetpulse/internal/retry"
	"github.com/oakline/fleetpulse/pkg/config"
	"github.com/oakline/fleetpulse/pkg/logger"
)

func main() {
	log := logger.FromEnv()

	cfg, err := config.LoadAgent()
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info("received shutdown signal", "signal", sig.String())
		cancel()
	}()

	// The metrics endpoint must be accepting before registration: the
	// aggregator dials back as part of handling the Register call.
	server := agent.NewMetricsServer(cfg.ProcDir, cfg.HostnamePath, log.WithComponent("metrics").Logger)
	if err := server.Listen(cfg.ServerPort); err != nil {
		log.Error("failed to bind metrics endpoint", "error", err)
		os.Exit(1)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ctx)
	}()

	registrar := agent.NewRegistrar(cfg.AggregatorURL, cfg.ServerPort, retry.Policy{
		Attempts: cfg.RetryAttempts,
		Interval: cfg.RetryInterval,
	}, log.WithComponent("registrar").Logger)

	if err := registrar.Run(ctx); err != nil {
		log.Error("registration failed", "error", err)
		os.Exit(1)
	}

	log.Info("agent running",
		"aggregator", cfg.AggregatorURL,
		"port", cfg.ServerPort,
	)

	if err := <-serveErr; err != nil {
		log.Error("metrics server error", "error", err)
		os.Exit(1)
	}

	log.Info("agent stopped")
}
