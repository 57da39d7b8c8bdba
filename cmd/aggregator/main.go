// Package main provides the entry point for the fleetpulse aggregator.
package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/oakline/fleetpulse/internal/dashboard"
	fpgrpc "github.com/oakline/fleetpulse/internal/grpc"
	"github.com/oakline/fleetpulse/internal/poll"
	"github.com/oakline/fleetpulse/internal/telemetry"
	"github.com/oakline/fleetpulse/pkg/config"
	"github.com/oakline/fleetpulse/pkg/logger"
)

func main() {
	log := logger.FromEnv()

	cfg, err := config.LoadAggregator()
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	metrics := telemetry.New()

	registry := fpgrpc.NewRegistry(cfg.EvictThreshold, log.WithComponent("registry").Logger, metrics)
	defer registry.Close()

	grpcCfg := fpgrpc.DefaultConfig()
	grpcCfg.Host = cfg.GRPCHost
	grpcCfg.Port = cfg.GRPCPort
	grpcCfg.DialTimeout = cfg.DialTimeout

	grpcServer := fpgrpc.NewServer(grpcCfg, registry, metrics, log.WithComponent("registration").Logger)

	poller := poll.New(registry, cfg.PollTimeout, metrics, log.WithComponent("poll").Logger)

	webServer := dashboard.NewServer(dashboard.Config{
		Host:  cfg.WebHost,
		Port:  cfg.WebPort,
		Ready: grpcServer.IsServing,
	}, poller, metrics.Handler(), log.WithComponent("dashboard").Logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info("received shutdown signal", "signal", sig.String())
		cancel()
	}()

	var wg sync.WaitGroup
	errCh := make(chan error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := grpcServer.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := webServer.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	log.Info("aggregator running",
		"grpc_addr", cfg.GRPCHost, "grpc_port", cfg.GRPCPort,
		"web_addr", cfg.WebHost, "web_port", cfg.WebPort,
	)

	select {
	case err := <-errCh:
		log.Error("server failed", "error", err)
		cancel()
	case <-ctx.Done():
	}

	wg.Wait()
	log.Info("aggregator stopped")
}
