// Package config provides environment-based configuration for fleetpulse.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// AgentConfig holds all configuration for the agent process.
type AgentConfig struct {
	// AggregatorURL is the address of the aggregator's registration
	// listener, e.g. "127.0.0.1:3001".
	AggregatorURL string

	// ServerPort is the port the agent's own metrics endpoint listens on.
	ServerPort int

	// Host state sources
	ProcDir      string
	HostnamePath string

	// Bootstrap retry behavior
	RetryAttempts int
	RetryInterval time.Duration
}

// AggregatorConfig holds all configuration for the aggregator process.
type AggregatorConfig struct {
	// GRPCHost/GRPCPort is the registration listener address.
	GRPCHost string
	GRPCPort int

	// WebHost/WebPort is the dashboard HTTP listener address.
	WebHost string
	WebPort int

	// DialTimeout bounds the reverse dial back to a registering agent.
	DialTimeout time.Duration

	// PollTimeout bounds each per-agent metrics call during a fan-out poll.
	PollTimeout time.Duration

	// EvictThreshold is the number of consecutive failed polls after which
	// an agent connection is evicted from the registry.
	EvictThreshold int

	// Graceful shutdown timeout
	ShutdownTimeout time.Duration
}

// LoadAgent reads agent configuration from environment variables.
func LoadAgent() (*AgentConfig, error) {
	cfg := &AgentConfig{
		AggregatorURL: getEnv("AGENT_AGGREGATOR_URL", ""),
		ServerPort:    getIntEnv("AGENT_SERVER_PORT", 0),
		ProcDir:       getEnv("AGENT_PROC_DIR", "/proc"),
		HostnamePath:  getEnv("AGENT_HOSTNAME_PATH", "/etc/hostname"),
		RetryAttempts: getIntEnv("AGENT_RETRY_ATTEMPTS", 5),
		RetryInterval: getDurationEnv("AGENT_RETRY_INTERVAL", time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required agent configuration values are set.
func (c *AgentConfig) Validate() error {
	if c.AggregatorURL == "" {
		return fmt.Errorf("AGENT_AGGREGATOR_URL is required")
	}
	if err := ValidatePort(c.ServerPort); err != nil {
		return fmt.Errorf("AGENT_SERVER_PORT: %w", err)
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("AGENT_RETRY_ATTEMPTS must be at least 1")
	}
	return nil
}

// LoadAggregator reads aggregator configuration from environment variables.
func LoadAggregator() (*AggregatorConfig, error) {
	cfg := &AggregatorConfig{
		GRPCHost:        getEnv("AGGREGATOR_GRPC_HOST", "127.0.0.1"),
		GRPCPort:        getIntEnv("AGGREGATOR_GRPC_PORT", 3001),
		WebHost:         getEnv("AGGREGATOR_WEB_HOST", "127.0.0.1"),
		WebPort:         getIntEnv("AGGREGATOR_WEB_PORT", 3000),
		DialTimeout:     getDurationEnv("AGGREGATOR_DIAL_TIMEOUT", 5*time.Second),
		PollTimeout:     getDurationEnv("AGGREGATOR_POLL_TIMEOUT", 2*time.Second),
		EvictThreshold:  getIntEnv("AGGREGATOR_EVICT_THRESHOLD", 3),
		ShutdownTimeout: getDurationEnv("AGGREGATOR_SHUTDOWN_TIMEOUT", 30*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required aggregator configuration values are set.
func (c *AggregatorConfig) Validate() error {
	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		return fmt.Errorf("AGGREGATOR_GRPC_PORT out of range: %d", c.GRPCPort)
	}
	if c.WebPort <= 0 || c.WebPort > 65535 {
		return fmt.Errorf("AGGREGATOR_WEB_PORT out of range: %d", c.WebPort)
	}
	if c.EvictThreshold < 1 {
		return fmt.Errorf("AGGREGATOR_EVICT_THRESHOLD must be at least 1")
	}
	if c.DialTimeout <= 0 {
		return fmt.Errorf("AGGREGATOR_DIAL_TIMEOUT must be positive")
	}
	if c.PollTimeout <= 0 {
		return fmt.Errorf("AGGREGATOR_POLL_TIMEOUT must be positive")
	}
	return nil
}

// ValidatePort reports whether p is a usable non-privileged listener port.
func ValidatePort(p int) error {
	if p < 1024 || p > 65535 {
		return fmt.Errorf("port must be between 1024 and 65535, got %d", p)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
