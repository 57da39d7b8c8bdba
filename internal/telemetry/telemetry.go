// Package telemetry exposes the aggregator's own operational counters.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the aggregator's self-instrumentation.
type Metrics struct {
	registry *prometheus.Registry

	RegistrationsTotal  prometheus.Counter
	RegistrationsFailed prometheus.Counter
	RegistrySize        prometheus.Gauge
	PollsTotal          prometheus.Counter
	PollAgentFailures   prometheus.Counter
	Evictions           prometheus.Counter
}

// New creates and registers the aggregator metric set on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: reg,
		RegistrationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fleetpulse_registrations_total",
			Help: "Agent registrations accepted.",
		}),
		RegistrationsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fleetpulse_registrations_failed_total",
			Help: "Agent registrations rejected, including failed reverse dials.",
		}),
		RegistrySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fleetpulse_registry_size",
			Help: "Live agent connections currently in the registry.",
		}),
		PollsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fleetpulse_polls_total",
			Help: "Dashboard fan-out polls served.",
		}),
		PollAgentFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fleetpulse_poll_agent_failures_total",
			Help: "Per-agent metrics calls that failed or timed out during polls.",
		}),
		Evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fleetpulse_evictions_total",
			Help: "Agent connections evicted after consecutive poll failures.",
		}),
	}

	reg.MustRegister(
		m.RegistrationsTotal,
		m.RegistrationsFailed,
		m.RegistrySize,
		m.PollsTotal,
		m.PollAgentFailures,
		m.Evictions,
	)

	return m
}

// Handler serves the prometheus exposition endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// The increment helpers below are nil-safe so components can run without
// telemetry wired in (tests, the agent binary).

func (m *Metrics) RegistrationAccepted() {
	if m != nil {
		m.RegistrationsTotal.Inc()
	}
}

func (m *Metrics) RegistrationRejected() {
	if m != nil {
		m.RegistrationsFailed.Inc()
	}
}

func (m *Metrics) SetRegistrySize(n int) {
	if m != nil {
		m.RegistrySize.Set(float64(n))
	}
}

func (m *Metrics) PollServed() {
	if m != nil {
		m.PollsTotal.Inc()
	}
}

func (m *Metrics) AgentPollFailed() {
	if m != nil {
		m.PollAgentFailures.Inc()
	}
}

func (m *Metrics) ConnectionEvicted() {
	if m != nil {
		m.Evictions.Inc()
	}
}
