package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	// Lookup sources
	SourceQuery = "query"
	SourceTrack = "track"
)

// Metrics owns a private registry so several servers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	LookupsTotal       *prometheus.CounterVec
	ProviderCallsTotal *prometheus.CounterVec
	LookupDuration     *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	metrics := &Metrics{
		registry: prometheus.NewRegistry(),
		LookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lyricsfinder_lookups_total",
				Help: "Total number of lyrics lookups",
			},
			[]string{"source", "status"},
		),
		ProviderCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lyricsfinder_provider_calls_total",
				Help: "Total number of outbound provider calls",
			},
			[]string{"provider", "status"},
		),
		LookupDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lyricsfinder_lookup_duration_seconds",
				Help:    "Time spent answering lyrics lookups",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
	}

	metrics.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		metrics.LookupsTotal,
		metrics.ProviderCallsTotal,
		metrics.LookupDuration,
	)

	return metrics
}

// Registry returns the registry served on /metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RecordLookup(source, status string, duration time.Duration) {
	m.LookupsTotal.WithLabelValues(source, status).Inc()
	m.LookupDuration.WithLabelValues(source).Observe(duration.Seconds())
}

func (m *Metrics) RecordProviderCall(provider, status string) {
	m.ProviderCallsTotal.WithLabelValues(provider, status).Inc()
}
