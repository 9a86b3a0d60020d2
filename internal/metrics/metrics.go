// Package metrics provides the Prometheus-backed uci.Metrics collaborator.
// It replaces the teacher's hand-rolled polarPhaseMetrics/PolarDecodeStats
// globals (fec/polar.go in the retrieval pack) with real Prometheus
// collectors injected per UciCoder rather than held as package state.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collectors is the default uci.Metrics implementation.
type Collectors struct {
	encodeDuration *prometheus.HistogramVec
	decodeDuration *prometheus.HistogramVec
	decodeInvalid  *prometheus.CounterVec
	sizingClamped  prometheus.Counter
}

// New registers and returns a Collectors set on reg. Pass a fresh
// prometheus.NewRegistry() in tests to avoid collisions with the global
// default registry.
func New(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		encodeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "uci_nr",
			Name:      "encode_duration_seconds",
			Help:      "Duration of a single encode_* call by coding path.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
		decodeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "uci_nr",
			Name:      "decode_duration_seconds",
			Help:      "Duration of a single decode_* call by coding path.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
		decodeInvalid: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uci_nr",
			Name:      "decode_invalid_total",
			Help:      "Decodes that returned valid=false, by coding path.",
		}, []string{"path"}),
		sizingClamped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "uci_nr",
			Name:      "sizing_clamped_total",
			Help:      "PUSCH Q' sizing calculations clamped to the RE budget ceiling.",
		}),
	}
	reg.MustRegister(c.encodeDuration, c.decodeDuration, c.decodeInvalid, c.sizingClamped)
	return c
}

func (c *Collectors) ObserveEncode(path string, dur time.Duration) {
	c.encodeDuration.WithLabelValues(path).Observe(dur.Seconds())
}

func (c *Collectors) ObserveDecode(path string, dur time.Duration, valid bool) {
	c.decodeDuration.WithLabelValues(path).Observe(dur.Seconds())
	if !valid {
		c.decodeInvalid.WithLabelValues(path).Inc()
	}
}

func (c *Collectors) IncSizingClamped() {
	c.sizingClamped.Inc()
}
