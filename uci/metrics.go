package uci

import "time"

// Metrics is the injected observability collaborator. The default is a
// no-op; github.com/srsnr/uci-nr/internal/metrics provides a Prometheus-backed
// implementation (see SPEC_FULL.md "DOMAIN STACK").
type Metrics interface {
	ObserveEncode(path string, dur time.Duration)
	ObserveDecode(path string, dur time.Duration, valid bool)
	IncSizingClamped()
}

type noopMetrics struct{}

func (noopMetrics) ObserveEncode(string, time.Duration)         {}
func (noopMetrics) ObserveDecode(string, time.Duration, bool)   {}
func (noopMetrics) IncSizingClamped()                           {}
