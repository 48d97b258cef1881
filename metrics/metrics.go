// Package metrics exposes Prometheus collectors for regression fits.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Collector counts fits and observes how long they take, labeled by model family.
type Collector struct {
	Fits     *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewCollector creates unregistered collectors under the given namespace.
func NewCollector(namespace string) *Collector {
	return &Collector{
		Fits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fits_total",
				Help:      "Number of least squares fits by model family and outcome.",
			}, []string{"model", "outcome"}),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "fit_duration_seconds",
				Help:      "Time spent fitting by model family.",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
			}, []string{"model"}),
	}
}

// Register adds every collector to reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, col := range []prometheus.Collector{c.Fits, c.Duration} {
		if err := reg.Register(col); err != nil {
			return err
		}
	}
	return nil
}

// Observe records one finished fit. A nil collector records nothing.
func (c *Collector) Observe(model string, start time.Time, err error) {
	if c == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	c.Fits.WithLabelValues(model, outcome).Inc()
	c.Duration.WithLabelValues(model).Observe(time.Since(start).Seconds())
}
