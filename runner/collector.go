// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package runner

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports dispatch metrics to Prometheus. One Collector may be
// shared by several runners; series are labelled by runner name.
//
//   - dtree_dispatches_total{runner,status}: finished dispatches
//   - dtree_dispatch_duration_seconds{runner}: dispatch latency
//   - dtree_dispatches_in_flight{runner}: dispatches currently running
type Collector struct {
	dispatches *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	inFlight   *prometheus.GaugeVec
}

// NewCollector returns an unregistered Collector.
func NewCollector() *Collector {
	return &Collector{
		dispatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dtree_dispatches_total",
				Help: "Finished dispatches by outcome status.",
			},
			[]string{"runner", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dtree_dispatch_duration_seconds",
				Help:    "Duration of dispatches through the tree.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"runner"},
		),
		inFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dtree_dispatches_in_flight",
				Help: "Dispatches currently running.",
			},
			[]string{"runner"},
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.dispatches.Describe(ch)
	c.duration.Describe(ch)
	c.inFlight.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.dispatches.Collect(ch)
	c.duration.Collect(ch)
	c.inFlight.Collect(ch)
}

func (c *Collector) start(runner string) {
	if c == nil {
		return
	}
	c.inFlight.WithLabelValues(runner).Inc()
}

func (c *Collector) finish(runner, status string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.inFlight.WithLabelValues(runner).Dec()
	c.dispatches.WithLabelValues(runner, status).Inc()
	c.duration.WithLabelValues(runner).Observe(elapsed.Seconds())
}
