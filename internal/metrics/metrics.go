// Package metrics exposes Prometheus collectors that report pruner
// activity. Like internal/persistence and internal/provenance, it is an
// optional wrapper around the core's public operations — internal/pruner
// never imports it.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danielpatrickdp/cutpruner/internal/pruner"
)

// Metrics exposes Prometheus collectors that report pruner activity.
type Metrics struct {
	cutsActive        *prometheus.GaugeVec
	admissionsTotal   *prometheus.CounterVec
	trustDistribution *prometheus.HistogramVec
}

var (
	defaultMetricsOnce sync.Once
	sharedMetrics      *Metrics
)

// Default returns the package-level metrics instance registered with the
// global Prometheus registry. The collectors are created only once to
// avoid duplicate-registration panics when multiple prunerctl commands
// run in the same process.
func Default() *Metrics {
	defaultMetricsOnce.Do(func() {
		sharedMetrics = MustNewMetrics(prometheus.DefaultRegisterer)
	})
	return sharedMetrics
}

// MustNewMetrics constructs a Metrics instance registered against reg. A
// nil reg uses prometheus.DefaultRegisterer. A collector that is already
// registered is reused; any other registration error panics.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	cutsActive := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "cutpruner",
			Name:      "cuts_active",
			Help:      "Number of cuts currently held by a pruner.",
		},
		[]string{"variant"},
	)
	admissionsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cutpruner",
			Name:      "admissions_total",
			Help:      "Total number of candidate cuts processed by AddCuts, by outcome.",
		},
		[]string{"outcome"}, // "admitted" | "rejected"
	)
	trustDistribution := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cutpruner",
			Name:      "trust_distribution",
			Help:      "Distribution of per-cut trust scores after each AddCuts call.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"variant"},
	)

	collectors := []prometheus.Collector{cutsActive, admissionsTotal, trustDistribution}
	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
				switch c := already.ExistingCollector.(type) {
				case *prometheus.GaugeVec:
					cutsActive = c
				case *prometheus.CounterVec:
					admissionsTotal = c
				case *prometheus.HistogramVec:
					trustDistribution = c
				}
				continue
			}
			panic(err)
		}
	}

	return &Metrics{
		cutsActive:        cutsActive,
		admissionsTotal:   admissionsTotal,
		trustDistribution: trustDistribution,
	}
}

// Observe updates all three collectors from p's current state and the
// status vector AddCuts just returned (0 per spec means rejected,
// anything else means admitted — AddCuts's public contract draws no
// finer distinction between a pushed and a replaced slot). variant is
// p.Variant()'s name ("average"/"decay"/"levelone").
func (m *Metrics) Observe(p *pruner.Pruner, status []int) {
	if m == nil {
		return
	}
	variant, _, _, _ := p.Variant()

	if m.cutsActive != nil {
		m.cutsActive.WithLabelValues(variant).Set(float64(p.NCuts()))
	}

	if m.admissionsTotal != nil {
		for _, s := range status {
			if s == 0 {
				m.admissionsTotal.WithLabelValues("rejected").Inc()
			} else {
				m.admissionsTotal.WithLabelValues("admitted").Inc()
			}
		}
	}

	if m.trustDistribution != nil {
		for _, t := range p.GetTrust() {
			m.trustDistribution.WithLabelValues(variant).Observe(t)
		}
	}
}
