package runner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Labels are bounded: target is a particle name, result is "ok" or "error".
var (
	rateCacheBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hawking_rate_cache_build_duration_seconds",
		Help:    "Time spent sampling and fitting the rates of one hole",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
	})

	spectrumDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hawking_spectrum_duration_seconds",
		Help:    "Time spent integrating one target spectrum",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
	}, []string{"target"})

	holesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hawking_holes_total",
		Help: "Holes processed",
	}, []string{"result"})

	holesActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hawking_holes_active",
		Help: "Holes being processed",
	})
)
