package lookup

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeHit      = "cache_hit"
	outcomeFetched  = "fetched"
	outcomeNotFound = "not_found"

	sourceDictionary  = "dictionary"
	sourceTranslation = "translation"
)

type metrics struct {
	lookups        *prometheus.CounterVec
	fetchDuration  *prometheus.HistogramVec
	upstreamErrors *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		lookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clicktionary",
			Subsystem: "lookup",
			Name:      "lookups_total",
			Help:      "Word lookups by outcome.",
		}, []string{"outcome"}),
		fetchDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "clicktionary",
			Subsystem: "lookup",
			Name:      "fetch_duration_seconds",
			Help:      "Upstream fetch latency by source.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"source"}),
		upstreamErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clicktionary",
			Subsystem: "lookup",
			Name:      "upstream_errors_total",
			Help:      "Failed upstream calls by source.",
		}, []string{"source"}),
	}
}
