package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	AnalysisLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "meanrev",
			Subsystem: "signals",
			Name:      "latency_seconds",
			Help:      "Latency of signal analysis endpoints",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	AnalysisOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "meanrev",
			Subsystem: "signals",
			Name:      "outcomes_total",
			Help:      "Analysis outcomes: signal, no_signal or malformed",
		},
		[]string{"outcome"},
	)

	MemoLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "meanrev",
			Subsystem: "signals",
			Name:      "memo_lookups_total",
			Help:      "Memoizer lookups by result",
		},
		[]string{"result"},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(AnalysisLatency, AnalysisOutcomes, MemoLookups)
	})
}
