package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterApiRequests        *prometheus.CounterVec
	CounterCacheHits          prometheus.Counter
	CounterCacheMisses        prometheus.Counter
	CounterCacheShared        prometheus.Counter
	CounterCacheInvalidations prometheus.Counter
	CounterReactions          *prometheus.CounterVec
	CounterShares             *prometheus.CounterVec

	// gauges
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistogramApiRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("blogdesk", "test_client", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("blogdesk", "test_client", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterApiRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "api_request",
		Help:      "The total number of requests sent to the blog service",
	}, []string{"op", "status"})
	counterCacheHits := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "query_cache_hits",
		Help:      "The total number of queries served from the cache",
	})
	counterCacheMisses := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "query_cache_misses",
		Help:      "The total number of queries that had to be fetched",
	})
	counterCacheShared := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "query_cache_shared",
		Help:      "The total number of queries that joined an in-flight fetch",
	})
	counterCacheInvalidations := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "query_cache_invalidations",
		Help:      "The total number of invalidated cache entries",
	})
	counterReactions := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "reactions",
		Help:      "Local like/dislike clicks",
	}, []string{"reaction"})
	counterShares := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "shares",
		Help:      "Blog shares by method",
	}, []string{"method"})

	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the client is running",
	})

	histogramApiRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "api_request_duration_seconds",
		Help:      "Histogram of blog service response times in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"op"})

	return &Manager{
		CounterApiRequests:          counterApiRequests,
		CounterCacheHits:            counterCacheHits,
		CounterCacheMisses:          counterCacheMisses,
		CounterCacheShared:          counterCacheShared,
		CounterCacheInvalidations:   counterCacheInvalidations,
		CounterReactions:            counterReactions,
		CounterShares:               counterShares,
		GaugeLifeSignal:             gaugeLifeSignal,
		HistogramApiRequestDuration: histogramApiRequestDuration,
	}
}
