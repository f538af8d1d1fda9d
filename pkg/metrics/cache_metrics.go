package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "schedule_cache_hits_total",
		Help: "Cache lookups answered from Redis.",
	})
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "schedule_cache_misses_total",
		Help: "Cache lookups that fell through to storage.",
	})
	// Degraded-cache events count as misses too; this tracks them separately.
	CacheErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "schedule_cache_errors_total",
		Help: "Cache operations that failed and were swallowed.",
	})
	ScheduleRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_requests_total",
		Help: "Schedule retrievals by entity kind and outcome.",
	}, []string{"kind", "outcome"})
)
