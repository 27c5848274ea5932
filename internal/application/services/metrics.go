package services

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/voyago/tourism-platform/go/internal/core/domain/search"
)

var (
	cacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "request_cache_hits_total",
			Help: "Request cache hits by cache name",
		},
		[]string{"cache"},
	)

	cacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "request_cache_misses_total",
			Help: "Request cache misses by cache name",
		},
		[]string{"cache"},
	)

	pipelineExclusions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_pipeline_exclusions_total",
			Help: "Entities excluded by the search pipeline, by screen and reason",
		},
		[]string{"screen", "reason"},
	)
)

func init() {
	prometheus.MustRegister(cacheHits)
	prometheus.MustRegister(cacheMisses)
	prometheus.MustRegister(pipelineExclusions)
}

// observeExclusions exports what a pipeline run dropped. Plain filtering
// is not an exclusion; only malformed entities and the fail-safe distance
// policy are worth alerting on.
func observeExclusions(screen string, stats search.Stats) {
	if stats.Malformed > 0 {
		pipelineExclusions.WithLabelValues(screen, "malformed").Add(float64(stats.Malformed))
	}
	if stats.DistanceExcluded > 0 {
		pipelineExclusions.WithLabelValues(screen, "unparseable_distance").Add(float64(stats.DistanceExcluded))
	}
}
