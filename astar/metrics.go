package astar

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// searchTotal counts finished runs by terminal state.
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "torus_astar_search_total",
		Help: "Total A* searches by result",
	}, []string{"result"})

	// searchExpanded tracks how many nodes each run closed.
	searchExpanded = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "torus_astar_search_expanded_nodes",
		Help:    "Nodes moved to the closed set per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
	})

	// searchPathLength tracks node count of successful paths.
	searchPathLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "torus_astar_search_path_length",
		Help:    "Nodes in the returned path, start and goal included",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})

	// searchDuration tracks wall time per run.
	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "torus_astar_search_duration_seconds",
		Help:    "A* search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	})
)

// observe records one finished run.
func observe(state State, expanded, pathLen int, elapsed time.Duration) {
	searchTotal.WithLabelValues(state.String()).Inc()
	searchExpanded.Observe(float64(expanded))
	searchDuration.Observe(elapsed.Seconds())
	if state == Succeeded {
		searchPathLength.Observe(float64(pathLen))
	}
}
