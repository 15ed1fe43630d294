// Package metrics defines the custom Prometheus metrics for the trails API.
// It is the single source of truth for metric names, labels, and help
// strings. Metrics register with the default registry via promauto and are
// served at GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "trails"

// SearchCacheTotal counts area-search cache lookups.
// Label:
//   - result: "hit" or "miss"
var SearchCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_cache_total",
		Help:      "Total number of area-search cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

// ProviderRequestsTotal counts calls to the external route search provider.
// Labels:
//   - kind: "id" or "area"
//   - outcome: "success" or "error"
var ProviderRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provider_requests_total",
		Help:      "Total number of route provider calls, by query kind and outcome.",
	},
	[]string{"kind", "outcome"},
)

// SearchDuration measures end-to-end search handling, cache hits included.
// Label:
//   - kind: "id" or "area"
var SearchDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_duration_seconds",
		Help:      "Duration of route searches from request to response payload.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"kind"},
)
