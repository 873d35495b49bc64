// Package metrics defines and registers all custom Prometheus metrics for the
// studio API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default registry via promauto at package
// init time; the router exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "studio"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthzDeniedTotal counts requests rejected by an authorization check.
// Label:
//   - reason: "unauthenticated", "role", or "ownership"
var AuthzDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denied_total",
		Help:      "Total number of requests denied by authentication or authorization.",
	},
	[]string{"reason"},
)

// ContentCreatedTotal counts newly created content resources.
// Label:
//   - kind: "artwork", "post", "section", or "wellness"
var ContentCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_created_total",
		Help:      "Total number of content resources created, by kind.",
	},
	[]string{"kind"},
)

// CacheTotal counts read-through cache lookups.
// Label:
//   - result: "hit" or "miss"
var CacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
