// Package metrics exposes Prometheus collectors for the server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tableround"

// Registry holds every collector of this package plus the Go runtime and
// process collectors.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	RPCRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rpc_requests_total",
		Help:      "RPC calls by procedure and Connect code.",
	}, []string{"procedure", "code"})

	RPCDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rpc_duration_seconds",
		Help:      "RPC latency by procedure.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"procedure"})

	// RoundsClosed counts closed rounds by trigger: manual, unanimous or checkout.
	RoundsClosed = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rounds_closed_total",
		Help:      "Rounds closed, by trigger.",
	}, []string{"trigger"})

	// SharedLinesLocked counts shared lines frozen, split by whether the lock
	// was forced.
	SharedLinesLocked = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shared_lines_locked_total",
		Help:      "Shared lines locked.",
	}, []string{"forced"})

	CheckoutsSettled = factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_settled_total",
		Help:      "Groups settled by a finalized checkout.",
	})

	TemplatesEvicted = factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "template_links_evicted_total",
		Help:      "Restaurant menu links evicted to respect the per-user bound.",
	})

	TemplatesSwept = factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "restaurant_menus_swept_total",
		Help:      "Restaurant menu snapshots deleted after losing their last link.",
	})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
