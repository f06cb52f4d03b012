package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Total number of lifecycle events published.",
	}, []string{"event"})

	listenerFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "events",
		Name:      "listener_failures_total",
		Help:      "Total number of listener errors and panics contained at the bus boundary.",
	}, []string{"event", "listener"})
)
