package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of orders built.",
	})

	ordersAdvanced = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "orders",
		Name:      "advanced_total",
		Help:      "Total number of lifecycle transitions, by resulting status.",
	}, []string{"status"})
)
