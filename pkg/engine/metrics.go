package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "facetgrid_transitions_total",
		Help: "The total number of filter state transitions",
	}, []string{"kind"})
	visibleItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "facetgrid_visible_items",
		Help: "The number of items visible after the last apply pass",
	})
)
