package dataset

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smartstock_dataset_cache_hits_total",
		Help: "Number of dataset loads served from the in-memory cache.",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smartstock_dataset_cache_misses_total",
		Help: "Number of dataset loads that had to parse the file.",
	})
)
