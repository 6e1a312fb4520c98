package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	RefuelsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "refuels_total",
			Help: "Total successful refuel transactions",
		},
	)
	RefuelsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refuels_failed_total",
			Help: "Total failed refuel transactions",
		},
		[]string{"reason"},
	)

	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current background worker queue depth",
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RefuelsTotal)
	prometheus.MustRegister(RefuelsFailed)
	prometheus.MustRegister(WorkerQueueDepth)
}
