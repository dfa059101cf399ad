package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// VotesAccepted counts votes that passed validation and were appended
	VotesAccepted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "thermovote",
			Name:      "votes_accepted_total",
			Help:      "Total number of accepted vote submissions",
		},
		[]string{"zone", "vote_type"},
	)

	// VotesRejected counts submissions rejected before reaching the ledger
	VotesRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "thermovote",
			Name:      "votes_rejected_total",
			Help:      "Total number of rejected vote submissions",
		},
		[]string{"reason"},
	)

	// HistoryRequests counts vote-history series requests
	HistoryRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "thermovote",
			Name:      "history_requests_total",
			Help:      "Total number of vote-history requests served",
		},
		[]string{"zone"},
	)

	// ZoneTemperature exposes the last computed temperature per zone
	ZoneTemperature = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "thermovote",
			Name:      "zone_temperature_celsius",
			Help:      "Last computed temperature reading per zone",
		},
		[]string{"zone"},
	)

	// ConnectedSessions exposes the live session count after each sweep
	ConnectedSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "thermovote",
			Name:      "connected_sessions",
			Help:      "Approximate number of live client sessions",
		},
	)

	// Ensure metrics are only registered once
	once sync.Once
)

// InitMetrics registers all metrics with the global Prometheus registry.
// This function is idempotent and can be called multiple times safely.
func InitMetrics() {
	once.Do(func() {
		prometheus.DefaultRegisterer.Register(VotesAccepted)
		prometheus.DefaultRegisterer.Register(VotesRejected)
		prometheus.DefaultRegisterer.Register(HistoryRequests)
		prometheus.DefaultRegisterer.Register(ZoneTemperature)
		prometheus.DefaultRegisterer.Register(ConnectedSessions)
	})
}
