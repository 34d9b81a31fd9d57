package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestsTotal counts API requests by route and status code.
	RequestsTotal *prometheus.CounterVec

	// DocumentsTotal counts generated documents by content source (llm, fallback).
	DocumentsTotal *prometheus.CounterVec

	// SearchAttemptsTotal counts image source calls by outcome (ok, error).
	SearchAttemptsTotal *prometheus.CounterVec

	// ProbesTotal counts reachability probes by result (reachable, unreachable).
	ProbesTotal *prometheus.CounterVec

	// CandidatesReturned observes how many candidates each search returned.
	CandidatesReturned prometheus.Histogram

	// ExternalLatency observes external provider latency.
	ExternalLatency *prometheus.HistogramVec
)

func init() {
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "research",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"route", "status"},
	)

	DocumentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "research",
			Subsystem: "generator",
			Name:      "documents_total",
			Help:      "Generated documents by content source",
		},
		[]string{"source"},
	)

	SearchAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "research",
			Subsystem: "images",
			Name:      "search_attempts_total",
			Help:      "Image source calls by outcome",
		},
		[]string{"outcome"},
	)

	ProbesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "research",
			Subsystem: "images",
			Name:      "probes_total",
			Help:      "Reachability probes by result",
		},
		[]string{"result"},
	)

	CandidatesReturned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "research",
			Subsystem: "images",
			Name:      "candidates_returned",
			Help:      "Number of image candidates returned per search",
			Buckets:   []float64{0, 1, 5, 10, 20, 30, 50},
		},
	)

	ExternalLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "research",
			Subsystem: "external",
			Name:      "latency_seconds",
			Help:      "External provider response time in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"provider"},
	)

	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(DocumentsTotal)
	prometheus.MustRegister(SearchAttemptsTotal)
	prometheus.MustRegister(ProbesTotal)
	prometheus.MustRegister(CandidatesReturned)
	prometheus.MustRegister(ExternalLatency)
}

func RecordRequest(route, status string) {
	if route == "" {
		route = "unmatched"
	}
	RequestsTotal.WithLabelValues(route, status).Inc()
}

func RecordDocument(source string) {
	DocumentsTotal.WithLabelValues(source).Inc()
}

func RecordSearchAttempt(outcome string) {
	SearchAttemptsTotal.WithLabelValues(outcome).Inc()
}

func RecordProbe(reachable bool) {
	result := "unreachable"
	if reachable {
		result = "reachable"
	}
	ProbesTotal.WithLabelValues(result).Inc()
}

func RecordCandidates(n int) {
	CandidatesReturned.Observe(float64(n))
}

func RecordExternalLatency(provider string, durationSec float64) {
	ExternalLatency.WithLabelValues(provider).Observe(durationSec)
}
