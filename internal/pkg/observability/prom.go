package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "beatmap"
)

var (
	LoadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "load", "duration_seconds"),
		Help:    "Duration of a single document load in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"kind"})
	DocumentSchema = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "difficulty", "schema_total"),
		Help: "Difficulty documents by sniffed and accepted schema",
	}, []string{"sniffed", "accepted"})
	FallbackAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "difficulty", "fallback_total"),
		Help: "Content-based fallback attempts and their outcome",
	}, []string{"outcome"})
	LoadFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "load", "failures_total"),
		Help: "Load failures recovered into default values, by error code",
	}, []string{"code"})
)
