package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	analysisStartedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analysis_started_total",
		Help: "Total analyses started",
	})
	analysisCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analysis_completed_total",
		Help: "Total analyses completed",
	})
	analysisFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_failed_total",
		Help: "Total analyses failed",
	}, []string{"reason"})

	analysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "analysis_duration_seconds",
		Help:    "Analysis duration in seconds",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
	})
	analysisScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "analysis_score",
		Help:    "Distribution of compatibility scores",
		Buckets: prometheus.LinearBuckets(10, 10, 10),
	})

	cacheRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_cache_requests_total",
		Help: "Analysis cache lookups by result",
	}, []string{"result"})

	extractionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "resume_extractions_total",
		Help: "Resume file extractions by mime type and outcome",
	}, []string{"mime", "outcome"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by route and status",
	}, []string{"method", "route", "status"})
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// IncAnalysisStarted increments the started counter.
func IncAnalysisStarted() {
	analysisStartedTotal.Inc()
}

// IncAnalysisCompleted increments the completed counter.
func IncAnalysisCompleted() {
	analysisCompletedTotal.Inc()
}

// IncAnalysisFailed increments the failed counter for reason.
func IncAnalysisFailed(reason string) {
	analysisFailedTotal.WithLabelValues(reason).Inc()
}

// ObserveAnalysisDuration records how long the engine took.
func ObserveAnalysisDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	analysisDuration.Observe(d.Seconds())
}

// ObserveScore records a computed score.
func ObserveScore(score int) {
	analysisScore.Observe(float64(score))
}

// IncCache counts a cache lookup; result is "hit", "miss" or "error".
func IncCache(result string) {
	cacheRequestsTotal.WithLabelValues(result).Inc()
}

// IncExtraction counts a file extraction attempt.
func IncExtraction(mime, outcome string) {
	extractionsTotal.WithLabelValues(mime, outcome).Inc()
}

// ObserveHTTPRequest records one served request. route is the matched
// route template, or "unmatched".
func ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
