// Package metrics exposes Prometheus metrics for the service and the calculations.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shotcalc_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"path", "method", "code"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shotcalc_http_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	simulationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shotcalc_simulations_total",
			Help: "Total number of trajectory calculations by source.",
		},
		[]string{"source"},
	)

	simulationDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shotcalc_simulation_duration_seconds",
			Help:    "Trajectory calculation duration in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.00005, 2, 12),
		},
	)

	effectiveRangeYards = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shotcalc_effective_range_yards",
			Help:    "Effective range of the calculated shots in yards.",
			Buckets: prometheus.LinearBuckets(0, 25, 12),
		},
	)

	validationErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shotcalc_validation_errors_total",
			Help: "Total number of rejected input values by field.",
		},
		[]string{"field"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpDurationSeconds)
	prometheus.MustRegister(simulationsTotal)
	prometheus.MustRegister(simulationDurationSeconds)
	prometheus.MustRegister(effectiveRangeYards)
	prometheus.MustRegister(validationErrorsTotal)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveSimulation records one trajectory calculation. A negative effective
// range (none) is not added to the range histogram.
func ObserveSimulation(source string, duration time.Duration, effectiveRange int) {
	simulationsTotal.WithLabelValues(source).Inc()
	simulationDurationSeconds.Observe(duration.Seconds())
	if effectiveRange >= 0 {
		effectiveRangeYards.Observe(float64(effectiveRange))
	}
}

// IncValidationError records a rejected input value.
func IncValidationError(field string) {
	validationErrorsTotal.WithLabelValues(field).Inc()
}

// knownRoutes keeps the path label set bounded.
var knownRoutes = map[string]bool{
	"/healthz":                  true,
	"/readyz":                   true,
	"/metrics":                  true,
	"/api/v1/options":           true,
	"/api/v1/trajectory":        true,
	"/api/v1/trajectory/export": true,
	"/api/v1/trajectory/chart":  true,
	"/api/v1/runs":              true,
}

const runPrefix = "/api/v1/runs/"

// normalizeRoute maps the request path to a bounded label value.
func normalizeRoute(path string) string {
	if knownRoutes[path] {
		return path
	}
	if id, ok := strings.CutPrefix(path, runPrefix); ok && id != "" && !strings.Contains(id, "/") {
		return runPrefix + "{id}"
	}
	return "other"
}

// StatusRecorder remembers the status code written through it.
type StatusRecorder struct {
	http.ResponseWriter
	Status int
}

// NewStatusRecorder wraps w; the status is 200 until a handler writes another.
func NewStatusRecorder(w http.ResponseWriter) *StatusRecorder {
	return &StatusRecorder{ResponseWriter: w, Status: http.StatusOK}
}

func (sr *StatusRecorder) WriteHeader(code int) {
	sr.Status = code
	sr.ResponseWriter.WriteHeader(code)
}

// ObserveRequest counts a served request and returns the route label it was
// counted under.
func ObserveRequest(r *http.Request, status int, elapsed time.Duration) string {
	route := normalizeRoute(r.URL.Path)
	httpRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
	httpDurationSeconds.WithLabelValues(route, r.Method).Observe(elapsed.Seconds())
	return route
}

// Middleware counts the requests served by next.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := NewStatusRecorder(w)
		next.ServeHTTP(sr, r)
		ObserveRequest(r, sr.Status, time.Since(start))
	})
}
