package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_http_requests_total",
			Help: "HTTP requests by forum resource, route and status code",
		},
		[]string{"resource", "method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "forum_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds by forum resource",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"resource", "method"},
	)

	httpResponsesByOutcome = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_http_responses_total",
			Help: "Responses by forum resource and envelope status (success, fail, error)",
		},
		[]string{"resource", "outcome"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "forum_http_requests_in_flight",
			Help: "HTTP requests currently being served",
		},
	)
)

// statusRecorder remembers the first status written.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (rec *statusRecorder) WriteHeader(code int) {
	if !rec.wroteHeader {
		rec.status = code
		rec.wroteHeader = true
	}
	rec.ResponseWriter.WriteHeader(code)
}

// resourceOf maps a chi route pattern to the forum resource it acts on.
// The deepest path segment wins: a like on a comment counts as "like".
func resourceOf(route string) string {
	switch {
	case route == "":
		return "unmatched"
	case strings.Contains(route, "/likes"):
		return "like"
	case strings.Contains(route, "/replies"):
		return "reply"
	case strings.Contains(route, "/comments"):
		return "comment"
	case strings.HasPrefix(route, "/threads"):
		return "thread"
	case strings.HasPrefix(route, "/authentications"):
		return "authentication"
	case strings.HasPrefix(route, "/users"):
		return "user"
	default:
		return "ops"
	}
}

// outcome follows the response envelope: 5xx is "error", other 4xx "fail".
func outcome(status int) string {
	switch {
	case status >= 500:
		return "error"
	case status >= 400:
		return "fail"
	default:
		return "success"
	}
}

// Metrics records request count, latency and in-flight requests per forum
// resource. Routes are labelled with the chi pattern, e.g. /threads/{threadId}.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		var route string
		if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
			route = routeCtx.RoutePattern()
		}
		resource := resourceOf(route)
		if route == "" {
			route = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(resource, r.Method, route, strconv.Itoa(rec.status)).Inc()
		httpRequestDuration.WithLabelValues(resource, r.Method).Observe(time.Since(start).Seconds())
		httpResponsesByOutcome.WithLabelValues(resource, outcome(rec.status)).Inc()
	})
}
