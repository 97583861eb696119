package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	entitiesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entities_created_total",
			Help: "Total number of entities created, by kind",
		},
		[]string{"kind"},
	)

	entitiesDeleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entities_deleted_total",
			Help: "Total number of entities deleted, by kind",
		},
		[]string{"kind"},
	)

	leadMoves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_moves_total",
			Help: "Total number of applied pipeline moves, by target stage",
		},
		[]string{"stage"},
	)

	assistantQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_queries_total",
			Help: "Total number of assistant queries, by topic bucket",
		},
		[]string{"topic"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordEntityCreated(kind string) {
	entitiesCreated.WithLabelValues(kind).Inc()
}

func RecordEntityDeleted(kind string) {
	entitiesDeleted.WithLabelValues(kind).Inc()
}

func RecordLeadMove(stage string) {
	leadMoves.WithLabelValues(stage).Inc()
}

func RecordAssistantQuery(topic string) {
	assistantQueries.WithLabelValues(topic).Inc()
}
