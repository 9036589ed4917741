package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the prometheus collectors exported on /metrics.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	positionUpdates prometheus.Counter
	offRouteFixes   prometheus.Counter
	activeRoutes    prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "routetracker",
			Name:      "http_requests_total",
			Help:      "Number of http requests served, by method, route pattern and status code.",
		}, []string{"method", "path", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "routetracker",
			Name:      "http_request_duration_seconds",
			Help:      "Http request latency, by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		positionUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "routetracker",
			Name:      "position_updates_total",
			Help:      "Number of gps fixes fed into follow sessions.",
		}),
		offRouteFixes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "routetracker",
			Name:      "off_route_fixes_total",
			Help:      "Number of gps fixes that landed outside the matching threshold.",
		}),
		activeRoutes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "routetracker",
			Name:      "active_routes",
			Help:      "Number of follow sessions currently held in memory.",
		}),
	}
	reg.MustRegister(m.requestsTotal, m.requestDuration, m.positionUpdates,
		m.offRouteFixes, m.activeRoutes)
	return m
}

func (m *Metrics) ObservePositionUpdate(onRoute bool) {
	m.positionUpdates.Inc()
	if !onRoute {
		m.offRouteFixes.Inc()
	}
}

func (m *Metrics) SetActiveRoutes(n int) {
	m.activeRoutes.Set(float64(n))
}

// PromeHttpMiddleware records request count and latency per chi route pattern.
func PromeHttpMiddleware(m *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			path := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				path = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.requestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(status)).Inc()
			m.requestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}
