package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/teilomillet/flightinfo/metrics"
)

// UnmatchedRoute labels requests that match no registered route.
const UnmatchedRoute = "unmatched"

// PrometheusMetrics records HTTP metrics using Prometheus. Every series is
// labelled by chi route pattern, or UnmatchedRoute, never by raw path.
func PrometheusMetrics(m *metrics.Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			endpoint := routePattern(r)

			m.ActiveRequests.WithLabelValues(endpoint).Inc()
			defer m.ActiveRequests.WithLabelValues(endpoint).Dec()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			m.RequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
			m.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		})
	}
}

// routePattern resolves the route r will be dispatched to before the router
// runs, so the gauge and the counters share one label.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return UnmatchedRoute
	}
	tctx := chi.NewRouteContext()
	if !rctx.Routes.Match(tctx, r.Method, r.URL.Path) {
		return UnmatchedRoute
	}
	if pattern := tctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return UnmatchedRoute
}
