package middlewarectx

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "health_companion_requests_total",
		Help: "Количество запросов к API по операциям.",
	},
	[]string{"action", "method"},
)

// MetricsMiddleware считает запросы к API по значению параметра action.
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestsTotal.WithLabelValues(r.URL.Query().Get("action"), r.Method).Inc()
			next.ServeHTTP(w, r)
		})
	}
}
