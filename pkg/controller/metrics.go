package controller

import (
	"correcthorse/pkg/metrics"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RequestMetrics holds the collectors updated by WithMetrics.
type RequestMetrics struct {
	duration *prometheus.HistogramVec
}

// NewRequestMetrics creates the request collectors and registers them with reg.
func NewRequestMetrics(reg prometheus.Registerer) (*RequestMetrics, error) {
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "correcthorse_http_request_duration_seconds",
		Help:    "Latency of HTTP requests by route, method and status code.",
		Buckets: metrics.DefaultBuckets,
	}, []string{"route", "method", "code"})

	if err := reg.Register(duration); err != nil {
		return nil, fmt.Errorf("could not register request metrics: %w", err)
	}

	return &RequestMetrics{duration: duration}, nil
}

// WithMetrics returns a middleware observing the latency of every request
// served by next under the given route label.
func (m *RequestMetrics) WithMetrics(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		m.duration.
			WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}
