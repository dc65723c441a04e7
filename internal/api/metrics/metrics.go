// Package metrics defines the Prometheus metrics of the auth service. It is
// the single source of truth for metric names, labels, and help strings.
//
// Metrics are created against an explicit registry by NewAuthMetrics and
// passed to the components that record them; nothing here touches the
// default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auth"

// AuthMetrics implements ports.AuthRecorder and the request instrumentation
// used by middleware.RequestMetrics.
type AuthMetrics struct {
	// RequestsTotal counts handled requests.
	// Labels:
	//   - method: HTTP method
	//   - endpoint: matched route path (e.g. "/api/validate")
	RequestsTotal *prometheus.CounterVec

	// RequestLatency measures end-to-end handler latency.
	RequestLatency prometheus.Histogram

	LoginSuccessTotal prometheus.Counter
	LoginFailedTotal  prometheus.Counter

	// ActiveSessions is the number of stored sessions that have not expired.
	ActiveSessions prometheus.Gauge

	// TokenValidationLatency measures the validate path.
	// Label:
	//   - result: "ok", "no_token", "invalid", "expired" or "error"
	TokenValidationLatency *prometheus.HistogramVec
}

// NewRegistry returns a registry preloaded with the Go runtime and process
// collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// NewAuthMetrics creates and registers the auth service metrics on reg.
func NewAuthMetrics(reg prometheus.Registerer) *AuthMetrics {
	f := promauto.With(reg)
	return &AuthMetrics{
		RequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total requests",
			},
			[]string{"method", "endpoint"},
		),
		RequestLatency: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_latency_seconds",
			Help:      "Request latency",
			Buckets:   prometheus.DefBuckets,
		}),
		LoginSuccessTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_success_total",
			Help:      "Successful logins",
		}),
		LoginFailedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_failed_total",
			Help:      "Failed logins",
		}),
		ActiveSessions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Number of active sessions",
		}),
		TokenValidationLatency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "token_validation_latency_seconds",
				Help:      "Token validation latency",
				Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"result"},
		),
	}
}

func (m *AuthMetrics) LoginSucceeded() { m.LoginSuccessTotal.Inc() }

func (m *AuthMetrics) LoginFailed() { m.LoginFailedTotal.Inc() }

func (m *AuthMetrics) SetActiveSessions(n int64) { m.ActiveSessions.Set(float64(n)) }

func (m *AuthMetrics) ObserveValidation(result string, seconds float64) {
	m.TokenValidationLatency.WithLabelValues(result).Observe(seconds)
}

// ObserveRequest records one handled request.
func (m *AuthMetrics) ObserveRequest(method, endpoint string, seconds float64) {
	m.RequestsTotal.WithLabelValues(method, endpoint).Inc()
	m.RequestLatency.Observe(seconds)
}
