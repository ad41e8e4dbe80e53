package observability

import (
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry. All methods are no-ops on a nil receiver,
// so callers never need to check whether metrics are enabled.
type Metrics struct {
	registry        *prometheus.Registry
	apiRequests     *prometheus.CounterVec
	apiLatency      *prometheus.HistogramVec
	apiInflight     prometheus.Gauge
	llmRequests     *prometheus.CounterVec
	llmLatency      *prometheus.HistogramVec
	llmTokens       *prometheus.CounterVec
	securityEvents  *prometheus.CounterVec
	blacklistPurged prometheus.Counter
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blogbridge_api_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "blogbridge_api_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		apiInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "blogbridge_api_inflight_requests",
			Help: "Requests currently being served.",
		}),
		llmRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blogbridge_llm_requests_total",
			Help: "Chat completion calls by model and outcome.",
		}, []string{"model", "status"}),
		llmLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "blogbridge_llm_request_duration_seconds",
			Help:    "Chat completion latency.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		}, []string{"model", "status"}),
		llmTokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blogbridge_llm_tokens_total",
			Help: "Tokens reported by the provider.",
		}, []string{"model", "direction"}),
		securityEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blogbridge_security_events_total",
			Help: "Authentication events such as rejected tokens.",
		}, []string{"event"}),
		blacklistPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blogbridge_blacklist_purged_total",
			Help: "Expired blacklist rows removed by the purge job.",
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
		m.llmRequests,
		m.llmLatency,
		m.llmTokens,
		m.securityEvents,
		m.blacklistPurged,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiLatency.WithLabelValues(method, route, status).Observe(dur.Seconds())
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) ObserveLLMRequest(model, status string, dur time.Duration, inputTokens, outputTokens int64) {
	if m == nil {
		return
	}
	model = strings.TrimSpace(model)
	if model == "" {
		model = "unknown"
	}
	m.llmRequests.WithLabelValues(model, status).Inc()
	if dur > 0 {
		m.llmLatency.WithLabelValues(model, status).Observe(dur.Seconds())
	}
	if inputTokens > 0 {
		m.llmTokens.WithLabelValues(model, "input").Add(float64(inputTokens))
	}
	if outputTokens > 0 {
		m.llmTokens.WithLabelValues(model, "output").Add(float64(outputTokens))
	}
}

func (m *Metrics) IncSecurityEvent(event string) {
	if m == nil {
		return
	}
	m.securityEvents.WithLabelValues(event).Inc()
}

func (m *Metrics) AddBlacklistPurged(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.blacklistPurged.Add(float64(n))
}
